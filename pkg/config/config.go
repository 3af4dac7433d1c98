package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort     string
	Environment    string
	StoragePath    string
	IdentitySecret string

	// Economy defaults applied to every new account.
	DefaultStars  int
	DefaultEnergy int
	DefaultLevel  int
	DefaultRating float64

	MinSecretLength int
	PriceCapFactor  int

	BonusStars    int
	BonusEnergy   int
	BonusCooldown time.Duration

	ListingTTL time.Duration
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		StoragePath:    getEnv("STORAGE_PATH", "starmarket.db"),
		IdentitySecret: getEnv("IDENTITY_SECRET", "your-secret-key"),

		DefaultStars:  getEnvAsInt("DEFAULT_STARS", 1000),
		DefaultEnergy: getEnvAsInt("DEFAULT_ENERGY", 10),
		DefaultLevel:  getEnvAsInt("DEFAULT_LEVEL", 1),
		DefaultRating: 5.0,

		MinSecretLength: getEnvAsInt("MIN_SECRET_LENGTH", 6),
		PriceCapFactor:  getEnvAsInt("PRICE_CAP_FACTOR", 10),

		BonusStars:    getEnvAsInt("BONUS_STARS", 50),
		BonusEnergy:   getEnvAsInt("BONUS_ENERGY", 2),
		BonusCooldown: getEnvAsDuration("BONUS_COOLDOWN", 24*time.Hour),

		ListingTTL: getEnvAsDuration("LISTING_TTL", 7*24*time.Hour),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.Atoi(value)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return defaultValue
}
