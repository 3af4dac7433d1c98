// Package view holds the transient screen state: the current view, the
// selected category and the search text. Everything here is in-memory and
// discarded on restart; only what the store persisted survives.
package view

import (
	"fmt"
	"sync"

	"starmarket/internal/domain/entity"
	"starmarket/internal/domain/repository"
	"starmarket/pkg/errors"
)

type State string

const (
	StateAuth    State = "auth"
	StateMain    State = "main"
	StateBuy     State = "buy"
	StateProfile State = "profile"
	// StateSell never persists as a view; navigating to it opens the
	// publish flow instead.
	StateSell State = "sell"
	// StateAuction is an explicit alias of main. There are no auction
	// mechanics.
	StateAuction State = "auction"
)

// Snapshot is a read-only copy of the controller state.
type Snapshot struct {
	View     State           `json:"view"`
	Category entity.Category `json:"category,omitempty"`
	Search   string          `json:"search,omitempty"`
}

// Controller is the screen-state machine. One instance per process: the
// world is a single "tab".
type Controller struct {
	mu       sync.Mutex
	current  State
	category entity.Category
	search   string
}

// NewController starts on main when a session user already exists, else on
// auth.
func NewController(hasSession bool) *Controller {
	c := &Controller{current: StateAuth}
	if hasSession {
		c.current = StateMain
	}
	return c
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{View: c.current, Category: c.category, Search: c.search}
}

// Navigate applies a navigation action and returns the resulting view.
// "sell" is intercepted: the controller state stays put and the caller is
// told to open the publish flow. "auction" lands on main.
func (c *Controller) Navigate(action string) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch State(action) {
	case StateSell:
		return StateSell, nil
	case StateAuction:
		c.current = StateMain
		return StateMain, nil
	case StateMain, StateBuy, StateProfile:
		c.current = State(action)
		return c.current, nil
	default:
		return c.current, errors.BadRequest(fmt.Sprintf("Unknown navigation action %q", action), nil)
	}
}

// CompletePublish lands on buy with the freshly used category pre-selected.
func (c *Controller) CompletePublish(category entity.Category) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = StateBuy
	c.category = category
}

// ToggleCategory selects the category, or clears it when it is already the
// active one. Returns the category active after the toggle.
func (c *Controller) ToggleCategory(category entity.Category) entity.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.category == category {
		c.category = ""
	} else {
		c.category = category
	}
	return c.category
}

func (c *Controller) SetSearch(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = query
}

// ClearSearch resets both the search text and the selected category.
func (c *Controller) ClearSearch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = ""
	c.category = ""
}

// OnLogin moves to main.
func (c *Controller) OnLogin() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = StateMain
}

// OnLogout returns to auth and drops every transient filter.
func (c *Controller) OnLogout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = StateAuth
	c.category = ""
	c.search = ""
}

// Filter builds the listing query the current transient state implies.
func (c *Controller) Filter() repository.ListingFilter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return repository.ListingFilter{
		Category: c.category,
		Search:   c.search,
	}
}
