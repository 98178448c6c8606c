// Package flow drives one page function per controller page in a loop.
//
// Each nav.Page is registered with a PageFunc that renders the page and
// blocks until the user takes an action. The function's result is handed to
// a single dispatch function that feeds it into the navigation controller.
// The runner then re-reads the active page and runs the next function, until
// the dispatch reports that the application should exit.
//
// The package has no SDL dependency; page functions carry all rendering.
package flow

import (
	"fmt"

	"github.com/kevinmliu/vestibule/pkg/vestibule/nav"
)

// PageFunc runs one page until the user takes an action and returns a
// page-specific result describing it.
type PageFunc func() (result any, err error)

// DispatchFunc receives the page that just completed and its result, applies
// the matching controller operation, and reports whether the application
// should exit.
type DispatchFunc func(page nav.Page, result any) (quit bool)

// Runner maps pages to their functions and loops until dispatch quits.
type Runner struct {
	pages    map[nav.Page]PageFunc
	dispatch DispatchFunc
}

// New creates an empty Runner.
func New() *Runner {
	return &Runner{
		pages: make(map[nav.Page]PageFunc),
	}
}

// Register adds a page function to the runner.
func (r *Runner) Register(page nav.Page, fn PageFunc) *Runner {
	r.pages[page] = fn
	return r
}

// OnResult sets the dispatch function that routes page results into the
// navigation controller.
func (r *Runner) OnResult(fn DispatchFunc) *Runner {
	r.dispatch = fn
	return r
}

// Run loops over the active page until the dispatch function reports quit
// or a page function fails. The active function reads the current page from
// the navigation controller on every iteration.
func (r *Runner) Run(active func() nav.Page) error {
	if r.dispatch == nil {
		return fmt.Errorf("flow: no dispatch function set")
	}

	for {
		page := active()

		fn, ok := r.pages[page]
		if !ok {
			return fmt.Errorf("flow: page %s not registered", page)
		}

		result, err := fn()
		if err != nil {
			return fmt.Errorf("flow: page %s: %w", page, err)
		}

		if r.dispatch(page, result) {
			return nil
		}
	}
}
