// Package nav owns the session page state of the login front-end and the
// controller that mutates it.
//
// The controller is a plain state machine with no SDL or rendering
// dependencies. It talks to the rest of the application through three small
// interfaces: a PageDisplay that is told which page to show, a Notifier that
// surfaces user-visible outcomes, and a CredentialChecker that decides
// whether a login attempt succeeds.
//
// # Basic Usage
//
//	ctrl := nav.NewController(display, notifier, checker, logger)
//
//	ctrl.RequestHelp()                  // -> PageHelp
//	ctrl.RequestBackFromHelp()          // -> PageLogin
//	ctrl.RequestLogin("admin", "1234")  // -> PageSuccess on a match
//
// Every operation runs to completion on the caller's goroutine before the
// next UI event is processed, so no locking is required around the page
// state.
package nav
