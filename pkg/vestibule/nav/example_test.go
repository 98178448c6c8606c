package nav_test

import (
	"fmt"

	"github.com/kevinmliu/vestibule/pkg/vestibule/nav"
)

// consoleDisplay prints page switches the way a stacked-page container would
// apply them.
type consoleDisplay struct{}

func (consoleDisplay) ShowPage(page nav.Page) {
	fmt.Printf("show page: %s\n", page)
}

// consoleNotifier prints signals the way a modal-message facility would
// display them.
type consoleNotifier struct{}

func (consoleNotifier) LoginSucceeded() { fmt.Println("info: welcome!") }
func (consoleNotifier) LoginFailed()    { fmt.Println("warning: wrong username or password") }

func (consoleNotifier) PasswordRecovered(password string) {
	fmt.Printf("info: your password is %s\n", password)
}

func (consoleNotifier) UnknownUsername(username string) {
	fmt.Println("warning: username not found")
}

type pair struct {
	username string
	password string
}

func (p pair) Verify(username, password string) bool {
	return username == p.username && password == p.password
}

func (p pair) RecoverPassword(username string) (string, bool) {
	if username == p.username {
		return p.password, true
	}
	return "", false
}

// Example walks the full page table: a failed login, a successful one, and a
// back transition to the login form.
func Example() {
	ctrl := nav.NewController(consoleDisplay{}, consoleNotifier{}, pair{"admin", "1234"}, nil)

	ctrl.RequestLogin("admin", "wrong")
	ctrl.RequestLogin("admin", "1234")
	ctrl.RequestBackFromSuccess()

	// Output:
	// warning: wrong username or password
	// info: welcome!
	// show page: success
	// show page: login
}

// Example_passwordRecovery shows the retrieve-password flow. The forgot page
// stays active through both lookups.
func Example_passwordRecovery() {
	ctrl := nav.NewController(consoleDisplay{}, consoleNotifier{}, pair{"admin", "1234"}, nil)

	ctrl.RequestForgotPassword()
	ctrl.RequestRetrievePassword("bob")
	ctrl.RequestRetrievePassword("admin")
	fmt.Printf("still on: %s\n", ctrl.Page())
	ctrl.RequestBackFromForgot()

	// Output:
	// show page: forgot_password
	// warning: username not found
	// info: your password is 1234
	// still on: forgot_password
	// show page: login
}
