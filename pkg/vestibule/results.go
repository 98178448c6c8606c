package vestibule

// LoginAction represents user actions that can exit the login page.
type LoginAction int

const (
	LoginActionSubmit LoginAction = iota // User submitted the credential form
	LoginActionHelp                      // User asked for the help page
	LoginActionForgot                    // User asked for the forgot-password page
)

// LoginResult is the return type for the login page.
type LoginResult struct {
	Action   LoginAction
	Username string
	Password string
}

// BackAction represents user actions on the static pages (help, success).
type BackAction int

const (
	BackActionBack BackAction = iota // User went back to the login page
)

// BackResult is the return type for the help and success pages.
type BackResult struct {
	Action BackAction
}

// ForgotAction represents user actions on the forgot-password page.
type ForgotAction int

const (
	ForgotActionRetrieve ForgotAction = iota // User asked to reveal the password
	ForgotActionBack                         // User went back to the login page
)

// ForgotResult is the return type for the forgot-password page.
type ForgotResult struct {
	Action   ForgotAction
	Username string
}
