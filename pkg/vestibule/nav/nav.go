package nav

// Page is a type-safe identifier for the full-screen pages of the front-end.
type Page int

const (
	// PageLogin is the initial page and the target of every back event.
	PageLogin Page = iota
	// PageHelp shows usage instructions.
	PageHelp
	// PageSuccess is shown after a successful login.
	PageSuccess
	// PageForgotPassword hosts the retrieve-password form.
	PageForgotPassword
)

func (p Page) String() string {
	switch p {
	case PageLogin:
		return "login"
	case PageHelp:
		return "help"
	case PageSuccess:
		return "success"
	case PageForgotPassword:
		return "forgot_password"
	default:
		return "unknown"
	}
}

// PageDisplay is the page-container collaborator. It holds the stacked pages
// and switches the visibly active one when told to.
type PageDisplay interface {
	ShowPage(page Page)
}

// Notifier surfaces operation outcomes to the user, typically as a modal
// message. The wrong-credentials and unknown-username cases are expected
// user-input outcomes, not faults.
type Notifier interface {
	LoginSucceeded()
	LoginFailed()
	PasswordRecovered(password string)
	UnknownUsername(username string)
}

// CredentialChecker decides login attempts and password recovery lookups.
// Implementations live in the auth package.
type CredentialChecker interface {
	// Verify reports whether the username/password pair is valid.
	Verify(username, password string) bool

	// RecoverPassword returns the stored password for the username when the
	// username is known and the secret is recoverable.
	RecoverPassword(username string) (string, bool)
}
