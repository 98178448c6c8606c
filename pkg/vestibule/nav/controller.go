package nav

import "log/slog"

// Controller owns the current page and applies the navigation table in
// response to UI events. All methods are synchronous and must be called from
// the event loop goroutine.
type Controller struct {
	page    Page
	display PageDisplay
	notify  Notifier
	creds   CredentialChecker
	log     *slog.Logger
}

// NewController creates a controller starting on PageLogin.
// A nil logger discards all log output.
func NewController(display PageDisplay, notify Notifier, creds CredentialChecker, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		page:    PageLogin,
		display: display,
		notify:  notify,
		creds:   creds,
		log:     log,
	}
}

// Page returns the currently active page.
func (c *Controller) Page() Page {
	return c.page
}

// RequestHelp switches to the help page. It carries no precondition and is
// idempotent.
func (c *Controller) RequestHelp() {
	c.setPage(PageHelp)
}

// RequestLogin checks the supplied credentials. On a match the success page
// is shown and LoginSucceeded fires; otherwise the page is unchanged and
// LoginFailed fires.
func (c *Controller) RequestLogin(username, password string) {
	if c.creds.Verify(username, password) {
		c.log.Info("login accepted", "username", username)
		c.notify.LoginSucceeded()
		c.setPage(PageSuccess)
		return
	}

	c.log.Info("login rejected", "username", username)
	c.notify.LoginFailed()
}

// RequestForgotPassword switches to the retrieve-password page. It carries
// no precondition and is idempotent.
func (c *Controller) RequestForgotPassword() {
	c.setPage(PageForgotPassword)
}

// RequestRetrievePassword looks up the claimed username and fires
// PasswordRecovered or UnknownUsername. The page is unchanged either way.
// Only meaningful while the forgot-password page is active; calls from any
// other page are ignored.
func (c *Controller) RequestRetrievePassword(username string) {
	if c.page != PageForgotPassword {
		c.log.Debug("retrieve ignored off the forgot-password page", "page", c.page)
		return
	}

	if password, ok := c.creds.RecoverPassword(username); ok {
		c.log.Info("password recovered", "username", username)
		c.notify.PasswordRecovered(password)
		return
	}

	c.log.Info("recovery for unknown username", "username", username)
	c.notify.UnknownUsername(username)
}

// RequestBackFromHelp returns from the help page to the login page.
func (c *Controller) RequestBackFromHelp() {
	c.back(PageHelp)
}

// RequestBackFromSuccess returns from the success page to the login page.
func (c *Controller) RequestBackFromSuccess() {
	c.back(PageSuccess)
}

// RequestBackFromForgot returns from the forgot-password page to the login
// page.
func (c *Controller) RequestBackFromForgot() {
	c.back(PageForgotPassword)
}

// back applies a guarded back transition. A back event for a page that is
// not active has no defined transition in the page table; jumping to the
// login page anyway would mask a wiring bug in the caller, so it is ignored.
func (c *Controller) back(from Page) {
	if c.page != from {
		c.log.Debug("back event ignored", "expected", from, "page", c.page)
		return
	}
	c.setPage(PageLogin)
}

func (c *Controller) setPage(page Page) {
	c.page = page
	c.display.ShowPage(page)
}
