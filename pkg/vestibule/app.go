package vestibule

import (
	"github.com/kevinmliu/vestibule/pkg/vestibule/flow"
	"github.com/kevinmliu/vestibule/pkg/vestibule/internal"
	"github.com/kevinmliu/vestibule/pkg/vestibule/locale"
	"github.com/kevinmliu/vestibule/pkg/vestibule/nav"
)

// App wires the navigation controller to the SDL pages and the modal
// notifier. Call Init before NewApp and Close after Run returns.
type App struct {
	ctrl    *nav.Controller
	runner  *flow.Runner
	tracker *pageTracker
	tr      *locale.Translator
}

// NewApp builds the application around a credential checker and a message
// catalog.
func NewApp(tr *locale.Translator, checker nav.CredentialChecker) *App {
	tracker := &pageTracker{active: nav.PageLogin}

	app := &App{
		tracker: tracker,
		tr:      tr,
	}
	app.ctrl = nav.NewController(tracker, &modalNotifier{tr: tr}, checker, GetLogger())
	app.runner = flow.New().
		Register(nav.PageLogin, app.loginPage).
		Register(nav.PageHelp, app.helpPage).
		Register(nav.PageSuccess, app.successPage).
		Register(nav.PageForgotPassword, app.forgotPage).
		OnResult(app.dispatch)

	return app
}

// Run drives the page loop until the user closes the window or a page
// fails. A user cancellation (window close, power press) is a clean exit,
// not an error.
func (a *App) Run() error {
	return exitError(a.runner.Run(a.tracker.Active))
}

// exitError maps a user cancellation to a clean exit; anything else is a
// real failure.
func exitError(err error) error {
	if IsCancelled(err) {
		return nil
	}
	return err
}

func (a *App) loginPage() (any, error) {
	return LoginPage(LoginPageText{
		Title:         a.tr.T(locale.LoginTitle),
		UsernameLabel: a.tr.T(locale.UsernameLabel),
		PasswordLabel: a.tr.T(locale.PasswordLabel),
		FooterLogin:   a.tr.T(locale.FooterLogin),
		FooterHelp:    a.tr.T(locale.FooterHelp),
		FooterForgot:  a.tr.T(locale.FooterForgot),
	})
}

func (a *App) helpPage() (any, error) {
	return HelpPage(StaticPageText{
		Title:      a.tr.T(locale.HelpTitle),
		Body:       a.tr.T(locale.HelpBody),
		FooterBack: a.tr.T(locale.FooterBack),
		Icon:       "help",
	})
}

func (a *App) successPage() (any, error) {
	return SuccessPage(StaticPageText{
		Title:      a.tr.T(locale.SuccessTitle),
		Body:       a.tr.T(locale.SuccessBody),
		FooterBack: a.tr.T(locale.FooterBack),
		Icon:       "lock",
	})
}

func (a *App) forgotPage() (any, error) {
	return ForgotPasswordPage(ForgotPageText{
		Title:          a.tr.T(locale.ForgotTitle),
		Prompt:         a.tr.T(locale.ForgotPrompt),
		UsernameLabel:  a.tr.T(locale.UsernameLabel),
		FooterRetrieve: a.tr.T(locale.FooterRetrieve),
		FooterBack:     a.tr.T(locale.FooterBack),
	})
}

// dispatch routes page results into the controller. Returns true when the
// application should exit.
func (a *App) dispatch(page nav.Page, result any) bool {
	switch page {
	case nav.PageLogin:
		res := result.(*LoginResult)
		switch res.Action {
		case LoginActionSubmit:
			a.ctrl.RequestLogin(res.Username, res.Password)
		case LoginActionHelp:
			a.ctrl.RequestHelp()
		case LoginActionForgot:
			a.ctrl.RequestForgotPassword()
		}

	case nav.PageHelp:
		if res := result.(*BackResult); res.Action == BackActionBack {
			a.ctrl.RequestBackFromHelp()
		}

	case nav.PageSuccess:
		if res := result.(*BackResult); res.Action == BackActionBack {
			a.ctrl.RequestBackFromSuccess()
		}

	case nav.PageForgotPassword:
		res := result.(*ForgotResult)
		switch res.Action {
		case ForgotActionBack:
			a.ctrl.RequestBackFromForgot()
		case ForgotActionRetrieve:
			a.ctrl.RequestRetrievePassword(res.Username)
		}
	}

	// A modal or the power button watcher may have requested quit while the
	// page was running.
	return internal.GetInputProcessor().QuitRequested()
}

// pageTracker is the stacked-page display collaborator: it records which
// page the controller made active, and the page loop reads it back.
type pageTracker struct {
	active nav.Page
}

func (t *pageTracker) ShowPage(page nav.Page) {
	internal.GetInternalLogger().Debug("Switching page", "page", page.String())
	t.active = page
}

// Active returns the currently displayed page.
func (t *pageTracker) Active() nav.Page {
	return t.active
}

// modalNotifier surfaces controller signals as modal messages.
type modalNotifier struct {
	tr *locale.Translator
}

func (n *modalNotifier) LoginSucceeded() {
	Message(
		n.tr.T(locale.LoginSucceededTitle),
		n.tr.T(locale.LoginSucceededBody),
		MessageSettings{Kind: MessageInfo, DismissLabel: n.tr.T(locale.FooterDismiss)},
	)
}

func (n *modalNotifier) LoginFailed() {
	Message(
		n.tr.T(locale.LoginFailedTitle),
		n.tr.T(locale.LoginFailedBody),
		MessageSettings{Kind: MessageWarning, DismissLabel: n.tr.T(locale.FooterDismiss)},
	)
}

func (n *modalNotifier) PasswordRecovered(password string) {
	Message(
		n.tr.T(locale.PasswordRecoveredTitle),
		n.tr.TData(locale.PasswordRecoveredBody, map[string]any{"Password": password}),
		MessageSettings{Kind: MessageInfo, DismissLabel: n.tr.T(locale.FooterDismiss)},
	)
}

func (n *modalNotifier) UnknownUsername(username string) {
	Message(
		n.tr.T(locale.UnknownUsernameTitle),
		n.tr.T(locale.UnknownUsernameBody),
		MessageSettings{Kind: MessageWarning, DismissLabel: n.tr.T(locale.FooterDismiss)},
	)
}
