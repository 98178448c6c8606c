package nav

import (
	"testing"
)

type fakeDisplay struct {
	shown []Page
}

func (d *fakeDisplay) ShowPage(page Page) {
	d.shown = append(d.shown, page)
}

type fakeNotifier struct {
	signals   []string
	recovered string
	unknown   string
}

func (n *fakeNotifier) LoginSucceeded() { n.signals = append(n.signals, "login_succeeded") }
func (n *fakeNotifier) LoginFailed()    { n.signals = append(n.signals, "login_failed") }

func (n *fakeNotifier) PasswordRecovered(password string) {
	n.signals = append(n.signals, "password_recovered")
	n.recovered = password
}

func (n *fakeNotifier) UnknownUsername(username string) {
	n.signals = append(n.signals, "unknown_username")
	n.unknown = username
}

type fakeChecker struct {
	username string
	password string
}

func (c fakeChecker) Verify(username, password string) bool {
	return username == c.username && password == c.password
}

func (c fakeChecker) RecoverPassword(username string) (string, bool) {
	if username == c.username {
		return c.password, true
	}
	return "", false
}

func newTestController() (*Controller, *fakeDisplay, *fakeNotifier) {
	display := &fakeDisplay{}
	notifier := &fakeNotifier{}
	ctrl := NewController(display, notifier, fakeChecker{username: "admin", password: "1234"}, nil)
	return ctrl, display, notifier
}

func TestControllerStartsOnLoginPage(t *testing.T) {
	ctrl, display, _ := newTestController()

	if got := ctrl.Page(); got != PageLogin {
		t.Fatalf("initial page = %v, want %v", got, PageLogin)
	}
	if len(display.shown) != 0 {
		t.Fatalf("display driven before any event: %v", display.shown)
	}
}

func TestRequestLogin(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		password   string
		wantPage   Page
		wantSignal string
	}{
		{"valid pair", "admin", "1234", PageSuccess, "login_succeeded"},
		{"wrong password", "admin", "wrong", PageLogin, "login_failed"},
		{"wrong username", "bob", "1234", PageLogin, "login_failed"},
		{"both wrong", "bob", "hunter2", PageLogin, "login_failed"},
		{"empty pair", "", "", PageLogin, "login_failed"},
		{"case sensitive", "Admin", "1234", PageLogin, "login_failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, display, notifier := newTestController()

			ctrl.RequestLogin(tt.username, tt.password)

			if got := ctrl.Page(); got != tt.wantPage {
				t.Errorf("page = %v, want %v", got, tt.wantPage)
			}
			if len(notifier.signals) != 1 || notifier.signals[0] != tt.wantSignal {
				t.Errorf("signals = %v, want [%s]", notifier.signals, tt.wantSignal)
			}
			if tt.wantPage == PageLogin && len(display.shown) != 0 {
				t.Errorf("failed login drove the display: %v", display.shown)
			}
		})
	}
}

func TestRequestRetrievePassword(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		wantSignal string
	}{
		{"known username", "admin", "password_recovered"},
		{"unknown username", "bob", "unknown_username"},
		{"empty username", "", "unknown_username"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, _, notifier := newTestController()
			ctrl.RequestForgotPassword()

			ctrl.RequestRetrievePassword(tt.username)

			if got := ctrl.Page(); got != PageForgotPassword {
				t.Errorf("page = %v, want %v (retrieval must not navigate)", got, PageForgotPassword)
			}
			if len(notifier.signals) != 1 || notifier.signals[0] != tt.wantSignal {
				t.Errorf("signals = %v, want [%s]", notifier.signals, tt.wantSignal)
			}
		})
	}
}

func TestRetrievePasswordRevealsStoredPassword(t *testing.T) {
	ctrl, _, notifier := newTestController()
	ctrl.RequestForgotPassword()

	ctrl.RequestRetrievePassword("admin")

	if notifier.recovered != "1234" {
		t.Fatalf("recovered password = %q, want %q", notifier.recovered, "1234")
	}
}

func TestRetrievePasswordIgnoredOffForgotPage(t *testing.T) {
	ctrl, _, notifier := newTestController()

	ctrl.RequestRetrievePassword("admin")

	if len(notifier.signals) != 0 {
		t.Fatalf("signals fired off the forgot page: %v", notifier.signals)
	}
	if got := ctrl.Page(); got != PageLogin {
		t.Fatalf("page = %v, want %v", got, PageLogin)
	}
}

func TestBackEventsReturnToLogin(t *testing.T) {
	tests := []struct {
		name    string
		arrive  func(*Controller)
		back    func(*Controller)
		from    Page
	}{
		{"help", (*Controller).RequestHelp, (*Controller).RequestBackFromHelp, PageHelp},
		{"forgot", (*Controller).RequestForgotPassword, (*Controller).RequestBackFromForgot, PageForgotPassword},
		{
			"success",
			func(c *Controller) { c.RequestLogin("admin", "1234") },
			(*Controller).RequestBackFromSuccess,
			PageSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, display, _ := newTestController()

			tt.arrive(ctrl)
			if got := ctrl.Page(); got != tt.from {
				t.Fatalf("page after arrival = %v, want %v", got, tt.from)
			}

			tt.back(ctrl)
			if got := ctrl.Page(); got != PageLogin {
				t.Errorf("page after back = %v, want %v", got, PageLogin)
			}
			if last := display.shown[len(display.shown)-1]; last != PageLogin {
				t.Errorf("last shown page = %v, want %v", last, PageLogin)
			}
		})
	}
}

func TestBackEventsIgnoredWhenPreconditionUnmet(t *testing.T) {
	ctrl, _, _ := newTestController()
	ctrl.RequestHelp()

	// Back events for inactive pages have no transition in the page table.
	ctrl.RequestBackFromSuccess()
	ctrl.RequestBackFromForgot()

	if got := ctrl.Page(); got != PageHelp {
		t.Fatalf("page = %v, want %v", got, PageHelp)
	}
}

func TestNavigationIsIdempotent(t *testing.T) {
	ctrl, display, _ := newTestController()

	ctrl.RequestHelp()
	ctrl.RequestHelp()

	if got := ctrl.Page(); got != PageHelp {
		t.Fatalf("page = %v, want %v", got, PageHelp)
	}
	if len(display.shown) != 2 {
		t.Fatalf("display shown %d times, want 2", len(display.shown))
	}

	ctrl.RequestBackFromHelp()
	ctrl.RequestForgotPassword()
	ctrl.RequestForgotPassword()

	if got := ctrl.Page(); got != PageForgotPassword {
		t.Fatalf("page = %v, want %v", got, PageForgotPassword)
	}
}

func TestFailedLoginKeepsCurrentPage(t *testing.T) {
	ctrl, _, notifier := newTestController()

	ctrl.RequestLogin("admin", "wrong")
	ctrl.RequestLogin("admin", "1234")

	if got := ctrl.Page(); got != PageSuccess {
		t.Fatalf("page = %v, want %v", got, PageSuccess)
	}
	want := []string{"login_failed", "login_succeeded"}
	for i, s := range want {
		if notifier.signals[i] != s {
			t.Fatalf("signals = %v, want %v", notifier.signals, want)
		}
	}
}

func TestPageString(t *testing.T) {
	tests := []struct {
		page Page
		want string
	}{
		{PageLogin, "login"},
		{PageHelp, "help"},
		{PageSuccess, "success"},
		{PageForgotPassword, "forgot_password"},
		{Page(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.page.String(); got != tt.want {
			t.Errorf("Page(%d).String() = %q, want %q", int(tt.page), got, tt.want)
		}
	}
}
