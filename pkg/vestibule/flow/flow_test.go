package flow_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/kevinmliu/vestibule/pkg/vestibule/flow"
	"github.com/kevinmliu/vestibule/pkg/vestibule/nav"
)

func TestRunRequiresDispatch(t *testing.T) {
	r := flow.New().Register(nav.PageLogin, func() (any, error) { return nil, nil })

	if err := r.Run(func() nav.Page { return nav.PageLogin }); err == nil {
		t.Fatal("Run without a dispatch function did not fail")
	}
}

func TestRunFailsOnUnregisteredPage(t *testing.T) {
	r := flow.New().OnResult(func(nav.Page, any) bool { return true })

	err := r.Run(func() nav.Page { return nav.PageHelp })
	if err == nil {
		t.Fatal("Run with an unregistered page did not fail")
	}
}

func TestRunPropagatesPageError(t *testing.T) {
	wantErr := errors.New("renderer lost")
	r := flow.New().
		Register(nav.PageLogin, func() (any, error) { return nil, wantErr }).
		OnResult(func(nav.Page, any) bool { return true })

	err := r.Run(func() nav.Page { return nav.PageLogin })
	if !errors.Is(err, wantErr) {
		t.Fatalf("Run error = %v, want wrapped %v", err, wantErr)
	}
}

func TestRunFollowsActivePage(t *testing.T) {
	// Simulate: login -> help -> login -> quit.
	pages := []nav.Page{nav.PageLogin, nav.PageHelp, nav.PageLogin}
	step := 0
	var visited []nav.Page

	r := flow.New().
		Register(nav.PageLogin, func() (any, error) { return "login result", nil }).
		Register(nav.PageHelp, func() (any, error) { return "help result", nil }).
		OnResult(func(page nav.Page, result any) bool {
			visited = append(visited, page)
			step++
			return step >= len(pages)
		})

	err := r.Run(func() nav.Page { return pages[step] })
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}

	want := []nav.Page{nav.PageLogin, nav.PageHelp, nav.PageLogin}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited %v, want %v", visited, want)
		}
	}
}

// Example wires a runner to a real controller and walks a help round trip
// followed by a successful login.
func Example() {
	display := pageLogger{}
	ctrl := nav.NewController(display, silentNotifier{}, pair{"admin", "1234"}, nil)

	// Scripted user actions, one per visit to a page.
	loginActions := []string{"help", "login"}
	loginVisits := 0

	r := flow.New().
		Register(nav.PageLogin, func() (any, error) {
			action := loginActions[loginVisits]
			loginVisits++
			fmt.Printf("login page, user picks: %s\n", action)
			return action, nil
		}).
		Register(nav.PageHelp, func() (any, error) {
			fmt.Println("help page, user goes back")
			return "back", nil
		}).
		Register(nav.PageSuccess, func() (any, error) {
			fmt.Println("success page, user quits")
			return "quit", nil
		}).
		OnResult(func(page nav.Page, result any) bool {
			switch result.(string) {
			case "help":
				ctrl.RequestHelp()
			case "back":
				ctrl.RequestBackFromHelp()
			case "login":
				ctrl.RequestLogin("admin", "1234")
			case "quit":
				return true
			}
			return false
		})

	_ = r.Run(ctrl.Page)

	// Output:
	// login page, user picks: help
	// show: help
	// help page, user goes back
	// show: login
	// login page, user picks: login
	// show: success
	// success page, user quits
}

type pageLogger struct{}

func (pageLogger) ShowPage(page nav.Page) { fmt.Printf("show: %s\n", page) }

type silentNotifier struct{}

func (silentNotifier) LoginSucceeded()          {}
func (silentNotifier) LoginFailed()             {}
func (silentNotifier) PasswordRecovered(string) {}
func (silentNotifier) UnknownUsername(string)   {}

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
