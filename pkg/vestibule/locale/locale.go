// Package locale holds every user-visible string of the front-end.
//
// Messages live in embedded TOML catalogs, one per language, and are
// resolved through go-i18n with English as the fallback.
package locale

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messagesFS embed.FS

// Message IDs. The modal strings follow the original front-end wording.
const (
	LoginSucceededTitle    = "LoginSucceededTitle"
	LoginSucceededBody     = "LoginSucceededBody"
	LoginFailedTitle       = "LoginFailedTitle"
	LoginFailedBody        = "LoginFailedBody"
	PasswordRecoveredTitle = "PasswordRecoveredTitle"
	PasswordRecoveredBody  = "PasswordRecoveredBody"
	UnknownUsernameTitle   = "UnknownUsernameTitle"
	UnknownUsernameBody    = "UnknownUsernameBody"

	LoginTitle    = "LoginTitle"
	UsernameLabel = "UsernameLabel"
	PasswordLabel = "PasswordLabel"
	HelpTitle     = "HelpTitle"
	HelpBody      = "HelpBody"
	SuccessTitle  = "SuccessTitle"
	SuccessBody   = "SuccessBody"
	ForgotTitle   = "ForgotTitle"
	ForgotPrompt  = "ForgotPrompt"

	FooterLogin    = "FooterLogin"
	FooterHelp     = "FooterHelp"
	FooterForgot   = "FooterForgot"
	FooterBack     = "FooterBack"
	FooterRetrieve = "FooterRetrieve"
	FooterDismiss  = "FooterDismiss"
)

// Translator resolves message IDs for one language.
type Translator struct {
	loc *i18n.Localizer
}

// New loads the embedded catalogs and returns a translator for lang.
// Unknown languages fall back to English per message.
func New(lang string) (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := messagesFS.ReadDir("messages")
	if err != nil {
		return nil, fmt.Errorf("locale: read catalogs: %w", err)
	}
	for _, entry := range entries {
		if _, err := bundle.LoadMessageFileFS(messagesFS, "messages/"+entry.Name()); err != nil {
			return nil, fmt.Errorf("locale: load %s: %w", entry.Name(), err)
		}
	}

	return &Translator{
		loc: i18n.NewLocalizer(bundle, lang, language.English.String()),
	}, nil
}

// T resolves a message ID. An unresolvable ID returns the ID itself so a
// missing translation shows up on screen instead of as a blank label.
func (t *Translator) T(id string) string {
	msg, err := t.loc.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

// TData resolves a message ID with template data.
func (t *Translator) TData(id string, data map[string]any) string {
	msg, err := t.loc.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}
