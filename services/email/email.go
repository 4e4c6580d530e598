package emailsvc

import (
	"log"
	"net/mail"

	"github.com/campusdesk/portal/core"
)

// New returns the console service in debug mode and the SendGrid service otherwise.
func New(conf *core.Config, logger core.Logger, std *log.Logger) core.EmailService {
	if conf.Debug || conf.Mail.SendgridAPIKey == "" {
		return NewConsoleService(conf, logger, std)
	}
	return NewSendgridService(conf, logger)
}

// WelcomeData fills the welcome template.
type WelcomeData struct {
	Username string
	Role     string
}

// NewWelcomeMessage is sent to an account's email once it signs up.
func NewWelcomeMessage(username, role, email string) *core.EmailMessage {
	return &core.EmailMessage{
		To:           []mail.Address{{Name: username, Address: email}},
		Subject:      "Welcome to the portal",
		TemplateName: "welcome",
		TemplateData: WelcomeData{Username: username, Role: role},
	}
}
