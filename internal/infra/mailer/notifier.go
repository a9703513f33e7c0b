package mailer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"reservation-service/internal/pkg/config"
	"reservation-service/internal/usecase"
)

//go:embed templates/*.html
var templateFS embed.FS

type eventTemplate struct {
	subject string
	file    string
}

var eventTemplates = map[usecase.NotificationEvent]eventTemplate{
	usecase.EventConfirmation: {subject: "Reservation Confirmation", file: "confirmation.html"},
	usecase.EventStatusUpdate: {subject: "Reservation Update", file: "status_update.html"},
	usecase.EventCancellation: {subject: "Reservation Cancelled", file: "cancellation.html"},
}

type templateData struct {
	usecase.NotificationData
	Brand string
}

// TemplateNotifier renders a notification into HTML and hands it to a Sender.
type TemplateNotifier struct {
	sender    Sender
	from      string
	brand     string
	templates *template.Template
}

func NewTemplateNotifier(sender Sender, cfg config.MailConfig) (*TemplateNotifier, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}
	return &TemplateNotifier{
		sender:    sender,
		from:      cfg.From,
		brand:     cfg.Brand,
		templates: tmpl,
	}, nil
}

func (n *TemplateNotifier) Send(ctx context.Context, msg usecase.Notification) error {
	env, err := n.Render(msg)
	if err != nil {
		return err
	}
	return n.sender.Send(ctx, env)
}

func (n *TemplateNotifier) Render(msg usecase.Notification) (Envelope, error) {
	et, ok := eventTemplates[msg.Event]
	if !ok {
		return Envelope{}, fmt.Errorf("no email template for event %q", msg.Event)
	}

	var body bytes.Buffer
	data := templateData{NotificationData: msg.Data, Brand: n.brand}
	if err := n.templates.ExecuteTemplate(&body, et.file, data); err != nil {
		return Envelope{}, fmt.Errorf("failed to render %s: %w", et.file, err)
	}

	return Envelope{
		From:     n.from,
		To:       msg.To,
		Subject:  et.subject + " - " + n.brand,
		HTMLBody: body.String(),
	}, nil
}
