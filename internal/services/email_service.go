package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"voxia/internal/domain"
	"voxia/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gopkg.in/gomail.v2"
)

// MailSender is satisfied by *gomail.Dialer.
type MailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailService sends plain and PDF-attachment mail through the configured
// SMTP transport.
type EmailService struct {
	Blobs     BlobStore
	Sender    MailSender
	From      string
	RequestID string
}

// Send delivers a plain text/html email.
func (s EmailService) Send(to, subject, text, html string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", text)
	if html != "" {
		m.AddAlternative("text/html", html)
	}

	if err := s.Sender.DialAndSend(m); err != nil {
		return domain.MailTransportError{To: to, Err: err}
	}
	utils.LogEvent(s.RequestID, "email", "send", "to="+to)
	return nil
}

// SendResetPassword mails a password reset link.
func (s EmailService) SendResetPassword(to, link string) error {
	text := "You requested a password reset. Click the link below to reset your password:\n\n" + link
	html := fmt.Sprintf(`<p>You requested a password reset. Click the link below to reset your password:</p><a href="%s">%s</a>`, link, link)
	return s.Send(to, "Password Reset", text, html)
}

// SendWithPdf fetches the stored PDF and delivers it as an attachment. The
// blob is resolved before any send attempt, so a missing file never produces
// outbound mail.
func (s EmailService) SendWithPdf(ctx context.Context, to, subject, text, html, rawFileID string) error {
	fileID, err := primitive.ObjectIDFromHex(strings.TrimSpace(rawFileID))
	if err != nil {
		return domain.InvalidIDError{ID: rawFileID, Err: err}
	}

	data, filename, err := s.Blobs.Download(ctx, fileID)
	if err != nil {
		return err
	}
	if filename == "" {
		filename = fileID.Hex() + ".pdf"
	}

	if text == "" {
		text = "Please find the attached PDF: " + filename
	}
	if html == "" {
		html = fmt.Sprintf("<p>Please find the attached PDF: <strong>%s</strong></p>", filename)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", text)
	m.AddAlternative("text/html", html)
	m.Attach(filename,
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, werr := w.Write(data)
			return werr
		}),
		gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}),
	)

	if err := s.Sender.DialAndSend(m); err != nil {
		return domain.MailTransportError{To: to, Err: err}
	}
	utils.LogEvent(s.RequestID, "email", "send_with_pdf", fmt.Sprintf("to=%s file_id=%s", to, fileID.Hex()))
	return nil
}
