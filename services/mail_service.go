package services

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"planner-api/config"
	"planner-api/utils"
)

type MailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewMailService(cfg *config.Config) *MailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	return &MailService{
		config: cfg,
		dialer: dialer,
	}
}

// SendTripConfirmationEmail asks the trip owner to confirm the trip they
// just created. The link flips the trip itself, not a participant.
func (ms *MailService) SendTripConfirmationEmail(toEmail, toName, destination string, startsAt, endsAt time.Time, confirmationLink string) error {
	formattedStart := utils.FormatLongDate(startsAt)
	formattedEnd := utils.FormatLongDate(endsAt)

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", ms.config.FromName, ms.config.FromEmail))
	m.SetAddressHeader("To", toEmail, toName)
	m.SetHeader("Subject", fmt.Sprintf("Confirme sua viagem para %s", destination))

	htmlBody := fmt.Sprintf(`
<div style="font-family: sans-serif; font-size: 16px; line-height: 1.6;">
    <p>Olá, %s!</p>
    <p>Você solicitou a criação de uma viagem para <strong>%s</strong>, de %s até %s.</p>
    <p>Para confirmar sua viagem, clique no link abaixo:</p>
    <p><a href="%s">Confirmar viagem</a></p>
    <p>Caso você não saiba do que se trata esse e-mail, apenas ignore-o.</p>
</div>`, toName, destination, formattedStart, formattedEnd, confirmationLink)

	textBody := fmt.Sprintf(`Olá, %s!

Você solicitou a criação de uma viagem para %s, de %s até %s.

Para confirmar sua viagem, acesse o link abaixo:

%s

Caso você não saiba do que se trata esse e-mail, apenas ignore-o.
`, toName, destination, formattedStart, formattedEnd, confirmationLink)

	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	if err := ms.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send trip confirmation email: %w", err)
	}

	return nil
}

// SendParticipantConfirmationEmail invites a participant to confirm their
// presence on a trip. Used both for direct invitations and for the burst
// sent when the trip itself is confirmed.
func (ms *MailService) SendParticipantConfirmationEmail(toEmail, destination string, startsAt, endsAt time.Time, confirmationLink string) error {
	formattedStart := utils.FormatLongDate(startsAt)
	formattedEnd := utils.FormatLongDate(endsAt)

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", ms.config.FromName, ms.config.FromEmail))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Confirme sua presença na viagem para %s", destination))

	htmlBody := fmt.Sprintf(`
<div style="font-family: sans-serif; font-size: 16px; line-height: 1.6;">
    <p>Você foi convidado(a) para participar de uma viagem para <strong>%s</strong>, de %s até %s.</p>
    <p>Para confirmar sua presença na viagem, clique no link abaixo:</p>
    <p><a href="%s">Confirmar presença</a></p>
    <p>Caso você não saiba do que se trata esse e-mail, apenas ignore-o.</p>
</div>`, destination, formattedStart, formattedEnd, confirmationLink)

	textBody := fmt.Sprintf(`Você foi convidado(a) para participar de uma viagem para %s, de %s até %s.

Para confirmar sua presença na viagem, acesse o link abaixo:

%s

Caso você não saiba do que se trata esse e-mail, apenas ignore-o.
`, destination, formattedStart, formattedEnd, confirmationLink)

	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	if err := ms.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send participant confirmation email: %w", err)
	}

	return nil
}
