package models

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	return &EmailService{dialer: gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)}, nil
}

func (s *EmailService) SendNewsletterConfirmation(toEmail string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Bienvenue dans la newsletter Beauté Shop")

	body := `
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<h2>Merci pour votre inscription !</h2>
	<p>Vous recevrez désormais nos nouveautés, offres et conseils beauté directement dans votre boîte mail.</p>
	<p>Vous pouvez vous désinscrire à tout moment depuis votre profil.</p>
	<p style="color: #999; font-size: 12px;">Ceci est un email automatique, merci de ne pas y répondre.</p>
</body>
</html>
`

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *EmailService) SendOrderConfirmation(toEmail string, orderID int, total string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Confirmation de commande #%d - Beauté Shop", orderID))

	body := fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<h2>Votre commande #%d est confirmée</h2>
	<p>Montant total : %s €</p>
	<p>Nous vous informerons dès son expédition.</p>
	<p style="color: #999; font-size: 12px;">Ceci est un email automatique, merci de ne pas y répondre.</p>
</body>
</html>
`, orderID, total)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
