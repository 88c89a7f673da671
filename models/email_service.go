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

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

// SendReceiptEmail mails a payment receipt after a successful charge.
func (s *EmailService) SendReceiptEmail(toEmail string, t Transaction) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Payment Receipt - Pizza Shop")

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .logo { font-size: 24px; font-weight: bold; color: #d32f2f; text-align: center; }
        .amount-box { background-color: #fff3f3; border: 2px dashed #d32f2f; padding: 20px; text-align: center; margin: 30px 0; border-radius: 8px; }
        .amount { font-size: 32px; font-weight: bold; color: #d32f2f; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">Pizza Shop</div>
        <h2 style="color: #333;">Thank you for your payment</h2>
        <p>Your payment has been captured successfully.</p>

        <div class="amount-box">
            <div style="color: #666; font-size: 14px; margin-bottom: 10px;">Amount charged</div>
            <div class="amount">$%.2f</div>
        </div>

        <p>Reference: %s</p>
        <p>Date: %s</p>

        <div class="footer">
            <p>This is an automated email. Please do not reply.</p>
        </div>
    </div>
</body>
</html>`, t.Amount, t.StripeChargeID, t.Timestamp.Format("January 2, 2006 15:04"))

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
