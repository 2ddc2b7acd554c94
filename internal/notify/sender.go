package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	twilio "github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/thegrihome/grihome-api/internal/utils"
)

// verificationEmailHTML is the branded template for verification codes.
const verificationEmailHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Your Verification Code</title>
</head>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, Arial, sans-serif; color: #333;">
  <div style="max-width: 500px; margin: auto; border: 1px solid #e9ecef; border-radius: 8px;">
    <div style="background-color: #1a6e4a; color: white; padding: 20px; text-align: center;">
      <h1 style="margin: 0; font-size: 24px;">Your Verification Code</h1>
    </div>
    <div style="padding: 30px; text-align: center;">
      <p>Please use the following code to complete your verification. This code will expire in 10 minutes.</p>
      <div style="font-size: 36px; font-weight: bold; letter-spacing: 8px;">%s</div>
      <p>If you did not request this code, you can safely ignore this email.</p>
    </div>
    <div style="padding: 20px; text-align: center; font-size: 12px; color: #6c757d;">
      © %d Grihome. All rights reserved.
    </div>
  </div>
</body>
</html>`

// Sender delivers codes through SendGrid (email) and Twilio (SMS).
type Sender struct {
	orgName    string
	fromEmail  string
	fromPhone  string
	sgClient   *sendgrid.Client
	twilioClient *twilio.RestClient
}

func NewSender(orgName, sendgridAPIKey, fromEmail, twilioSID, twilioToken, fromPhone string) *Sender {
	return &Sender{
		orgName:   orgName,
		fromEmail: fromEmail,
		fromPhone: fromPhone,
		sgClient:  sendgrid.NewSendClient(sendgridAPIKey),
		twilioClient: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: twilioSID,
			Password: twilioToken,
		}),
	}
}

func (s *Sender) SendEmailCode(ctx context.Context, email, code string) error {
	from := mail.NewEmail(s.orgName, s.fromEmail)
	to := mail.NewEmail("", email)
	subject := s.orgName + " - Verification Code"
	plainTextContent := fmt.Sprintf("Your verification code is %s", code)
	htmlContent := fmt.Sprintf(verificationEmailHTML, code, time.Now().Year())
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	_, sendErr := s.sgClient.Send(message)
	if sendErr != nil {
		utils.Logger.WithError(sendErr).Errorf("Failed to send verification email to %s via SendGrid", email)
		return fmt.Errorf("%w: failed to send email via sendgrid: %v", utils.ErrExternalServiceFailure, sendErr)
	}
	return nil
}

func (s *Sender) SendSMSCode(ctx context.Context, mobile, code string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(mobile)
	params.SetFrom(s.fromPhone)
	params.SetBody(fmt.Sprintf("Your %s verification code is %s", s.orgName, code))

	_, sendErr := s.twilioClient.Api.CreateMessage(params)
	if sendErr != nil {
		utils.Logger.WithError(sendErr).Errorf("Failed to send verification SMS to %s via Twilio", mobile)
		return fmt.Errorf("%w: failed to send sms via twilio: %v", utils.ErrExternalServiceFailure, sendErr)
	}
	return nil
}

// LogSender writes codes to the log instead of delivering them. Used in
// development, where verification accepts the fixed dev code anyway.
type LogSender struct{}

func (LogSender) SendEmailCode(ctx context.Context, email, code string) error {
	utils.Logger.Infof("verification code for %s: %s", email, code)
	return nil
}

func (LogSender) SendSMSCode(ctx context.Context, mobile, code string) error {
	utils.Logger.Infof("verification code for %s: %s", mobile, code)
	return nil
}
