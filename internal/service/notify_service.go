package service

import (
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"limoride/internal/config"
	"limoride/internal/logging"
)

func SendEmailWithSendGrid(toEmailAddress, toName, subject, plainTextContent, htmlContent string) error {
	log := logging.GetLogger()
	cfg := config.AppConfig

	if cfg.SendgridAPIKey == "" {
		log.Warn("SENDGRID_API_KEY is not configured, email will not be sent")
		return fmt.Errorf("SENDGRID_API_KEY is not configured")
	}
	if cfg.SendgridFromEmail == "" {
		log.Warn("SENDGRID_FROM_EMAIL is not configured, email will not be sent")
		return fmt.Errorf("SENDGRID_FROM_EMAIL is not configured")
	}

	from := mail.NewEmail(cfg.SendgridFromName, cfg.SendgridFromEmail)
	to := mail.NewEmail(toName, toEmailAddress)

	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	client := sendgrid.NewSendClient(cfg.SendgridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		log.Error("sending email via SendGrid failed", zap.String("to", toEmailAddress), zap.Error(err))
		return fmt.Errorf("sending email via SendGrid: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		log.Info("confirmation email sent",
			zap.String("to", toEmailAddress), zap.Int("status", response.StatusCode))
		return nil
	}

	log.Error("SendGrid returned a non-success status",
		zap.String("to", toEmailAddress), zap.Int("status", response.StatusCode), zap.String("body", response.Body))
	return fmt.Errorf("SendGrid returned non-success status %d: %s", response.StatusCode, response.Body)
}

func SendSMS(toNumber string, messageBody string) error {
	log := logging.GetLogger()
	cfg := config.AppConfig

	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" || cfg.TwilioFromNumber == "" {
		log.Warn("Twilio credentials are not fully configured, SMS will not be sent")
		return fmt.Errorf("twilio credentials not fully configured")
	}

	if !strings.HasPrefix(toNumber, "+") {
		log.Warn("destination number is not E.164, SMS may fail", zap.String("to", toNumber))
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   cfg.TwilioAccountSID,
		Password:   cfg.TwilioAuthToken,
		AccountSid: cfg.TwilioAccountSID,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(cfg.TwilioFromNumber)
	params.SetBody(messageBody)

	resp, err := client.Api.CreateMessage(params)
	if err != nil {
		log.Error("sending SMS via Twilio failed", zap.String("to", toNumber), zap.Error(err))
		return fmt.Errorf("sending SMS: %w", err)
	}

	if resp != nil && resp.Sid != nil {
		log.Info("confirmation SMS sent", zap.String("to", toNumber), zap.String("sid", *resp.Sid))
	}
	return nil
}
