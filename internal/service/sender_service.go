package service

import (
	"fmt"

	"go.uber.org/zap"

	"limoride/internal/entities"
	"limoride/internal/logging"
	"limoride/internal/pricing"
	"limoride/internal/reservation"
)

// SenderService composes and dispatches booking confirmations. Sends run in
// the background; a failed notification is logged and never fails the
// booking itself.
type SenderService struct{}

func NewSenderService() *SenderService {
	return &SenderService{}
}

// SendReservationConfirmation emails and texts the passenger after the
// intake accepted the reservation.
func (s *SenderService) SendReservationConfirmation(form reservation.Form, payload entities.ReservationPayload) {
	log := logging.GetLogger()

	name := fmt.Sprintf("%s %s", payload.FirstName, payload.LastName)
	subject := fmt.Sprintf("Your reservation request has been received - %s", payload.PickupDate)

	when := fmt.Sprintf("%s %s", payload.PickupDate, payload.PickupTime)
	price := pricing.FormatUSD(form.SelectedPrice)

	plainBody := fmt.Sprintf(
		"Hello %s,\n\nWe received your reservation request.\n\n"+
			"Service: %s\n"+
			"Vehicle: %s\n"+
			"Pickup: %s at %s\n"+
			"Estimated price: %s\n\n"+
			"Our team will confirm your booking shortly.\n\n"+
			"New York Limoz. All rights reserved.",
		payload.FirstName, payload.ServiceType, payload.VehicleType, payload.PickupLocation, when, price,
	)
	htmlBody := fmt.Sprintf(
		"<p>Hello %s,</p><p>We received your reservation request.</p>"+
			"<ul><li>Service: %s</li><li>Vehicle: %s</li><li>Pickup: %s at %s</li>"+
			"<li>Estimated price: %s</li></ul>"+
			"<p>Our team will confirm your booking shortly.</p>",
		payload.FirstName, payload.ServiceType, payload.VehicleType, payload.PickupLocation, when, price,
	)

	smsBody := fmt.Sprintf("New York Limoz: reservation request received!\nPickup: %s.\nMore details in your email.", when)

	go func() {
		if err := SendEmailWithSendGrid(payload.Email, name, subject, plainBody, htmlBody); err != nil {
			log.Warn("confirmation email failed", zap.String("email", payload.Email), zap.Error(err))
		}
		if err := SendSMS(payload.Phone, smsBody); err != nil {
			log.Warn("confirmation SMS failed", zap.String("phone", payload.Phone), zap.Error(err))
		}
	}()
}
