package notify

import (
	"fmt"

	"github.com/umurava/maternalcare-booking/internal/config"
	"github.com/umurava/maternalcare-booking/internal/directory"
	"github.com/umurava/maternalcare-booking/internal/domain"
)

// Contact is the delivery address for a notification. The core receives
// it from the hosting layer alongside the opaque owner reference; the
// dispatcher never looks principals up itself.
type Contact struct {
	Name  string
	Email string
	Phone string
}

// Logger is the logging interface the dispatcher needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Dispatcher delivers booking and emergency notifications over email
// (SendGrid) and SMS (Twilio). Confirmation and dispatch sends are
// fire-and-forget: failures are logged and never surfaced to the
// operation that triggered them.
type Dispatcher struct {
	cfg    config.NotificationsConfig
	email  emailSender
	sms    smsSender
	logger Logger
}

// NewDispatcher builds a dispatcher from the notification config.
// When notifications are disabled every send becomes a logged no-op.
func NewDispatcher(cfg config.NotificationsConfig, logger Logger) *Dispatcher {
	d := &Dispatcher{cfg: cfg, logger: logger}
	if cfg.Enabled {
		d.email = newSendGridSender(cfg)
		d.sms = newTwilioSender(cfg)
	}
	return d
}

// BookingConfirmed sends the booking confirmation asynchronously.
func (d *Dispatcher) BookingConfirmed(contact Contact, res *domain.Reservation) {
	subject := fmt.Sprintf("Your appointment at %s is confirmed", res.FacilityName)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour %s appointment has been booked.\n\n"+
			"Facility: %s\nDate: %s\nTime: %s\n\n"+
			"Please arrive 15 minutes early and bring your health booklet.",
		contact.Name, res.AppointmentType, res.FacilityName,
		res.Date.Format(domain.DateFormat), res.StartTime,
	)
	d.sendEmailAsync("booking confirmation", contact, subject, body)
}

// BookingCancelled notifies the owner that a reservation was cancelled.
func (d *Dispatcher) BookingCancelled(contact Contact, res *domain.Reservation) {
	subject := fmt.Sprintf("Your appointment at %s was cancelled", res.FacilityName)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour %s appointment on %s at %s has been cancelled.",
		contact.Name, res.AppointmentType,
		res.Date.Format(domain.DateFormat), res.StartTime,
	)
	d.sendEmailAsync("booking cancellation", contact, subject, body)
}

// BookingReminder sends a 24-hour reminder synchronously and reports
// the outcome, so the reminder job only flips reminder_sent on success.
func (d *Dispatcher) BookingReminder(contact Contact, res *domain.Reservation) error {
	if d.email == nil {
		d.logger.Info("notify: notifications disabled, skipping reminder for reservation id=%d", res.ID)
		return nil
	}
	subject := fmt.Sprintf("Reminder: appointment at %s tomorrow", res.FacilityName)
	body := fmt.Sprintf(
		"Hello %s,\n\nThis is a reminder of your %s appointment tomorrow.\n\n"+
			"Facility: %s\nDate: %s\nTime: %s",
		contact.Name, res.AppointmentType, res.FacilityName,
		res.Date.Format(domain.DateFormat), res.StartTime,
	)
	return d.email.Send(contact.Email, contact.Name, subject, body)
}

// EmergencyDispatch alerts a facility about an emergency over SMS,
// fire-and-forget.
func (d *Dispatcher) EmergencyDispatch(facility directory.Facility, e *domain.Emergency) {
	if d.sms == nil {
		d.logger.Info("notify: notifications disabled, skipping emergency SMS for %s", e.ID)
		return
	}

	msg := fmt.Sprintf("EMERGENCY %s: patient %s (%s) needs assistance.",
		e.ID, e.PatientName, e.PatientPhone)
	if e.Lat != nil && e.Lng != nil {
		msg += fmt.Sprintf(" Location: %.4f,%.4f", *e.Lat, *e.Lng)
	}

	go func() {
		if err := d.sms.Send(facility.EmergencyPhone, msg); err != nil {
			d.logger.Error("notify: emergency SMS to %s (%s) failed for %s: %v",
				facility.Name, facility.EmergencyPhone, e.ID, err)
			return
		}
		d.logger.Info("notify: emergency SMS sent to %s for %s", facility.Name, e.ID)
	}()
}

func (d *Dispatcher) sendEmailAsync(kind string, contact Contact, subject, body string) {
	if d.email == nil {
		d.logger.Info("notify: notifications disabled, skipping %s email", kind)
		return
	}
	if contact.Email == "" {
		d.logger.Warn("notify: no email on file, skipping %s email", kind)
		return
	}

	go func() {
		if err := d.email.Send(contact.Email, contact.Name, subject, body); err != nil {
			d.logger.Error("notify: %s email to %s failed: %v", kind, contact.Email, err)
			return
		}
		d.logger.Info("notify: %s email sent to %s", kind, contact.Email)
	}()
}
