package notify

import (
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/umurava/maternalcare-booking/internal/config"
)

type smsSender interface {
	Send(toNumber, body string) error
}

// twilioSender delivers SMS through the Twilio messaging API.
type twilioSender struct {
	client  *twilio.RestClient
	fromTel string
}

func newTwilioSender(cfg config.NotificationsConfig) *twilioSender {
	return &twilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioSID,
			Password: cfg.TwilioToken,
		}),
		fromTel: cfg.TwilioFromTel,
	}
}

func (s *twilioSender) Send(toNumber, body string) error {
	if !strings.HasPrefix(toNumber, "+") {
		return fmt.Errorf("destination number %q is not in E.164 format", toNumber)
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(s.fromTel)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send failed: %w", err)
	}
	return nil
}
