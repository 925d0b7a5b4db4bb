package sms

import (
	"fmt"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type TwilioSender struct {
	client *twilio.RestClient
}

func NewTwilioSender(accountSID, authToken string) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioSender{client: client}
}

func (s *TwilioSender) Name() string {
	return "Twilio"
}

func (s *TwilioSender) Send(body, from, to string) (string, error) {
	params := &twilioapi.CreateMessageParams{}
	params.SetBody(body)
	params.SetFrom(from)
	params.SetTo(to)

	msg, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("%w: twilio create message: %v", ErrSend, err)
	}

	status := ""
	if msg.Status != nil {
		status = *msg.Status
	}
	return status, nil
}
