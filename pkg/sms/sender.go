package sms

import "errors"

// ErrSend marks a failed dispatch of a single message.
var ErrSend = errors.New("message send failed")

// Sender dispatches one text message and reports the provider's delivery
// status.
type Sender interface {
	Send(body, from, to string) (string, error)
	Name() string
}
