package alert

import (
	"log/slog"

	"github.com/Ivan-lemos/Stock-News-Monitoring-Project/pkg/sms"
)

// Notify sends each message through the sender. Sends are independent: a
// failure is logged and counted, and the remaining messages are still
// attempted. There is no retry.
func Notify(sender sms.Sender, messages []Message, from, to string) (sent, failed int) {
	for _, m := range messages {
		status, err := sender.Send(m.Body, from, to)
		if err != nil {
			slog.Error("error sending message", "sender", sender.Name(), "error", err)
			failed++
			continue
		}

		slog.Info("message sent", "sender", sender.Name(), "status", status)
		sent++
	}

	return sent, failed
}
