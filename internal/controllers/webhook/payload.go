package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnrecognizedPayload is returned when a notification does not have the
	// shape of a WhatsApp message notification.
	ErrUnrecognizedPayload = errors.New("unrecognized notification payload")
	// ErrStatusUpdate is returned for notifications that only carry delivery statuses.
	ErrStatusUpdate = errors.New("notification carries only status updates")
)

// ParseNotification decodes body and extracts its first message.
func ParseNotification(body []byte) (InboundMessage, error) {
	var n Notification
	if err := json.Unmarshal(body, &n); err != nil {
		return InboundMessage{}, fmt.Errorf("%w: %w", ErrUnrecognizedPayload, err)
	}
	return n.FirstMessage()
}

// FirstMessage extracts the first message of the first change of the first
// entry. Every level is checked for presence and the first missing one is
// reported as ErrUnrecognizedPayload.
func (n *Notification) FirstMessage() (InboundMessage, error) {
	if n.Object != "" && n.Object != ObjectWhatsAppBusinessAccount {
		return InboundMessage{}, fmt.Errorf("%w: unexpected object %q", ErrUnrecognizedPayload, n.Object)
	}
	if len(n.Entry) == 0 {
		return InboundMessage{}, missing("entry")
	}
	entry := n.Entry[0]
	if len(entry.Changes) == 0 {
		return InboundMessage{}, missing("entry[0].changes")
	}
	value := entry.Changes[0].Value
	if value == nil {
		return InboundMessage{}, missing("entry[0].changes[0].value")
	}
	if len(value.Messages) == 0 {
		if len(value.Statuses) > 0 {
			return InboundMessage{}, ErrStatusUpdate
		}
		return InboundMessage{}, missing("entry[0].changes[0].value.messages")
	}

	msg := value.Messages[0]
	if msg.From == "" {
		return InboundMessage{}, missing("messages[0].from")
	}
	if msg.Type == "" {
		return InboundMessage{}, missing("messages[0].type")
	}

	out := InboundMessage{
		ID:   msg.ID,
		From: msg.From,
		Type: msg.Type,
	}
	if value.Metadata != nil {
		out.PhoneNumberID = value.Metadata.PhoneNumberID
	}
	for _, contact := range value.Contacts {
		if contact.WaID == msg.From && contact.Profile != nil {
			out.ProfileName = contact.Profile.Name
			break
		}
	}

	if out.IsText() {
		if msg.Text == nil || strings.TrimSpace(msg.Text.Body) == "" {
			return InboundMessage{}, missing("messages[0].text.body")
		}
		out.Text = msg.Text.Body
	}
	return out, nil
}

func missing(path string) error {
	return fmt.Errorf("%w: missing %s", ErrUnrecognizedPayload, path)
}
