package webhook

// ObjectWhatsAppBusinessAccount is the object tag of WhatsApp Cloud API notifications.
const ObjectWhatsAppBusinessAccount = "whatsapp_business_account"

// MessageTypeText is the message type tag of plain text messages.
const MessageTypeText = "text"

// Notification is one webhook delivery from the WhatsApp Cloud API.
// Containers are slices and pointers so a missing level can be told apart
// from an empty one.
type Notification struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

// Entry groups the changes for one WhatsApp Business Account.
type Entry struct {
	ID      string   `json:"id"`
	Changes []Change `json:"changes"`
}

// Change is a single field change; messages arrive with Field "messages".
type Change struct {
	Field string       `json:"field"`
	Value *ChangeValue `json:"value"`
}

// ChangeValue carries either inbound messages or delivery statuses.
type ChangeValue struct {
	MessagingProduct string    `json:"messaging_product"`
	Metadata         *Metadata `json:"metadata"`
	Contacts         []Contact `json:"contacts,omitempty"`
	Messages         []Message `json:"messages,omitempty"`
	Statuses         []Status  `json:"statuses,omitempty"`
}

// Metadata identifies the business phone number that received the message.
type Metadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

type Contact struct {
	Profile *Profile `json:"profile"`
	WaID    string   `json:"wa_id"`
}

type Profile struct {
	Name string `json:"name"`
}

// Message is an inbound user message. Only text messages carry Text.
type Message struct {
	From      string       `json:"from"`
	ID        string       `json:"id"`
	Timestamp string       `json:"timestamp"`
	Type      string       `json:"type"`
	Text      *TextContent `json:"text,omitempty"`
}

type TextContent struct {
	Body string `json:"body"`
}

// Status is a delivery receipt for a message the business sent.
type Status struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	RecipientID string `json:"recipient_id"`
}

// InboundMessage is the part of a Notification the bridge acts on.
type InboundMessage struct {
	// ID is the WhatsApp message ID (wamid).
	ID string
	// From is the sender's WhatsApp ID, used as the reply recipient.
	From string
	// ProfileName is the sender's display name when the notification includes it.
	ProfileName string
	// Type is the message type tag, e.g. "text" or "image".
	Type string
	// Text is the message body for text messages.
	Text string
	// PhoneNumberID is the business phone number ID replies are sent from.
	PhoneNumberID string
}

// IsText reports whether the message is a text message.
func (m InboundMessage) IsText() bool {
	return m.Type == MessageTypeText
}
