package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/DIMO-Network/whatsapp-ai-bridge/internal/clients/gemini"
	"github.com/DIMO-Network/whatsapp-ai-bridge/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// UnsupportedTypeReply is sent back for messages that are not plain text.
const UnsupportedTypeReply = "Sorry, I can only reply to text messages for now."

type ReplyGenerator interface {
	Reply(ctx context.Context, prompt string) gemini.Result
}

type MessageSender interface {
	SendText(ctx context.Context, phoneNumberID, to, body string) error
}

type MessageCache interface {
	MarkSeen(messageID string) bool
	Forget(messageID string)
}

// Config holds the controller settings.
type Config struct {
	// VerifyToken is the token the platform must present during verification.
	VerifyToken string
	// PhoneNumberID is used when a notification has no metadata.phone_number_id.
	PhoneNumberID string
	// ReplyUnsupported sends UnsupportedTypeReply for non-text messages.
	ReplyUnsupported bool
}

// WebhookController verifies the webhook subscription and relays inbound
// messages to the reply generator and back to the sender.
type WebhookController struct {
	cfg       Config
	generator ReplyGenerator
	sender    MessageSender
	cache     MessageCache
}

// NewWebhookController creates a new WebhookController. cache may be nil to
// disable redelivery detection.
func NewWebhookController(cfg Config, generator ReplyGenerator, sender MessageSender, cache MessageCache) *WebhookController {
	return &WebhookController{
		cfg:       cfg,
		generator: generator,
		sender:    sender,
		cache:     cache,
	}
}

// VerifyWebhook godoc
// @Summary      Verify the webhook subscription
// @Description  Answers the platform's subscription handshake. Responds with hub.challenge when hub.mode is "subscribe" and hub.verify_token matches the configured token.
// @Tags         Webhook
// @Produce      plain
// @Param        hub.mode          query     string  true   "Subscription mode, must be subscribe"
// @Param        hub.verify_token  query     string  true   "Verification token"
// @Param        hub.challenge     query     string  false  "Challenge to echo back"
// @Success      200  {string}  string  "The challenge, verbatim"
// @Failure      400  "Missing hub.mode or hub.verify_token"
// @Failure      403  "Verification token mismatch"
// @Router       / [get]
func (w *WebhookController) VerifyWebhook(c *fiber.Ctx) error {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if err := verifySubscription(mode, token, w.cfg.VerifyToken); err != nil {
		result := "rejected"
		if richErr, ok := richerrors.AsRichError(err); ok && richErr.Code == fiber.StatusBadRequest {
			result = "invalid"
		}
		metrics.HandshakesTotal.WithLabelValues(result).Inc()
		zerolog.Ctx(c.UserContext()).Warn().Str("mode", mode).Msg("Webhook verification refused")
		return err
	}

	metrics.HandshakesTotal.WithLabelValues("verified").Inc()
	zerolog.Ctx(c.UserContext()).Info().Msg("Webhook verified")
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(fiber.StatusOK).SendString(challenge)
}

// ReceiveNotification godoc
// @Summary      Receive a message notification
// @Description  Accepts a WhatsApp Cloud API notification, generates a reply to the first text message and sends it back to the sender. Always acknowledges with 200 and an empty body so the platform does not redeliver.
// @Tags         Webhook
// @Accept       json
// @Param        request  body  Notification  true  "WhatsApp notification"
// @Success      200  "Notification acknowledged"
// @Router       / [post]
func (w *WebhookController) ReceiveNotification(c *fiber.Ctx) error {
	start := time.Now()
	ctx := c.UserContext()
	body := c.Body()

	logger := zerolog.Ctx(ctx)
	if json.Valid(body) {
		logger.Debug().RawJSON("payload", body).Msg("Received notification")
	} else {
		logger.Debug().Str("payload", string(body)).Msg("Received notification")
	}

	outcome := w.processNotification(ctx, body)
	metrics.NotificationsTotal.WithLabelValues(outcome).Inc()
	metrics.ProcessingSeconds.Observe(time.Since(start).Seconds())

	// The platform retries anything but a 200, so every outcome is acknowledged.
	c.Status(fiber.StatusOK)
	return nil
}

// processNotification handles one notification and returns its metrics outcome.
func (w *WebhookController) processNotification(ctx context.Context, body []byte) string {
	logger := zerolog.Ctx(ctx)

	msg, err := ParseNotification(body)
	if err != nil {
		if errors.Is(err, ErrStatusUpdate) {
			logger.Debug().Msg("Ignoring status update")
			return metrics.OutcomeStatus
		}
		logger.Warn().Err(err).Msg("Ignoring unrecognized notification")
		return metrics.OutcomeUnrecognized
	}
	if msg.PhoneNumberID == "" {
		msg.PhoneNumberID = w.cfg.PhoneNumberID
	}
	if msg.PhoneNumberID == "" {
		logger.Warn().Str("from", msg.From).Msg("Ignoring notification without phone number ID")
		return metrics.OutcomeUnrecognized
	}

	msgLogger := logger.With().
		Str("relayId", uuid.NewString()).
		Str("messageId", msg.ID).
		Str("from", msg.From).
		Str("type", msg.Type).
		Logger()
	ctx = msgLogger.WithContext(ctx)

	if w.cache != nil && w.cache.MarkSeen(msg.ID) {
		msgLogger.Info().Msg("Ignoring redelivered message")
		return metrics.OutcomeDuplicate
	}

	if !msg.IsText() {
		if !w.cfg.ReplyUnsupported {
			msgLogger.Info().Msg("Ignoring unsupported message type")
			return metrics.OutcomeUnsupported
		}
		if !w.deliver(ctx, msg, UnsupportedTypeReply) {
			return metrics.OutcomeDeliveryFail
		}
		return metrics.OutcomeUnsupported
	}

	result := w.generator.Reply(ctx, msg.Text)
	reply := result.Text
	if result.Fallback() {
		msgLogger.Error().Err(result.Err).Msg("Failed to generate reply; sending fallback")
	}
	if strings.TrimSpace(reply) == "" {
		reply = gemini.FallbackReply
	}
	if reply == gemini.FallbackReply {
		metrics.CompletionFallbacksTotal.Inc()
	}

	if !w.deliver(ctx, msg, reply) {
		return metrics.OutcomeDeliveryFail
	}
	return metrics.OutcomeReplied
}

// deliver sends body to the message's sender and reports whether the platform
// accepted it. A failed delivery is forgotten by the cache so a redelivery of
// the same notification gets another attempt.
func (w *WebhookController) deliver(ctx context.Context, msg InboundMessage, body string) bool {
	logger := zerolog.Ctx(ctx)
	if err := w.sender.SendText(ctx, msg.PhoneNumberID, msg.From, body); err != nil {
		logger.Error().Err(err).Msg("Failed to deliver reply")
		if w.cache != nil {
			w.cache.Forget(msg.ID)
		}
		return false
	}
	logger.Info().Int("replyLength", len(body)).Msg("Reply delivered")
	return true
}
