package app

import (
	"context"
	"fmt"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	_ "github.com/DIMO-Network/whatsapp-ai-bridge/docs" // Import Swagger docs
	"github.com/DIMO-Network/whatsapp-ai-bridge/internal/clients/gemini"
	"github.com/DIMO-Network/whatsapp-ai-bridge/internal/clients/whatsapp"
	"github.com/DIMO-Network/whatsapp-ai-bridge/internal/config"
	"github.com/DIMO-Network/whatsapp-ai-bridge/internal/controllers/webhook"
	"github.com/DIMO-Network/whatsapp-ai-bridge/internal/services/messagecache"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"
)

// CreateServers builds the outbound clients from settings and returns the
// fiber app serving the webhook.
func CreateServers(ctx context.Context, settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	geminiClient, err := gemini.New(ctx, gemini.Config{
		APIKey:  settings.GeminiAPIKey,
		Model:   settings.GeminiModel,
		BaseURL: settings.GeminiBaseURL,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	whatsappClient, err := whatsapp.New(whatsapp.Config{
		BaseURL:    settings.GraphAPIURL,
		APIVersion: settings.GraphAPIVersion,
		Token:      settings.WhatsAppToken,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create whatsapp client: %w", err)
	}

	var cache webhook.MessageCache
	if settings.DedupTTL > 0 {
		cache = messagecache.New(settings.DedupTTL, cleanupInterval(settings.DedupTTL))
	} else {
		logger.Warn().Msg("Redelivery detection disabled")
	}

	controller := webhook.NewWebhookController(webhook.Config{
		VerifyToken:      settings.VerifyToken,
		PhoneNumberID:    settings.PhoneNumberID,
		ReplyUnsupported: settings.ReplyUnsupported,
	}, geminiClient, whatsappClient, cache)

	return CreateFiberApp(logger, controller), nil
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, controller *webhook.WebhookController) *fiber.App {
	logger.Info().Msg("Starting WhatsApp AI Bridge...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	logger.Info().Msg("Registering routes...")
	app.Get("/", controller.VerifyWebhook)
	app.Post("/", controller.ReceiveNotification)

	return app
}

func cleanupInterval(ttl time.Duration) time.Duration {
	if ttl < time.Minute {
		return ttl
	}
	return time.Minute
}
