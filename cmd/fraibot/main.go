package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"

	"fraibot/ai"
	"fraibot/infrastructure/mail"
	"fraibot/infrastructure/telegram"
	"fraibot/internal"
	"fraibot/moderation"
	"fraibot/repositories"
	"fraibot/runtime"
	"fraibot/runtime/workers"
	"fraibot/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the bot lifecycle, and centralizes
// error reporting. The pattern keeps every defer (database close, graceful
// shutdown) on the path back to main instead of scattering os.Exit calls.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	log := internal.LoggerFromString(config.LogLevel)

	censoredChar, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return err
	}

	// 2. Database (BadgerDB) for the delivery audit trail
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Core components
	blockedWords := moderation.DefaultWords()
	if config.BlocklistPath != "" {
		if blockedWords, err = moderation.LoadWords(config.BlocklistPath); err != nil {
			return fmt.Errorf("load blocklist: %w", err)
		}
	}
	moderator, err := moderation.NewModerator(blockedWords, censoredChar)
	if err != nil {
		return fmt.Errorf("build moderator: %w", err)
	}

	generator, err := ai.NewGemini(ctx, config.GeminiAPIKey, config.GeminiModel, log)
	if err != nil {
		return err
	}

	store := repositories.NewConversationStore(config.HistoryCapacity, log)
	deliveryLog := repositories.NewDeliveryLog(db, log)
	composer := services.NewPromptComposer(services.SystemContext)
	chatService := services.NewChatService(store, composer, generator, moderator, log)
	ingester := services.NewTabularIngester(log)

	emailSender := mail.NewSendGridSender(config.SendGridAPIKey, log)
	dispatcher := runtime.NewDispatcher(log, emailSender, deliveryLog, config.DispatchWorkers, config.DispatchBuffer)

	bot, err := telegram.NewBot(
		config.TelegramToken,
		chatService,
		ingester,
		dispatcher,
		config.SenderEmail,
		config.PollTimeout,
		log,
	)
	if err != nil {
		return err
	}

	// 5. Supervision: email pool, telemetry and the polling loop all restart
	// on panic instead of taking the process down.
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(dispatcher.PoolWorkers()...)
	sup.Add(workers.NewTelemetryWorker(log, config.MetricInterval))
	sup.Add(bot)

	// 6. Liveness endpoint, isolated from the bot's locks and pool
	healthServer := internal.StartHealthServer(deliveryLog, config.HealthPort, log)

	color.Green.Println("🤖 FraiBot está corriendo...")
	sup.Run(ctx)

	// 7. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = healthServer.Shutdown(shutdownCtx)
	log.Info("Program stopped cleanly")

	return nil
}
