package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"neethelper/pkg/telegram"
	"neethelper/pkg/utils"
)

const (
	EnvTelegramBotToken    = "TELEGRAM_BOT_TOKEN"
	EnvTelegramPollTimeout = "TELEGRAM_POLL_TIMEOUT"
	EnvTelegramAPIURL      = "TELEGRAM_API_URL"
	EnvPremiumUsersPath    = "PREMIUM_USERS_PATH"
	EnvQuestionsPath       = "MCQ_PATH"
	EnvNotePath            = "NOTES_PATH"
	EnvPaymentQRPath       = "QR_PATH"
	EnvLogLevel            = "LOG_LEVEL"
	EnvLogFile             = "LOG_FILE"
)

func main() {
	defer utils.LogOutput(os.Stdout)()

	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, reading from environment")
	}

	output, closeLog, err := utils.TeeLogFile(os.Stdout, os.Getenv(EnvLogFile))
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer closeLog()

	ctx, done := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer done()

	b, err := bot.New(bot.Config{
		Output:           output,
		Token:            os.Getenv(EnvTelegramBotToken),
		URL:              os.Getenv(EnvTelegramAPIURL),
		PollTimeout:      os.Getenv(EnvTelegramPollTimeout),
		LogLevel:         os.Getenv(EnvLogLevel),
		PremiumUsersPath: os.Getenv(EnvPremiumUsersPath),
		QuestionsPath:    os.Getenv(EnvQuestionsPath),
		NotePath:         os.Getenv(EnvNotePath),
		PaymentQRPath:    os.Getenv(EnvPaymentQRPath),
		Context:          ctx,
	})
	if err != nil {
		log.Fatalf("error creating bot: %v", err)
	}

	if err := b.Start(); err != nil {
		log.Fatalf("error starting bot: %v", err)
	}

	if err := b.Shutdown(); err != nil {
		log.Fatalf("error shutting down bot: %v", err)
	}
}
