package bot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"neethelper/pkg/telegram/handlers"
)

type Bot struct {
	Telegram *handlers.Bot

	context context.Context
}

type Config struct {
	Token       string
	URL         string
	Output      io.Writer
	PollTimeout string
	LogLevel    string

	PremiumUsersPath string
	QuestionsPath    string
	NotePath         string
	PaymentQRPath    string

	Context context.Context
}

const (
	DefaultPremiumUsersPath = "premium_users.json"
	DefaultQuestionsPath    = "mcqs.json"
	DefaultNotePath         = "notes/sample_note.txt"
	DefaultPaymentQRPath    = "assets/qr.png"
)

func New(config Config) (*Bot, error) {
	if config.Token == "" {
		return nil, errors.New("telegram token is required")
	}

	if config.Output == nil {
		config.Output = os.Stdout
	}

	if config.Context == nil {
		config.Context = context.Background()
	}

	pollTimeout := 10 * time.Second
	if config.PollTimeout != "" {
		if d, err := time.ParseDuration(config.PollTimeout); err == nil && d > 0 {
			pollTimeout = d
		}
	}

	level := log.InfoLevel
	if config.LogLevel != "" {
		if l, err := log.ParseLevel(config.LogLevel); err == nil {
			level = l
		}
	}

	tgBot, err := handlers.New(handlers.Options{
		Token:       config.Token,
		URL:         config.URL,
		PollTimeout: pollTimeout,
		Paths: handlers.Paths{
			PremiumUsers: or(config.PremiumUsersPath, DefaultPremiumUsersPath),
			Questions:    or(config.QuestionsPath, DefaultQuestionsPath),
			Note:         or(config.NotePath, DefaultNotePath),
			PaymentQR:    or(config.PaymentQRPath, DefaultPaymentQRPath),
		},
		Output: config.Output,
		Level:  level,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating Telegram bot: %w", err)
	}

	return &Bot{Telegram: tgBot, context: config.Context}, nil
}

func or(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// Start registers the handlers, starts polling and blocks until the
// context given in Config is done.
func (b *Bot) Start() error {
	bot := b.Telegram
	bot.Logger().Debug(
		"Registering handlers",
		"type", fmt.Sprintf("%T", bot),
	)
	if err := bot.Handlers(); err != nil {
		bot.Logger().Error(
			"Failed to register handlers",
			"type", fmt.Sprintf("%T", bot),
			"error", err,
		)
		return err
	}

	bot.Logger().Debug(
		"Starting bot",
		"type", fmt.Sprintf("%T", bot),
	)
	if err := bot.Start(); err != nil {
		bot.Logger().Error(
			"Failed to start bot",
			"type", fmt.Sprintf("%T", bot),
			"error", err,
		)
		return err
	}
	bot.Logger().Info(
		"Bot started successfully",
		"type", fmt.Sprintf("%T", bot),
	)

	if err := bot.Commands(); err != nil {
		bot.Logger().Warn(
			"Failed to publish command menu",
			"type", fmt.Sprintf("%T", bot),
			"error", err,
		)
	}

	<-b.context.Done()
	return nil
}

func (b *Bot) Shutdown() error {
	b.Telegram.Logger().Info("Shutting down bot")

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		err := b.Telegram.Stop()
		if err != nil {
			b.Telegram.Logger().Error(
				"Failed to stop bot",
				"type", fmt.Sprintf("%T", b.Telegram),
				"error", err,
			)
		} else {
			b.Telegram.Logger().Info(
				"Bot stopped successfully",
				"type", fmt.Sprintf("%T", b.Telegram),
			)
		}
	}()

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		b.Telegram.Logger().Error(
			"Bot did not stop in time",
			"type", fmt.Sprintf("%T", b.Telegram),
		)
		return errors.New("bot did not stop in time")
	}

	return nil
}
