package handlers

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"gopkg.in/telebot.v4"
	"gopkg.in/telebot.v4/middleware"

	"neethelper/pkg/assets"
	"neethelper/pkg/store"
)

type Bot struct {
	Bot     *telebot.Bot
	Premium store.PremiumUsers

	paths  Paths
	logger *log.Logger
}

// Paths locates the files the handlers read.
type Paths struct {
	PremiumUsers string
	Questions    string
	Note         string
	PaymentQR    string
}

type Options struct {
	Token       string
	URL         string
	PollTimeout time.Duration
	Paths       Paths
	Output      io.Writer
	Level       log.Level

	// Offline skips the getMe call, for tests.
	Offline bool

	// OnError replaces the default handler error logging.
	OnError func(error, telebot.Context)
}

func New(options Options) (*Bot, error) {
	logger := log.NewWithOptions(options.Output,
		log.Options{
			Level:           options.Level,
			ReportTimestamp: true,
			Prefix:          "[Telegram]",
		},
	)
	logger.SetColorProfile(termenv.TrueColor)

	if options.OnError == nil {
		options.OnError = onError(logger)
	}

	settings := telebot.Settings{
		URL:         options.URL,
		Token:       options.Token,
		Poller:      &telebot.LongPoller{Timeout: options.PollTimeout},
		Synchronous: true,
		Offline:     options.Offline,
		OnError:     options.OnError,
	}

	bot, err := telebot.NewBot(settings)
	if err != nil {
		return nil, fmt.Errorf("error creating telegram bot: %w", err)
	}
	bot.Use(middleware.Recover())

	return &Bot{
		Bot:     bot,
		Premium: store.PremiumUsers{},

		paths:  options.Paths,
		logger: logger,
	}, nil
}

// onError receives every error a handler returns. The failing update is
// dropped and polling carries on.
func onError(logger *log.Logger) func(error, telebot.Context) {
	return func(err error, c telebot.Context) {
		keyvals := []any{"error", err}
		if kind, ok := store.KindOf(err); ok {
			keyvals = append(keyvals, "kind", kind)
		}
		if c != nil {
			if chat := c.Chat(); chat != nil {
				keyvals = append(keyvals, "chat_id", chat.ID)
			}
		}
		logger.Error("Handler failed", keyvals...)
	}
}

func (b *Bot) Logger() *log.Logger {
	return b.logger
}

func (b *Bot) Start() error {
	b.load()
	b.checkAssets()
	go b.Bot.Start()
	b.logger.Info("Telegram bot started", "username", b.Bot.Me.Username)
	return nil
}

func (b *Bot) Stop() error {
	b.logger.Info("Stopping Telegram bot")
	b.Bot.Stop()
	return nil
}

// load reads the premium user list once. A missing or broken file leaves the
// list empty.
func (b *Bot) load() {
	users, err := store.LoadPremiumUsers(b.paths.PremiumUsers)
	if err != nil {
		kind, _ := store.KindOf(err)
		b.logger.Warn("Premium users not loaded, starting with none", "kind", kind, "error", err)
	}
	b.Premium = users
	b.logger.Debugf("Loaded %d premium users from %s", users.Len(), b.paths.PremiumUsers)
}

func (b *Bot) checkAssets() {
	report, err := assets.Inspect(b.paths.PaymentQR)
	switch {
	case errors.Is(err, assets.ErrNotImage):
		b.logger.Warn("Payment QR does not look like an image, /premium may fail", "path", b.paths.PaymentQR)
	case err != nil:
		b.logger.Warn("Payment QR unavailable, /premium will fail", "path", b.paths.PaymentQR, "error", err)
	case !report.Scannable():
		b.logger.Warn("Payment QR has low contrast", "path", report.Path, "contrast", report.Contrast)
	default:
		b.logger.Debug("Payment QR ok", "path", report.Path, "format", report.Format, "width", report.Width, "height", report.Height)
	}
}
