package handlers

import (
	"fmt"
	"os"

	"gopkg.in/telebot.v4"

	"neethelper/pkg/telegram/render"
	"neethelper/pkg/utils"
)

func (b *Bot) handlePremium(c telebot.Context) error {
	qr, err := os.Open(b.paths.PaymentQR)
	if err != nil {
		return fmt.Errorf("error opening payment qr: %w", err)
	}
	defer qr.Close()

	photo := &telebot.Photo{
		File:    telebot.FromReader(qr),
		Caption: render.PremiumCaption,
	}
	return c.Send(photo, utils.Single(doneButton))
}
