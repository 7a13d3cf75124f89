package handlers

import (
	"gopkg.in/telebot.v4"

	"neethelper/pkg/telegram/render"
	"neethelper/pkg/utils"
)

// PaidDone is the callback data of the premium "Done" button. It is sent
// as is, without telebot's "\f<unique>" framing.
const PaidDone = "paid_done"

var doneButton = telebot.Btn{Text: render.DoneLabel, Data: PaidDone}

// menu lists the commands that have a handler. The welcome keyboard
// advertises more than these.
var menu = []telebot.Command{
	{Text: "start", Description: "Welcome message and menu"},
	{Text: "mcq", Description: "Today's biology MCQs"},
	{Text: "notes", Description: "Sample note"},
	{Text: "premium", Description: "Become a premium member"},
}

// Commands publishes the command menu shown by Telegram clients.
func (b *Bot) Commands() error {
	return b.Bot.SetCommands(menu)
}

func (b *Bot) Handlers() error {
	b.Bot.Handle("/start", b.handleStart)
	b.Bot.Handle("/premium", b.handlePremium)
	b.Bot.Handle(telebot.OnCallback, b.handleCallback)
	b.Bot.Handle("/mcq", b.handleMCQ)
	b.Bot.Handle("/notes", b.handleNotes)
	return nil
}

func (b *Bot) handleStart(c telebot.Context) error {
	keyboard := utils.NewReplyKeyboard(render.MenuPerRow, render.MenuLabels...)
	return c.Send(render.Welcome, keyboard)
}

func (b *Bot) handleCallback(c telebot.Context) error {
	switch c.Callback().Data {
	case PaidDone:
		return b.handlePaidDone(c)
	default:
		return nil
	}
}

// handlePaidDone only points the user at the verification channel. Premium
// status is granted by hand.
func (b *Bot) handlePaidDone(c telebot.Context) error {
	if err := c.Send(render.PaymentDone); err != nil {
		return err
	}
	return c.Respond()
}
