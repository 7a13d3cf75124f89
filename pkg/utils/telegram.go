package utils

import (
	"gopkg.in/telebot.v4"
)

func Single[button interface{ Inline() *telebot.InlineButton }](buttons ...button) *telebot.ReplyMarkup {
	return NewButtons(buttons)
}

func NewButtons[button interface{ Inline() *telebot.InlineButton }](rows ...[]button) *telebot.ReplyMarkup {
	buttonRows := make([][]telebot.InlineButton, len(rows))
	for i, row := range rows {
		buttonRows[i] = NewRow(row...)
	}

	return &telebot.ReplyMarkup{InlineKeyboard: buttonRows}
}

func NewRow[button interface{ Inline() *telebot.InlineButton }](buttons ...button) []telebot.InlineButton {
	column := make([]telebot.InlineButton, len(buttons))
	for i, b := range buttons {
		column[i] = *b.Inline()
	}

	return column
}

// NewReplyKeyboard lays out labels as a resizable reply keyboard, perRow
// buttons to a row, keeping the order of labels.
func NewReplyKeyboard(perRow int, labels ...string) *telebot.ReplyMarkup {
	if perRow <= 0 {
		perRow = len(labels)
	}
	var rows [][]telebot.ReplyButton
	for chunk := range Chunk(labels, perRow) {
		row := make([]telebot.ReplyButton, len(chunk))
		for i, label := range chunk {
			row[i] = telebot.ReplyButton{Text: label}
		}
		rows = append(rows, row)
	}

	return &telebot.ReplyMarkup{ReplyKeyboard: rows, ResizeKeyboard: true}
}
