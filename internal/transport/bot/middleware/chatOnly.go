package middleware

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

// ChatOnly пропускает только обновления из указанного чата.
func ChatOnly(chatID int64) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		var fromChat int64

		switch {
		case update.Message != nil:
			fromChat = update.Message.Chat.ID
		case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
			fromChat = update.CallbackQuery.Message.GetChat().ID
		default:
			return nil
		}

		if fromChat == chatID {
			return ctx.Next(update)
		}

		return nil
	}
}
