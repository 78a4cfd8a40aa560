package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"crm_pipeline/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, chatID int64) {
	// Команды принимаются только из чата воронки
	chatGroup := bh.Group(th.AnyMessage())
	chatGroup.Use(middleware.ChatOnly(chatID))

	chatGroup.HandleMessage(h.OnStart, th.CommandEqual("start"))
	chatGroup.HandleMessage(h.OnStatus, th.CommandEqual("status"))
	chatGroup.HandleMessage(h.OnBoard, th.CommandEqual("board"))
	chatGroup.HandleMessage(h.OnSummary, th.CommandEqual("summary"))
	chatGroup.HandleMessage(h.OnMove, th.CommandEqual("move"))
	chatGroup.HandleMessage(h.OnRefresh, th.CommandEqual("refresh"))
}
