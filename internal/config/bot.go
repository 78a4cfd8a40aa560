package config

// Bot — Telegram-бот уведомлений и команд. Без токена уведомления пишутся в лог.
type Bot struct {
	Token  string `env:"BOT_TOKEN" json:"-"`
	ChatID int64  `env:"BOT_CHAT_ID"`
}

func (b Bot) Enabled() bool {
	return b.Token != ""
}
