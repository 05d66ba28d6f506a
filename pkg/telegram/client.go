package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Client sends dispatch notifications to a fixed Telegram chat.
type Client struct {
	Bot    *tgbotapi.BotAPI
	ChatID int64
}

func NewClient(token string, chatID int64) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Client{
		Bot:    bot,
		ChatID: chatID,
	}, nil
}

// Notify sends a plain-text message to the dispatch chat.
func (c *Client) Notify(text string) error {
	msg := tgbotapi.NewMessage(c.ChatID, text)
	_, err := c.Bot.Send(msg)
	return err
}
