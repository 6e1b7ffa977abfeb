package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/lakeview-games/fishbot/internal/fish"
	"github.com/lakeview-games/fishbot/internal/logger"
)

// Bot is the Telegram-facing module: it greets players with the mini-app
// launch button and answers inline queries with sharing cards.
type Bot struct {
	api       *tgbotapi.BotAPI
	table     *fish.Table
	webappURL string
	log       *logger.Logger
}

func New(token, webappURL string, table *fish.Table, log *logger.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:       api,
		table:     table,
		webappURL: webappURL,
		log:       log,
	}, nil
}

// Run polls for updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	b.log.Info("bot is running", zap.String("username", b.api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			switch {
			case update.Message != nil:
				b.handleMessage(update.Message)
			case update.InlineQuery != nil:
				b.handleInlineQuery(update.InlineQuery)
			}
		}
	}
}

// handleMessage answers any chat message with the play button, matching
// the mini-app's single entry point.
func (b *Bot) handleMessage(m *tgbotapi.Message) {
	msg := tgbotapi.NewMessage(m.Chat.ID, "Let's go fishing!")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🎣 Play", b.webappURL+"/static/index.html"),
		),
	)

	if _, err := b.api.Send(msg); err != nil {
		b.log.Warn("greeting send failed", zap.Error(err))
	}
}

// handleInlineQuery turns a catch payload into a sharing card. Malformed
// payloads are ignored: the answer is simply empty.
func (b *Bot) handleInlineQuery(q *tgbotapi.InlineQuery) {
	answer := tgbotapi.InlineConfig{
		InlineQueryID: q.ID,
		IsPersonal:    true,
		CacheTime:     0,
		Results:       []interface{}{},
	}

	if card, ok := BuildCard(q.Query, b.webappURL, b.table); ok {
		photo := tgbotapi.NewInlineQueryResultPhoto(q.ID, card.ImageURL)
		photo.ThumbURL = card.ImageURL
		photo.Caption = card.Caption
		answer.Results = append(answer.Results, photo)
	}

	if _, err := b.api.Request(answer); err != nil {
		b.log.Warn("inline answer failed", zap.Error(err))
	}
}
