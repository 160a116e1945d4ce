// Package bot is the Telegram transport: inline queries go through the
// fetch-then-evaluate pipeline, commands serve help and usage stats.
package bot

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/go-kit/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vert5x-git/tgInlineCalc/expr"
	"github.com/vert5x-git/tgInlineCalc/rates"
	"github.com/vert5x-git/tgInlineCalc/stats"
)

// answerCacheTime seconds Telegram may cache an inline answer
const answerCacheTime = 30

// Bot dependencies for the Telegram update handlers
type Bot struct {
	api     *tgbotapi.BotAPI
	rates   rates.Service
	eval    expr.Service
	stats   *stats.Store
	adminID int64

	// timeout per-query deadline covering all three feed fetches
	timeout time.Duration

	logger log.Logger
}

// New constructs a valid Bot.
func New(api *tgbotapi.BotAPI, ratesService rates.Service, evalService expr.Service, store *stats.Store, adminID int64, timeout time.Duration, logger log.Logger) *Bot {
	return &Bot{
		api:     api,
		rates:   ratesService,
		eval:    evalService,
		stats:   store,
		adminID: adminID,
		timeout: timeout,
		logger:  logger,
	}
}

// Run receives updates over long polling until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update := <-updates:
			switch {
			case update.InlineQuery != nil:
				go b.handleInline(ctx, update.InlineQuery)
			case update.Message != nil:
				b.handleMessage(update.Message)
			}
		}
	}
}

// handleInline runs one query through the pipeline: fresh price table,
// evaluation, one article in the answer. Each query is independent, so
// concurrent queries share no state.
func (b *Bot) handleInline(ctx context.Context, query *tgbotapi.InlineQuery) {
	expression := strings.ToLower(strings.TrimSpace(query.Query))
	if expression == "" {
		return
	}

	b.stats.Record(query.From.ID, time.Now())

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	prices := b.rates.FetchAll(ctx)
	result, err := b.eval.Evaluate(expression, prices)
	if err != nil {
		if !knownError(err) {
			b.logger.Log("msg", "evaluation failed", "expression", expression, "err", err)
		}
		result = userMessage(err)
	}

	message := fmt.Sprintf("<code>%v</code> = <b>%v</b>",
		html.EscapeString(query.Query), html.EscapeString(result))

	article := tgbotapi.NewInlineQueryResultArticleHTML("1", "Результат: "+result, message)
	article.Description = "Нажмите, чтобы отправить результат расчета."

	answer := tgbotapi.InlineConfig{
		InlineQueryID: query.ID,
		Results:       []interface{}{article},
		CacheTime:     answerCacheTime,
		IsPersonal:    true,
	}
	if _, err := b.api.Request(answer); err != nil {
		b.logger.Log("msg", "answering inline query failed", "err", err)
	}
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	if message.Text == "" {
		return
	}

	botName := b.api.Self.UserName

	switch message.Command() {
	case "start", "help":
		b.reply(message.Chat.ID, helpRU(botName))
	case "help_en":
		b.reply(message.Chat.ID, helpEN(botName))
	case "stats":
		if message.From.ID != b.adminID && b.adminID != 0 {
			b.reply(message.Chat.ID, "У вас нет прав для выполнения этой команды.")
			return
		}
		b.reply(message.Chat.ID, statsText(b.stats.Summary(time.Now())))
	default:
		b.reply(message.Chat.ID, fallbackText(botName))
	}
}

func (b *Bot) reply(chatID int64, text string) {
	message := tgbotapi.NewMessage(chatID, text)
	message.ParseMode = tgbotapi.ModeHTML
	if _, err := b.api.Send(message); err != nil {
		b.logger.Log("msg", "sending reply failed", "chat_id", chatID, "err", err)
	}
}
