// Package bot is the Telegram transport: it hands out the web app
// keyboard, receives form submissions and serves the daily report.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/OtabekMamajonov/choyxona-bot/internal/intake"
	"github.com/OtabekMamajonov/choyxona-bot/internal/metrics"
	"github.com/OtabekMamajonov/choyxona-bot/internal/summary"
)

const pollTimeout = 30

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Options struct {
	Token      string
	WebAppURL  string
	Bridge     *intake.Bridge
	Aggregator *summary.Aggregator
	Location   *time.Location
	Logger     *slog.Logger
}

type Bot struct {
	api       *tgbotapi.BotAPI
	out       sender
	bridge    *intake.Bridge
	agg       *summary.Aggregator
	webAppURL string
	loc       *time.Location
	now       func() time.Time
	log       *slog.Logger
}

func New(opts Options) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(opts.Token)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}

	return &Bot{
		api:       api,
		out:       api,
		bridge:    opts.Bridge,
		agg:       opts.Aggregator,
		webAppURL: opts.WebAppURL,
		loc:       opts.Location,
		now:       time.Now,
		log:       opts.Logger,
	}, nil
}

// Run long-polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	b.log.Info("bot started", "username", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, upd)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, upd tgbotapi.Update) {
	msg := upd.Message
	if msg == nil {
		return
	}

	switch {
	case msg.WebAppData != nil:
		b.handleOrder(ctx, msg)
	case msg.IsCommand():
		b.handleCommand(ctx, msg)
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.sendStart(msg.Chat.ID)
	case "summary":
		b.sendSummary(ctx, msg.Chat.ID, msg.CommandArguments())
	}
}

func (b *Bot) sendStart(chatID int64) {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.KeyboardButton{
			Text:   orderButtonText,
			WebApp: &tgbotapi.WebAppInfo{URL: b.webAppURL},
		}),
	)

	msg := tgbotapi.NewMessage(chatID, greeting)
	msg.ReplyMarkup = keyboard
	b.send(msg)
}

func (b *Bot) sendSummary(ctx context.Context, chatID int64, args string) {
	metrics.SummaryRequests.Inc()

	day, err := parseDay(args, b.now(), b.loc)
	if err != nil {
		b.reply(chatID, msgBadDate)
		return
	}

	s, err := b.agg.Daily(ctx, day)
	if err != nil {
		b.log.Error("summary failed", "error", err, "chat_id", chatID)
		b.reply(chatID, msgSummaryFailed)
		return
	}
	b.replyHTML(chatID, s.HTML())
}

func (b *Bot) handleOrder(ctx context.Context, msg *tgbotapi.Message) {
	meta := intake.Meta{ChatID: msg.Chat.ID}
	if msg.From != nil {
		meta.Username = msg.From.UserName
	}

	rec, err := b.bridge.Submit(ctx, []byte(msg.WebAppData.Data), meta)
	if err != nil {
		b.log.Warn("order rejected", "error", err, "chat_id", meta.ChatID)
		b.reply(msg.Chat.ID, userMessage(err))
		return
	}
	b.replyHTML(msg.Chat.ID, rec.HTML())
}

// parseDay resolves the /summary argument: empty means today, otherwise a
// YYYY-MM-DD date interpreted in loc.
func parseDay(args string, now time.Time, loc *time.Location) (time.Time, error) {
	args = strings.TrimSpace(args)
	if args == "" {
		return now.In(loc), nil
	}
	return time.ParseInLocation("2006-01-02", args, loc)
}

func (b *Bot) reply(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) replyHTML(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	b.send(msg)
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.out.Send(c); err != nil {
		b.log.Error("telegram send failed", "error", err)
	}
}
