// Package telegram is the chat platform boundary. It owns the update loop,
// the inline keyboards, and the translation of internal failures into
// user-visible replies.
package telegram

import (
	"context"
	goerrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"fraibot/contract"
	"fraibot/domain"
	"fraibot/domain/mimetypes"
	"fraibot/errors"
	"fraibot/services"
)

const (
	callbackEventIdeas   = "ideas_eventos"
	callbackContentIdeas = "ideas_contenido"

	downloadTimeout = 30 * time.Second
)

var _ contract.Worker = (*Bot)(nil)

// Bot runs the long-polling loop. Each update is handled in its own
// goroutine so a slow generation or a large batch never blocks the loop,
// and a panic in one handler can never bring the process down.
type Bot struct {
	api         *tgbotapi.BotAPI
	chat        services.IChatService
	ingester    services.TabularIngester
	dispatcher  contract.Dispatcher
	sender      string
	httpClient  *http.Client
	log         *slog.Logger
	pollTimeout int
}

func NewBot(
	token string,
	chat services.IChatService,
	ingester services.TabularIngester,
	dispatcher contract.Dispatcher,
	sender string,
	pollTimeout int,
	log *slog.Logger,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	return &Bot{
		api:         api,
		chat:        chat,
		ingester:    ingester,
		dispatcher:  dispatcher,
		sender:      sender,
		httpClient:  &http.Client{Timeout: downloadTimeout},
		log:         log,
		pollTimeout: pollTimeout,
	}, nil
}

func (b *Bot) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = b.pollTimeout
	updates := b.api.GetUpdatesChan(cfg)
	b.log.Info("Telegram polling started", "bot", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.log.Debug("Stopping telegram polling")
			return nil
		case update, ok := <-updates:
			if !ok {
				b.log.Debug("Updates channel is closed")
				return nil
			}
			go b.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate is the per-request boundary: every internal failure ends as a
// logged error plus a generic reply, never as a crash.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	var chatID int64
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("Panic while handling update", "panic", r)
			if chatID != 0 {
				b.reply(chatID, msgUnexpected)
			}
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		chatID = update.CallbackQuery.Message.Chat.ID
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message == nil:
		// Edits, channel posts and other update kinds are not handled.
	case update.Message.IsCommand():
		chatID = update.Message.Chat.ID
		b.handleCommand(update.Message)
	case update.Message.Document != nil:
		chatID = update.Message.Chat.ID
		b.handleDocument(ctx, update.Message)
	case update.Message.Text != "":
		chatID = update.Message.Chat.ID
		b.handleText(ctx, update.Message)
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	if msg.Command() != "start" {
		return
	}
	reply := tgbotapi.NewMessage(msg.Chat.ID, msgGreeting)
	reply.ReplyMarkup = startKeyboard()
	if _, err := b.api.Send(reply); err != nil {
		b.log.Error("Failed to send greeting", "error", err)
	}
}

func (b *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		b.log.Debug("Failed to answer callback", "error", err)
	}

	var idea string
	var err error
	switch query.Data {
	case callbackEventIdeas:
		idea, err = b.chat.EventIdea(ctx)
	case callbackContentIdeas:
		idea, err = b.chat.ContentIdea(ctx)
	default:
		return
	}

	chatID := query.Message.Chat.ID
	if err != nil {
		b.log.Error("Idea generation failed", "kind", query.Data, "error", err)
		b.reply(chatID, msgGenerationFailed)
		return
	}

	edit := tgbotapi.NewEditMessageTextAndMarkup(
		chatID,
		query.Message.MessageID,
		msgIdeaHeader+idea,
		regenerateKeyboard(query.Data),
	)
	if _, err := b.api.Send(edit); err != nil {
		b.log.Error("Failed to edit idea message", "error", err)
	}
}

func (b *Bot) handleText(ctx context.Context, msg *tgbotapi.Message) {
	user := domain.UserID(msg.Chat.ID)
	reply, err := b.chat.Respond(ctx, user, msg.Text)
	if err != nil {
		b.log.Error("Failed to answer message", "user", user, "error", err)
		if goerrors.Is(err, errors.ErrGeneration) {
			b.reply(msg.Chat.ID, msgGenerationFailed)
		} else {
			b.reply(msg.Chat.ID, msgUnexpected)
		}
		return
	}
	b.reply(msg.Chat.ID, reply)
}

func (b *Bot) handleDocument(ctx context.Context, msg *tgbotapi.Message) {
	doc := msg.Document
	data, err := b.download(ctx, doc.FileID)
	if err != nil {
		b.log.Error("Failed to download upload", "file", doc.FileName, "error", err)
		b.reply(msg.Chat.ID, msgFileFailed)
		return
	}

	// The declared MIME type decides the format; magic-byte sniffing only
	// rescues uploads whose client sent no usable type.
	format, ok := mimetypes.FromDeclared(doc.MimeType)
	if !ok {
		format, ok = mimetypes.Sniff(data)
	}
	if !ok {
		b.reply(msg.Chat.ID, msgUnsupportedFormat)
		return
	}

	recipients, err := b.ingester.Parse(data, format)
	if err != nil {
		b.log.Warn("Upload rejected", "file", doc.FileName, "error", err)
		switch {
		case goerrors.Is(err, errors.ErrUnsupportedFormat):
			b.reply(msg.Chat.ID, msgUnsupportedFormat)
		case goerrors.Is(err, errors.ErrSchemaViolation):
			b.reply(msg.Chat.ID, msgSchemaViolation)
		default:
			b.reply(msg.Chat.ID, msgFileFailed)
		}
		return
	}

	batch := domain.NewBatch(b.sender, recipients)
	summary := b.dispatcher.SendAll(ctx, batch)

	if summary.Failed == 0 {
		b.reply(msg.Chat.ID, fmt.Sprintf(msgBatchAllSent, summary.Sent))
	} else {
		b.reply(msg.Chat.ID, fmt.Sprintf(msgBatchPartial, summary.Sent, summary.Attempted))
	}
}

func (b *Bot) download(ctx context.Context, fileID string) ([]byte, error) {
	url, err := b.api.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("resolve file url: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch file: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch file: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.log.Error("Failed to send reply", "error", err)
	}
}

func startKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(buttonEventIdeas, callbackEventIdeas),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(buttonContentIdeas, callbackContentIdeas),
		),
	)
}

func regenerateKeyboard(callback string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(buttonAnotherIdea, callback),
		),
	)
}
