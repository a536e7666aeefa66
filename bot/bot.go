// Package bot routes inbound Telegram updates: plain text goes through the
// relay path to the completion API, /setmodel and /model drive the model
// selection UI, and callback queries persist the user's pick.
package bot

import (
	"context"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/AlirezaARBAlpha/Telegram-AI-Bot/catalog"
	"github.com/AlirezaARBAlpha/Telegram-AI-Bot/internal/dialogue"
	"github.com/AlirezaARBAlpha/Telegram-AI-Bot/internal/janitor"
	"github.com/AlirezaARBAlpha/Telegram-AI-Bot/internal/prefstore"
	"github.com/AlirezaARBAlpha/Telegram-AI-Bot/llm"
)

const (
	menuDeleteDelay    = 60 * time.Second
	replyDeleteDelay   = 30 * time.Second
	historyReadDefault = 10
)

// API is the slice of tgbotapi.BotAPI the bot needs. Narrow on purpose so
// tests can record outbound traffic.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Options struct {
	TriggerWords   []string
	CaseSensitive  bool
	HistoryEnabled bool
	HistoryWindow  int
	SystemPrompt   string
}

type Config struct {
	API     API
	Self    tgbotapi.User
	LLM     llm.Client
	Catalog *catalog.Catalog
	Prefs   *prefstore.Store
	History *dialogue.History
	Janitor *janitor.Janitor
	Logger  *slog.Logger
	Options Options
}

type Bot struct {
	api     API
	client  llm.Client
	catalog *catalog.Catalog
	prefs   *prefstore.Store
	history *dialogue.History
	janitor *janitor.Janitor
	logger  *slog.Logger
	opts    Options
	trigger *triggerMatcher
	selfID  int64
}

func New(cfg Config) *Bot {
	opts := cfg.Options
	if opts.HistoryWindow <= 0 {
		opts.HistoryWindow = historyReadDefault
	}
	if opts.SystemPrompt == "" {
		opts.SystemPrompt = DefaultSystemPrompt
	}
	tokens := append([]string{}, opts.TriggerWords...)
	if cfg.Self.UserName != "" {
		tokens = append(tokens, "@"+cfg.Self.UserName)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Bot{
		api:     cfg.API,
		client:  cfg.LLM,
		catalog: cfg.Catalog,
		prefs:   cfg.Prefs,
		history: cfg.History,
		janitor: cfg.Janitor,
		logger:  logger,
		opts:    opts,
		trigger: newTriggerMatcher(tokens, opts.CaseSensitive),
		selfID:  cfg.Self.ID,
	}
}

// HandleUpdate is safe to call from one goroutine per update; shared state
// sits behind the store mutexes.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(update.Message)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "setmodel":
		b.sendModelMenu(msg)
	case "model":
		b.showModel(msg)
	default:
		b.logger.Debug("ignoring unknown command", "command", msg.Command())
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	log := b.logger.With(
		"request_id", shortID(),
		"chat_id", msg.Chat.ID,
		"user_id", msg.From.ID,
	)

	if msg.Text == "" {
		log.Debug("ignoring message without text")
		return
	}

	inGroup := msg.Chat.IsGroup() || msg.Chat.IsSuperGroup()
	if inGroup && !b.trigger.Match(msg.Text) {
		return
	}
	text := b.trigger.Strip(msg.Text)

	// Replying to one of the bot's own messages pulls the quoted text into
	// the prompt.
	if msg.ReplyToMessage != nil && msg.ReplyToMessage.From != nil &&
		msg.ReplyToMessage.From.ID == b.selfID {
		text = msg.ReplyToMessage.Text + "\n\n" + replyConnective + "\n" + text
	}

	userID := msg.From.ID
	if !b.prefs.Has(userID) {
		sent, err := b.reply(msg, msgSelectFirst)
		if err != nil {
			log.Warn("send select-model prompt failed", "error", err)
			return
		}
		b.janitor.ScheduleDelete(msg.Chat.ID, replyDeleteDelay, msg.MessageID, sent.MessageID)
		return
	}

	model := b.prefs.GetOrDefault(userID)
	messages := make([]llm.Message, 0, b.opts.HistoryWindow+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: b.opts.SystemPrompt})
	if b.opts.HistoryEnabled {
		messages = append(messages, b.history.Recent(userID, b.opts.HistoryWindow)...)
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: text})

	answer := b.complete(ctx, model, messages, log)
	if _, err := b.reply(msg, answer); err != nil {
		log.Warn("send reply failed", "error", err)
		return
	}
	if b.opts.HistoryEnabled {
		b.history.Append(userID, llm.RoleUser, text)
		b.history.Append(userID, llm.RoleAssistant, answer)
	}
}

// complete absorbs every completion failure into the fixed fallback string;
// the user always gets a reply, never an error.
func (b *Bot) complete(ctx context.Context, model string, messages []llm.Message, log *slog.Logger) string {
	res, err := b.client.Chat(ctx, llm.Request{Model: model, Messages: messages})
	if err != nil {
		log.Error("completion failed", "model", model, "error", err)
		return msgFallback
	}
	log.Info("completion ok",
		"model", model,
		"duration", res.Duration,
		"total_tokens", res.Usage.TotalTokens,
	)
	return res.Text
}

func (b *Bot) reply(msg *tgbotapi.Message, text string) (tgbotapi.Message, error) {
	out := tgbotapi.NewMessage(msg.Chat.ID, text)
	out.ReplyToMessageID = msg.MessageID
	return b.api.Send(out)
}

func shortID() string {
	return uuid.NewString()[:8]
}
