package bot

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/AlirezaARBAlpha/Telegram-AI-Bot/internal/worker"
)

const (
	defaultMaxConcurrency = 4
	chatQueueSize         = 16
)

// Dispatcher routes each update into a per-chat worker goroutine, so updates
// for one chat are handled in acceptance order while distinct chats still
// run concurrently.
type Dispatcher struct {
	bot *Bot
	ctx context.Context
	sem chan struct{}

	mu      sync.Mutex
	workers map[int64]chan tgbotapi.Update
}

func NewDispatcher(ctx context.Context, b *Bot, maxConcurrency int) *Dispatcher {
	if maxConcurrency <= 0 {
		maxConcurrency = defaultMaxConcurrency
	}
	return &Dispatcher{
		bot:     b,
		ctx:     ctx,
		sem:     make(chan struct{}, maxConcurrency),
		workers: make(map[int64]chan tgbotapi.Update),
	}
}

// Dispatch enqueues the update for its chat's worker. Blocks only when that
// chat's queue is full; drops the update once the dispatcher's context ends.
func (d *Dispatcher) Dispatch(update tgbotapi.Update) {
	chatID := updateChatID(update)
	jobs := d.workerFor(chatID)
	if err := worker.Enqueue(d.ctx, jobs, update); err != nil {
		d.bot.logger.Warn("dropping update during shutdown", "chat_id", chatID, "error", err)
	}
}

func (d *Dispatcher) workerFor(chatID int64) chan tgbotapi.Update {
	d.mu.Lock()
	defer d.mu.Unlock()
	if jobs, ok := d.workers[chatID]; ok {
		return jobs
	}
	jobs := make(chan tgbotapi.Update, chatQueueSize)
	d.workers[chatID] = jobs
	worker.Start(worker.StartOptions[tgbotapi.Update]{
		Ctx:    d.ctx,
		Sem:    d.sem,
		Jobs:   jobs,
		Handle: d.bot.HandleUpdate,
	})
	return jobs
}

func updateChatID(update tgbotapi.Update) int64 {
	switch {
	case update.Message != nil && update.Message.Chat != nil:
		return update.Message.Chat.ID
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil &&
		update.CallbackQuery.Message.Chat != nil:
		return update.CallbackQuery.Message.Chat.ID
	default:
		return 0
	}
}
