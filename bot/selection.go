package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sendModelMenu answers /setmodel with one button per catalog label. The
// menu self-destructs whether or not the user ever picks.
func (b *Bot) sendModelMenu(msg *tgbotapi.Message) {
	labels := b.catalog.Labels()
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(labels))
	for _, label := range labels {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, label),
		))
	}

	out := tgbotapi.NewMessage(msg.Chat.ID, msgChooseModel)
	out.ReplyToMessageID = msg.MessageID
	out.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)

	sent, err := b.api.Send(out)
	if err != nil {
		b.logger.Warn("send model menu failed", "chat_id", msg.Chat.ID, "error", err)
		return
	}
	b.janitor.ScheduleDelete(msg.Chat.ID, menuDeleteDelay, sent.MessageID)
}

// handleCallback persists a valid pick and rejects tampered callback data
// without touching state.
func (b *Bot) handleCallback(q *tgbotapi.CallbackQuery) {
	if q.Message == nil {
		b.answerCallback(q.ID, "")
		return
	}

	label := q.Data
	modelID, ok := b.catalog.Resolve(label)
	if !ok {
		b.logger.Warn("callback with unknown model label", "user_id", q.From.ID, "data", label)
		b.answerCallback(q.ID, msgInvalidModel)
		return
	}

	b.prefs.Set(q.From.ID, modelID)

	edit := tgbotapi.NewEditMessageText(q.Message.Chat.ID, q.Message.MessageID,
		fmt.Sprintf(msgModelSetFmt, label))
	if _, err := b.api.Send(edit); err != nil {
		b.logger.Warn("edit confirmation failed", "chat_id", q.Message.Chat.ID, "error", err)
	}
	b.answerCallback(q.ID, "")
	b.janitor.ScheduleDelete(q.Message.Chat.ID, replyDeleteDelay, q.Message.MessageID)
}

// showModel answers /model with the stored model id, or a nudge to pick one.
func (b *Bot) showModel(msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	var text string
	if model, ok := b.prefs.Get(msg.From.ID); ok {
		text = fmt.Sprintf(msgCurrentModelFmt, model)
	} else {
		text = msgNoModelYet
	}

	out := tgbotapi.NewMessage(msg.Chat.ID, text)
	out.ReplyToMessageID = msg.MessageID
	out.ParseMode = tgbotapi.ModeMarkdown

	sent, err := b.api.Send(out)
	if err != nil {
		b.logger.Warn("send current model failed", "chat_id", msg.Chat.ID, "error", err)
		return
	}
	b.janitor.ScheduleDelete(msg.Chat.ID, replyDeleteDelay, msg.MessageID, sent.MessageID)
}

func (b *Bot) answerCallback(id, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(id, text)); err != nil {
		b.logger.Debug("answer callback failed", "error", err)
	}
}
