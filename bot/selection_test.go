package bot

import (
	"context"
	"fmt"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func callbackUpdate(userID int64, data string) tgbotapi.Update {
	return tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb-1",
			From: &tgbotapi.User{ID: userID},
			Data: data,
			Message: &tgbotapi.Message{
				MessageID: 77,
				Chat:      &tgbotapi.Chat{ID: testChatID, Type: "private"},
			},
		},
	}
}

func TestSetModelSendsMenuAndSchedulesCleanup(t *testing.T) {
	f := newFixture(t, &stubLLM{})

	f.bot.HandleUpdate(context.Background(), tgbotapi.Update{
		Message: commandMsg(42, "/setmodel"),
	})

	if len(f.api.sent) != 1 {
		t.Fatalf("expected one menu message, got %d", len(f.api.sent))
	}
	cfg, ok := f.api.sent[0].(tgbotapi.MessageConfig)
	if !ok {
		t.Fatalf("expected MessageConfig, got %T", f.api.sent[0])
	}
	if cfg.Text != msgChooseModel {
		t.Errorf("menu text = %q", cfg.Text)
	}
	markup, ok := cfg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	if !ok {
		t.Fatalf("expected inline keyboard, got %T", cfg.ReplyMarkup)
	}
	if len(markup.InlineKeyboard) != f.bot.catalog.Len() {
		t.Errorf("keyboard has %d rows, want %d", len(markup.InlineKeyboard), f.bot.catalog.Len())
	}
	for _, row := range markup.InlineKeyboard {
		if len(row) != 1 {
			t.Fatalf("expected one button per row, got %d", len(row))
		}
		label := row[0].Text
		if !f.bot.catalog.Has(label) {
			t.Errorf("button %q is not a catalog label", label)
		}
		if *row[0].CallbackData != label {
			t.Errorf("callback data %q does not match label %q", *row[0].CallbackData, label)
		}
	}
	if len(f.deletes.delays) != 1 || f.deletes.delays[0] != 60*time.Second {
		t.Errorf("menu must self-destruct after 60s, got %v", f.deletes.delays)
	}
	if len(f.deletes.ids) != 1 {
		t.Errorf("only the menu message is scheduled, got ids %v", f.deletes.ids)
	}
}

func TestValidSelectionPersistsAndConfirms(t *testing.T) {
	f := newFixture(t, &stubLLM{})

	f.bot.HandleUpdate(context.Background(), callbackUpdate(42, "DeepSeek"))

	got, ok := f.prefs.Get(42)
	if !ok || got != "tngtech/deepseek-r1t2-chimera:free" {
		t.Errorf("stored pick = %q, %v", got, ok)
	}
	if len(f.api.sent) != 1 {
		t.Fatalf("expected the menu to be edited once, got %d sends", len(f.api.sent))
	}
	edit, ok := f.api.sent[0].(tgbotapi.EditMessageTextConfig)
	if !ok {
		t.Fatalf("expected EditMessageTextConfig, got %T", f.api.sent[0])
	}
	if want := fmt.Sprintf(msgModelSetFmt, "DeepSeek"); edit.Text != want {
		t.Errorf("confirmation = %q, want %q", edit.Text, want)
	}
	if len(f.deletes.delays) != 1 || f.deletes.delays[0] != 30*time.Second {
		t.Errorf("confirmation must be deleted after 30s, got %v", f.deletes.delays)
	}
	if len(f.deletes.ids) != 1 || f.deletes.ids[0] != 77 {
		t.Errorf("scheduled ids = %v, want [77]", f.deletes.ids)
	}
}

func TestTamperedSelectionMutatesNothing(t *testing.T) {
	f := newFixture(t, &stubLLM{})

	f.bot.HandleUpdate(context.Background(), callbackUpdate(42, "NotARealModel"))

	if f.prefs.Has(42) {
		t.Errorf("tampered callback must not store a preference")
	}
	if len(f.api.sent) != 0 {
		t.Errorf("tampered callback must not edit the menu")
	}
	if len(f.api.requests) != 1 {
		t.Fatalf("expected one callback answer, got %d", len(f.api.requests))
	}
	cb, ok := f.api.requests[0].(tgbotapi.CallbackConfig)
	if !ok {
		t.Fatalf("expected CallbackConfig, got %T", f.api.requests[0])
	}
	if cb.Text != msgInvalidModel {
		t.Errorf("notice = %q, want validation notice", cb.Text)
	}
}

func TestReselectionOverwrites(t *testing.T) {
	f := newFixture(t, &stubLLM{})
	f.bot.HandleUpdate(context.Background(), callbackUpdate(42, "DeepSeek"))
	f.bot.HandleUpdate(context.Background(), callbackUpdate(42, "Qwen"))

	got, _ := f.prefs.Get(42)
	if got != "qwen/qwen3-235b-a22b-07-25:free" {
		t.Errorf("re-selection did not overwrite, got %q", got)
	}
}

func TestModelCommandShowsStoredPick(t *testing.T) {
	f := newFixture(t, &stubLLM{})
	f.prefs.Set(42, "moonshotai/kimi-k2:free")

	f.bot.HandleUpdate(context.Background(), tgbotapi.Update{
		Message: commandMsg(42, "/model"),
	})

	if len(f.api.sent) != 1 {
		t.Fatalf("expected one reply, got %d", len(f.api.sent))
	}
	cfg := f.api.sent[0].(tgbotapi.MessageConfig)
	if want := fmt.Sprintf(msgCurrentModelFmt, "moonshotai/kimi-k2:free"); cfg.Text != want {
		t.Errorf("reply = %q, want %q", cfg.Text, want)
	}
	if cfg.ParseMode != tgbotapi.ModeMarkdown {
		t.Errorf("ParseMode = %q, want Markdown", cfg.ParseMode)
	}
	if len(f.deletes.delays) != 1 || f.deletes.delays[0] != 30*time.Second {
		t.Errorf("expected a 30s cleanup, got %v", f.deletes.delays)
	}
	if len(f.deletes.ids) != 2 {
		t.Errorf("both command and reply are scheduled, got %v", f.deletes.ids)
	}
}

func TestModelCommandWithoutPickNudges(t *testing.T) {
	f := newFixture(t, &stubLLM{})

	f.bot.HandleUpdate(context.Background(), tgbotapi.Update{
		Message: commandMsg(42, "/model"),
	})

	cfg := f.api.sent[0].(tgbotapi.MessageConfig)
	if cfg.Text != msgNoModelYet {
		t.Errorf("reply = %q, want nudge", cfg.Text)
	}
}

func TestUnknownCommandIsIgnored(t *testing.T) {
	f := newFixture(t, &stubLLM{})

	f.bot.HandleUpdate(context.Background(), tgbotapi.Update{
		Message: commandMsg(42, "/start"),
	})

	if len(f.api.sent) != 0 {
		t.Errorf("unknown commands must not produce replies")
	}
	if len(f.llm.reqs) != 0 {
		t.Errorf("unknown commands must not reach the completion client")
	}
}
