package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AlirezaARBAlpha/Telegram-AI-Bot/bot"
	"github.com/AlirezaARBAlpha/Telegram-AI-Bot/catalog"
	"github.com/AlirezaARBAlpha/Telegram-AI-Bot/internal/dialogue"
	"github.com/AlirezaARBAlpha/Telegram-AI-Bot/internal/janitor"
	"github.com/AlirezaARBAlpha/Telegram-AI-Bot/internal/logutil"
	"github.com/AlirezaARBAlpha/Telegram-AI-Bot/internal/prefstore"
	"github.com/AlirezaARBAlpha/Telegram-AI-Bot/providers/openrouter"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the bot (long polling or webhook)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot(cmd.Context())
		},
	}

	cmd.Flags().String("transport", "", "Transport mode: polling|webhook.")
	_ = viper.BindPFlag("transport.mode", cmd.Flags().Lookup("transport"))

	return cmd
}

func runBot(ctx context.Context) error {
	logger, err := logutil.LoggerFromViper()
	if err != nil {
		return err
	}

	token := strings.TrimSpace(viper.GetString("telegram.token"))
	if token == "" {
		return fmt.Errorf("telegram.token is required (TGAI_TELEGRAM_TOKEN)")
	}
	apiKey := strings.TrimSpace(viper.GetString("openrouter.api_key"))
	if apiKey == "" {
		return fmt.Errorf("openrouter.api_key is required (TGAI_OPENROUTER_API_KEY)")
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return fmt.Errorf("connect telegram: %w", err)
	}

	client := openrouter.New(apiKey,
		viper.GetString("openrouter.base_url"),
		viper.GetDuration("openrouter.timeout"))

	b := bot.New(bot.Config{
		API:     api,
		Self:    api.Self,
		LLM:     client,
		Catalog: catalog.Default(),
		Prefs:   prefstore.New(viper.GetString("bot.default_model")),
		History: dialogue.New(viper.GetInt("bot.history_window")),
		Janitor: janitor.New(telegramDeleter{api: api}, logger),
		Logger:  logger,
		Options: bot.Options{
			TriggerWords:   viper.GetStringSlice("bot.trigger_words"),
			CaseSensitive:  viper.GetBool("bot.case_sensitive"),
			HistoryEnabled: viper.GetBool("bot.history_enabled"),
			HistoryWindow:  viper.GetInt("bot.history_window"),
			SystemPrompt:   viper.GetString("bot.system_prompt"),
		},
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// One worker per chat keeps a single chat's replies in acceptance order;
	// distinct chats proceed concurrently up to max_concurrency.
	disp := bot.NewDispatcher(ctx, b, viper.GetInt("transport.max_concurrency"))

	mode := strings.ToLower(strings.TrimSpace(viper.GetString("transport.mode")))
	switch mode {
	case "", "polling":
		return runPolling(ctx, api, disp, logger)
	case "webhook":
		return runWebhook(ctx, api, disp, logger)
	default:
		return fmt.Errorf("unknown transport.mode: %s", mode)
	}
}

func runPolling(ctx context.Context, api *tgbotapi.BotAPI, disp *bot.Dispatcher, logger *slog.Logger) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = int(viper.GetDuration("transport.poll_timeout").Seconds())

	updates := api.GetUpdatesChan(u)
	logger.Info("bot started", "username", api.Self.UserName, "transport", "polling")

	for {
		select {
		case <-ctx.Done():
			api.StopReceivingUpdates()
			logger.Info("bot stopped")
			return nil
		case update := <-updates:
			disp.Dispatch(update)
		}
	}
}

func runWebhook(ctx context.Context, api *tgbotapi.BotAPI, disp *bot.Dispatcher, logger *slog.Logger) error {
	publicURL := strings.TrimSpace(viper.GetString("transport.webhook.public_url"))
	if publicURL == "" {
		return fmt.Errorf("transport.webhook.public_url is required in webhook mode")
	}

	// The token doubles as the webhook path secret.
	wh, err := tgbotapi.NewWebhook(strings.TrimRight(publicURL, "/") + "/" + api.Token)
	if err != nil {
		return fmt.Errorf("build webhook config: %w", err)
	}
	if _, err := api.Request(wh); err != nil {
		return fmt.Errorf("set webhook: %w", err)
	}

	updates := api.ListenForWebhook("/" + api.Token)

	// Keepalive for uptime monitors.
	http.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})

	listen := viper.GetString("transport.webhook.listen")
	srv := &http.Server{Addr: listen}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	go func() {
		for update := range updates {
			disp.Dispatch(update)
		}
	}()

	logger.Info("bot started", "username", api.Self.UserName, "transport", "webhook", "listen", listen)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("bot stopped")
	return nil
}

// telegramDeleter adapts the bot API to the janitor's Deleter.
type telegramDeleter struct {
	api *tgbotapi.BotAPI
}

func (d telegramDeleter) DeleteMessage(chatID int64, messageID int) error {
	_, err := d.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID))
	return err
}
