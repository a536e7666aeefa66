package main

import (
	"time"

	"github.com/spf13/viper"

	"github.com/AlirezaARBAlpha/Telegram-AI-Bot/bot"
	"github.com/AlirezaARBAlpha/Telegram-AI-Bot/catalog"
	"github.com/AlirezaARBAlpha/Telegram-AI-Bot/providers/openrouter"
)

func initViperDefaults() {
	// Secrets have no defaults on purpose; run refuses to start without them.
	viper.SetDefault("telegram.token", "")
	viper.SetDefault("openrouter.api_key", "")
	viper.SetDefault("openrouter.base_url", openrouter.DefaultBaseURL)
	viper.SetDefault("openrouter.timeout", 90*time.Second)

	viper.SetDefault("bot.trigger_words", []string{"بیبی", "baby"})
	viper.SetDefault("bot.case_sensitive", false)
	viper.SetDefault("bot.history_enabled", true)
	viper.SetDefault("bot.history_window", 10)
	viper.SetDefault("bot.system_prompt", bot.DefaultSystemPrompt)
	viper.SetDefault("bot.default_model", catalog.DefaultModel)

	viper.SetDefault("transport.mode", "polling")
	viper.SetDefault("transport.poll_timeout", 60*time.Second)
	viper.SetDefault("transport.max_concurrency", 4)
	viper.SetDefault("transport.webhook.listen", ":8443")
	viper.SetDefault("transport.webhook.public_url", "")
}
