package bot

// User-facing strings are Persian, matching the product audience.
const (
	msgChooseModel     = "🧠 یکی از مدل‌های زیر رو انتخاب کن:"
	msgModelSetFmt     = "✅ مدل شما تنظیم شد به: %s"
	msgInvalidModel    = "مدل معتبر نیست."
	msgCurrentModelFmt = "🔍 مدل فعلی شما:\n`%s`"
	msgNoModelYet      = "❗ هنوز هیچ مدلی انتخاب نکردی.\nاستفاده از `/setmodel` توصیه میشه."
	msgSelectFirst     = "⛔ هنوز هیچ مدلی انتخاب نکردی!\nاز دستور `/setmodel` استفاده کن."
	msgFallback        = "متاسفم، نشد پاسخ بدم."

	// Prepended between a quoted bot message and the user's follow-up.
	replyConnective = "پاسخ بده بهش:"

	// DefaultSystemPrompt steers every completion call.
	DefaultSystemPrompt = "تو یک دستیار فارسی‌زبان هستی."
)
