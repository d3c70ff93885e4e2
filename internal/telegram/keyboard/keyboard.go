package keyboard

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Builder assembles the inline keyboards used by the bot.
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// StartKeyboard shows the single "begin interview" button.
func (b *Builder) StartKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎤 Start interview", Format(ActionStart, "")),
		),
	)
}

// PersonaKeyboard lets the user pick an interviewer.
func (b *Builder) PersonaKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👔 HR", Format(ActionPersona, "hr")),
			tgbotapi.NewInlineKeyboardButtonData("💻 Tech Lead", Format(ActionPersona, "tech_lead")),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🧠 Behavioral", Format(ActionPersona, "behavioral")),
		),
	)
}

// DifficultyKeyboard lets the user pick a difficulty level.
func (b *Builder) DifficultyKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🟢 Easy", Format(ActionDifficulty, "easy")),
			tgbotapi.NewInlineKeyboardButtonData("🟡 Medium", Format(ActionDifficulty, "medium")),
			tgbotapi.NewInlineKeyboardButtonData("🔴 Hard", Format(ActionDifficulty, "hard")),
		),
	)
}

// FinishKeyboard is shown after the last answer.
func (b *Builder) FinishKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Get my results", Format(ActionFinish, "")),
		),
	)
}
