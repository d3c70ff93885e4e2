package keyboard

import (
	"fmt"
	"strings"
)

// Callback actions understood by the bot.
const (
	ActionStart      = "start"
	ActionPersona    = "persona"
	ActionDifficulty = "difficulty"
	ActionFinish     = "finish"
)

// CallbackData is the parsed form of inline-button payloads.
type CallbackData struct {
	Action string
	Value  string
}

// Format encodes an action and value as "action:value".
func Format(action, value string) string {
	return action + ":" + value
}

// ParseCallback decodes a "action:value" payload.
func ParseCallback(data string) (*CallbackData, error) {
	action, value, found := strings.Cut(data, ":")
	if !found || action == "" {
		return nil, fmt.Errorf("malformed callback data %q", data)
	}
	return &CallbackData{Action: action, Value: value}, nil
}
