package state

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

// Step identifies where a chat is in the interview setup and answering flow.
type Step string

const (
	StepChoosePersona    Step = "CHOOSE_PERSONA"
	StepChooseDifficulty Step = "CHOOSE_DIFFICULTY"
	StepAwaitJob         Step = "AWAIT_JOB_DESCRIPTION"
	StepAnswering        Step = "ANSWERING"
)

// Conversation is the per-chat flow state. It is kept in memory with a TTL so
// abandoned chats do not pile up.
type Conversation struct {
	ChatID         int64
	Persona        string
	Difficulty     string
	JobDescription string
	SessionID      string
	Step           Step
}

// Manager stores conversations keyed by chat ID.
type Manager struct {
	store *cache.Cache
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		store: cache.New(ttl, ttl/2),
	}
}

func (m *Manager) Get(chatID int64) (*Conversation, bool) {
	v, ok := m.store.Get(key(chatID))
	if !ok {
		return nil, false
	}
	conv, ok := v.(*Conversation)
	return conv, ok
}

func (m *Manager) Put(conv *Conversation) {
	m.store.SetDefault(key(conv.ChatID), conv)
}

func (m *Manager) Delete(chatID int64) {
	m.store.Delete(key(chatID))
}

func key(chatID int64) string {
	return "chat:" + strconv.FormatInt(chatID, 10)
}
