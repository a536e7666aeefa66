// Package dialogue keeps a per-user rolling record of prior turns so the
// completion call gets short-term context.
package dialogue

import (
	"sync"

	"github.com/AlirezaARBAlpha/Telegram-AI-Bot/llm"
)

// History retains at most maxKeep entries per user; older entries are pruned
// on append since nothing ever reads past the window.
type History struct {
	mu      sync.Mutex
	turns   map[int64][]llm.Message
	maxKeep int
}

func New(maxKeep int) *History {
	if maxKeep <= 0 {
		maxKeep = 10
	}
	return &History{
		turns:   make(map[int64][]llm.Message),
		maxKeep: maxKeep,
	}
}

func (h *History) Append(userID int64, role, content string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	entries := append(h.turns[userID], llm.Message{Role: role, Content: content})
	if len(entries) > h.maxKeep {
		entries = entries[len(entries)-h.maxKeep:]
	}
	h.turns[userID] = entries
}

// Recent returns a copy of the last n entries for the user, oldest first.
func (h *History) Recent(userID int64, n int) []llm.Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	entries := h.turns[userID]
	if n > 0 && len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	out := make([]llm.Message, len(entries))
	copy(out, entries)
	return out
}

func (h *History) Len(userID int64) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.turns[userID])
}
