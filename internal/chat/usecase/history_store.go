package usecase

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"study-companion/internal/chat"
)

// historyStore keeps a bounded per-user conversation buffer in memory.
// The outer LRU bounds the number of users; each buffer bounds its entries.
// History is a convenience view, not durable state — the agent backend owns
// the real conversation memory.
type historyStore struct {
	mu    sync.Mutex
	users *lru.Cache[string, *userBuffer]
	limit int
}

type userBuffer struct {
	entries []chat.Entry
}

func newHistoryStore(limit, maxUsers int) (*historyStore, error) {
	users, err := lru.New[string, *userBuffer](maxUsers)
	if err != nil {
		return nil, err
	}
	return &historyStore{users: users, limit: limit}, nil
}

func (s *historyStore) append(user string, role chat.Role, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf, ok := s.users.Get(user)
	if !ok {
		buf = &userBuffer{}
		s.users.Add(user, buf)
	}

	buf.entries = append(buf.entries, chat.Entry{Role: role, Text: text, At: time.Now()})
	if len(buf.entries) > s.limit {
		buf.entries = buf.entries[len(buf.entries)-s.limit:]
	}
}

// recent returns a copy of the user's entries, oldest first.
func (s *historyStore) recent(user string) []chat.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf, ok := s.users.Get(user)
	if !ok {
		return nil
	}
	out := make([]chat.Entry, len(buf.entries))
	copy(out, buf.entries)
	return out
}
