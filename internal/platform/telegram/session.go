package telegram

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"

	"github.com/gotd/td/session"
)

// SessionPrefix marks session strings produced by this service.
const SessionPrefix = "gotd:"

// MemorySession is a session.Storage kept in process memory, seeded from a
// session string at startup.
type MemorySession struct {
	mu   sync.RWMutex
	data []byte
}

var _ session.Storage = (*MemorySession)(nil)

func (s *MemorySession) LoadSession(_ context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.data) == 0 {
		return nil, session.ErrNotFound
	}
	cp := append([]byte(nil), s.data...)
	return cp, nil
}

func (s *MemorySession) StoreSession(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	return nil
}

// EncodeSession renders raw session storage bytes as a session string.
func EncodeSession(data []byte) string {
	return SessionPrefix + base64.RawURLEncoding.EncodeToString(data)
}

// LoadSessionString seeds storage from a session string. Both the format
// produced by EncodeSession and Telethon string sessions are accepted.
func LoadSessionString(ctx context.Context, raw string, storage session.Storage) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if strings.HasPrefix(raw, SessionPrefix) {
		data, err := base64.RawURLEncoding.DecodeString(strings.TrimPrefix(raw, SessionPrefix))
		if err != nil {
			return fmt.Errorf("decode session string: %w", err)
		}
		return storage.StoreSession(ctx, data)
	}

	data, err := session.TelethonSession(raw)
	if err != nil {
		return fmt.Errorf("decode telethon session: %w", err)
	}
	loader := session.Loader{Storage: storage}
	if err := loader.Save(ctx, data); err != nil {
		return fmt.Errorf("store telethon session: %w", err)
	}
	return nil
}
