package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStorage keeps links and clicks in process memory. It is the fallback
// backend when no database DSN is configured.
type MemoryStorage struct {
	mu      sync.RWMutex
	byCode  map[string]*LinkRecord // short code -> record
	byAlias map[string]*LinkRecord // custom code -> record
	clicks  []ClickRecord
}

func CreateMemoryStorage() (*MemoryStorage, error) {
	return &MemoryStorage{
		byCode:  make(map[string]*LinkRecord),
		byAlias: make(map[string]*LinkRecord),
	}, nil
}

func (m *MemoryStorage) SaveLink(_ context.Context, record LinkRecord) (*LinkRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byCode[record.ShortCode]; exists {
		return nil, ErrConflict
	}
	if _, exists := m.byAlias[record.ShortCode]; exists {
		return nil, ErrConflict
	}
	if record.CustomCode != "" {
		if _, exists := m.byCode[record.CustomCode]; exists {
			return nil, ErrConflict
		}
		if _, exists := m.byAlias[record.CustomCode]; exists {
			return nil, ErrConflict
		}
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	stored := record
	m.byCode[stored.ShortCode] = &stored
	if stored.CustomCode != "" {
		m.byAlias[stored.CustomCode] = &stored
	}

	out := stored
	return &out, nil
}

func (m *MemoryStorage) FindByCode(_ context.Context, code string) (*LinkRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, exists := m.byCode[code]
	if !exists {
		record, exists = m.byAlias[code]
	}
	if !exists {
		return nil, ErrNotFound
	}

	out := *record
	return &out, nil
}

func (m *MemoryStorage) InsertClick(_ context.Context, click ClickRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if click.ID == "" {
		click.ID = uuid.NewString()
	}
	m.clicks = append(m.clicks, click)
	return nil
}

// IncrementClicks bumps the counter under the storage lock, so concurrent
// clicks on the same link never lose increments.
func (m *MemoryStorage) IncrementClicks(_ context.Context, linkID string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, record := range m.byCode {
		if record.ID == linkID {
			record.Clicks++
			stamp := at
			record.LastClickedAt = &stamp
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStorage) PingContext(_ context.Context) error {
	return nil
}

// ClicksFor returns the recorded clicks for a link, oldest first.
func (m *MemoryStorage) ClicksFor(linkID string) []ClickRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []ClickRecord
	for _, c := range m.clicks {
		if c.LinkID == linkID {
			out = append(out, c)
		}
	}
	return out
}
