package storage

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySaveAndFind(t *testing.T) {
	m, err := CreateMemoryStorage()
	require.NoError(t, err)

	saved, err := m.SaveLink(context.Background(), LinkRecord{
		ShortCode:   "abc123",
		CustomCode:  "my-alias",
		OriginalURL: "https://example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	byShort, err := m.FindByCode(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", byShort.OriginalURL)

	byAlias, err := m.FindByCode(context.Background(), "my-alias")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, byAlias.ID)

	_, err = m.FindByCode(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryLookupIsCaseSensitive(t *testing.T) {
	m, _ := CreateMemoryStorage()

	_, err := m.SaveLink(context.Background(), LinkRecord{ShortCode: "AbC", OriginalURL: "https://example.com"})
	require.NoError(t, err)

	_, err = m.FindByCode(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCodeConflicts(t *testing.T) {
	m, _ := CreateMemoryStorage()

	_, err := m.SaveLink(context.Background(), LinkRecord{ShortCode: "taken", OriginalURL: "https://example.com"})
	require.NoError(t, err)

	_, err = m.SaveLink(context.Background(), LinkRecord{ShortCode: "taken", OriginalURL: "https://other.example"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = m.SaveLink(context.Background(), LinkRecord{ShortCode: "fresh", CustomCode: "taken", OriginalURL: "https://other.example"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestMemoryIncrementClicksConcurrent(t *testing.T) {
	m, _ := CreateMemoryStorage()

	saved, err := m.SaveLink(context.Background(), LinkRecord{ShortCode: "ctr", OriginalURL: "https://example.com"})
	require.NoError(t, err)

	const workers = 100

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = m.IncrementClicks(context.Background(), saved.ID, time.Now())
		}()
	}
	wg.Wait()

	record, err := m.FindByCode(context.Background(), "ctr")
	require.NoError(t, err)
	assert.Equal(t, int64(workers), record.Clicks)
	assert.NotNil(t, record.LastClickedAt)
}

func TestMemoryInsertClick(t *testing.T) {
	m, _ := CreateMemoryStorage()

	saved, _ := m.SaveLink(context.Background(), LinkRecord{ShortCode: "clk", OriginalURL: "https://example.com"})

	err := m.InsertClick(context.Background(), ClickRecord{LinkID: saved.ID, CreatedAt: time.Now(), Country: "France"})
	require.NoError(t, err)

	clicks := m.ClicksFor(saved.ID)
	require.Len(t, clicks, 1)
	assert.Equal(t, "France", clicks[0].Country)
	assert.NotEmpty(t, clicks[0].ID)
}
