package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/herizorandria/go-link-gate/internal/models"
	"github.com/herizorandria/go-link-gate/internal/storage"
)

func newLinkService(t *testing.T) (*LinkService, *storage.MemoryStorage) {
	t.Helper()

	store, err := storage.CreateMemoryStorage()
	require.NoError(t, err)

	gate := NewPasswordGate("test-secret", time.Hour)
	return NewLink(store, gate, zap.NewNop(), "http://localhost:8080"), store
}

func TestLinkServiceCreate(t *testing.T) {
	s, store := newLinkService(t)

	record, err := s.Create(context.Background(), models.CreateLinkRequest{URL: "https://example.com/some/page"})
	require.NoError(t, err)

	assert.Len(t, record.ShortCode, 8)
	assert.Equal(t, "https://example.com/some/page", record.OriginalURL)
	assert.Empty(t, record.PasswordHash)
	assert.Equal(t, "http://localhost:8080/"+record.ShortCode, s.ShortURL(record))

	found, err := store.FindByCode(context.Background(), record.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, record.ID, found.ID)
}

func TestLinkServiceCreateWithOptions(t *testing.T) {
	s, store := newLinkService(t)

	expires := time.Now().Add(24 * time.Hour)
	record, err := s.Create(context.Background(), models.CreateLinkRequest{
		URL:              "https://example.com",
		CustomCode:       "launch-day",
		Password:         "s3cret",
		ExpiresAt:        &expires,
		DirectLink:       true,
		BlockedCountries: []string{"France"},
		BlockedIPs:       []string{"10.0.0.0/8"},
	})
	require.NoError(t, err)

	assert.True(t, record.DirectLink)
	assert.NotEmpty(t, record.PasswordHash)
	assert.NotEqual(t, "s3cret", record.PasswordHash)

	gate := NewPasswordGate("test-secret", time.Hour)
	assert.True(t, gate.Verify("s3cret", record.PasswordHash))

	byAlias, err := store.FindByCode(context.Background(), "launch-day")
	require.NoError(t, err)
	assert.Equal(t, record.ID, byAlias.ID)
	assert.Equal(t, []string{"France"}, byAlias.BlockedCountries)
}

func TestLinkServiceCreateRejectsBadDestinations(t *testing.T) {
	s, _ := newLinkService(t)

	tests := []struct {
		name string
		url  string
	}{
		{name: "javascript scheme", url: "javascript:alert(1)"},
		{name: "ftp scheme", url: "ftp://example.com/file"},
		{name: "missing host", url: "https://"},
		{name: "localhost", url: "http://localhost:9000/admin"},
		{name: "loopback ip", url: "http://127.0.0.1/admin"},
		{name: "private ip", url: "http://10.0.0.1/internal"},
		{name: "link local ip", url: "http://169.254.169.254/latest/meta-data"},
		{name: "empty", url: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create(context.Background(), models.CreateLinkRequest{URL: tt.url})
			assert.ErrorIs(t, err, ErrInvalidURL)
		})
	}
}

func TestLinkServiceCreateRejectsBadCustomCodes(t *testing.T) {
	s, _ := newLinkService(t)

	for _, code := range []string{"ab", "has space", "slash/inside", "x"} {
		_, err := s.Create(context.Background(), models.CreateLinkRequest{URL: "https://example.com", CustomCode: code})
		assert.ErrorIs(t, err, ErrInvalidCode, "code %q", code)
	}
}

func TestLinkServiceCreateConflictOnTakenAlias(t *testing.T) {
	s, _ := newLinkService(t)

	_, err := s.Create(context.Background(), models.CreateLinkRequest{URL: "https://example.com", CustomCode: "taken"})
	require.NoError(t, err)

	_, err = s.Create(context.Background(), models.CreateLinkRequest{URL: "https://other.example", CustomCode: "taken"})
	assert.ErrorIs(t, err, storage.ErrConflict)
}

func TestLinkServiceCodesAreUniquePerCreate(t *testing.T) {
	s, _ := newLinkService(t)

	first, err := s.Create(context.Background(), models.CreateLinkRequest{URL: "https://example.com"})
	require.NoError(t, err)

	second, err := s.Create(context.Background(), models.CreateLinkRequest{URL: "https://example.com"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ShortCode, second.ShortCode)
}
