package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/herizorandria/go-link-gate/internal/models"
	"github.com/herizorandria/go-link-gate/internal/storage"
)

// ErrInvalidURL is returned when the destination fails validation.
var ErrInvalidURL = errors.New("invalid destination url")

// ErrInvalidCode is returned when a custom code has a bad shape.
var ErrInvalidCode = errors.New("invalid custom code")

const numCharsShortLink = 8

const base62Elements = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

var customCodePattern = regexp.MustCompile(`^[0-9A-Za-z_-]{3,32}$`)

// LinkService registers new links: destination validation, code generation,
// password hashing.
type LinkService struct {
	store   storage.Storage
	gate    *PasswordGate
	logger  *zap.Logger
	baseURL string
}

func NewLink(store storage.Storage, gate *PasswordGate, logger *zap.Logger, baseURL string) *LinkService {
	return &LinkService{
		store:   store,
		gate:    gate,
		logger:  logger,
		baseURL: baseURL,
	}
}

// Create validates the request and persists a new link record.
func (s *LinkService) Create(ctx context.Context, req models.CreateLinkRequest) (*storage.LinkRecord, error) {
	destination, err := validateDestination(req.URL)
	if err != nil {
		return nil, err
	}

	if req.CustomCode != "" && !customCodePattern.MatchString(req.CustomCode) {
		return nil, ErrInvalidCode
	}

	record := storage.LinkRecord{
		ID:               uuid.NewString(),
		ShortCode:        hashToShort(destination + uuid.NewString()),
		CustomCode:       req.CustomCode,
		OriginalURL:      destination,
		ExpiresAt:        req.ExpiresAt,
		DirectLink:       req.DirectLink,
		BlockedCountries: req.BlockedCountries,
		BlockedIPs:       req.BlockedIPs,
		CreatedAt:        time.Now(),
	}

	if req.Password != "" {
		hash, err := s.gate.Hash(req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		record.PasswordHash = hash
	}

	saved, err := s.store.SaveLink(ctx, record)
	if err != nil {
		return nil, err
	}

	s.logger.Info("link created",
		zap.String("code", saved.ShortCode),
		zap.Bool("gated", saved.PasswordHash != ""),
	)
	return saved, nil
}

// ShortURL renders the absolute short URL for a record.
func (s *LinkService) ShortURL(record *storage.LinkRecord) string {
	return s.baseURL + "/" + record.ShortCode
}

func (s *LinkService) PingContext(ctx context.Context) error {
	return s.store.PingContext(ctx)
}

// validateDestination rejects non-HTTP schemes and destinations pointing at
// loopback, private or link-local addresses.
func validateDestination(raw string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", ErrInvalidURL
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", ErrInvalidURL
	}
	if parsed.Host == "" {
		return "", ErrInvalidURL
	}

	host := parsed.Hostname()
	if strings.EqualFold(host, "localhost") {
		return "", ErrInvalidURL
	}
	if ip := net.ParseIP(host); ip != nil {
		if ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsUnspecified() {
			return "", ErrInvalidURL
		}
	}

	return parsed.String(), nil
}

// hashToShort generates a code by hashing the input with SHA-256 and
// encoding it in Base62, truncated to the configured length.
func hashToShort(input string) string {
	hash := sha256.Sum256([]byte(input))
	hexHash := hex.EncodeToString(hash[:])

	base62 := base16ToBase62(hexHash)
	if len(base62) < numCharsShortLink {
		return base62
	}
	return base62[:numCharsShortLink]
}

// base16ToBase62 converts a hexadecimal string to a Base62 encoded string.
func base16ToBase62(hexString string) string {
	var value uint64
	for _, char := range hexString {
		if char >= '0' && char <= '9' {
			value = value*16 + uint64(char-'0')
		} else if char >= 'a' && char <= 'f' {
			value = value*16 + uint64(char-'a'+10)
		}
	}

	var sb []rune
	for value > 0 {
		sb = append([]rune{rune(base62Elements[value%62])}, sb...)
		value /= 62
	}

	return string(sb)
}
