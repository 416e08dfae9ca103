package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultDiversion = "https://www.google.com/"

func TestClassifySocialCrawlers(t *testing.T) {
	c := NewClassifier(nil, defaultDiversion)

	signal := c.Classify("facebookexternalhit/1.1 (+http://www.facebook.com/externalhit_uatext.php)")

	assert.True(t, signal.IsBot)
	assert.Equal(t, 98, signal.Confidence)
	assert.Equal(t, "facebook", signal.BotType)
	assert.Equal(t, "https://www.facebook.com/", signal.DiversionURL)
}

func TestClassifyTiers(t *testing.T) {
	c := NewClassifier(nil, defaultDiversion)

	tests := []struct {
		name           string
		userAgent      string
		wantConfidence int
		wantBot        bool
		wantType       string
	}{
		{
			name:           "twitter preview scraper",
			userAgent:      "Twitterbot/1.0 fetching card preview data",
			wantConfidence: 98,
			wantBot:        true,
			wantType:       "twitter",
		},
		{
			name:           "generic crawler",
			userAgent:      "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
			wantConfidence: 90,
			wantBot:        true,
			wantType:       "crawler",
		},
		{
			name:           "headless browser",
			userAgent:      "Mozilla/5.0 (X11; Linux x86_64) HeadlessChrome/119.0.0.0 Safari/537.36",
			wantConfidence: 90,
			wantBot:        true,
			wantType:       "crawler",
		},
		{
			name:           "http client anchored at start",
			userAgent:      "python-requests/2.31.0",
			wantConfidence: 80,
			wantBot:        true,
			wantType:       "http-client",
		},
		{
			name:           "client signature not at start stays unmatched",
			userAgent:      "Mozilla/5.0 compatible curl/8.4.0 fetcher with a long tail",
			wantConfidence: 0,
			wantBot:        false,
			wantType:       "",
		},
		{
			name:           "short client string gets the bonus",
			userAgent:      "curl/8.4.0",
			wantConfidence: 95,
			wantBot:        true,
			wantType:       "http-client",
		},
		{
			name:           "short unmatched string stays human",
			userAgent:      "Mozilla/5.0",
			wantConfidence: 15,
			wantBot:        false,
		},
		{
			name:           "real browser",
			userAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36",
			wantConfidence: 0,
			wantBot:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signal := c.Classify(tt.userAgent)

			assert.Equal(t, tt.wantConfidence, signal.Confidence)
			assert.Equal(t, tt.wantBot, signal.IsBot)
			assert.Equal(t, tt.wantType, signal.BotType)
		})
	}
}

func TestClassifyConfidenceCappedAt100(t *testing.T) {
	c := NewClassifier(nil, defaultDiversion)

	// Social pattern plus short-string bonus must not exceed 100.
	signal := c.Classify("Facebot")

	assert.Equal(t, 100, signal.Confidence)
	assert.True(t, signal.IsBot)
}

func TestClassifyUsesDefaultDiversionForGenericBots(t *testing.T) {
	c := NewClassifier(nil, defaultDiversion)

	signal := c.Classify("Mozilla/5.0 (compatible; bingbot/2.0; +http://www.bing.com/bingbot.htm)")

	assert.Equal(t, defaultDiversion, signal.DiversionURL)
}

func TestClassifyMemoizesPerAgent(t *testing.T) {
	cache := NewCache(time.Minute)
	c := NewClassifier(cache, defaultDiversion)

	agent := "Twitterbot/1.0 fetching card preview data"
	first := c.Classify(agent)
	second := c.Classify(agent)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.Len())

	cached, ok := cache.Get(agent)
	require.True(t, ok)
	assert.Equal(t, first, cached)
}

func TestCacheExpiry(t *testing.T) {
	cache := NewCache(10 * time.Millisecond)
	c := NewClassifier(cache, defaultDiversion)

	signal := c.Classify("curl/8.4.0")
	require.True(t, signal.IsBot)

	time.Sleep(20 * time.Millisecond)

	_, ok := cache.Get("curl/8.4.0")
	assert.False(t, ok)

	// Recomputation after eviction yields the same decision.
	assert.Equal(t, signal, c.Classify("curl/8.4.0"))
}

func TestCacheDisabledWithZeroTTL(t *testing.T) {
	cache := NewCache(0)
	cache.Set("anything", classify("anything", defaultDiversion))

	assert.Equal(t, 0, cache.Len())
}
