// Package rules contains the pure evaluators the access controller composes:
// the user-agent classifier, the IP/CIDR matcher, the country matcher and the
// expiry check. None of them do I/O.
package rules

import (
	"strings"

	"github.com/herizorandria/go-link-gate/internal/metrics"
	"github.com/herizorandria/go-link-gate/internal/models"
)

// Classification cut points. Callers rely on the exact values: at or above
// ImmediateDiversionThreshold the visitor is silently diverted before any
// other check runs, inside the challenge band the redirect waits for the
// human-verification challenge, below ChallengeLowThreshold the visitor is
// treated as human.
const (
	BotThreshold                = 75
	ImmediateDiversionThreshold = 95
	ChallengeLowThreshold       = 40
)

// shortAgentLength is the length under which no real browser user-agent has
// ever been observed; such strings earn a flat confidence bonus.
const (
	shortAgentLength = 15
	shortAgentBonus  = 15
)

type botPattern struct {
	pattern   string
	botType   string
	diversion string
}

// socialCrawlers are named link-preview scrapers. Each one is diverted toward
// its own platform so that previews never consume the real redirect or
// trigger click counts.
var socialCrawlers = []botPattern{
	{"facebookexternalhit", "facebook", "https://www.facebook.com/"},
	{"facebot", "facebook", "https://www.facebook.com/"},
	{"twitterbot", "twitter", "https://twitter.com/"},
	{"linkedinbot", "linkedin", "https://www.linkedin.com/"},
	{"whatsapp", "whatsapp", "https://www.whatsapp.com/"},
	{"telegrambot", "telegram", "https://telegram.org/"},
	{"slackbot", "slack", "https://slack.com/"},
	{"discordbot", "discord", "https://discord.com/"},
	{"pinterestbot", "pinterest", "https://www.pinterest.com/"},
	{"vkshare", "vk", "https://vk.com/"},
}

// genericCrawlers are general web crawlers and headless-browser signatures.
var genericCrawlers = []string{
	"googlebot",
	"bingbot",
	"yandexbot",
	"duckduckbot",
	"baiduspider",
	"applebot",
	"semrushbot",
	"ahrefsbot",
	"headlesschrome",
	"phantomjs",
	"selenium",
	"puppeteer",
	"playwright",
	"crawler",
	"spider",
	"scrapy",
}

// httpClients are low-level HTTP client signatures, matched anchored at the
// start of the string only.
var httpClients = []string{
	"curl/",
	"wget/",
	"python-requests",
	"python-urllib",
	"go-http-client",
	"java/",
	"okhttp",
	"axios/",
	"libwww-perl",
	"httpclient",
}

const (
	socialConfidence  = 98
	crawlerConfidence = 90
	clientConfidence  = 80
)

// Classifier turns a raw user-agent string into a BotSignal. Results are
// memoized in an injected TTL cache; the cache is advisory only and a miss
// never changes the outcome.
type Classifier struct {
	cache            *Cache
	defaultDiversion string
}

// NewClassifier builds a classifier. A nil cache disables memoization.
func NewClassifier(cache *Cache, defaultDiversion string) *Classifier {
	return &Classifier{
		cache:            cache,
		defaultDiversion: defaultDiversion,
	}
}

// Classify evaluates the three pattern tiers against the user agent, highest
// tier first, and applies the short-string bonus.
func (c *Classifier) Classify(userAgent string) models.BotSignal {
	if c.cache != nil {
		if signal, ok := c.cache.Get(userAgent); ok {
			metrics.BotCacheHits.Inc()
			return signal
		}
		metrics.BotCacheMisses.Inc()
	}

	signal := classify(userAgent, c.defaultDiversion)

	if c.cache != nil {
		c.cache.Set(userAgent, signal)
	}
	return signal
}

func classify(userAgent, defaultDiversion string) models.BotSignal {
	agent := strings.ToLower(strings.TrimSpace(userAgent))
	signal := models.BotSignal{DiversionURL: defaultDiversion}

	switch {
	case matchSocial(agent, &signal):
	case matchAny(agent, genericCrawlers):
		signal.BotType = "crawler"
		signal.Confidence = crawlerConfidence
	case matchPrefix(agent, httpClients):
		signal.BotType = "http-client"
		signal.Confidence = clientConfidence
	}

	if len(agent) < shortAgentLength {
		signal.Confidence += shortAgentBonus
		if signal.Confidence > 100 {
			signal.Confidence = 100
		}
	}

	signal.IsBot = signal.Confidence >= BotThreshold
	return signal
}

func matchSocial(agent string, signal *models.BotSignal) bool {
	for _, p := range socialCrawlers {
		if strings.Contains(agent, p.pattern) {
			signal.BotType = p.botType
			signal.Confidence = socialConfidence
			signal.DiversionURL = p.diversion
			return true
		}
	}
	return false
}

func matchAny(agent string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(agent, p) {
			return true
		}
	}
	return false
}

func matchPrefix(agent string, patterns []string) bool {
	for _, p := range patterns {
		if strings.HasPrefix(agent, p) {
			return true
		}
	}
	return false
}
