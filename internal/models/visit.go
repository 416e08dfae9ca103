// Package models defines the transient data structures shared between the
// rule evaluators, the access controller and the HTTP layer.
package models

// BotSignal is the result of classifying a user-agent string. It is computed
// per request and never persisted.
type BotSignal struct {
	// IsBot reports whether the confidence crossed the bot threshold.
	IsBot bool

	// BotType names the matched crawler family ("facebook", "crawler",
	// "http-client", ...). Empty when nothing matched.
	BotType string

	// Confidence is the strength of the strongest matching pattern, 0-100.
	Confidence int

	// DiversionURL is where this bot should be sent instead of the real
	// destination. Empty means the caller's default diversion applies.
	DiversionURL string
}

// RequestContext carries everything the access controller needs to know
// about the inbound visitor.
type RequestContext struct {
	// UserAgent is the raw User-Agent header.
	UserAgent string

	// IP is the resolved client address (middleware.ClientIP).
	IP string

	// Referrer is the Referer header, kept for click analytics.
	Referrer string

	// Password is the password attempt submitted with this request,
	// empty when none was supplied.
	Password string

	// Unlocked is true when a valid unlock token for this code was
	// already presented, which counts as a supplied valid password.
	Unlocked bool

	// ChallengePassed is true when the visitor already completed the
	// human-verification challenge for this code.
	ChallengePassed bool
}

// Outcome is the terminal state of one resolution.
type Outcome int

const (
	// OutcomeNotFound covers both unknown and expired codes; the two are
	// indistinguishable to the visitor.
	OutcomeNotFound Outcome = iota

	// OutcomeBotDiverted means the classifier hit the immediate-diversion
	// cut point and the visitor is sent to a diversion URL.
	OutcomeBotDiverted

	// OutcomeBlocked means an IP or country rule matched; the visitor is
	// sent to the decoy page.
	OutcomeBlocked

	// OutcomePasswordRequired means the link is gated and no password was
	// supplied yet.
	OutcomePasswordRequired

	// OutcomePasswordRejected means a password was supplied and failed
	// verification.
	OutcomePasswordRejected

	// OutcomeGranted means the redirect may fire.
	OutcomeGranted
)

// String returns a stable label for metrics and logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeNotFound:
		return "not_found"
	case OutcomeBotDiverted:
		return "bot_diverted"
	case OutcomeBlocked:
		return "blocked"
	case OutcomePasswordRequired:
		return "password_required"
	case OutcomePasswordRejected:
		return "password_rejected"
	case OutcomeGranted:
		return "granted"
	}
	return "unknown"
}

// Action is what the dispatcher turns into an HTTP response.
type Action struct {
	// Outcome is the terminal state reached by the pipeline.
	Outcome Outcome

	// Code is the short code the action belongs to.
	Code string

	// Location is the redirect target for granted, diverted and blocked
	// outcomes. Empty otherwise.
	Location string

	// ChallengeRequired marks a granted action that still needs the
	// human-verification challenge before the redirect may fire.
	ChallengeRequired bool
}
