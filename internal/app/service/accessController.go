package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/herizorandria/go-link-gate/internal/geo"
	"github.com/herizorandria/go-link-gate/internal/metrics"
	"github.com/herizorandria/go-link-gate/internal/models"
	"github.com/herizorandria/go-link-gate/internal/rules"
	"github.com/herizorandria/go-link-gate/internal/storage"
)

// ErrLinkExpired distinguishes expiry from a missing code internally. The
// visitor sees the same not-found action either way, so neither existence
// nor expiry can be probed.
var ErrLinkExpired = errors.New("link expired")

// visit carries the state one resolution accumulates while moving through
// the guard pipeline.
type visit struct {
	code     string
	req      models.RequestContext
	link     *storage.LinkRecord
	signal   models.BotSignal
	location geo.Location
}

// guard either terminates the pipeline with an action or returns nil to let
// the next guard run. The slice order in ResolveAndAct is the precedence
// contract: bot diversion before geo/IP blocking before the password gate.
type guard func(ctx context.Context, v *visit) *models.Action

// AccessController decides what happens to one inbound resolution request.
type AccessController struct {
	store      storage.Storage
	classifier *rules.Classifier
	geo        geo.Resolver
	clicks     ClickSink
	gate       *PasswordGate
	logger     *zap.Logger
	decoyURL   string
	now        func() time.Time
}

func NewAccessController(
	store storage.Storage,
	classifier *rules.Classifier,
	geoResolver geo.Resolver,
	clicks ClickSink,
	gate *PasswordGate,
	logger *zap.Logger,
	decoyURL string,
) *AccessController {
	return &AccessController{
		store:      store,
		classifier: classifier,
		geo:        geoResolver,
		clicks:     clicks,
		gate:       gate,
		logger:     logger,
		decoyURL:   decoyURL,
		now:        time.Now,
	}
}

// ResolveAndAct runs the full decision pipeline for one request and returns
// the terminal action. A click is recorded if and only if the redirect
// actually fires: a granted action that still requires the challenge does
// not count.
func (c *AccessController) ResolveAndAct(ctx context.Context, code string, req models.RequestContext) models.Action {
	v := &visit{code: code, req: req}

	if action := c.resolve(ctx, v); action != nil {
		return c.done(*action)
	}

	guards := []guard{
		c.classifyAgent,
		c.checkOrigin,
		c.checkPassword,
	}
	for _, g := range guards {
		if action := g(ctx, v); action != nil {
			return c.done(*action)
		}
	}

	return c.done(c.grant(v))
}

// resolve is the identity step: exact lookup against both code fields, then
// the expiry check. Unknown and expired codes yield the same action.
func (c *AccessController) resolve(ctx context.Context, v *visit) *models.Action {
	link, err := c.store.FindByCode(ctx, v.code)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			c.logger.Error("link lookup failed", zap.String("code", v.code), zap.Error(err))
		}
		return &models.Action{Outcome: models.OutcomeNotFound, Code: v.code}
	}

	if rules.Expired(link.ExpiresAt, c.now()) {
		c.logger.Info("expired link requested", zap.String("code", v.code), zap.Error(ErrLinkExpired))
		return &models.Action{Outcome: models.OutcomeNotFound, Code: v.code}
	}

	v.link = link
	return nil
}

// classifyAgent diverts obvious bots before any further work is spent on
// them. Below the immediate cut point the signal is kept for the grant step.
func (c *AccessController) classifyAgent(_ context.Context, v *visit) *models.Action {
	v.signal = c.classifier.Classify(v.req.UserAgent)

	if v.signal.Confidence >= rules.ImmediateDiversionThreshold {
		metrics.BotDiversions.WithLabelValues(v.signal.BotType).Inc()
		return &models.Action{
			Outcome:  models.OutcomeBotDiverted,
			Code:     v.code,
			Location: v.signal.DiversionURL,
		}
	}
	return nil
}

// checkOrigin resolves the visitor's location (best effort, bounded) and
// applies the IP and country block lists. A match sends the visitor to the
// decoy page, never to an explicit block message.
func (c *AccessController) checkOrigin(ctx context.Context, v *visit) *models.Action {
	v.location = c.geo.Locate(ctx, v.req.IP)

	if rules.IPBlocked(v.req.IP, v.link.BlockedIPs) || rules.CountryBlocked(v.location.Country, v.link.BlockedCountries) {
		return &models.Action{
			Outcome:  models.OutcomeBlocked,
			Code:     v.code,
			Location: c.decoyURL,
		}
	}
	return nil
}

// checkPassword halts gated links until a valid password or unlock token is
// presented. The destination is never revealed and no click is recorded on
// either halt.
func (c *AccessController) checkPassword(_ context.Context, v *visit) *models.Action {
	if v.link.PasswordHash == "" || v.req.Unlocked {
		return nil
	}

	if v.req.Password == "" {
		return &models.Action{Outcome: models.OutcomePasswordRequired, Code: v.code}
	}

	if !c.gate.Verify(v.req.Password, v.link.PasswordHash) {
		return &models.Action{Outcome: models.OutcomePasswordRejected, Code: v.code}
	}
	return nil
}

// grant finishes the pipeline. A secondary bot band still has to pass the
// human-verification challenge before the redirect may fire.
func (c *AccessController) grant(v *visit) models.Action {
	action := models.Action{
		Outcome:  models.OutcomeGranted,
		Code:     v.code,
		Location: v.link.OriginalURL,
	}

	if v.signal.Confidence >= rules.ChallengeLowThreshold && !v.req.ChallengePassed {
		action.ChallengeRequired = true
		return action
	}

	c.clicks.Record(v.link, v.req, v.location)
	return action
}

func (c *AccessController) done(action models.Action) models.Action {
	metrics.Resolutions.WithLabelValues(action.Outcome.String()).Inc()
	return action
}
