package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/herizorandria/go-link-gate/internal/geo"
	"github.com/herizorandria/go-link-gate/internal/metrics"
	"github.com/herizorandria/go-link-gate/internal/models"
	"github.com/herizorandria/go-link-gate/internal/rules"
	"github.com/herizorandria/go-link-gate/internal/storage"
)

// flushTimeout bounds each storage write; the recorder runs on its own
// context, so a visitor disconnect never cancels an in-flight record.
const flushTimeout = 3 * time.Second

// ClickRecorder persists accepted visits without ever blocking or failing
// the redirect. When the buffer is full the click is dropped and counted.
type ClickRecorder struct {
	in     chan storage.ClickRecord
	store  storage.Storage
	logger *zap.Logger
}

func NewClickRecorder(store storage.Storage, logger *zap.Logger, buffer int) *ClickRecorder {
	return &ClickRecorder{
		in:     make(chan storage.ClickRecord, buffer),
		store:  store,
		logger: logger,
	}
}

// Record enqueues one click. It never blocks.
func (r *ClickRecorder) Record(link *storage.LinkRecord, req models.RequestContext, location geo.Location) {
	device, browser, os := rules.DeviceInfo(req.UserAgent)

	click := storage.ClickRecord{
		ID:        uuid.NewString(),
		LinkID:    link.ID,
		CreatedAt: time.Now(),
		Device:    device,
		Browser:   browser,
		OS:        os,
		Referrer:  req.Referrer,
		IP:        location.IP,
		Country:   location.Country,
		City:      location.City,
	}

	select {
	case r.in <- click:
	default:
		metrics.ClicksDropped.Inc()
		r.logger.Warn("click buffer full, dropping record", zap.String("link_id", link.ID))
	}
}

// Run drains the buffer until ctx is cancelled. Persistence failures are
// logged and swallowed; they never surface to the visitor.
func (r *ClickRecorder) Run(ctx context.Context) {
	for {
		select {
		case click := <-r.in:
			r.flush(click)
		case <-ctx.Done():
			return
		}
	}
}

func (r *ClickRecorder) flush(click storage.ClickRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	if err := r.store.InsertClick(ctx, click); err != nil {
		metrics.ClickFailures.Inc()
		r.logger.Error("cannot insert click", zap.String("link_id", click.LinkID), zap.Error(err))
	}

	if err := r.store.IncrementClicks(ctx, click.LinkID, click.CreatedAt); err != nil {
		metrics.ClickFailures.Inc()
		r.logger.Error("cannot increment click counter", zap.String("link_id", click.LinkID), zap.Error(err))
	}
}

// Pending reports the number of buffered, not yet flushed clicks.
func (r *ClickRecorder) Pending() int {
	return len(r.in)
}
