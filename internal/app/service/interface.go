package service

import (
	"context"

	"github.com/herizorandria/go-link-gate/internal/geo"
	"github.com/herizorandria/go-link-gate/internal/models"
	"github.com/herizorandria/go-link-gate/internal/storage"
)

// AccessControllerIface is the single entry point the HTTP layer depends on.
type AccessControllerIface interface {
	ResolveAndAct(ctx context.Context, code string, req models.RequestContext) models.Action
}

// LinkServiceIface covers link registration and backend health.
type LinkServiceIface interface {
	Create(ctx context.Context, req models.CreateLinkRequest) (*storage.LinkRecord, error)
	PingContext(ctx context.Context) error
}

// ClickSink receives accepted visits; implementations must never block the
// caller.
type ClickSink interface {
	Record(link *storage.LinkRecord, req models.RequestContext, location geo.Location)
}
