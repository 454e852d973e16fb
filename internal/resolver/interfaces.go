package resolver

//go:generate mockgen -source=interfaces.go -destination=../mock/resolver_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-dev-server/internal/bundle"
	"github.com/MKhiriev/go-dev-server/internal/portfinder"
)

// PortFinder discovers a free TCP port at or above start. The returned
// channel yields exactly one result.
type PortFinder interface {
	GetPortAsync(ctx context.Context, start int) <-chan portfinder.Result
}

// Notifier receives compilation problems forwarded by the notification
// descriptor.
type Notifier interface {
	Notify(severity bundle.Severity, errs []bundle.CompileError)
}
