// Package device resolves the anonymous per-device identifier that namespaces
// all locally cached offer data. The identifier lives in a long-lived cookie
// and is not tied to an authenticated account.
package device

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// CookieName is the tracking cookie carrying the device identifier.
	CookieName = "user_tracking_id"
	// CookieLifetime is how long a device identifier stays valid.
	CookieLifetime = 365 * 24 * time.Hour
)

// Registry records devices as they are seen. The postgres store satisfies it.
type Registry interface {
	TouchDevice(ctx context.Context, deviceID string) error
}

// Identity resolves or creates device identifiers from request cookies.
type Identity struct {
	registry Registry
	logger   *zap.Logger
}

// New creates an Identity. registry may be nil; resolution then skips the
// registry touch.
func New(registry Registry, logger *zap.Logger) *Identity {
	return &Identity{
		registry: registry,
		logger:   logger,
	}
}

// Resolve returns the device id from the request cookie, generating and
// setting a fresh one when absent. The registry touch is best-effort: a
// failure is logged and the id is still returned.
func (i *Identity) Resolve(w http.ResponseWriter, r *http.Request) string {
	var id string

	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		id = cookie.Value
	} else {
		id = uuid.NewString()
		i.logger.Debug("new device identifier issued", zap.String("device_id", id))
	}

	// Re-set the cookie on every response so the 365-day window slides.
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(CookieLifetime / time.Second),
		SameSite: http.SameSiteLaxMode,
		HttpOnly: true,
	})

	if i.registry != nil {
		if err := i.registry.TouchDevice(r.Context(), id); err != nil {
			i.logger.Warn("device registry touch failed",
				zap.String("device_id", id),
				zap.Error(err),
			)
		}
	}

	return id
}
