package postgres

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// TouchDevice registers the device on first sight and bumps last_seen_at on
// every later one.
func (s *Store) TouchDevice(ctx context.Context, deviceID string) error {
	query := `
		INSERT INTO devices (id, created_at, last_seen_at)
		VALUES (?, NOW(), NOW())
		ON CONFLICT (id)
		DO UPDATE SET last_seen_at = NOW()
	`

	_, err := s.sess.
		InsertBySql(query, deviceID).
		ExecContext(ctx)
	if err != nil {
		s.logger.Error("failed to touch device",
			zap.String("device_id", deviceID),
			zap.Error(err),
		)
		return fmt.Errorf("touch device: %w", err)
	}

	return nil
}

// PurgeStaleDevices removes devices not seen within maxAge. The device cookie
// expires after a year, so anything older can never come back under the same id.
func (s *Store) PurgeStaleDevices(ctx context.Context, maxAge time.Duration) (int64, error) {
	result, err := s.sess.
		DeleteFrom("devices").
		Where("last_seen_at < ?", time.Now().Add(-maxAge)).
		ExecContext(ctx)
	if err != nil {
		s.logger.Error("failed to purge stale devices", zap.Error(err))
		return 0, fmt.Errorf("purge stale devices: %w", err)
	}

	purged, _ := result.RowsAffected()
	if purged > 0 {
		s.logger.Info("stale devices purged", zap.Int64("count", purged))
	}

	return purged, nil
}
