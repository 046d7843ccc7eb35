package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/lib/pq"
)

const maxStorageRetries = 2

// withRetry re-executes fn on transient connection failures only. Logical
// outcomes (no rows, constraint violations) pass through on the first call.
// Only idempotent statements belong here: reads, and conditional updates
// whose replay is absorbed by the WHERE clause. Plain inserts must not be
// wrapped, since a replay after a commit with a lost reply duplicates the
// row.
func withRetry(ctx context.Context, fn func() error) error {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(100*time.Millisecond), maxStorageRetries),
		ctx,
	)

	return backoff.Retry(func() error {
		err := fn()
		if err == nil {
			return nil
		}
		if isTransient(err) {
			return err
		}
		return backoff.Permanent(err)
	}, policy)
}

func isTransient(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	// Class 08: connection exceptions.
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == "08"
	}

	return false
}

func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if pqErr.Code != "23505" {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}
