package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestWithRetry_TransientThenSuccess(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), func() error {
		calls++
		if calls == 1 {
			return driver.ErrBadConn
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestWithRetry_PermanentErrorNotRetried(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), func() error {
		calls++
		return sql.ErrNoRows
	})

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_GivesUpAfterMaxRetries(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), func() error {
		calls++
		return driver.ErrBadConn
	})

	assert.ErrorIs(t, err, driver.ErrBadConn)
	assert.Equal(t, maxStorageRetries+1, calls)
}

func TestIsTransient(t *testing.T) {
	assert.True(t, isTransient(driver.ErrBadConn))
	assert.True(t, isTransient(&pq.Error{Code: "08006"}))
	assert.False(t, isTransient(&pq.Error{Code: "23505"}))
	assert.False(t, isTransient(errors.New("boom")))
	assert.False(t, isTransient(sql.ErrNoRows))
}

func TestIsUniqueViolation(t *testing.T) {
	pairIdx := &pq.Error{Code: "23505", Constraint: "proposals_outstanding_pair_idx"}

	assert.True(t, isUniqueViolation(pairIdx, "proposals_outstanding_pair_idx"))
	assert.True(t, isUniqueViolation(pairIdx, ""))
	assert.False(t, isUniqueViolation(pairIdx, "profiles_user_id_key"))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}, ""))
	assert.False(t, isUniqueViolation(errors.New("boom"), ""))
}
