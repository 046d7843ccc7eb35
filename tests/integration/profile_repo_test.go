//go:build integration
// +build integration

package integration_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matrimony-be/internal/domain"
)

func TestProfileReviewConditionalUpdate(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.Teardown()

	ctx := context.Background()
	owner := env.SeedUser(t, "owner")
	admin := env.SeedUser(t, "admin")
	profile := env.SeedProfile(t, owner.ID)

	ok, err := env.Repos.Profile.Approve(ctx, profile.ID, admin.ID)
	require.NoError(t, err)
	require.True(t, ok)

	t.Run("Approval Metadata Stamped", func(t *testing.T) {
		stored, err := env.Repos.Profile.GetByID(ctx, profile.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ProfileApproved, stored.Status)
		require.NotNil(t, stored.ApprovedBy)
		assert.Equal(t, admin.ID, *stored.ApprovedBy)
		assert.NotNil(t, stored.ApprovedAt)
	})

	t.Run("Second Approve Loses", func(t *testing.T) {
		other := env.SeedUser(t, "other-admin")
		ok, err := env.Repos.Profile.Approve(ctx, profile.ID, other.ID)
		require.NoError(t, err)
		assert.False(t, ok)

		// The original reviewer's stamp survives.
		stored, err := env.Repos.Profile.GetByID(ctx, profile.ID)
		require.NoError(t, err)
		assert.Equal(t, admin.ID, *stored.ApprovedBy)
	})

	t.Run("Refuse After Approve Loses", func(t *testing.T) {
		reason := "too late"
		ok, err := env.Repos.Profile.Refuse(ctx, profile.ID, admin.ID, &reason)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Missing Profile Reports False", func(t *testing.T) {
		ok, err := env.Repos.Profile.Approve(ctx, uuid.New(), admin.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestProfileRefuseStoresReason(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.Teardown()

	ctx := context.Background()
	owner := env.SeedUser(t, "owner")
	admin := env.SeedUser(t, "admin")
	profile := env.SeedProfile(t, owner.ID)

	reason := "photos unclear"
	ok, err := env.Repos.Profile.Refuse(ctx, profile.ID, admin.ID, &reason)
	require.NoError(t, err)
	require.True(t, ok)

	stored, err := env.Repos.Profile.GetByID(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProfileRefused, stored.Status)
	require.NotNil(t, stored.RejectionReason)
	assert.Equal(t, reason, *stored.RejectionReason)
	require.NotNil(t, stored.RejectedBy)
	assert.Equal(t, admin.ID, *stored.RejectedBy)
}

func TestProfileDuplicatePerUser(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.Teardown()

	ctx := context.Background()
	owner := env.SeedUser(t, "owner")
	env.SeedProfile(t, owner.ID)

	second := &domain.Profile{
		ID:       uuid.New(),
		UserID:   owner.ID,
		Sex:      "male",
		Birthday: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:   domain.ProfilePending,
	}
	err := env.Repos.Profile.Create(ctx, second)
	assert.ErrorIs(t, err, domain.ErrProfileExists)
}
