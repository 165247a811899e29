package cache

import (
	"context"
	"testing"
	"time"

	"escrow-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotKey(t *testing.T) {
	assert.Equal(t, "trust:snapshot:123456789", snapshotKey("123456789"))
}

func TestSnapshotCache_DisabledIsAlwaysMiss(t *testing.T) {
	ctx := context.Background()
	c := NewSnapshotCache(nil, time.Minute)

	require.NoError(t, c.SetSnapshot(ctx, &model.ProfileSnapshot{UserID: "42", TrustScore: 71.5}))

	got, err := c.GetSnapshot(ctx, "42")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, c.Invalidate(ctx, "42"))
}

func TestSnapshotCache_NilReceiver(t *testing.T) {
	var c *SnapshotCache

	got, err := c.GetSnapshot(context.Background(), "42")
	require.NoError(t, err)
	assert.Nil(t, got)
}
