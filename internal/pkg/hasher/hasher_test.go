package hasher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher()
	ctx := context.Background()

	hashed, err := h.GetHashedPassword(ctx, "s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hashed)

	assert.NoError(t, h.CompareHashAndPassword(ctx, hashed, "s3cret-pass"))
	assert.Error(t, h.CompareHashAndPassword(ctx, hashed, "wrong-pass"))
}

func TestBcryptHasher_DistinctSalts(t *testing.T) {
	h := NewBcryptHasher()
	ctx := context.Background()

	first, err := h.GetHashedPassword(ctx, "same-pass")
	require.NoError(t, err)
	second, err := h.GetHashedPassword(ctx, "same-pass")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
