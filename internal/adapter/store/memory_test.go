package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TinoSantoso/Playtopia-pos/internal/adapter/store"
)

func TestMemoryRoundTrip(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()

	_, found, err := mem.Load(ctx, "playground_kids")
	assert.NoError(t, err)
	assert.False(t, found)

	blob := []byte(`[{"name":"Emma Johnson"}]`)
	assert.NoError(t, mem.Save(ctx, "playground_kids", blob))

	data, found, err := mem.Load(ctx, "playground_kids")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, blob, data)

	// the stored blob is isolated from later caller mutation
	blob[0] = 'X'
	data, _, _ = mem.Load(ctx, "playground_kids")
	assert.Equal(t, byte('['), data[0])
}
