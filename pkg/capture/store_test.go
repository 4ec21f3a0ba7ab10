package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacadeRoundtrip(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Attach(Config{DataDir: t.TempDir()}))
	t.Cleanup(func() { store.Detach() })

	id, err := store.Record(Sample{FromFrame: "body", ToFrame: "world", InX: 1})
	require.NoError(t, err)

	samples, err := store.List()
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, id, samples[0].CaptureID)
}
