package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupStore creates an attached Store backed by a temp directory and
// registers a cleanup detach.
func setupStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	require.NoError(t, s.Attach(Config{DataDir: t.TempDir()}))
	t.Cleanup(func() { s.Detach() })
	return s
}

func TestConfigValidate(t *testing.T) {
	assert.ErrorIs(t, Config{}.Validate(), ErrDataDirEmpty)
	assert.NoError(t, Config{DataDir: "somewhere"}.Validate())
}

func TestAttachDetachLifecycle(t *testing.T) {
	s := NewStore()
	dir := t.TempDir()

	require.NoError(t, s.Attach(Config{DataDir: dir}))
	assert.ErrorIs(t, s.Attach(Config{DataDir: dir}), ErrAlreadyAttached)

	require.NoError(t, s.Detach())
	// Detach is idempotent.
	require.NoError(t, s.Detach())

	_, err := s.Record(Sample{})
	assert.ErrorIs(t, err, ErrStoreDetached)
	_, err = s.List()
	assert.ErrorIs(t, err, ErrStoreDetached)
}

func TestAttachRejectsInvalidConfig(t *testing.T) {
	s := NewStore()
	assert.ErrorIs(t, s.Attach(Config{}), ErrDataDirEmpty)
}

func TestRecordAndList(t *testing.T) {
	s := setupStore(t)

	id, err := s.Record(Sample{
		FromFrame: "body",
		ToFrame:   "world",
		InX:       1, InY: 0, InZ: -2,
		OutX: 11, OutY: 0, OutZ: -2,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	samples, err := s.List()
	require.NoError(t, err)
	require.Len(t, samples, 1)

	got := samples[0]
	assert.Equal(t, id, got.CaptureID)
	assert.Equal(t, "body", got.FromFrame)
	assert.Equal(t, "world", got.ToFrame)
	assert.Equal(t, 1.0, got.InX)
	assert.Equal(t, -2.0, got.InZ)
	assert.Equal(t, 11.0, got.OutX)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestRecordAssignsIDAndTimestamp(t *testing.T) {
	s := setupStore(t)

	// Caller-supplied ID and timestamp must be ignored.
	id, err := s.Record(Sample{CaptureID: "caller-chosen"})
	require.NoError(t, err)
	assert.NotEqual(t, "caller-chosen", id)
}

func TestListOrdering(t *testing.T) {
	s := setupStore(t)

	var ids []string
	for i := 0; i < 5; i++ {
		id, err := s.Record(Sample{FromFrame: "body", ToFrame: "world", InX: float64(i)})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	samples, err := s.List()
	require.NoError(t, err)
	require.Len(t, samples, 5)
	for i, sample := range samples {
		assert.Equal(t, ids[i], sample.CaptureID)
		assert.Equal(t, float64(i), sample.InX)
	}
}

func TestReattachKeepsExistingRows(t *testing.T) {
	dir := t.TempDir()

	s := NewStore()
	require.NoError(t, s.Attach(Config{DataDir: dir}))
	_, err := s.Record(Sample{FromFrame: "sensor", ToFrame: "body"})
	require.NoError(t, err)
	require.NoError(t, s.Detach())

	s2 := NewStore()
	require.NoError(t, s2.Attach(Config{DataDir: dir}))
	t.Cleanup(func() { s2.Detach() })

	samples, err := s2.List()
	require.NoError(t, err)
	assert.Len(t, samples, 1)
}
