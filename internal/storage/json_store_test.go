package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONStoreRoundTrip(t *testing.T) {
	store, err := NewJSONStore(t.TempDir(), "profiles.json")
	require.NoError(t, err)
	assert.False(t, store.Exists())

	in := map[string]string{"u1": "Ana"}
	require.NoError(t, store.Save(in))
	assert.True(t, store.Exists())

	out := map[string]string{}
	require.NoError(t, store.Load(&out))
	assert.Equal(t, in, out)
}

func TestJSONStoreLoadMissingFile(t *testing.T) {
	store, err := NewJSONStore(t.TempDir(), "missing.json")
	require.NoError(t, err)

	out := map[string]string{"keep": "me"}
	require.NoError(t, store.Load(&out))
	assert.Equal(t, map[string]string{"keep": "me"}, out)
}

func TestJSONStoreUpdate(t *testing.T) {
	store, err := NewJSONStore(t.TempDir(), "profiles.json")
	require.NoError(t, err)
	require.NoError(t, store.Save(map[string]string{"u1": "Ana"}))

	data := map[string]string{}
	require.NoError(t, store.Update(&data, func() error {
		data["u2"] = "Ben"
		return nil
	}))

	out := map[string]string{}
	require.NoError(t, store.Load(&out))
	assert.Equal(t, map[string]string{"u1": "Ana", "u2": "Ben"}, out)
}

func TestJSONStoreUpdateAbortsOnError(t *testing.T) {
	store, err := NewJSONStore(t.TempDir(), "profiles.json")
	require.NoError(t, err)
	require.NoError(t, store.Save(map[string]string{"u1": "Ana"}))

	data := map[string]string{}
	err = store.Update(&data, func() error {
		data["u1"] = "changed"
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	out := map[string]string{}
	require.NoError(t, store.Load(&out))
	assert.Equal(t, "Ana", out["u1"])
}
