package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemory()

	_, found, err := s.Get("missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set("k", []byte(`{"a":1}`)))
	b, found, err := s.Get("k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"a":1}`, string(b))

	require.NoError(t, s.Remove("k"))
	_, found, _ = s.Get("k")
	assert.False(t, found)
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	s := NewMemory()

	in := []byte("abc")
	require.NoError(t, s.Set("k", in))
	in[0] = 'z'

	out, _, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))

	out[0] = 'z'
	again, _, _ := s.Get("k")
	assert.Equal(t, "abc", string(again))
}

func TestLoadJSON(t *testing.T) {
	s := NewMemory()

	type doc struct {
		Name string `json:"name"`
	}

	var v doc
	assert.False(t, LoadJSON(s, "missing", &v))

	require.NoError(t, s.Set("bad", []byte("{truncated")))
	v = doc{Name: "untouched"}
	// Corruption is swallowed and the destination keeps its value.
	assert.False(t, LoadJSON(s, "bad", &v))
	assert.Equal(t, "untouched", v.Name)

	require.NoError(t, SaveJSON(s, "good", doc{Name: "saved"}))
	var got doc
	assert.True(t, LoadJSON(s, "good", &got))
	assert.Equal(t, "saved", got.Name)
}
