package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing.json"))
	var v map[string]string
	found, err := s.Load(&v)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, New(path).Save(map[string]string{"k": "v"}))

	var v map[string]string
	found, err := New(path).Load(&v)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", v["k"])
}
