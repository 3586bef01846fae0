package kv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/scholarsync/core/session"
)

func testStorage(t *testing.T, s session.Storage) {
	_, err := s.Get(session.TokenKey)
	assert.Equal(t, session.ErrNotFound, err)

	assert.NoError(t, s.Set(session.TokenKey, "abc"))
	v, err := s.Get(session.TokenKey)
	assert.NoError(t, err)
	assert.Equal(t, "abc", v)

	assert.NoError(t, s.Set(session.TokenKey, "def"))
	v, _ = s.Get(session.TokenKey)
	assert.Equal(t, "def", v)

	assert.NoError(t, s.Remove(session.TokenKey))
	_, err = s.Get(session.TokenKey)
	assert.Equal(t, session.ErrNotFound, err)

	// removing a missing key is not an error
	assert.NoError(t, s.Remove(session.TokenKey))
}

func TestMemoryStorage(t *testing.T) {
	testStorage(t, NewMemoryStorage())
}

func TestBoltStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.db")

	s, err := OpenBoltStorage(path)
	if !assert.NoError(t, err) {
		return
	}
	testStorage(t, s)

	// values survive a reopen
	assert.NoError(t, s.Set(session.TokenKey, "persisted"))
	assert.NoError(t, s.Close())

	s, err = OpenBoltStorage(path)
	if !assert.NoError(t, err) {
		return
	}
	defer s.Close()
	v, err := s.Get(session.TokenKey)
	assert.NoError(t, err)
	assert.Equal(t, "persisted", v)
}
