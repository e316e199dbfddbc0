package services

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/nantel10/code-baba/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMessages(t *testing.T) *MessageService {
	t.Helper()
	s, err := NewMessageService(storage.New(filepath.Join(t.TempDir(), "messages.json")))
	require.NoError(t, err)
	return s
}

func TestAppendNewestFirst(t *testing.T) {
	s := newTestMessages(t)

	_, err := s.Append("first", "Admin")
	require.NoError(t, err)
	second, err := s.Append("second", "Admin")
	require.NoError(t, err)

	recent := s.Recent()
	require.Len(t, recent, 2)
	assert.Equal(t, second.ID, recent[0].ID)
	assert.Equal(t, "second", recent[0].Text)
	assert.Equal(t, "first", recent[1].Text)
}

func TestAppendDefaultSender(t *testing.T) {
	s := newTestMessages(t)

	msg, err := s.Append("hello", "")
	require.NoError(t, err)
	assert.Equal(t, "Admin", msg.Sender)
}

func TestLogCappedAtFifty(t *testing.T) {
	s := newTestMessages(t)

	for i := 0; i < 55; i++ {
		_, err := s.Append(fmt.Sprintf("msg %d", i), "Admin")
		require.NoError(t, err)
	}

	recent := s.Recent()
	require.Len(t, recent, 50)
	assert.Equal(t, "msg 54", recent[0].Text)
	assert.Equal(t, "msg 5", recent[49].Text)
}

func TestMessagesPersistAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.json")

	s, err := NewMessageService(storage.New(path))
	require.NoError(t, err)
	_, err = s.Append("survives restart", "Admin")
	require.NoError(t, err)

	reloaded, err := NewMessageService(storage.New(path))
	require.NoError(t, err)
	recent := reloaded.Recent()
	require.Len(t, recent, 1)
	assert.Equal(t, "survives restart", recent[0].Text)
}
