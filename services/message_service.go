package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/nantel10/code-baba/models"
	"github.com/nantel10/code-baba/storage"
)

// The log keeps only the most recent messages; older ones fall off.
const maxMessages = 50

type MessageService struct {
	store *storage.Store

	mu       sync.Mutex
	messages []models.Message // newest first
}

func NewMessageService(store *storage.Store) (*MessageService, error) {
	s := &MessageService{store: store}
	if _, err := store.Load(&s.messages); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *MessageService) Append(text, sender string) (models.Message, error) {
	if sender == "" {
		sender = "Admin"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	msg := models.Message{
		ID:     fmt.Sprintf("%d", now.UnixNano()),
		Text:   text,
		Sender: sender,
		SentAt: now,
	}
	s.messages = append([]models.Message{msg}, s.messages...)
	if len(s.messages) > maxMessages {
		s.messages = s.messages[:maxMessages]
	}
	if err := s.store.Save(s.messages); err != nil {
		s.messages = s.messages[1:]
		return models.Message{}, err
	}
	return msg, nil
}

// Recent returns the log newest-first.
func (s *MessageService) Recent() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out
}
