package session

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/zhubert/dirshell/internal/logger"
	"github.com/zhubert/dirshell/internal/tree"
)

// Session is the single owner of a store and its cursor.
type Session struct {
	ID     string
	store  *tree.Store
	cursor tree.Cursor
	log    *slog.Logger
}

// New creates a session holding only the root directory.
func New() *Session {
	id := uuid.New().String()
	s := &Session{
		ID:     id,
		store:  tree.NewStore(),
		cursor: tree.RootCursor(),
		log:    logger.WithSession(id),
	}
	s.log.Debug("session created")
	return s
}

// Store returns the session's directory store.
func (s *Session) Store() *tree.Store {
	return s.store
}

// Cursor returns the current directory.
func (s *Session) Cursor() tree.Cursor {
	return s.cursor
}

// SetCursor replaces the current directory.
func (s *Session) SetCursor(c tree.Cursor) {
	if c != s.cursor {
		s.log.Debug("cursor moved", "from", s.cursor.Path, "to", c.Path, "label", c.Label)
	}
	s.cursor = c
}

// ResetCursor moves the cursor back to root.
func (s *Session) ResetCursor() {
	s.SetCursor(tree.RootCursor())
}

// Clear resets the store to the root directory alone and the cursor to root.
func (s *Session) Clear() {
	dropped := s.store.Len() - 1
	s.store.ResetToRootOnly()
	s.cursor = tree.RootCursor()
	s.log.Info("session cleared", "dropped", dropped)
}

// Logger returns the session-scoped logger.
func (s *Session) Logger() *slog.Logger {
	return s.log
}
