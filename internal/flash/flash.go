// Package flash keeps one-time notices in the visitor's session until the
// next page that displays them.
package flash

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const sessionKey = "_flashes"

// Store reads and writes flash notices through a fiber session store.
type Store struct {
	sessions *session.Store
}

// New wraps sessions.
func New(sessions *session.Store) *Store {
	return &Store{sessions: sessions}
}

// Add queues msg for the next rendered page.
func (s *Store) Add(c *fiber.Ctx, msg string) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	queued, _ := sess.Get(sessionKey).(string)
	if queued != "" {
		queued += "\n"
	}
	sess.Set(sessionKey, queued+msg)
	if err := sess.Save(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Pop returns the queued notices and clears them.
func (s *Store) Pop(c *fiber.Ctx) ([]string, error) {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	queued, _ := sess.Get(sessionKey).(string)
	if queued == "" {
		return nil, nil
	}
	sess.Delete(sessionKey)
	if err := sess.Save(); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return strings.Split(queued, "\n"), nil
}
