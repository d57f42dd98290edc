// Package auth is the opaque boundary to the external authentication
// backend. The core only asks two things of it: is there a current user, and
// notify me on sign-in/sign-out. Tokens are issued elsewhere; this package
// just validates and persists them.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/UniStayTeam/resident-service/internal/platform/logger"
	"github.com/UniStayTeam/resident-service/internal/storage"
)

const sessionKey = "session"

var (
	ErrNoSession    = errors.New("no active session")
	ErrInvalidToken = errors.New("invalid session token")
)

type State string

const (
	StateSignedIn  State = "signed_in"
	StateSignedOut State = "signed_out"
)

type Listener func(State)

type Session struct {
	store  storage.Store
	secret []byte
	log    logger.Logger

	mu        sync.Mutex
	listeners []Listener
}

func NewSession(store storage.Store, secret string, log logger.Logger) *Session {
	return &Session{store: store, secret: []byte(secret), log: log}
}

// SignIn validates and persists the backend-issued token, then notifies
// subscribers.
func (s *Session) SignIn(ctx context.Context, token string) error {
	if _, err := s.parse(token); err != nil {
		return err
	}
	if err := s.store.Set(ctx, sessionKey, []byte(token)); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	s.notify(StateSignedIn)
	return nil
}

func (s *Session) SignOut(ctx context.Context) error {
	if err := s.store.Delete(ctx, sessionKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.notify(StateSignedOut)
	return nil
}

// CurrentUser returns the signed-in subject, or ErrNoSession. An expired
// token counts as no session.
func (s *Session) CurrentUser(ctx context.Context) (string, error) {
	raw, err := s.store.Get(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return "", ErrNoSession
		}
		return "", fmt.Errorf("failed to load session: %w", err)
	}
	claims, err := s.parse(string(raw))
	if err != nil {
		s.log.Warnf("auth: stored session token rejected: %v", err)
		return "", ErrNoSession
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrNoSession
	}
	return sub, nil
}

// Subscribe registers an auth-state listener. Listeners are invoked
// synchronously on sign-in and sign-out.
func (s *Session) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

func (s *Session) parse(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}

func (s *Session) notify(state State) {
	s.mu.Lock()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l(state)
	}
}
