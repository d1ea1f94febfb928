package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"biocat/internal/domain"
	"biocat/internal/store"
)

// AuthService gates the dashboard behind the single configured credential
// pair. State is persisted so a restart keeps the operator logged in.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*domain.Session, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) domain.Session
}

type authService struct {
	username     string
	passwordHash []byte
	kv           store.Store
	logger       logrus.FieldLogger
}

func NewAuthService(kv store.Store, username, password string, logger logrus.FieldLogger) (AuthService, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, fmt.Errorf("auth credentials are not configured")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return &authService{
		username:     username,
		passwordHash: hash,
		kv:           kv,
		logger:       logger,
	}, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passwordOK := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil
	if !usernameOK || !passwordOK {
		return nil, domain.ErrInvalidCredentials
	}

	session := domain.Session{
		IsAuthenticated: true,
		User:            &domain.User{Username: s.username},
	}
	if err := store.SetJSON(ctx, s.kv, store.KeyAuth, session); err != nil {
		// login still succeeds in memory; the session just won't survive a restart
		s.logger.Warnf("persist session: %v", err)
	}
	return &session, nil
}

func (s *authService) Logout(ctx context.Context) error {
	if err := s.kv.Remove(ctx, store.KeyAuth); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *authService) Current(ctx context.Context) domain.Session {
	var session domain.Session
	ok, err := store.GetJSON(ctx, s.kv, store.KeyAuth, &session, s.logger)
	if err != nil {
		s.logger.Warnf("read session: %v", err)
	}
	if !ok || !session.IsAuthenticated || session.User == nil {
		return domain.Session{}
	}
	return session
}
