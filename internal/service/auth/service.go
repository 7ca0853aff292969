// Package auth реализует учётные записи back-office и сессии.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/vladislavdragonenkov/retail-backoffice/internal/domain"
)

const (
	minPasswordLen = 6
	// adminSuffix — суффикс почтового домена, дающий административную роль.
	adminSuffix = ".admin"
)

// Service описывает сценарии аутентификации.
type Service interface {
	// Register создаёт учётную запись. Занятый email отклоняется
	// с ErrUserExists.
	Register(ctx context.Context, email, name, password string) error
	// Login проверяет пароль и создаёт сессию. Неизвестный email и
	// неверный пароль неразличимы для вызывающего кода.
	Login(ctx context.Context, email, password string) (domain.Session, error)
	Logout(ctx context.Context, token string) error
	// Session возвращает активную сессию по токену.
	Session(ctx context.Context, token string) (domain.Session, error)
}

type service struct {
	users      domain.UserRepository
	sessions   domain.SessionStore
	sessionTTL time.Duration
	logger     *log.Entry
}

// New создаёт сервис аутентификации.
func New(users domain.UserRepository, sessions domain.SessionStore, sessionTTL time.Duration, logger *log.Entry) Service {
	if logger == nil {
		logger = log.New().WithField("component", "auth-service")
	}
	return &service{users: users, sessions: sessions, sessionTTL: sessionTTL, logger: logger}
}

func (s *service) Register(ctx context.Context, email, name, password string) error {
	if email == "" {
		return fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrEmailRequired)
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrPasswordTooShort)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}
	user.SetKeys()

	if err := s.users.Insert(ctx, user); err != nil {
		if errors.Is(err, domain.ErrKeyExists) {
			return fmt.Errorf("user %s: %w", email, domain.ErrUserExists)
		}
		return fmt.Errorf("insert user: %w", err)
	}

	s.logger.WithField("email", email).Info("user registered")
	return nil
}

func (s *service) Login(ctx context.Context, email, password string) (domain.Session, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Session{}, domain.ErrInvalidCredentials
		}
		return domain.Session{}, fmt.Errorf("load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	session := domain.Session{
		Token:     uuid.NewString(),
		Email:     user.Email,
		Role:      RoleFor(user.Email),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Put(ctx, session, s.sessionTTL); err != nil {
		return domain.Session{}, fmt.Errorf("store session: %w", err)
	}

	s.logger.WithFields(log.Fields{
		"email": session.Email,
		"role":  session.Role,
	}).Info("user logged in")
	return session, nil
}

func (s *service) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *service) Session(ctx context.Context, token string) (domain.Session, error) {
	return s.sessions.Get(ctx, token)
}

// RoleFor вычисляет роль по адресу почты: домен с суффиксом ".admin"
// даёт административную роль. Роль фиксируется в сессии при входе.
func RoleFor(email string) domain.Role {
	if strings.HasSuffix(email, adminSuffix) {
		return domain.RoleAdmin
	}
	return domain.RoleUser
}

var _ Service = (*service)(nil)
