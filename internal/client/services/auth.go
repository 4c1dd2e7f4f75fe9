package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/ejcdigital/internal/client/client"
	"github.com/dmitrijs2005/ejcdigital/internal/client/models"
	"github.com/dmitrijs2005/ejcdigital/internal/logging"
	"golang.org/x/text/cases"
)

// ErrInvalidCredentials is returned when no record matches the submitted
// pair. It never tells whether the e-mail or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Sessions is the part of the session manager the login flow writes to.
type Sessions interface {
	Save(ctx context.Context, s *models.UserSession) error
	Clear(ctx context.Context) error
}

// FallbackCredential is the emergency account accepted without reaching the
// fixture store.
var FallbackCredential = models.Credential{
	Email:    "coordenacao@ejc.com",
	Password: "ejc@2025",
	Profile: models.UserSession{
		ID:          "0",
		Name:        "Coordenação EJC",
		Nickname:    "Coordenação",
		Role:        models.RoleCoordinator,
		CurrentTeam: "Coordenação Geral",
	},
}

// AuthService checks credentials and owns the login/logout transitions of
// the session.
type AuthService struct {
	fixtures client.FixtureClient
	sessions Sessions
	fallback *models.Credential
	log      logging.Logger
}

// AuthOption configures an AuthService.
type AuthOption func(*AuthService)

// WithFallback replaces the emergency credential. nil disables it.
func WithFallback(c *models.Credential) AuthOption {
	return func(a *AuthService) { a.fallback = c }
}

func NewAuthService(fixtures client.FixtureClient, sessions Sessions, log logging.Logger, opts ...AuthOption) *AuthService {
	fallback := FallbackCredential
	a := &AuthService{
		fixtures: fixtures,
		sessions: sessions,
		fallback: &fallback,
		log:      log.With("component", "auth"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Login authenticates email/password and saves the resulting session before
// returning it. The fallback credential is tried first and needs no network.
func (a *AuthService) Login(ctx context.Context, email, password string) (*models.UserSession, error) {
	if a.fallback != nil && matches(*a.fallback, email, password) {
		a.log.Info(ctx, "fallback credential accepted")
		return a.open(ctx, a.fallback.Profile)
	}

	users, err := a.fixtures.Users(ctx)
	if err != nil {
		a.log.Error(ctx, "loading credentials failed", "error", err)
		return nil, fmt.Errorf("login: %w", err)
	}

	for _, u := range users {
		if matches(u, email, password) {
			return a.open(ctx, u.Profile)
		}
	}

	a.log.Info(ctx, "login rejected")
	return nil, ErrInvalidCredentials
}

func (a *AuthService) open(ctx context.Context, profile models.UserSession) (*models.UserSession, error) {
	s := profile
	if err := a.sessions.Save(ctx, &s); err != nil {
		a.log.Error(ctx, "saving session failed", "error", err)
		return nil, fmt.Errorf("login: %w", err)
	}
	a.log.Info(ctx, "logged in", "user_id", s.ID)
	return &s, nil
}

// Logout removes the session.
func (a *AuthService) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// matches compares e-mails under Unicode case folding and passwords exactly.
func matches(c models.Credential, email, password string) bool {
	if c.Email == "" {
		return false
	}
	fold := cases.Fold()
	return fold.String(c.Email) == fold.String(email) && c.Password == password
}

// UserMessage is the text the login form shows for a Login error.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrInvalidCredentials) {
		return "E-mail ou senha incorretos. Tente novamente."
	}
	if code, ok := client.StatusCode(err); ok {
		return fmt.Sprintf("Erro no servidor de autenticação (%d).", code)
	}
	switch {
	case errors.Is(err, client.ErrDataFormat), errors.Is(err, client.ErrSchema):
		return "Resposta inválida do servidor de autenticação."
	default:
		return "Erro ao conectar com o servidor de autenticação."
	}
}
