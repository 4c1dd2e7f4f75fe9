package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/ejcdigital/internal/client/client"
	"github.com/dmitrijs2005/ejcdigital/internal/client/models"
	"github.com/dmitrijs2005/ejcdigital/internal/client/repositories/kv"
	"github.com/dmitrijs2005/ejcdigital/internal/client/session"
	"github.com/dmitrijs2005/ejcdigital/internal/client/storage"
	"github.com/dmitrijs2005/ejcdigital/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func credential(email, password, name string) models.Credential {
	return models.Credential{Email: email, Password: password, Profile: models.UserSession{ID: name, Name: name}}
}

func TestLogin_FallbackWithoutNetwork(t *testing.T) {
	f := &fakeFixtures{UsersErr: fmt.Errorf("users.json: %w", client.ErrConnection)}
	s := &fakeSessions{}
	a := NewAuthService(f, s, logging.Discard())

	got, err := a.Login(context.Background(), "COORDENACAO@ejc.com", FallbackCredential.Password)

	require.NoError(t, err)
	assert.Equal(t, FallbackCredential.Profile.Name, got.Name)
	assert.Equal(t, 0, f.UsersCalls, "fallback must not touch the fixture store")
	require.Len(t, s.Saved, 1)
	assert.Equal(t, got.ID, s.Saved[0].ID)
}

func TestLogin_FallbackPasswordIsExact(t *testing.T) {
	f := &fakeFixtures{}
	a := NewAuthService(f, &fakeSessions{}, logging.Discard())

	_, err := a.Login(context.Background(), FallbackCredential.Email, "EJC@2025")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, 1, f.UsersCalls)
}

func TestLogin_FallbackDisabled(t *testing.T) {
	f := &fakeFixtures{}
	a := NewAuthService(f, &fakeSessions{}, logging.Discard(), WithFallback(nil))

	_, err := a.Login(context.Background(), FallbackCredential.Email, FallbackCredential.Password)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_RemoteMatch(t *testing.T) {
	f := &fakeFixtures{UsersRet: []models.Credential{
		credential("maria@ejc.com", "123", "Maria"),
		credential("joao@ejc.com", "abc", "João"),
	}}
	s := &fakeSessions{}
	a := NewAuthService(f, s, logging.Discard())

	got, err := a.Login(context.Background(), "Joao@EJC.com", "abc")

	require.NoError(t, err)
	assert.Equal(t, "João", got.Name)
	require.Len(t, s.Saved, 1)
	assert.Equal(t, "João", s.Saved[0].Name)
}

func TestLogin_UnicodeCaseFolding(t *testing.T) {
	f := &fakeFixtures{UsersRet: []models.Credential{credential("joão@ejc.com", "abc", "João")}}
	a := NewAuthService(f, &fakeSessions{}, logging.Discard())

	got, err := a.Login(context.Background(), "JOÃO@EJC.COM", "abc")
	require.NoError(t, err)
	assert.Equal(t, "João", got.Name)
}

func TestLogin_SameMessageForWrongPasswordAndUnknownEmail(t *testing.T) {
	f := &fakeFixtures{UsersRet: []models.Credential{credential("maria@ejc.com", "123", "Maria")}}
	a := NewAuthService(f, &fakeSessions{}, logging.Discard())
	ctx := context.Background()

	_, errWrongPassword := a.Login(ctx, "maria@ejc.com", "nope")
	_, errUnknownEmail := a.Login(ctx, "ninguem@ejc.com", "123")

	require.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, errUnknownEmail, ErrInvalidCredentials)
	assert.Equal(t, UserMessage(errWrongPassword), UserMessage(errUnknownEmail))
	assert.Equal(t, "E-mail ou senha incorretos. Tente novamente.", UserMessage(errWrongPassword))
}

func TestLogin_SkipsRecordsWithoutEmail(t *testing.T) {
	f := &fakeFixtures{UsersRet: []models.Credential{credential("", "", "ghost")}}
	a := NewAuthService(f, &fakeSessions{}, logging.Discard(), WithFallback(nil))

	_, err := a.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_FixtureErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		target  error
		message string
	}{
		{"connection", fmt.Errorf("users.json: %w", client.ErrConnection), client.ErrConnection, "Erro ao conectar com o servidor de autenticação."},
		{"server", &client.StatusError{Resource: client.ResourceUsers, Code: 503}, client.ErrServer, "Erro no servidor de autenticação (503)."},
		{"data format", fmt.Errorf("users.json: %w", client.ErrDataFormat), client.ErrDataFormat, "Resposta inválida do servidor de autenticação."},
		{"schema", fmt.Errorf("users.json: %w", client.ErrSchema), client.ErrSchema, "Resposta inválida do servidor de autenticação."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &fakeSessions{}
			a := NewAuthService(&fakeFixtures{UsersErr: tt.err}, s, logging.Discard())

			_, err := a.Login(context.Background(), "x@y.com", "p")

			assert.ErrorIs(t, err, tt.target)
			assert.Equal(t, tt.message, UserMessage(err))
			assert.Empty(t, s.Saved)
		})
	}
}

func TestLogin_SaveFailure(t *testing.T) {
	boom := errors.New("disk full")
	a := NewAuthService(&fakeFixtures{}, &fakeSessions{SaveErr: boom}, logging.Discard())

	_, err := a.Login(context.Background(), FallbackCredential.Email, FallbackCredential.Password)
	assert.ErrorIs(t, err, boom)
}

func TestLogin_IdempotentStoredContent(t *testing.T) {
	f := &fakeFixtures{UsersRet: []models.Credential{credential("a@b.com", "x", "A")}}
	s := &fakeSessions{}
	a := NewAuthService(f, s, logging.Discard())
	ctx := context.Background()

	_, err := a.Login(ctx, "a@b.com", "x")
	require.NoError(t, err)
	_, err = a.Login(ctx, "a@b.com", "x")
	require.NoError(t, err)

	require.Len(t, s.Saved, 2)
	assert.Equal(t, s.Saved[0], s.Saved[1])
}

func TestLogout(t *testing.T) {
	s := &fakeSessions{}
	a := NewAuthService(&fakeFixtures{}, s, logging.Discard())
	require.NoError(t, a.Logout(context.Background()))
	assert.Equal(t, 1, s.Cleared)

	s.ClearErr = errors.New("locked")
	assert.Error(t, a.Logout(context.Background()))
}

func TestUserMessage_Nil(t *testing.T) {
	assert.Empty(t, UserMessage(nil))
}

// End to end over HTTP and SQLite: a case-differing e-mail logs in and the
// stored session holds the name but no password.
func TestLogin_StoredSessionHasNoPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"email":"a@b.com","password":"x","name":"A"}]`))
	}))
	defer srv.Close()

	ctx := context.Background()
	db, err := storage.Open(ctx, ":memory:")
	require.NoError(t, err)
	defer db.Close()

	sessions := session.NewManager(session.NewSQLStore(db), logging.Discard())
	fixtures := client.NewHTTPFixtureClient(srv.URL, srv.Client(), logging.Discard())
	a := NewAuthService(fixtures, sessions, logging.Discard())

	got, err := a.Login(ctx, "A@B.com", "x")
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)

	raw, err := kv.NewSQLiteRepository(db).Get(ctx, session.Key)
	require.NoError(t, err)

	var stored map[string]any
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.Equal(t, "A", stored["name"])
	assert.NotContains(t, stored, "password")
	assert.Equal(t, "a@b.com", stored["email"], "fields of the source record other than the password are kept")

	restored, err := session.NewManager(session.NewSQLStore(db), logging.Discard()).Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A", restored.Name)
}
