package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/navfer/DamGram-Servidor/dto"
	"github.com/navfer/DamGram-Servidor/internal/auth"
	"github.com/navfer/DamGram-Servidor/model"
)

func registeredUser(t *testing.T, username, password string) model.User {
	t.Helper()
	hashed, err := auth.HashPassword(password)
	require.NoError(t, err)
	return model.User{ID: bson.NewObjectID(), Username: username, PasswordHash: hashed}
}

func TestLogin(t *testing.T) {
	users := &fakeUserRepo{users: []model.User{registeredUser(t, "ana", "pw1")}}
	app := newTestApp(users, &fakePostRepo{})

	resp := doJSON(t, app, http.MethodPost, "/auth/login",
		dto.LoginRequest{Username: "ana", Password: "pw1"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	tok := decode[dto.TokenResponse](t, resp)
	require.NotEmpty(t, tok.Token)

	username, err := testIssuer().Validate(tok.Token)
	require.NoError(t, err)
	assert.Equal(t, "ana", username)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	users := &fakeUserRepo{users: []model.User{registeredUser(t, "ana", "pw1")}}
	app := newTestApp(users, &fakePostRepo{})

	// Wrong password and unknown username report identically.
	wrongPw := doJSON(t, app, http.MethodPost, "/auth/login",
		dto.LoginRequest{Username: "ana", Password: "wrong"}, "")
	unknown := doJSON(t, app, http.MethodPost, "/auth/login",
		dto.LoginRequest{Username: "nobody", Password: "pw1"}, "")

	assert.Equal(t, http.StatusUnauthorized, wrongPw.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, unknown.StatusCode)

	wrongBody := decode[dto.ErrorResponse](t, wrongPw)
	unknownBody := decode[dto.ErrorResponse](t, unknown)
	assert.Equal(t, wrongBody.Error, unknownBody.Error)
}

func TestMe(t *testing.T) {
	users := &fakeUserRepo{users: []model.User{registeredUser(t, "ana", "pw1")}}
	app := newTestApp(users, &fakePostRepo{})

	token, err := testIssuer().Issue("ana")
	require.NoError(t, err)

	resp := doJSON(t, app, http.MethodGet, "/auth/me", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[map[string]string](t, resp)
	assert.Equal(t, "ana", body["username"])
}

func TestMe_RejectsBadTokens(t *testing.T) {
	app := newTestApp(&fakeUserRepo{}, &fakePostRepo{})

	// No token at all.
	resp := doJSON(t, app, http.MethodGet, "/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Signed by someone else.
	foreign := testIssuer()
	foreign.Secret = []byte("not-the-server-secret")
	token, err := foreign.Issue("ana")
	require.NoError(t, err)

	resp = doJSON(t, app, http.MethodGet, "/auth/me", nil, token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
