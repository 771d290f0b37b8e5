package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/navfer/DamGram-Servidor/internal/apperr"
	"github.com/navfer/DamGram-Servidor/internal/auth"
	"github.com/navfer/DamGram-Servidor/internal/routes"
	"github.com/navfer/DamGram-Servidor/model"
)

// In-memory stand-ins for the Mongo repositories. forcedErr simulates an
// unreachable store.
type fakeUserRepo struct {
	users     []model.User
	forcedErr error
}

func (f *fakeUserRepo) All(context.Context) ([]model.User, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	return f.users, nil
}

func (f *fakeUserRepo) ByID(_ context.Context, id bson.ObjectID) (model.User, error) {
	if f.forcedErr != nil {
		return model.User{}, f.forcedErr
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, apperr.ErrNotFound
}

func (f *fakeUserRepo) ByUsername(_ context.Context, username string) (model.User, error) {
	if f.forcedErr != nil {
		return model.User{}, f.forcedErr
	}
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, apperr.ErrNotFound
}

func (f *fakeUserRepo) Create(_ context.Context, u model.User) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.users = append(f.users, u)
	return nil
}

type fakePostRepo struct {
	posts     []model.Post
	forcedErr error
}

func (f *fakePostRepo) All(context.Context) ([]model.Post, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	return f.posts, nil
}

func (f *fakePostRepo) ByID(_ context.Context, id bson.ObjectID) (model.Post, error) {
	if f.forcedErr != nil {
		return model.Post{}, f.forcedErr
	}
	for _, p := range f.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Post{}, apperr.ErrNotFound
}

func (f *fakePostRepo) ByAuthor(_ context.Context, userID bson.ObjectID) ([]model.Post, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	var out []model.Post
	for _, p := range f.posts {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePostRepo) Create(_ context.Context, p model.Post) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	f.posts = append(f.posts, p)
	return nil
}

func (f *fakePostRepo) AddComment(_ context.Context, postID bson.ObjectID, c model.Comment) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	for i := range f.posts {
		if f.posts[i].ID == postID {
			f.posts[i].Comments = append(f.posts[i].Comments, c)
			return nil
		}
	}
	return apperr.ErrNotFound
}

func (f *fakePostRepo) AddLike(_ context.Context, postID, userID bson.ObjectID) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	for i := range f.posts {
		if f.posts[i].ID == postID {
			f.posts[i].Likes = append(f.posts[i].Likes, model.Like{UserID: userID})
			return nil
		}
	}
	return apperr.ErrNotFound
}

func testIssuer() auth.TokenIssuer {
	return auth.TokenIssuer{
		Secret:   []byte("handler-test-secret"),
		Issuer:   "damgram",
		Audience: "damgram-clients",
		TTL:      time.Hour,
	}
}

func newTestApp(users *fakeUserRepo, posts *fakePostRepo) *fiber.App {
	app := fiber.New()
	routes.Register(app, routes.Deps{
		Users:  users,
		Posts:  posts,
		Issuer: testIssuer(),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func doText(t *testing.T, app *fiber.App, method, path, body, token string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "text/plain")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
