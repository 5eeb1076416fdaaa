package account

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsha-Haris/table/internal/api"
	"github.com/Ramsha-Haris/table/internal/logging"
	"github.com/Ramsha-Haris/table/internal/nav"
	"github.com/Ramsha-Haris/table/internal/notify"
	"github.com/Ramsha-Haris/table/internal/session"
)

func newFlows(t *testing.T, h http.Handler) (*Flows, *session.Store, *notify.Recorder) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	client, err := api.New(srv.URL)
	require.NoError(t, err)
	store := session.New(&session.MemoryStorage{}, client, logging.Discard())
	rec := &notify.Recorder{}
	return New(client, store, rec, logging.Discard()), store, rec
}

func TestLoginSuccess(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"user":       map[string]any{"id": "u1", "firstName": "Ali", "userType": "host"},
			"redirectTo": nav.HostTables,
		})
	})
	flows, store, rec := newFlows(t, mux)

	redirect := flows.Login(context.Background(), LoginInput{Email: "ali@example.com", Password: "pw"})
	require.NotNil(t, redirect)
	assert.Equal(t, nav.HostTables, redirect.To)
	assert.Equal(t, LoginDelay, redirect.Delay)
	assert.True(t, store.IsLoggedIn())
	assert.True(t, store.User().IsHost())

	last, _ := rec.Last()
	assert.Equal(t, notify.Entry{Level: notify.LevelSuccess, Message: "Login successful!"}, last)
}

func TestLoginDefaultsToBookings(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user":{"id":"u2","firstName":"Sara","userType":"user"}}`))
	})
	flows, _, _ := newFlows(t, mux)

	redirect := flows.Login(context.Background(), LoginInput{Email: "sara@example.com", Password: "pw"})
	require.NotNil(t, redirect)
	assert.Equal(t, nav.Bookings, redirect.To)
}

func TestLoginFailureMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"server message", `{"message":"Invalid credentials"}`, "Invalid credentials"},
		{"no message", `{}`, "Login failed. Please try again."},
		{"not json", `oops`, "Login failed. Please try again."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(tt.body))
			})
			flows, store, rec := newFlows(t, mux)

			assert.Nil(t, flows.Login(context.Background(), LoginInput{Email: "a@b.co", Password: "x"}))
			assert.False(t, store.IsLoggedIn())
			last, _ := rec.Last()
			assert.Equal(t, notify.Entry{Level: notify.LevelError, Message: tt.want}, last)
		})
	}
}

func TestLoginValidatesInput(t *testing.T) {
	called := false
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) { called = true })
	flows, _, rec := newFlows(t, mux)

	assert.Nil(t, flows.Login(context.Background(), LoginInput{Email: "not-an-email"}))
	assert.False(t, called)
	assert.Equal(t, 1, rec.Count(notify.LevelError))
}

func validSignup() SignupInput {
	return SignupInput{
		FirstName:       "Hina",
		LastName:        "Raza",
		Email:           "hina@example.com",
		Password:        "secret",
		ConfirmPassword: "secret",
		Role:            "user",
		TermsAccepted:   true,
	}
}

func TestSignupClientChecks(t *testing.T) {
	called := false
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/signup", func(w http.ResponseWriter, r *http.Request) { called = true })
	flows, _, _ := newFlows(t, mux)

	in := validSignup()
	in.ConfirmPassword = "other"
	assert.Equal(t, []string{MsgPasswordMismatch}, flows.Signup(context.Background(), in).Errors)

	in = validSignup()
	in.TermsAccepted = false
	assert.Equal(t, []string{MsgTermsRequired}, flows.Signup(context.Background(), in).Errors)

	in = validSignup()
	in.Role = "admin"
	assert.NotEmpty(t, flows.Signup(context.Background(), in).Errors)

	assert.False(t, called)
}

func TestSignupSuccess(t *testing.T) {
	var got api.SignupRequest
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	})
	flows, _, rec := newFlows(t, mux)

	res := flows.Signup(context.Background(), validSignup())
	require.NotNil(t, res.Redirect)
	assert.Equal(t, nav.After(nav.Login, SignupDelay), res.Redirect)
	assert.Equal(t, "on", got.TermsAccepted)
	assert.Equal(t, "user", got.UserType)
	last, _ := rec.Last()
	assert.Equal(t, "Signup successful! Redirecting...", last.Message)
}

func TestSignupServerErrors(t *testing.T) {
	t.Run("errors array shown inline", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/auth/signup", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"errors":[{"msg":"Email already registered"},"Password too short"]}`))
		})
		flows, _, rec := newFlows(t, mux)

		res := flows.Signup(context.Background(), validSignup())
		assert.Equal(t, []string{"Email already registered", "Password too short"}, res.Errors)
		assert.Nil(t, res.Redirect)
		assert.Equal(t, 0, rec.Count(notify.LevelError))
	})

	t.Run("message notified", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/auth/signup", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		flows, _, rec := newFlows(t, mux)

		res := flows.Signup(context.Background(), validSignup())
		assert.Empty(t, res.Errors)
		last, _ := rec.Last()
		assert.Equal(t, notify.Entry{Level: notify.LevelError, Message: "Signup failed"}, last)
	})
}
