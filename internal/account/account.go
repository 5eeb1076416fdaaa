package account

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Ramsha-Haris/table/internal/api"
	"github.com/Ramsha-Haris/table/internal/model"
	"github.com/Ramsha-Haris/table/internal/nav"
	"github.com/Ramsha-Haris/table/internal/notify"
)

// Default redirect delays after a successful flow.
const (
	LoginDelay  = 1500 * time.Millisecond
	SignupDelay = 2 * time.Second
)

// Client messages.
const (
	MsgPasswordMismatch = "Passwords do not match."
	MsgTermsRequired    = "You must accept the terms and conditions."
)

// AuthService is the subset of the API the flows use.
type AuthService interface {
	Login(ctx context.Context, creds api.Credentials) (*api.LoginResponse, error)
	Signup(ctx context.Context, req api.SignupRequest) error
}

// Sessions receives the authenticated user.
type Sessions interface {
	Login(u model.User) error
}

// Flows runs login and signup.
type Flows struct {
	svc         AuthService
	sessions    Sessions
	notifier    notify.Notifier
	log         logrus.FieldLogger
	loginDelay  time.Duration
	signupDelay time.Duration
}

// Option configures Flows.
type Option func(*Flows)

// WithLoginDelay overrides the delay before leaving the login screen.
func WithLoginDelay(d time.Duration) Option {
	return func(f *Flows) { f.loginDelay = d }
}

// WithSignupDelay overrides the delay before leaving the signup screen.
func WithSignupDelay(d time.Duration) Option {
	return func(f *Flows) { f.signupDelay = d }
}

// New returns the flows.
func New(svc AuthService, sessions Sessions, n notify.Notifier, log logrus.FieldLogger, opts ...Option) *Flows {
	f := &Flows{
		svc:         svc,
		sessions:    sessions,
		notifier:    n,
		log:         log,
		loginDelay:  LoginDelay,
		signupDelay: SignupDelay,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// LoginInput is the login form.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Login authenticates, stores the user in the session, and returns the
// redirect to the backend's chosen screen or the booking list. It returns
// nil when login failed; the failure has been notified.
func (f *Flows) Login(ctx context.Context, in LoginInput) *nav.Redirect {
	if err := model.Validator().Struct(in); err != nil {
		f.notifier.Error(joined(model.FieldMessages(err)))
		return nil
	}

	res, err := f.svc.Login(ctx, api.Credentials{Email: in.Email, Password: in.Password})
	if err != nil {
		f.log.WithError(err).WithField("email", in.Email).Warn("login failed")
		f.notifier.Error(api.MessageOr(err, "Login failed. Please try again."))
		return nil
	}
	if res.User == nil {
		f.log.WithField("email", in.Email).Warn("login response carried no user")
		f.notifier.Error(fallback(res.Message, "Login failed. Please try again."))
		return nil
	}

	if err := f.sessions.Login(*res.User); err != nil {
		f.log.WithError(err).Warn("persisting session")
	}
	f.notifier.Success("Login successful!")
	return nav.After(fallback(res.RedirectTo, nav.Bookings), f.loginDelay)
}

// SignupInput is the signup form.
type SignupInput struct {
	FirstName       string `validate:"required"`
	LastName        string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required"`
	ConfirmPassword string
	Role            string `validate:"required,oneof=user host"`
	TermsAccepted   bool
}

// SignupResult is the outcome of Signup. Errors are the inline messages
// shown above the form.
type SignupResult struct {
	Errors   []string
	Redirect *nav.Redirect
}

// Signup checks the form, registers the account, and redirects to login.
func (f *Flows) Signup(ctx context.Context, in SignupInput) SignupResult {
	if in.Password != in.ConfirmPassword {
		return SignupResult{Errors: []string{MsgPasswordMismatch}}
	}
	if !in.TermsAccepted {
		return SignupResult{Errors: []string{MsgTermsRequired}}
	}
	if err := model.Validator().Struct(in); err != nil {
		return SignupResult{Errors: sorted(model.FieldMessages(err))}
	}

	req := api.SignupRequest{
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Email:           in.Email,
		Password:        in.Password,
		ConfirmPassword: in.ConfirmPassword,
		UserType:        in.Role,
		TermsAccepted:   "on",
	}
	if err := f.svc.Signup(ctx, req); err != nil {
		f.log.WithError(err).WithField("email", in.Email).Warn("signup failed")
		if msgs := api.FieldErrors(err); len(msgs) > 0 {
			return SignupResult{Errors: msgs}
		}
		f.notifier.Error(api.MessageOr(err, "Signup failed"))
		return SignupResult{}
	}

	f.notifier.Success("Signup successful! Redirecting...")
	return SignupResult{Redirect: nav.After(nav.Login, f.signupDelay)}
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func sorted(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func joined(m map[string]string) string {
	return strings.Join(sorted(m), "; ")
}
