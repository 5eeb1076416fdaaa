package cli

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Ramsha-Haris/table/internal/api"
	"github.com/Ramsha-Haris/table/internal/branding"
	"github.com/Ramsha-Haris/table/internal/config"
	"github.com/Ramsha-Haris/table/internal/logging"
	"github.com/Ramsha-Haris/table/internal/notify"
	"github.com/Ramsha-Haris/table/internal/session"
)

// app is everything a command needs for one run.
type app struct {
	settings config.Settings
	log      *logrus.Logger
	notifier notify.Notifier
	clock    clockwork.Clock
	client   *api.Client
	session  *session.Store
	storage  *session.FileStorage
	cookies  *session.CookieFile
	jar      http.CookieJar
	tabDir   string

	// forget is set by logout so the post-run hook does not write the
	// session cookie back.
	forget bool
}

var (
	current *app

	// clock is replaced by tests.
	clock clockwork.Clock = clockwork.NewRealClock()
)

var (
	errNotLoggedIn = errors.New("not logged in")
	errNotHost     = errors.New("this command is only available to hosts")
)

func setup(cmd *cobra.Command) error {
	config.Load()
	s := config.Current()
	if flagTab != "" {
		s.Tab = flagTab
	}
	if flagVerbose {
		s.LogLevel = "debug"
	}

	log := logging.New(cmd.ErrOrStderr(), s.LogLevel)

	tabDir, err := session.TabDir(config.Dir(), s.Tab)
	if err != nil {
		return err
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return fmt.Errorf("creating cookie jar: %w", err)
	}
	client, err := api.New(s.APIURL,
		api.WithHTTPClient(&http.Client{Jar: jar, Timeout: s.Timeout}),
		api.WithLogger(log),
		api.WithUserAgent(branding.CLIName()+"/"+buildVersion),
	)
	if err != nil {
		return fmt.Errorf("configuring API client: %w", err)
	}

	cookies := session.NewCookieFile(tabDir)
	if err := cookies.Restore(jar, client.BaseURL()); err != nil {
		log.WithError(err).Warn("ignoring saved cookies")
	}
	storage := session.NewFileStorage(tabDir)

	current = &app{
		settings: s,
		log:      log,
		notifier: notify.NewConsole(cmd.ErrOrStderr()),
		clock:    clock,
		client:   client,
		session:  session.New(storage, client, log),
		storage:  storage,
		cookies:  cookies,
		jar:      jar,
		tabDir:   tabDir,
	}
	return nil
}

func (a *app) persistCookies() {
	if a.forget {
		return
	}
	if err := a.cookies.Persist(a.jar, a.client.BaseURL()); err != nil {
		a.log.WithError(err).Warn("saving cookies")
	}
}

// requireLogin fails unless the tab holds a user.
func (a *app) requireLogin() error {
	if !a.session.IsLoggedIn() {
		return fmt.Errorf("%w: run '%s login' first", errNotLoggedIn, branding.CLIName())
	}
	return nil
}

// requireHost fails unless the tab holds a host.
func (a *app) requireHost() error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if !a.session.User().IsHost() {
		return errNotHost
	}
	return nil
}
