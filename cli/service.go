package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/viant/docauth"
	"github.com/viant/docauth/config"
	"github.com/viant/docauth/console"
	"github.com/viant/docauth/i18n"
	"github.com/viant/docauth/schedule"
	"github.com/viant/docauth/session"
	"github.com/viant/docauth/store"
	"github.com/viant/scy"
	"github.com/viant/scy/cred"
)

// Service runs terminal actions against one bridge
type Service struct {
	options   *Options
	config    *config.Config
	writer    io.Writer
	clipboard session.Clipboard
	scheduler *schedule.Manual
	console   *console.Console
	jar       *session.Jar
	bridge    *docauth.Bridge
}

// Login authenticates with flag or secret credentials
func (s *Service) Login(ctx context.Context) error {
	email, password, err := s.credentials(ctx)
	if err != nil {
		return err
	}
	s.bridge.Start(ctx, nil)
	if _, err = s.bridge.Machine().Login(ctx, email, password); err != nil {
		return err
	}
	s.scheduler.Advance(s.config.LoginPropagationDelay)
	return nil
}

// Logout ends the session and drops endpoint cookies
func (s *Service) Logout(ctx context.Context) error {
	s.bridge.Start(ctx, nil)
	err := s.bridge.Machine().Logout(ctx)
	if resetErr := s.jar.Reset(ctx); resetErr != nil {
		slog.Debug("failed to reset cookies", "error", resetErr)
	}
	return err
}

// Status prints the restored session state
func (s *Service) Status(ctx context.Context) error {
	s.bridge.Start(ctx, nil)
	return nil
}

// Copy copies the stored token
func (s *Service) Copy(ctx context.Context) error {
	s.bridge.Start(ctx, nil)
	err := s.bridge.Machine().CopyToken(ctx)
	s.bridge.Reconciler().DismissAll()
	return err
}

// Call issues a try it out request through the documentation console
func (s *Service) Call(ctx context.Context, method, path string, body io.Reader) error {
	if s.console == nil {
		return fmt.Errorf("failed to call %v %v: OpenAPI document was not configured", method, path)
	}
	restored := s.bridge.Start(ctx, nil)
	s.scheduler.Advance(s.config.RestorePropagationDelay)
	if restored != nil && len(s.console.Authorized()) == 0 {
		s.bridge.Negotiator().Propagate(restored.Token)
	}
	response, err := s.console.Do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	_, _ = fmt.Fprintf(s.writer, "%s %s: %s\n", strings.ToUpper(method), path, response.Status)
	_, err = io.Copy(s.writer, response.Body)
	return err
}

func (s *Service) credentials(ctx context.Context) (string, string, error) {
	email, password := s.options.Email, s.options.Password
	if s.options.Secret == "" {
		return email, password, nil
	}
	resource := scy.NewResource(&cred.Basic{}, s.options.Secret, s.options.SecretKey)
	secret, err := scy.New().Load(ctx, resource)
	if err != nil {
		return "", "", fmt.Errorf("failed to load credentials %v: %w", s.options.Secret, err)
	}
	basic, ok := secret.Target.(*cred.Basic)
	if !ok {
		return "", "", fmt.Errorf("failed to load credentials %v: unexpected type %T", s.options.Secret, secret.Target)
	}
	if email == "" {
		email = basic.Username
	}
	if password == "" {
		password = basic.Password
	}
	return email, password, nil
}

// envLanguage converts POSIX locale, i.e. ko_KR.UTF-8, to a language tag
func envLanguage() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := os.Getenv(name)
		if index := strings.IndexAny(value, ".@"); index != -1 {
			value = value[:index]
		}
		if value != "" && value != "C" && value != "POSIX" {
			return strings.ReplaceAll(value, "_", "-")
		}
	}
	return ""
}

// New creates a service; clipboard nil uses the system clipboard
func New(ctx context.Context, options *Options, writer io.Writer, clipboard session.Clipboard) (*Service, error) {
	var base *config.Config
	if options.ConfigURL != "" {
		loaded, err := config.Load(ctx, options.ConfigURL)
		if err != nil {
			return nil, err
		}
		base = loaded
	}
	cfg := options.Config(base)
	resolver := i18n.New()
	if cfg.Language == "" {
		cfg.Language = resolver.Match(envLanguage())
	}
	cfg.Init()
	if clipboard == nil {
		clipboard = systemClipboard{}
	}
	level := slog.LevelWarn
	if options.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ret := &Service{
		options:   options,
		config:    cfg,
		writer:    writer,
		clipboard: clipboard,
		scheduler: schedule.NewManual(time.Now()),
	}
	backend := store.NewBackend(cfg)
	jar, err := session.NewJar(ctx, backend, session.WithJarLogger(logger))
	if err != nil {
		return nil, err
	}
	ret.jar = jar
	bridgeOptions := []docauth.Option{
		docauth.WithBackend(backend),
		docauth.WithClipboard(clipboard),
		docauth.WithSurface(NewTerminal(writer)),
		docauth.WithScheduler(ret.scheduler),
		docauth.WithHTTPClient(&http.Client{Jar: jar}),
		docauth.WithResolver(resolver),
		docauth.WithLogger(logger),
	}
	if cfg.OpenAPIURL != "" {
		if ret.console, err = console.Load(ctx, cfg.OpenAPIURL, console.WithLogger(logger)); err != nil {
			return nil, err
		}
		bridgeOptions = append(bridgeOptions, docauth.WithAuthorizer(ret.console))
	}
	if ret.bridge, err = docauth.New(cfg, bridgeOptions...); err != nil {
		return nil, err
	}
	return ret, nil
}
