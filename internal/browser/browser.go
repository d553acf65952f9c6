// Package browser owns the Playwright lifecycle: one Manager per suite, one
// exclusively-owned Session per test case.
package browser

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"

	"github.com/Karthick-71/rr-qa-automation-assignment/internal/config"
)

// ErrSuspendTimeout marks an awaited page or network condition that never
// completed. The owning test is torn down; other tests are unaffected.
var ErrSuspendTimeout = errors.New("suspend timeout")

type Manager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	cfg     config.Browser
	reports config.Reports
	logger  *slog.Logger
}

type Option func(*Manager)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// New starts Playwright and launches the configured engine. The sandbox and
// shm flags match what the platform needs to run inside CI containers.
func New(cfg config.Browser, reports config.Reports, opts ...Option) (*Manager, error) {
	m := &Manager{
		cfg:     cfg,
		reports: reports,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}
	m.pw = pw

	launch := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		Args: []string{
			"--no-sandbox",
			"--disable-dev-shm-usage",
			"--disable-gpu",
			"--disable-extensions",
		},
	}
	if cfg.SlowMoMS > 0 {
		launch.SlowMo = playwright.Float(cfg.SlowMoMS)
	}

	var bt playwright.BrowserType
	switch strings.ToLower(cfg.Name) {
	case "chromium", "":
		bt = pw.Chromium
	case "firefox":
		bt = pw.Firefox
	case "webkit":
		bt = pw.WebKit
	default:
		_ = pw.Stop()
		return nil, fmt.Errorf("unsupported browser %q", cfg.Name)
	}

	browser, err := bt.Launch(launch)
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launch %s: %w", cfg.Name, err)
	}
	m.browser = browser

	m.logger.Info("browser launched",
		slog.String("engine", cfg.Name),
		slog.Bool("headless", cfg.Headless))
	return m, nil
}

// Session is a browser context plus page, exclusively owned by one test case
// for its lifetime. Close always runs, pass or fail.
type Session struct {
	Context playwright.BrowserContext
	Page    playwright.Page

	screenshotDir string
	logger        *slog.Logger
}

// NewSession creates an isolated context (own cookies and storage) and a page
// with the configured default timeout.
func (m *Manager) NewSession() (*Session, error) {
	ctxOpts := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  1920,
			Height: 1080,
		},
		IgnoreHttpsErrors: playwright.Bool(true),
	}

	ctx, err := m.browser.NewContext(ctxOpts)
	if err != nil {
		return nil, fmt.Errorf("create browser context: %w", err)
	}

	page, err := ctx.NewPage()
	if err != nil {
		_ = ctx.Close()
		return nil, fmt.Errorf("create page: %w", err)
	}
	page.SetDefaultTimeout(float64(m.cfg.Timeout.Milliseconds()))

	return &Session{
		Context:       ctx,
		Page:          page,
		screenshotDir: m.reports.ScreenshotDir,
		logger:        m.logger,
	}, nil
}

func (s *Session) Close() error {
	var errs []error
	if err := s.Page.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close page: %w", err))
	}
	if err := s.Context.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close context: %w", err))
	}
	return errors.Join(errs...)
}

// Screenshot captures the full page into the reports directory and returns
// the path plus the raw PNG so callers can attach it to the Allure report.
func (s *Session) Screenshot(name string) (string, []byte, error) {
	if err := os.MkdirAll(s.screenshotDir, 0o755); err != nil {
		return "", nil, fmt.Errorf("create screenshot dir: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.png", sanitize(name), uuid.NewString()[:8])
	path := filepath.Join(s.screenshotDir, filename)

	png, err := s.Page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		return "", nil, fmt.Errorf("take screenshot: %w", err)
	}

	s.logger.Info("screenshot saved", slog.String("path", path))
	return path, png, nil
}

func (m *Manager) Close() error {
	var errs []error
	if m.browser != nil {
		if err := m.browser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close browser: %w", err))
		}
	}
	if m.pw != nil {
		if err := m.pw.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop playwright: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Install fetches the browser binaries Playwright drives. Used by the
// runner's -install flag.
func Install(name string) error {
	if name == "" {
		name = "chromium"
	}
	return playwright.Install(&playwright.RunOptions{
		Browsers: []string{strings.ToLower(name)},
	})
}

// ClassifyTimeout wraps Playwright wait timeouts with ErrSuspendTimeout so
// callers can distinguish a never-completed suspension from other failures.
func ClassifyTimeout(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(strings.ToLower(err.Error()), "timeout") {
		return fmt.Errorf("%w: %v", ErrSuspendTimeout, err)
	}
	return err
}

func sanitize(name string) string {
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_")
	return replacer.Replace(strings.ToLower(name))
}
