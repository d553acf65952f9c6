//go:build e2e

// Package ui contains the browser suites for the discover platform. Shared
// package state is limited to the browser manager and the report recorder;
// every test owns its session, page object and criteria exclusively.
package ui

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/ozontech/allure-go/pkg/allure"
	"github.com/ozontech/allure-go/pkg/framework/provider"

	"github.com/Karthick-71/rr-qa-automation-assignment/internal/browser"
	"github.com/Karthick-71/rr-qa-automation-assignment/internal/config"
	"github.com/Karthick-71/rr-qa-automation-assignment/internal/logging"
	"github.com/Karthick-71/rr-qa-automation-assignment/internal/pages"
	"github.com/Karthick-71/rr-qa-automation-assignment/internal/report"
)

type testEnv struct {
	cfg      *config.Config
	logger   *slog.Logger
	manager  *browser.Manager
	recorder *report.Recorder
}

var (
	envOnce   sync.Once
	envErr    error
	sharedEnv *testEnv
)

func getEnv() (*testEnv, error) {
	envOnce.Do(func() {
		cfg := config.Load()
		logger := logging.Setup(cfg.Log)

		manager, err := browser.New(cfg.Browser, cfg.Reports, browser.WithLogger(logger))
		if err != nil {
			envErr = fmt.Errorf("environment unavailable: %w", err)
			return
		}

		sharedEnv = &testEnv{
			cfg:      cfg,
			logger:   logger,
			manager:  manager,
			recorder: report.NewRecorder(),
		}
	})
	return sharedEnv, envErr
}

func TestMain(m *testing.M) {
	code := m.Run()

	if sharedEnv != nil {
		if path, err := sharedEnv.recorder.Flush(filepath.Join(sharedEnv.cfg.Reports.Dir, "ui")); err != nil {
			sharedEnv.logger.Error("flush run summary", slog.String("error", err.Error()))
		} else {
			sharedEnv.logger.Info("run summary written", slog.String("path", path))
		}
		if err := sharedEnv.manager.Close(); err != nil {
			sharedEnv.logger.Error("close browser manager", slog.String("error", err.Error()))
		}
	}

	os.Exit(code)
}

// webFixture is the per-test slice of the environment: an exclusively-owned
// browser session plus the discover page object. Close always runs via
// defer, captures a screenshot on failure and records the outcome.
type webFixture struct {
	env     *testEnv
	session *browser.Session
	home    *pages.DiscoverPage
	name    string
	started time.Time
}

func newWebFixture(t provider.T) *webFixture {
	env, err := getEnv()
	t.Require().NoError(err)

	session, err := env.manager.NewSession()
	t.Require().NoError(err)

	home := pages.NewDiscover(session, env.cfg.Platform.BaseURL, env.cfg.Browser.Timeout,
		pages.WithLogger(env.logger))

	return &webFixture{
		env:     env,
		session: session,
		home:    home,
		name:    t.Name(),
		started: time.Now(),
	}
}

func (f *webFixture) Close(t provider.T) {
	res := report.Result{
		Name:     f.name,
		Status:   report.StatusPassed,
		Duration: time.Since(f.started),
	}

	if t.Failed() {
		res.Status = report.StatusFailed
		if path, png, err := f.session.Screenshot(f.name); err == nil {
			res.Screenshot = path
			t.WithAttachments(allure.NewAttachment(f.name, allure.Png, png))
		} else {
			f.env.logger.Warn("failure screenshot not captured",
				slog.String("test", f.name), slog.String("error", err.Error()))
		}
	}

	if err := f.session.Close(); err != nil {
		f.env.logger.Warn("session teardown", slog.String("test", f.name), slog.String("error", err.Error()))
	}

	f.env.recorder.Record(res)
}
