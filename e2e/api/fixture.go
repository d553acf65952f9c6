//go:build e2e

// Package api contains the backend suites for the discover platform. The
// environment is probed once at startup; an unreachable backend fails the
// whole run before any case issues a request.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/ozontech/allure-go/pkg/framework/provider"

	"github.com/Karthick-71/rr-qa-automation-assignment/internal/apiclient"
	"github.com/Karthick-71/rr-qa-automation-assignment/internal/config"
	"github.com/Karthick-71/rr-qa-automation-assignment/internal/logging"
	"github.com/Karthick-71/rr-qa-automation-assignment/internal/report"
)

type apiEnv struct {
	cfg      *config.Config
	logger   *slog.Logger
	client   *apiclient.Client
	recorder *report.Recorder
}

var (
	envOnce   sync.Once
	envErr    error
	sharedEnv *apiEnv
)

func getEnv() (*apiEnv, error) {
	envOnce.Do(func() {
		cfg := config.Load()
		logger := logging.Setup(cfg.Log)
		client := apiclient.New(cfg.API, apiclient.WithLogger(logger))

		ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
		defer cancel()
		if err := client.Ping(ctx); err != nil {
			envErr = fmt.Errorf("startup probe: %w", err)
			return
		}

		sharedEnv = &apiEnv{
			cfg:      cfg,
			logger:   logger,
			client:   client,
			recorder: report.NewRecorder(),
		}
	})
	return sharedEnv, envErr
}

func TestMain(m *testing.M) {
	code := m.Run()

	if sharedEnv != nil {
		if path, err := sharedEnv.recorder.Flush(filepath.Join(sharedEnv.cfg.Reports.Dir, "api")); err != nil {
			sharedEnv.logger.Error("flush run summary", slog.String("error", err.Error()))
		} else {
			sharedEnv.logger.Info("run summary written", slog.String("path", path))
		}
	}

	os.Exit(code)
}

type apiFixture struct {
	env     *apiEnv
	name    string
	started time.Time
}

func newAPIFixture(t provider.T) *apiFixture {
	env, err := getEnv()
	t.Require().NoError(err)

	return &apiFixture{
		env:     env,
		name:    t.Name(),
		started: time.Now(),
	}
}

func (f *apiFixture) Close(t provider.T) {
	status := report.StatusPassed
	if t.Failed() {
		status = report.StatusFailed
	}
	f.env.recorder.Record(report.Result{
		Name:     f.name,
		Status:   status,
		Duration: time.Since(f.started),
	})
}
