// Package report is the machine-readable run sink: it aggregates per-test
// outcomes and writes a summary artifact once at suite teardown. The summary
// is consumed by external renderers, never read back by the suites.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusBroken  Status = "broken"
	StatusSkipped Status = "skipped"
)

type Result struct {
	Name       string        `json:"name"`
	Status     Status        `json:"status"`
	Duration   time.Duration `json:"duration_ns"`
	Error      string        `json:"error,omitempty"`
	Screenshot string        `json:"screenshot,omitempty"`
}

type Summary struct {
	RunID    uuid.UUID     `json:"run_id"`
	Started  time.Time     `json:"started"`
	Finished time.Time     `json:"finished"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Broken   int           `json:"broken"`
	Skipped  int           `json:"skipped"`
	Duration time.Duration `json:"duration_ns"`
	Results  []Result      `json:"results"`
}

// Recorder collects results from concurrently running tests.
type Recorder struct {
	mu      sync.Mutex
	runID   uuid.UUID
	started time.Time
	results []Result
}

func NewRecorder() *Recorder {
	return &Recorder{
		runID:   uuid.New(),
		started: time.Now(),
	}
}

func (r *Recorder) RunID() uuid.UUID {
	return r.runID
}

func (r *Recorder) Record(res Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, res)
}

func (r *Recorder) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Summary{
		RunID:    r.runID,
		Started:  r.started,
		Finished: time.Now(),
		Results:  append([]Result(nil), r.results...),
	}
	for _, res := range s.Results {
		s.Duration += res.Duration
		switch res.Status {
		case StatusPassed:
			s.Passed++
		case StatusFailed:
			s.Failed++
		case StatusBroken:
			s.Broken++
		case StatusSkipped:
			s.Skipped++
		}
	}
	return s
}

// Flush writes summary.json under dir. Called once from suite teardown;
// failures never cross test boundaries so a flush error is only reported,
// not raised into any test.
func (r *Recorder) Flush(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	s := r.Summary()
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal summary: %w", err)
	}

	path := filepath.Join(dir, "summary.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}
	return path, nil
}
