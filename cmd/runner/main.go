// Command runner drives the QA suites: selects a subset, picks the browser
// engine, and points the report sinks at the right directories. It wraps the
// Go test binary so CI and local runs go through one entrypoint.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"time"

	"github.com/Karthick-71/rr-qa-automation-assignment/internal/browser"
	"github.com/Karthick-71/rr-qa-automation-assignment/internal/config"
)

const logtag = "[runner]"

func main() {
	var (
		suiteFlag    = flag.String("suite", "all", "suite to run: all, ui, api, unit")
		runFlag      = flag.String("run", "", "regexp selecting individual tests (go test -run)")
		browserFlag  = flag.String("browser", "", "browser engine: chromium, firefox, webkit")
		headedFlag   = flag.Bool("headed", false, "run the browser headed")
		parallelFlag = flag.Int("parallel", 1, "parallel test workers")
		allureFlag   = flag.String("allure", "", "directory for allure-results (machine-readable report)")
		jsonFlag     = flag.String("json", "", "file for the raw go test -json stream")
		installFlag  = flag.Bool("install", false, "install playwright browsers and exit")
		envFlag      = flag.String("env", "", "path to an env file")
	)
	flag.Parse()

	if *envFlag != "" {
		os.Setenv("QA_ENV_FILE", *envFlag)
	}
	cfg := config.Load()

	engine := cfg.Browser.Name
	if *browserFlag != "" {
		engine = *browserFlag
	}

	if *installFlag {
		log.Printf("%s installing %s", logtag, engine)
		if err := browser.Install(engine); err != nil {
			log.Fatalf("%s install failed: %v", logtag, err)
		}
		return
	}

	packages, tags := selectPackages(*suiteFlag)

	args := []string{"test", "-v", "-count=1"}
	if tags != "" {
		args = append(args, "-tags", tags)
	}
	if *runFlag != "" {
		args = append(args, "-run", *runFlag)
	}
	if *parallelFlag > 1 {
		args = append(args, "-parallel", fmt.Sprint(*parallelFlag))
	}
	if *jsonFlag != "" {
		args = append(args, "-json")
	}
	args = append(args, packages...)

	env := append(os.Environ(),
		"BROWSER="+engine,
		fmt.Sprintf("HEADLESS=%t", !*headedFlag),
	)
	if *allureFlag != "" {
		env = append(env, "ALLURE_OUTPUT_PATH="+*allureFlag)
	} else {
		env = append(env, "ALLURE_OUTPUT_PATH="+cfg.Reports.AllureDir)
	}

	log.Printf("%s suite=%s browser=%s headed=%t parallel=%d",
		logtag, *suiteFlag, engine, *headedFlag, *parallelFlag)

	started := time.Now()
	code, err := runTests(args, env, *jsonFlag)
	if err != nil {
		log.Fatalf("%s %v", logtag, err)
	}

	duration := time.Since(started)
	if code == 0 {
		log.Printf("%s %s suite passed in %s", logtag, *suiteFlag, duration.Round(time.Millisecond))
	} else {
		log.Printf("%s %s suite failed in %s (exit %d)", logtag, *suiteFlag, duration.Round(time.Millisecond), code)
	}
	log.Printf("%s reports: summary under %s, allure-results under %s, screenshots under %s",
		logtag, cfg.Reports.Dir, cfg.Reports.AllureDir, cfg.Reports.ScreenshotDir)

	os.Exit(code)
}

func selectPackages(suite string) (packages []string, tags string) {
	switch suite {
	case "ui":
		return []string{"./e2e/ui/..."}, "e2e"
	case "api":
		return []string{"./e2e/api/..."}, "e2e"
	case "unit":
		return []string{"./internal/..."}, ""
	case "all":
		return []string{"./internal/...", "./e2e/..."}, "e2e"
	default:
		log.Fatalf("%s unknown suite %q", logtag, suite)
		return nil, ""
	}
}

func runTests(args, env []string, jsonPath string) (int, error) {
	cmd := exec.Command("go", args...)
	cmd.Env = env
	cmd.Stderr = os.Stderr
	cmd.Stdout = os.Stdout

	if jsonPath != "" {
		f, err := os.Create(jsonPath)
		if err != nil {
			return 0, fmt.Errorf("create json report: %w", err)
		}
		defer f.Close()
		cmd.Stdout = io.MultiWriter(os.Stdout, f)
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, fmt.Errorf("run go test: %w", err)
	}
	return 0, nil
}
