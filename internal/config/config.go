package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Platform struct {
	BaseURL string
}

type API struct {
	BaseURL string
	Key     string
	Timeout time.Duration
}

type Browser struct {
	Name     string
	Headless bool
	SlowMoMS float64
	Timeout  time.Duration
}

type Reports struct {
	Dir           string
	ScreenshotDir string
	VideoDir      string
	AllureDir     string
}

type Log struct {
	Level string
	File  string
}

type Config struct {
	Platform Platform
	API      API
	Browser  Browser
	Reports  Reports
	Log      Log
}

const logtag = "[config]"

// Load resolves configuration once at process start. An optional env file is
// taken from QA_ENV_FILE, otherwise a .env in the working directory is used
// when present. Values are read-only for the remainder of the run.
func Load() *Config {
	if path := os.Getenv("QA_ENV_FILE"); path != "" {
		if err := godotenv.Load(path); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, path)
	} else {
		_ = godotenv.Load()
	}

	cfg := &Config{
		Platform: *newPlatform(),
		API:      *newAPI(),
		Browser:  *newBrowser(),
		Reports:  *newReports(),
		Log:      *newLog(),
	}

	return cfg
}

func newPlatform() *Platform {
	return &Platform{
		BaseURL: getenv("BASE_URL", "https://tmdb-discover.surge.sh/"),
	}
}

func newAPI() *API {
	return &API{
		BaseURL: getenv("API_BASE_URL", "https://api.themoviedb.org/3"),
		Key:     getenv("API_KEY", ""),
		Timeout: getenvDuration("API_TIMEOUT_MS", 30000),
	}
}

func newBrowser() *Browser {
	return &Browser{
		Name:     getenv("BROWSER", "chromium"),
		Headless: getenvBool("HEADLESS", true),
		SlowMoMS: float64(getenvInt("SLOW_MO_MS", 0)),
		Timeout:  getenvDuration("TIMEOUT_MS", 30000),
	}
}

func newReports() *Reports {
	dir := getenv("REPORTS_DIR", "reports")
	return &Reports{
		Dir:           dir,
		ScreenshotDir: dir + "/screenshots",
		VideoDir:      dir + "/videos",
		AllureDir:     getenv("ALLURE_OUTPUT_PATH", dir+"/allure-results"),
	}
}

func newLog() *Log {
	return &Log{
		Level: getenv("LOG_LEVEL", "INFO"),
		File:  getenv("LOG_FILE", "logs/test_execution.log"),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("%s %s=%q is not an integer, using %d", logtag, key, value, fallback)
		return fallback
	}
	return n
}

func getenvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("%s %s=%q is not a bool, using %t", logtag, key, value, fallback)
		return fallback
	}
	return b
}

func getenvDuration(key string, fallbackMS int) time.Duration {
	return time.Duration(getenvInt(key, fallbackMS)) * time.Millisecond
}
