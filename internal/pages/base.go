package pages

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/Karthick-71/rr-qa-automation-assignment/internal/browser"
)

// BasePage wraps the interactions every page object needs. Each operation
// declares its wait condition and a bounded timeout; a condition that never
// completes surfaces as browser.ErrSuspendTimeout.
type BasePage struct {
	page    playwright.Page
	timeout time.Duration
	logger  *slog.Logger
}

type BaseOption func(*BasePage)

func WithLogger(logger *slog.Logger) BaseOption {
	return func(b *BasePage) {
		b.logger = logger
	}
}

func NewBase(page playwright.Page, timeout time.Duration, opts ...BaseOption) *BasePage {
	b := &BasePage{
		page:    page,
		timeout: timeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *BasePage) ms() float64 {
	return float64(b.timeout.Milliseconds())
}

// Navigate goes to url and blocks until the network settles.
func (b *BasePage) Navigate(url string) error {
	b.logger.Info("navigating", slog.String("url", url))
	_, err := b.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(b.ms()),
	})
	if err != nil {
		return browser.ClassifyTimeout(fmt.Errorf("goto %s: %w", url, err))
	}
	if err := b.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateDomcontentloaded,
		Timeout: playwright.Float(b.ms()),
	}); err != nil {
		return browser.ClassifyTimeout(fmt.Errorf("wait dom loaded: %w", err))
	}
	return nil
}

func (b *BasePage) Click(selector string) error {
	b.logger.Debug("click", slog.String("selector", selector))
	err := b.page.Locator(selector).First().Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(b.ms()),
	})
	if err != nil {
		return browser.ClassifyTimeout(fmt.Errorf("click %s: %w", selector, err))
	}
	return nil
}

func (b *BasePage) Fill(selector, text string) error {
	b.logger.Debug("fill", slog.String("selector", selector), slog.String("text", text))
	err := b.page.Locator(selector).First().Fill(text, playwright.LocatorFillOptions{
		Timeout: playwright.Float(b.ms()),
	})
	if err != nil {
		return browser.ClassifyTimeout(fmt.Errorf("fill %s: %w", selector, err))
	}
	return nil
}

func (b *BasePage) Press(selector, key string) error {
	err := b.page.Locator(selector).First().Press(key, playwright.LocatorPressOptions{
		Timeout: playwright.Float(b.ms()),
	})
	if err != nil {
		return browser.ClassifyTimeout(fmt.Errorf("press %s on %s: %w", key, selector, err))
	}
	return nil
}

func (b *BasePage) Text(selector string) (string, error) {
	text, err := b.page.Locator(selector).First().TextContent(playwright.LocatorTextContentOptions{
		Timeout: playwright.Float(b.ms()),
	})
	if err != nil {
		return "", browser.ClassifyTimeout(fmt.Errorf("text of %s: %w", selector, err))
	}
	return text, nil
}

// WaitVisible blocks until the element is visible, bounded by timeout.
func (b *BasePage) WaitVisible(selector string, timeout time.Duration) error {
	if timeout == 0 {
		timeout = b.timeout
	}
	err := b.page.Locator(selector).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		return browser.ClassifyTimeout(fmt.Errorf("wait visible %s: %w", selector, err))
	}
	return nil
}

// IsVisible is a non-failing visibility probe with a short bound.
func (b *BasePage) IsVisible(selector string) bool {
	return b.WaitVisible(selector, 5*time.Second) == nil
}

func (b *BasePage) Count(selector string) (int, error) {
	n, err := b.page.Locator(selector).Count()
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", selector, err)
	}
	return n, nil
}

func (b *BasePage) WaitNetworkIdle() error {
	err := b.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateNetworkidle,
		Timeout: playwright.Float(b.ms()),
	})
	if err != nil {
		return browser.ClassifyTimeout(fmt.Errorf("wait network idle: %w", err))
	}
	return nil
}

func (b *BasePage) Content() (string, error) {
	html, err := b.page.Content()
	if err != nil {
		return "", fmt.Errorf("read page content: %w", err)
	}
	return html, nil
}

func (b *BasePage) Reload() error {
	_, err := b.page.Reload(playwright.PageReloadOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(b.ms()),
	})
	if err != nil {
		return browser.ClassifyTimeout(fmt.Errorf("reload: %w", err))
	}
	return nil
}

func (b *BasePage) Title() (string, error) {
	return b.page.Title()
}

func (b *BasePage) URL() string {
	return b.page.URL()
}

// Pause waits for the React view to finish re-rendering after a filter
// interaction that triggers no network traffic.
func (b *BasePage) Pause(d time.Duration) {
	b.page.WaitForTimeout(float64(d.Milliseconds()))
}
