// Package pages is the page-object layer: one object per logical view,
// exposing interactions and queries without leaking locator mechanics into
// test code.
package pages

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Karthick-71/rr-qa-automation-assignment/internal/browser"
	"github.com/Karthick-71/rr-qa-automation-assignment/internal/model"
)

// DiscoverPage drives the movie discovery view: category navigation, the
// filter sidebar, search and pagination. Every mutating operation blocks
// until the platform signals content has finished loading, then returns a
// freshly read PageState.
//
// Out-of-domain criteria are deliberately forwarded to the platform instead
// of being rejected here, so defect-detection tests can observe what the
// platform actually does with them.
type DiscoverPage struct {
	*BasePage
	baseURL string
}

func NewDiscover(session *browser.Session, baseURL string, timeout time.Duration, opts ...BaseOption) *DiscoverPage {
	return &DiscoverPage{
		BasePage: NewBase(session.Page, timeout, opts...),
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

// Open navigates to the discover home view and waits until the category
// navigation and at least one poster are rendered.
func (d *DiscoverPage) Open() error {
	if err := d.Navigate(d.baseURL + "/"); err != nil {
		return err
	}
	if err := d.WaitVisible(CategoryButton(model.CategoryPopular), 15*time.Second); err != nil {
		return err
	}
	return d.WaitVisible("img", 10*time.Second)
}

// OpenCategory reaches a category through its direct URL instead of the
// navigation buttons.
func (d *DiscoverPage) OpenCategory(c model.Category) (model.PageState, error) {
	if err := d.Navigate(d.baseURL + "/" + c.Slug()); err != nil {
		return model.PageState{}, err
	}
	return d.settleAndRead()
}

// OpenURL navigates to an arbitrary path under the platform base URL. Used
// by defect tests that bypass the UI controls with hand-built query strings.
func (d *DiscoverPage) OpenURL(path string) (model.PageState, error) {
	if err := d.Navigate(d.baseURL + "/" + strings.TrimLeft(path, "/")); err != nil {
		return model.PageState{}, err
	}
	return d.settleAndRead()
}

func (d *DiscoverPage) SelectCategory(c model.Category) (model.PageState, error) {
	if err := d.Click(CategoryButton(c)); err != nil {
		return model.PageState{}, err
	}
	return d.settleAndRead()
}

// ApplyFilter drives the sidebar controls for every field set on the
// criteria and returns the state the platform produced. Correctness of the
// result is the caller's assertion, not this method's.
func (d *DiscoverPage) ApplyFilter(fc model.FilterCriteria) (model.PageState, error) {
	if fc.Category != "" {
		if err := d.Click(CategoryButton(fc.Category)); err != nil {
			return model.PageState{}, err
		}
		d.Pause(time.Second)
	}

	if fc.MediaType != "" {
		if err := d.selectOption(SelectorTypeControl, SelectorTypeInput, fc.MediaType.Label()); err != nil {
			return model.PageState{}, err
		}
	}

	if fc.Genre != "" {
		if err := d.selectOption(SelectorGenreControl, SelectorGenreInput, fc.Genre); err != nil {
			return model.PageState{}, err
		}
	}

	if fc.YearFrom != 0 {
		if err := d.selectOption(SelectorYearFromControl, SelectorYearFromInput, strconv.Itoa(fc.YearFrom)); err != nil {
			return model.PageState{}, err
		}
	}
	if fc.YearTo != 0 {
		if err := d.selectOption(SelectorYearToControl, SelectorYearToInput, strconv.Itoa(fc.YearTo)); err != nil {
			return model.PageState{}, err
		}
	}

	if fc.MinRating > 0 {
		if err := d.selectRating(fc.MinRating); err != nil {
			return model.PageState{}, err
		}
	}

	return d.settleAndRead()
}

// selectOption operates one react-select control: open it, type the option,
// confirm with Enter.
func (d *DiscoverPage) selectOption(control, input, value string) error {
	if err := d.WaitVisible(SelectorSidebar, 10*time.Second); err != nil {
		return err
	}
	if err := d.Click(control); err != nil {
		return err
	}
	d.Pause(500 * time.Millisecond)
	if err := d.Fill(input, value); err != nil {
		return err
	}
	if err := d.Press(input, "Enter"); err != nil {
		return err
	}
	d.Pause(time.Second)
	return nil
}

func (d *DiscoverPage) selectRating(min float64) error {
	stars := int(math.Round(min))
	if stars < 1 {
		return nil
	}
	if err := d.WaitVisible(SelectorSidebar, 10*time.Second); err != nil {
		return err
	}
	selector := fmt.Sprintf("%s >> nth=%d", SelectorRatingStars, stars-1)
	if err := d.Click(selector); err != nil {
		return err
	}
	d.Pause(time.Second)
	return nil
}

// Search fills the search box and submits. Empty text clears the search.
func (d *DiscoverPage) Search(text string) (model.PageState, error) {
	if err := d.WaitVisible(SelectorSearchInput, 10*time.Second); err != nil {
		return model.PageState{}, err
	}
	if err := d.Click(SelectorSearchInput); err != nil {
		return model.PageState{}, err
	}
	if err := d.Fill(SelectorSearchInput, text); err != nil {
		return model.PageState{}, err
	}
	if err := d.Press(SelectorSearchInput, "Enter"); err != nil {
		return model.PageState{}, err
	}
	return d.settleAndRead()
}

func (d *DiscoverPage) ClearSearch() (model.PageState, error) {
	return d.Search("")
}

// SearchVisible probes the search input without failing the test.
func (d *DiscoverPage) SearchVisible() bool {
	return d.IsVisible(SelectorSearchInput)
}

func (d *DiscoverPage) PaginationAvailable() bool {
	if d.IsVisible(SelectorNextButton) {
		return true
	}
	return d.IsVisible(SelectorPagination)
}

// NextPage clicks the next control. Returns false without error when the
// control is missing or disabled, which is how the platform signals the last
// page (or fails to, see the known pagination issue).
func (d *DiscoverPage) NextPage() (bool, error) {
	if !d.IsVisible(SelectorNextButton) {
		return false, nil
	}
	if err := d.Click(SelectorNextButton); err != nil {
		return false, err
	}
	d.Pause(2 * time.Second)
	return true, nil
}

// GoToPage navigates to page n: directly through the numbered control when
// the platform renders one, otherwise by walking Next. Requests beyond the
// last page return whatever state the platform ends up in; asserting on that
// state is the test's job.
func (d *DiscoverPage) GoToPage(n int) (model.PageState, error) {
	if n < 1 {
		return model.PageState{}, fmt.Errorf("page number %d out of range", n)
	}

	state, err := d.ReadState()
	if err != nil {
		return model.PageState{}, err
	}
	if state.CurrentPage == n {
		return state, nil
	}

	numbered := PaginationNumber(n)
	if d.IsVisible(numbered) {
		if err := d.Click(numbered); err != nil {
			return model.PageState{}, err
		}
		return d.settleAndRead()
	}

	for state.CurrentPage < n {
		moved, err := d.NextPage()
		if err != nil {
			return model.PageState{}, err
		}
		if !moved {
			break
		}
		next, err := d.ReadState()
		if err != nil {
			return model.PageState{}, err
		}
		if next.CurrentPage == state.CurrentPage {
			// Platform stopped advancing; hand the observed state back.
			return next, nil
		}
		state = next
	}
	return state, nil
}

// ReadState parses the currently rendered view without interacting with it.
// Two consecutive reads with no navigation in between return identical
// states.
func (d *DiscoverPage) ReadState() (model.PageState, error) {
	html, err := d.Content()
	if err != nil {
		return model.PageState{}, err
	}
	return ParseState(html)
}

func (d *DiscoverPage) settleAndRead() (model.PageState, error) {
	if err := d.WaitNetworkIdle(); err != nil {
		return model.PageState{}, err
	}
	d.Pause(500 * time.Millisecond)
	return d.ReadState()
}
