package pages

import (
	"fmt"

	"github.com/Karthick-71/rr-qa-automation-assignment/internal/model"
)

// Selectors for the discover UI, kept in one place so page objects never leak
// locator mechanics into test code. The filter sidebar is built on
// react-select, hence the numbered input ids.
const (
	SelectorSearchInput = "input[placeholder='SEARCH'], input[name='search']"

	SelectorSidebar = "aside"

	SelectorTypeControl = "div:has(#react-select-2-input) .css-yk16xz-control"
	SelectorTypeInput   = "#react-select-2-input"

	SelectorGenreControl = "div:has(#react-select-3-input) .css-yk16xz-control"
	SelectorGenreInput   = "#react-select-3-input"

	SelectorYearFromControl = "div:has(#react-select-4-input) .css-yk16xz-control"
	SelectorYearFromInput   = "#react-select-4-input"
	SelectorYearToControl   = "div:has(#react-select-5-input) .css-yk16xz-control"
	SelectorYearToInput     = "#react-select-5-input"

	SelectorRatingStars = "aside div:has-text('Ratings') + div [class*='star']"

	SelectorMovieCards   = "div[class*='cursor-pointer'], a[class*='cursor-pointer']"
	SelectorMoviePosters = "img[alt*='Poster'], img[src*='image']"

	SelectorNextButton = "button:has-text('Next')"
	SelectorPagination = "[class*='pagination']"
)

// CSS-only variants used by the goquery extraction (no Playwright
// pseudo-selectors allowed there).
const (
	cssMovieCards   = "div[class*='cursor-pointer'], a[class*='cursor-pointer']"
	cssCardTitle    = "h3, h2, h4, [class*='title']"
	cssCardRating   = "[class*='rating'], [class*='vote'], [class*='rate']"
	cssPagination   = "[class*='pagination']"
	cssPageControls = "a, button, li"
	cssActivePage   = "[class*='active'], [class*='selected'], [class*='current']"
	cssPosterImages = "img[alt]"
)

// CategoryButton is the Playwright text selector for a category in the top
// navigation.
func CategoryButton(c model.Category) string {
	return fmt.Sprintf("text=%s", c.Label())
}

// PaginationNumber targets the numbered pagination control for page n.
func PaginationNumber(n int) string {
	return fmt.Sprintf("%s :text-is('%d')", SelectorPagination, n)
}
