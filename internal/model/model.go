package model

import "fmt"

// Platform bounds for the discover catalog. Filters outside these values are
// rejected by the generator but still allowed through the page objects so
// defect tests can probe how the platform itself reacts.
const (
	MinYear   = 1900
	MaxYear   = 2025
	MinRating = 0.0
	MaxRating = 10.0

	// PageSize is the number of cards the discover grid renders per page.
	PageSize = 20
)

type Category string

const (
	CategoryPopular  Category = "popular"
	CategoryTrend    Category = "trend"
	CategoryNewest   Category = "newest"
	CategoryTopRated Category = "rated"
)

var Categories = []Category{CategoryPopular, CategoryTrend, CategoryNewest, CategoryTopRated}

// Slug is the direct-URL path segment for the category.
func (c Category) Slug() string {
	return string(c)
}

// Label is the visible text of the category button in the top navigation.
func (c Category) Label() string {
	switch c {
	case CategoryPopular:
		return "Popular"
	case CategoryTrend:
		return "Trend"
	case CategoryNewest:
		return "Newest"
	case CategoryTopRated:
		return "Top rated"
	}
	return string(c)
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type MediaType string

const (
	MediaTypeMovie  MediaType = "movie"
	MediaTypeTVShow MediaType = "tv"
)

var MediaTypes = []MediaType{MediaTypeMovie, MediaTypeTVShow}

// Label is the option text in the type react-select control.
func (m MediaType) Label() string {
	switch m {
	case MediaTypeMovie:
		return "Movie"
	case MediaTypeTVShow:
		return "TV Show"
	}
	return string(m)
}

func (m MediaType) Valid() bool {
	return m == MediaTypeMovie || m == MediaTypeTVShow
}

// FilterCriteria is the per-test input for the discover filters. Zero values
// mean "not set"; Validate only checks fields that are set.
type FilterCriteria struct {
	Category  Category
	MediaType MediaType
	YearFrom  int
	YearTo    int
	MinRating float64
	Genre     string
}

func (fc FilterCriteria) Validate() error {
	if fc.Category != "" && !fc.Category.Valid() {
		return fmt.Errorf("unknown category %q", fc.Category)
	}
	if fc.MediaType != "" && !fc.MediaType.Valid() {
		return fmt.Errorf("unknown media type %q", fc.MediaType)
	}
	if fc.YearFrom != 0 && (fc.YearFrom < MinYear || fc.YearFrom > MaxYear) {
		return fmt.Errorf("year from %d outside [%d, %d]", fc.YearFrom, MinYear, MaxYear)
	}
	if fc.YearTo != 0 && (fc.YearTo < MinYear || fc.YearTo > MaxYear) {
		return fmt.Errorf("year to %d outside [%d, %d]", fc.YearTo, MinYear, MaxYear)
	}
	if fc.YearFrom != 0 && fc.YearTo != 0 && fc.YearFrom > fc.YearTo {
		return fmt.Errorf("year range inverted: %d > %d", fc.YearFrom, fc.YearTo)
	}
	if fc.MinRating < MinRating || fc.MinRating > MaxRating {
		return fmt.Errorf("rating %.1f outside [%.0f, %.0f]", fc.MinRating, MinRating, MaxRating)
	}
	return nil
}

// HasYearRange reports whether both ends of the year range are set.
func (fc FilterCriteria) HasYearRange() bool {
	return fc.YearFrom != 0 && fc.YearTo != 0
}

// ResultItem is one card read from the rendered grid or one record from an
// API response. Never mutated, only compared against expectations.
type ResultItem struct {
	Title     string
	Year      int
	Rating    float64
	MediaType MediaType
}

// PageState is a snapshot of the discover view, refreshed on every
// navigation or query call. Owned by a single page object for one test.
type PageState struct {
	CurrentPage int
	TotalPages  int
	Items       []ResultItem
}

func (ps PageState) Equal(other PageState) bool {
	if ps.CurrentPage != other.CurrentPage || ps.TotalPages != other.TotalPages {
		return false
	}
	if len(ps.Items) != len(other.Items) {
		return false
	}
	for i := range ps.Items {
		if ps.Items[i] != other.Items[i] {
			return false
		}
	}
	return true
}

// Titles collects item titles in display order.
func (ps PageState) Titles() []string {
	titles := make([]string, 0, len(ps.Items))
	for _, item := range ps.Items {
		titles = append(titles, item.Title)
	}
	return titles
}

// Years collects the non-zero years found on the page.
func (ps PageState) Years() []int {
	years := make([]int, 0, len(ps.Items))
	for _, item := range ps.Items {
		if item.Year != 0 {
			years = append(years, item.Year)
		}
	}
	return years
}
