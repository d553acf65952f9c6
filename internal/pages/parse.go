package pages

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Karthick-71/rr-qa-automation-assignment/internal/model"
)

var (
	yearPattern   = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	ratingPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%?`)
)

// ParseState extracts the full PageState from rendered HTML. Extraction is
// best-effort: cards missing a year or rating keep the zero value so tests
// decide how strict to be.
func ParseState(html string) (model.PageState, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return model.PageState{}, err
	}

	state := model.PageState{
		Items: parseItems(doc),
	}
	state.CurrentPage, state.TotalPages = parsePagination(doc)
	return state, nil
}

func parseItems(doc *goquery.Document) []model.ResultItem {
	var items []model.ResultItem

	doc.Find(cssMovieCards).Each(func(_ int, card *goquery.Selection) {
		item := model.ResultItem{
			Title:     cardTitle(card),
			Year:      cardYear(card),
			Rating:    cardRating(card),
			MediaType: model.MediaType(card.AttrOr("data-media-type", "")),
		}
		if item.Title != "" {
			items = append(items, item)
		}
	})

	if len(items) > 0 {
		return items
	}

	// No recognizable cards; fall back to poster alt texts so smoke tests
	// can still count what is on screen.
	doc.Find(cssPosterImages).Each(func(_ int, img *goquery.Selection) {
		alt := strings.TrimSpace(strings.TrimSuffix(img.AttrOr("alt", ""), " Poster"))
		if alt != "" {
			items = append(items, model.ResultItem{Title: alt})
		}
	})
	return items
}

func cardTitle(card *goquery.Selection) string {
	title := strings.TrimSpace(card.Find(cssCardTitle).First().Text())
	if title == "" {
		title = strings.TrimSpace(strings.TrimSuffix(card.Find("img").AttrOr("alt", ""), " Poster"))
	}
	return title
}

func cardYear(card *goquery.Selection) int {
	match := yearPattern.FindString(card.Text())
	if match == "" {
		return 0
	}
	year, err := strconv.Atoi(match)
	if err != nil || year < model.MinYear || year > model.MaxYear {
		return 0
	}
	return year
}

func cardRating(card *goquery.Selection) float64 {
	text := strings.TrimSpace(card.Find(cssCardRating).First().Text())
	if text == "" {
		return 0
	}
	match := ratingPattern.FindStringSubmatch(text)
	if match == nil {
		return 0
	}
	rating, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0
	}
	// Percentage badges (e.g. "78%") map onto the 0-10 scale.
	if strings.Contains(text, "%") || rating > model.MaxRating {
		rating /= 10
	}
	if rating < model.MinRating || rating > model.MaxRating {
		return 0
	}
	return rating
}

func parsePagination(doc *goquery.Document) (current, total int) {
	current = 1

	nav := doc.Find(cssPagination).First()
	if nav.Length() == 0 {
		return current, 0
	}

	nav.Find(cssPageControls).Each(func(_ int, control *goquery.Selection) {
		n, err := strconv.Atoi(strings.TrimSpace(control.Text()))
		if err != nil || n < 1 {
			return
		}
		if n > total {
			total = n
		}
		if control.Is(cssActivePage) || control.Parent().Is(cssActivePage) {
			current = n
		}
	})
	return current, total
}
