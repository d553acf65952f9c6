// Package gen produces randomized-but-valid inputs for parameterizing test
// cases. A generator with an explicit seed is fully reproducible, so a
// failing case can be replayed from its logged seed.
package gen

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/Karthick-71/rr-qa-automation-assignment/internal/model"
)

// ErrInvalidConfig marks a generation request whose fixed values lie outside
// the platform's documented domain. Fatal to that test's setup phase only.
var ErrInvalidConfig = errors.New("invalid generation config")

type Generator struct {
	seed  int64
	rnd   *rand.Rand
	faker *gofakeit.Faker
}

type Option func(*Generator)

// WithSeed makes the generator deterministic. Zero keeps the default
// time-based seed.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		if seed != 0 {
			g.seed = seed
		}
	}
}

func New(opts ...Option) *Generator {
	g := &Generator{seed: time.Now().UnixNano()}
	for _, opt := range opts {
		opt(g)
	}
	g.rnd = rand.New(rand.NewSource(g.seed))
	g.faker = gofakeit.New(uint64(g.seed))
	return g
}

// Seed reports the seed in effect, for logging alongside failures.
func (g *Generator) Seed() int64 {
	return g.seed
}

// CriteriaOption fixes or randomizes one FilterCriteria field.
type CriteriaOption func(g *Generator, fc *model.FilterCriteria) error

// Criteria builds a FilterCriteria from the given field options. Fields with
// no option stay unset. The result always satisfies the platform domain; a
// fixed value outside it fails with ErrInvalidConfig.
func (g *Generator) Criteria(opts ...CriteriaOption) (model.FilterCriteria, error) {
	var fc model.FilterCriteria
	for _, opt := range opts {
		if err := opt(g, &fc); err != nil {
			return model.FilterCriteria{}, err
		}
	}
	if err := fc.Validate(); err != nil {
		return model.FilterCriteria{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return fc, nil
}

func FixedCategory(c model.Category) CriteriaOption {
	return func(_ *Generator, fc *model.FilterCriteria) error {
		if !c.Valid() {
			return fmt.Errorf("%w: unknown category %q", ErrInvalidConfig, c)
		}
		fc.Category = c
		return nil
	}
}

func RandomCategory() CriteriaOption {
	return func(g *Generator, fc *model.FilterCriteria) error {
		fc.Category = model.Categories[g.rnd.Intn(len(model.Categories))]
		return nil
	}
}

func FixedMediaType(m model.MediaType) CriteriaOption {
	return func(_ *Generator, fc *model.FilterCriteria) error {
		if !m.Valid() {
			return fmt.Errorf("%w: unknown media type %q", ErrInvalidConfig, m)
		}
		fc.MediaType = m
		return nil
	}
}

func RandomMediaType() CriteriaOption {
	return func(g *Generator, fc *model.FilterCriteria) error {
		fc.MediaType = model.MediaTypes[g.rnd.Intn(len(model.MediaTypes))]
		return nil
	}
}

func FixedYearRange(from, to int) CriteriaOption {
	return func(_ *Generator, fc *model.FilterCriteria) error {
		if from < model.MinYear || to > model.MaxYear {
			return fmt.Errorf("%w: year range [%d, %d] outside [%d, %d]",
				ErrInvalidConfig, from, to, model.MinYear, model.MaxYear)
		}
		if from > to {
			return fmt.Errorf("%w: year range inverted: %d > %d", ErrInvalidConfig, from, to)
		}
		fc.YearFrom, fc.YearTo = from, to
		return nil
	}
}

// RandomYearRange draws a range inside [lo, hi]. The drawn range always
// satisfies from <= to.
func RandomYearRange(lo, hi int) CriteriaOption {
	return func(g *Generator, fc *model.FilterCriteria) error {
		if lo < model.MinYear || hi > model.MaxYear || lo > hi {
			return fmt.Errorf("%w: year bounds [%d, %d] outside [%d, %d]",
				ErrInvalidConfig, lo, hi, model.MinYear, model.MaxYear)
		}
		a := lo + g.rnd.Intn(hi-lo+1)
		b := lo + g.rnd.Intn(hi-lo+1)
		if a > b {
			a, b = b, a
		}
		fc.YearFrom, fc.YearTo = a, b
		return nil
	}
}

func FixedRating(rating float64) CriteriaOption {
	return func(_ *Generator, fc *model.FilterCriteria) error {
		if rating < model.MinRating || rating > model.MaxRating {
			return fmt.Errorf("%w: rating %.1f outside [%.0f, %.0f]",
				ErrInvalidConfig, rating, model.MinRating, model.MaxRating)
		}
		fc.MinRating = rating
		return nil
	}
}

func RandomRating() CriteriaOption {
	return func(g *Generator, fc *model.FilterCriteria) error {
		r := g.rnd.Float64() * model.MaxRating
		fc.MinRating = math.Round(r*10) / 10
		return nil
	}
}

func FixedGenre(genre string) CriteriaOption {
	return func(_ *Generator, fc *model.FilterCriteria) error {
		if genre == "" {
			return fmt.Errorf("%w: empty genre", ErrInvalidConfig)
		}
		fc.Genre = genre
		return nil
	}
}

func RandomGenre() CriteriaOption {
	return func(g *Generator, fc *model.FilterCriteria) error {
		fc.Genre = g.faker.MovieGenre()
		return nil
	}
}

// Title produces a plausible movie title for search scenarios.
func (g *Generator) Title() string {
	return g.faker.MovieName()
}

// SearchTerm produces a short search query.
func (g *Generator) SearchTerm() string {
	return g.faker.Word()
}
