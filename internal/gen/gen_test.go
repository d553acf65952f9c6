package gen

import (
	"errors"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"

	"github.com/Karthick-71/rr-qa-automation-assignment/internal/model"
)

type GeneratorUnitSuite struct {
	suite.Suite
}

func TestGeneratorUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(GeneratorUnitSuite))
}

func (s *GeneratorUnitSuite) TestDeterminism(t provider.T) {
	t.Parallel()
	t.Title("Same explicit seed produces identical criteria across runs")

	build := func() (model.FilterCriteria, string) {
		g := New(WithSeed(42))
		fc, err := g.Criteria(
			RandomCategory(),
			RandomMediaType(),
			RandomYearRange(2000, 2023),
			RandomRating(),
			RandomGenre(),
		)
		t.Require().NoError(err)
		return fc, g.Title()
	}

	firstCriteria, firstTitle := build()
	secondCriteria, secondTitle := build()

	t.Assert().Equal(firstCriteria, secondCriteria)
	t.Assert().Equal(firstTitle, secondTitle)
}

func (s *GeneratorUnitSuite) TestRandomYearRangeOrdering(t provider.T) {
	t.Parallel()
	t.Title("Generated year range always satisfies from <= to within bounds")

	for seed := int64(1); seed <= 200; seed++ {
		g := New(WithSeed(seed))
		fc, err := g.Criteria(RandomYearRange(1990, 2020))
		t.Require().NoError(err)

		t.Assert().LessOrEqual(fc.YearFrom, fc.YearTo)
		t.Assert().GreaterOrEqual(fc.YearFrom, 1990)
		t.Assert().LessOrEqual(fc.YearTo, 2020)
	}
}

func (s *GeneratorUnitSuite) TestRandomRatingDomain(t provider.T) {
	t.Parallel()
	t.Title("Generated rating stays within the platform domain [0, 10]")

	for seed := int64(1); seed <= 200; seed++ {
		g := New(WithSeed(seed))
		fc, err := g.Criteria(RandomRating())
		t.Require().NoError(err)

		t.Assert().GreaterOrEqual(fc.MinRating, model.MinRating)
		t.Assert().LessOrEqual(fc.MinRating, model.MaxRating)
	}
}

func (s *GeneratorUnitSuite) TestFixedFields(t provider.T) {
	t.Parallel()
	t.Title("Fixed field values pass through unchanged")

	g := New(WithSeed(7))
	fc, err := g.Criteria(
		FixedCategory(model.CategoryPopular),
		FixedMediaType(model.MediaTypeMovie),
		FixedYearRange(2015, 2023),
		FixedRating(7.5),
		FixedGenre("Drama"),
	)
	t.Require().NoError(err)

	t.Assert().Equal(model.CategoryPopular, fc.Category)
	t.Assert().Equal(model.MediaTypeMovie, fc.MediaType)
	t.Assert().Equal(2015, fc.YearFrom)
	t.Assert().Equal(2023, fc.YearTo)
	t.Assert().InDelta(7.5, fc.MinRating, 0.001)
	t.Assert().Equal("Drama", fc.Genre)
}

func (s *GeneratorUnitSuite) TestInvalidConfig(t provider.T) {
	t.Parallel()
	t.Title("Fixed values outside the platform domain fail with ErrInvalidConfig")

	testCases := []struct {
		name string
		opt  CriteriaOption
	}{
		{name: "inverted year range", opt: FixedYearRange(2025, 2020)},
		{name: "year below platform minimum", opt: FixedYearRange(1800, 1900)},
		{name: "year above platform maximum", opt: FixedYearRange(2020, 2100)},
		{name: "rating above maximum", opt: FixedRating(10.5)},
		{name: "rating below minimum", opt: FixedRating(-0.5)},
		{name: "unknown category", opt: FixedCategory("bogus")},
		{name: "unknown media type", opt: FixedMediaType("hologram")},
		{name: "empty genre", opt: FixedGenre("")},
		{name: "random bounds out of domain", opt: RandomYearRange(2020, 1990)},
	}

	for _, tc := range testCases {
		tc := tc
		t.WithNewStep(tc.name, func(sCtx provider.StepCtx) {
			g := New(WithSeed(1))
			_, err := g.Criteria(tc.opt)
			sCtx.Require().Error(err)
			sCtx.Assert().True(errors.Is(err, ErrInvalidConfig))
		})
	}
}

func (s *GeneratorUnitSuite) TestSearchHelpers(t provider.T) {
	t.Parallel()
	t.Title("Search helpers produce non-empty reproducible values")

	first := New(WithSeed(99))
	second := New(WithSeed(99))

	t.Assert().NotEmpty(first.SearchTerm())
	t.Assert().Equal(first.Title(), second.Title())
}
