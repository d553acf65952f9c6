//go:build e2e

package ui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"

	"github.com/Karthick-71/rr-qa-automation-assignment/internal/gen"
	"github.com/Karthick-71/rr-qa-automation-assignment/internal/model"
)

// KnownIssuesSuite records the platform's observed behavior around two
// suspected defects: navigation beyond the last page and acceptance of
// inverted year ranges. These tests document, they do not assume a correct
// outcome.
type KnownIssuesSuite struct {
	suite.Suite
}

func TestKnownIssuesSuite(t *testing.T) {
	suite.RunSuite(t, new(KnownIssuesSuite))
}

func (s *KnownIssuesSuite) TestBeyondLastPageBehavior(t provider.T) {
	t.Epic("Discover UI")
	t.Feature("Pagination")
	t.Tags("known-issue")
	t.Title("Navigation past the last page: observed behavior recorded")

	fx := newWebFixture(t)
	defer fx.Close(t)

	t.Require().NoError(fx.home.Open())

	state, err := fx.home.SelectCategory(model.CategoryPopular)
	t.Require().NoError(err)
	if state.TotalPages == 0 {
		t.Skip("platform does not expose a page total")
	}

	target := state.TotalPages + 5
	beyond, err := fx.home.GoToPage(target)
	t.Require().NoError(err, "navigating beyond the last page must not error out of the page object")

	// Either the platform clamps to the last page or serves an empty grid;
	// both are recorded as the current behavior of the defect.
	t.Logf("requested page %d of %d: landed on page %d with %d items",
		target, state.TotalPages, beyond.CurrentPage, len(beyond.Items))
	t.Assert().GreaterOrEqual(beyond.CurrentPage, 1)
	t.Assert().LessOrEqual(beyond.CurrentPage, target)
}

func (s *KnownIssuesSuite) TestWalkToLastPage(t provider.T) {
	t.Epic("Discover UI")
	t.Feature("Pagination")
	t.Tags("known-issue")
	t.Title("Walking Next until it stops: where pagination actually ends")

	fx := newWebFixture(t)
	defer fx.Close(t)

	t.Require().NoError(fx.home.Open())

	_, err := fx.home.SelectCategory(model.CategoryPopular)
	t.Require().NoError(err)
	if !fx.home.PaginationAvailable() {
		t.Skip("pagination not available")
	}

	const maxHops = 10
	hops := 0
	for hops < maxHops {
		moved, err := fx.home.NextPage()
		t.Require().NoError(err)
		if !moved {
			break
		}
		hops++
	}

	state, err := fx.home.ReadState()
	t.Require().NoError(err)
	t.Logf("stopped after %d hops on page %d (total pages reported: %d)",
		hops, state.CurrentPage, state.TotalPages)
	t.Assert().GreaterOrEqual(state.CurrentPage, 1)
}

func (s *KnownIssuesSuite) TestInvertedYearRangeRejectedByGeneratorAcceptedByPlatform(t provider.T) {
	t.Epic("Discover UI")
	t.Feature("Filtering")
	t.Tags("known-issue")
	t.Title("Inverted year range: generator refuses it, platform's reaction recorded")

	g := gen.New(gen.WithSeed(3))
	_, err := g.Criteria(gen.FixedYearRange(2025, 2020))
	t.Require().Error(err)
	t.Assert().True(errors.Is(err, gen.ErrInvalidConfig),
		"generator must refuse an inverted range")

	fx := newWebFixture(t)
	defer fx.Close(t)

	// Bypass the generator and the sidebar: hand the platform the inverted
	// range straight through the URL.
	state, err := fx.home.OpenURL(fmt.Sprintf("%s?from=%d&to=%d", model.CategoryPopular.Slug(), 2025, 2020))
	t.Require().NoError(err, "platform should not crash on an inverted range")

	t.Logf("inverted range via URL: platform rendered %d items on page %d",
		len(state.Items), state.CurrentPage)
	t.Assert().GreaterOrEqual(state.CurrentPage, 1)
}
