//go:build e2e

package ui

import (
	"strings"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"

	"github.com/Karthick-71/rr-qa-automation-assignment/internal/model"
)

type DirectURLSuite struct {
	suite.Suite
}

func TestDirectURLSuite(t *testing.T) {
	suite.RunSuite(t, new(DirectURLSuite))
}

func (s *DirectURLSuite) TestCategoriesReachableByDirectURL(t provider.T) {
	t.Epic("Discover UI")
	t.Feature("Direct URL access")
	t.Title("Every category renders when opened through its URL slug")

	fx := newWebFixture(t)
	defer fx.Close(t)

	for _, category := range model.Categories {
		category := category
		t.WithNewStep("open /"+category.Slug(), func(sCtx provider.StepCtx) {
			state, err := fx.home.OpenCategory(category)
			sCtx.Require().NoError(err)
			sCtx.Assert().True(strings.Contains(fx.home.URL(), category.Slug()),
				"URL %q should contain slug %q", fx.home.URL(), category.Slug())
			sCtx.Assert().GreaterOrEqual(state.CurrentPage, 1)
		})
	}
}

func (s *DirectURLSuite) TestUnknownPathStillRenders(t provider.T) {
	t.Epic("Discover UI")
	t.Feature("Direct URL access")
	t.Title("An unknown path falls back to a rendered view, not a blank page")

	fx := newWebFixture(t)
	defer fx.Close(t)

	state, err := fx.home.OpenURL("definitely-not-a-category")
	t.Require().NoError(err)

	title, err := fx.home.Title()
	t.Require().NoError(err)
	t.Assert().NotEmpty(title)
	t.Assert().GreaterOrEqual(state.CurrentPage, 1)
}
