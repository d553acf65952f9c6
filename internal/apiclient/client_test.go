package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"

	"github.com/Karthick-71/rr-qa-automation-assignment/internal/config"
)

type APIClientUnitSuite struct {
	suite.Suite
}

func TestAPIClientUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(APIClientUnitSuite))
}

// newStubBackend emulates the platform API: popular movies, discover with
// year params, and the structured 401 the real backend returns without a key.
func newStubBackend() *httptest.Server {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/movie/popular", func(c *gin.Context) {
		if c.Query("api_key") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status_code":    7,
				"status_message": "Invalid API key: You must be granted a valid key.",
				"success":        false,
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"page":          1,
			"total_pages":   500,
			"total_results": 10000,
			"results": []gin.H{
				{"title": "Deadpool & Wolverine", "release_date": "2024-07-24", "vote_average": 7.7},
				{"title": "Dune: Part Two", "release_date": "2024-02-27", "vote_average": 8.2},
			},
		})
	})

	router.GET("/discover/movie", func(c *gin.Context) {
		if c.Query("api_key") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"status_code": 7, "success": false})
			return
		}
		// The platform accepts inverted year ranges without complaint; the
		// stub mirrors that lenient behavior so defect tests stay honest.
		c.JSON(http.StatusOK, gin.H{
			"page":          1,
			"total_pages":   1,
			"total_results": 0,
			"results":       []gin.H{},
		})
	})

	return httptest.NewServer(router)
}

func (s *APIClientUnitSuite) client(baseURL, key string) *Client {
	return New(config.API{
		BaseURL: baseURL,
		Key:     key,
		Timeout: 5 * time.Second,
	})
}

func (s *APIClientUnitSuite) TestRequestAndAssertions(t provider.T) {
	t.Parallel()
	t.Title("Typed assertions over a popular-movies response")

	backend := newStubBackend()
	defer backend.Close()

	resp, err := s.client(backend.URL, "test-key").Request(context.Background(), http.MethodGet, "/movie/popular", nil)
	t.Require().NoError(err)

	t.Assert().NoError(resp.ExpectStatus(http.StatusOK))
	t.Assert().Error(resp.ExpectStatus(http.StatusNotFound))

	t.Assert().NoError(resp.ExpectField("results", NonEmpty()))
	t.Assert().NoError(resp.ExpectField("total_results", IntAtLeast(1)))
	t.Assert().NoError(resp.ExpectField("page", IntEquals(1)))
	t.Assert().NoError(resp.ExpectField("results.0.vote_average", FloatBetween(0, 10)))
	t.Assert().NoError(resp.ExpectField("results.0.title", StringContains("deadpool")))
	t.Assert().Error(resp.ExpectField("results.0.title", StringContains("batman")))
	t.Assert().Error(resp.ExpectField("missing_field", Exists()))
}

func (s *APIClientUnitSuite) TestUnauthorizedErrorShape(t provider.T) {
	t.Parallel()
	t.Title("Missing API key yields the platform's structured 401 body")

	backend := newStubBackend()
	defer backend.Close()

	resp, err := s.client(backend.URL, "").Request(context.Background(), http.MethodGet, "/movie/popular", nil)
	t.Require().NoError(err)

	t.Assert().NoError(resp.ExpectStatus(http.StatusUnauthorized))
	t.Assert().NoError(resp.ExpectField("status_code", Exists()))
	t.Assert().NoError(resp.ExpectField("status_message", NonEmpty()))
}

func (s *APIClientUnitSuite) TestQueryParams(t provider.T) {
	t.Parallel()
	t.Title("Query params and the configured key are forwarded")

	var seen url.Values
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer backend.Close()

	params := url.Values{}
	params.Set("primary_release_date.gte", "2020-01-01")

	_, err := s.client(backend.URL, "secret").Request(context.Background(), http.MethodGet, "/discover/movie", params)
	t.Require().NoError(err)

	t.Assert().Equal("2020-01-01", seen.Get("primary_release_date.gte"))
	t.Assert().Equal("secret", seen.Get("api_key"))
}

func (s *APIClientUnitSuite) TestPing(t provider.T) {
	t.Parallel()
	t.Title("Ping treats 200 and 401 as reachable, transport failure as environment unavailable")

	backend := newStubBackend()

	t.WithNewStep("reachable without key (401)", func(sCtx provider.StepCtx) {
		sCtx.Assert().NoError(s.client(backend.URL, "").Ping(context.Background()))
	})

	t.WithNewStep("reachable with key (200)", func(sCtx provider.StepCtx) {
		sCtx.Assert().NoError(s.client(backend.URL, "test-key").Ping(context.Background()))
	})

	backend.Close()

	t.WithNewStep("unreachable backend", func(sCtx provider.StepCtx) {
		err := s.client(backend.URL, "").Ping(context.Background())
		sCtx.Require().Error(err)
		sCtx.Assert().True(errors.Is(err, ErrEnvironmentUnavailable))
	})
}

func (s *APIClientUnitSuite) TestNoRetries(t provider.T) {
	t.Parallel()
	t.Title("A failing endpoint is hit exactly once")

	hits := 0
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer backend.Close()

	resp, err := s.client(backend.URL, "").Request(context.Background(), http.MethodGet, "/movie/popular", nil)
	t.Require().NoError(err)

	t.Assert().Equal(http.StatusServiceUnavailable, resp.Status)
	t.Assert().Equal(1, hits)
}
