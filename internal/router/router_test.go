package router_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/riskcheck-api/internal/config"
	"github.com/noah-isme/riskcheck-api/internal/handler"
	"github.com/noah-isme/riskcheck-api/internal/router"
	"github.com/noah-isme/riskcheck-api/internal/service"
	"github.com/noah-isme/riskcheck-api/internal/view"
	"github.com/noah-isme/riskcheck-api/pkg/model"
)

func newApp(t *testing.T, limiter fiber.Handler) *fiber.App {
	t.Helper()
	classifier, err := model.LoadFile("../../models/student_depression_model.json")
	require.NoError(t, err)
	svc, err := service.NewAssessmentService(classifier, service.NewValidator(), zerolog.Nop())
	require.NoError(t, err)
	renderer, err := view.NewRenderer("")
	require.NoError(t, err)

	app := fiber.New()
	router.Register(app, config.Config{AppName: "RiskCheck", AppEnv: "test"}, router.Dependencies{
		AssessmentHandler: handler.NewAssessmentHandler(svc, renderer, "RiskCheck", zerolog.Nop()),
		MetricsHandler:    func(c *fiber.Ctx) error { return c.SendString("metrics") },
		Model:             handler.ModelInfo{Name: classifier.Metadata().Name, Features: len(classifier.FeatureNames())},
		SubmitLimiter:     limiter,
	})
	return app
}

func TestRegisterWiresRoutes(t *testing.T) {
	app := newApp(t, nil)

	cases := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/", fiber.StatusOK},
		{http.MethodGet, "/api/v1/health", fiber.StatusOK},
		{http.MethodGet, "/api/v1/assessments/options", fiber.StatusOK},
		{http.MethodGet, "/metrics", fiber.StatusOK},
		{http.MethodGet, "/unknown", fiber.StatusNotFound},
	}

	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest(tc.method, tc.path, nil))
		require.NoError(t, err)
		require.Equal(t, tc.status, resp.StatusCode, tc.path)
	}
}

func TestRegisterSetsApplicationHeader(t *testing.T) {
	app := newApp(t, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	require.NoError(t, err)
	require.Equal(t, "RiskCheck", resp.Header.Get("X-Application"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "student-depression-logreg")
}

func TestSubmitLimiterGuardsOnlySubmissions(t *testing.T) {
	limiter := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusTooManyRequests) }
	app := newApp(t, limiter)

	for _, path := range []string{"/assess", "/api/v1/assessments"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, path, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode, path)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
