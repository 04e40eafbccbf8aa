package e2e

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"pricingsite/internal/database"
	"pricingsite/internal/domain/content"
	"pricingsite/internal/domain/editor"
	"pricingsite/internal/domain/pricing"
	"pricingsite/internal/middleware"
	jwtsvc "pricingsite/internal/pkg/jwt"
)

type E2ETestSuite struct {
	router  *gin.Engine
	metrics *middleware.Metrics
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

const (
	editorUser     = "editor"
	editorPassword = "Password123!"
)

func setupTestSuite(t *testing.T) *E2ETestSuite {
	// Use in-memory SQLite for testing
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db, &content.FieldOverride{}))

	logger, _ := test.NewNullLogger()

	hub := content.NewHub()
	contentService, err := content.NewService(content.NewRepository(db), 32, hub, logger)
	require.NoError(t, err)
	contentHandler := content.NewHandler(contentService, hub, logger)

	pricingService := pricing.NewService(contentService, logger)
	pricingHandler := pricing.NewHandler(pricingService, pricing.MustRenderer(), nil, "home")

	hash, err := bcrypt.GenerateFromPassword([]byte(editorPassword), bcrypt.MinCost)
	require.NoError(t, err)
	jwtService := jwtsvc.New("test_secret_key_32_characters_min", time.Hour)
	editorHandler := editor.NewHandler(editor.NewService(editor.Credentials{
		Username:     editorUser,
		PasswordHash: string(hash),
	}, jwtService), jwtService)

	metrics := middleware.NewMetrics("pricingsite_test")

	// Setup router
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(metrics.Middleware())
	r.GET("/metrics", metrics.Handler())

	pricing.RegisterPageRoutes(r, pricingHandler)

	v1 := r.Group("/api/v1")
	pricing.RegisterPublicRoutes(v1, pricingHandler)
	editor.RegisterPublicRoutes(v1, editorHandler)

	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(jwtService), editor.RequireEditor())
	{
		content.RegisterEditorRoutes(protected, contentHandler)
	}

	return &E2ETestSuite{router: r, metrics: metrics}
}

func (s *E2ETestSuite) makeRequest(method, path string, body interface{}, token string) (*httptest.ResponseRecorder, error) {
	var bodyBytes []byte
	var err error

	if body != nil {
		bodyBytes, err = json.Marshal(body)
		if err != nil {
			return nil, err
		}
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	return w, nil
}

func parseResponse(w *httptest.ResponseRecorder) (*TestResponse, error) {
	var resp TestResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	if err != nil {
		log.Printf("Failed to parse response. Status: %d, Body: %s", w.Code, w.Body.String())
	}
	return &resp, err
}

func (s *E2ETestSuite) login(t *testing.T) string {
	t.Helper()
	w, err := s.makeRequest("POST", "/api/v1/editor/login", map[string]string{
		"username": editorUser,
		"password": editorPassword,
	}, "")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp, err := parseResponse(w)
	require.NoError(t, err)
	token, _ := resp.Data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// =============================================================================
// Flow 1: Visitor sees the default section
// =============================================================================

func TestFlow1_VisitorDefaults(t *testing.T) {
	suite := setupTestSuite(t)

	t.Run("GET /pricing", func(t *testing.T) {
		w, err := suite.makeRequest("GET", "/pricing", nil, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
		assert.Contains(t, w.Body.String(), `<span data-editable="plan2Price">$49</span>`)
	})

	t.Run("GET /pricing?billing=annual", func(t *testing.T) {
		w, err := suite.makeRequest("GET", "/pricing/home?billing=annual", nil, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `<span data-editable="plan2Price">$39</span>`)
		assert.Contains(t, w.Body.String(), "Save $120/year")
	})

	t.Run("POST /pricing/home/cta/bottomCTA", func(t *testing.T) {
		w, err := suite.makeRequest("POST", "/pricing/home/cta/bottomCTA", nil, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/demo", w.Header().Get("Location"))
	})
}

// =============================================================================
// Flow 2: Editor changes content, visitor sees it, editor reverts
// =============================================================================

func TestFlow2_EditorRoundTrip(t *testing.T) {
	suite := setupTestSuite(t)
	token := suite.login(t)

	t.Run("PUT /editor/sections/home/fields", func(t *testing.T) {
		w, err := suite.makeRequest("PUT", "/api/v1/editor/sections/home/fields", map[string]interface{}{
			"fields": map[string]string{
				"plan2Price":    "$59",
				"bottomCTAHref": "https://example.com/book",
			},
		}, token)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("page reflects the edit", func(t *testing.T) {
		w, err := suite.makeRequest("GET", "/pricing/home", nil, "")
		require.NoError(t, err)
		assert.Contains(t, w.Body.String(), `<span data-editable="plan2Price">$59</span>`)

		// the annual price is fixed regardless of the configured price
		w, err = suite.makeRequest("GET", "/pricing/home?billing=annual", nil, "")
		require.NoError(t, err)
		assert.Contains(t, w.Body.String(), `<span data-editable="plan2Price">$39</span>`)
	})

	t.Run("CTA follows the edited href", func(t *testing.T) {
		w, err := suite.makeRequest("POST", "/pricing/home/cta/bottomCTA", nil, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "https://example.com/book", w.Header().Get("Location"))
	})

	t.Run("other sections keep defaults", func(t *testing.T) {
		w, err := suite.makeRequest("GET", "/api/v1/pricing/sections/launch", nil, "")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, w.Code)
		resp, err := parseResponse(w)
		require.NoError(t, err)
		plans := resp.Data["plans"].([]interface{})
		assert.Equal(t, "$49", plans[1].(map[string]interface{})["price"])
	})

	t.Run("DELETE /editor/sections/home/fields/plan2Price", func(t *testing.T) {
		w, err := suite.makeRequest("DELETE", "/api/v1/editor/sections/home/fields/plan2Price", nil, token)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)

		w, err = suite.makeRequest("GET", "/pricing/home", nil, "")
		require.NoError(t, err)
		assert.Contains(t, w.Body.String(), `<span data-editable="plan2Price">$49</span>`)
	})
}

// =============================================================================
// Flow 3: Editor API is protected
// =============================================================================

func TestFlow3_EditorAuth(t *testing.T) {
	suite := setupTestSuite(t)

	t.Run("no token", func(t *testing.T) {
		w, err := suite.makeRequest("GET", "/api/v1/editor/sections", nil, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		w, err := suite.makeRequest("POST", "/api/v1/editor/login", map[string]string{
			"username": editorUser,
			"password": "nope",
		}, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		resp, err := parseResponse(w)
		require.NoError(t, err)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "INVALID_CREDENTIALS", resp.Error.Code)
	})

	t.Run("token with another role", func(t *testing.T) {
		other, err := jwtsvc.New("test_secret_key_32_characters_min", time.Hour).GenerateToken("viewer", "viewer")
		require.NoError(t, err)

		w, err := suite.makeRequest("GET", "/api/v1/editor/sections", nil, other)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		token := suite.login(t)
		w, err := suite.makeRequest("PUT", "/api/v1/editor/sections/home/fields", map[string]interface{}{
			"fields": map[string]string{"plan4Name": "Ultra"},
		}, token)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestFlow4_Metrics(t *testing.T) {
	suite := setupTestSuite(t)

	_, err := suite.makeRequest("GET", "/pricing/home", nil, "")
	require.NoError(t, err)

	w, err := suite.makeRequest("GET", "/metrics", nil, "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `pricingsite_test_http_requests_total{method="GET",route="/pricing/:section",status="200"} 1`)
}
