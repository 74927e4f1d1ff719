package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/Baaaki/brew-book/internal/config"
	"github.com/Baaaki/brew-book/internal/handler"
	"github.com/Baaaki/brew-book/internal/repository"
	"github.com/Baaaki/brew-book/internal/router"
	"github.com/Baaaki/brew-book/internal/service"
	"github.com/Baaaki/brew-book/internal/testutil"
	"github.com/Baaaki/brew-book/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// HandlerIntegrationTestSuite drives the full HTTP surface: router,
// middleware, handlers, services and repositories over a test database.
type HandlerIntegrationTestSuite struct {
	suite.Suite
	testDB *testutil.TestDatabase
	router *gin.Engine
}

// SetupSuite runs before all tests
func (s *HandlerIntegrationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	logger.Init(false)

	s.testDB = testutil.SetupTestDatabase(s.T())

	cfg := &config.Config{
		JWTSecret:      "test-secret-key",
		JWTExpiry:      time.Hour,
		Environment:    "test",
		AllowedOrigins: []string{"http://localhost:3000"},
	}

	userRepo := repository.NewUserRepository(s.testDB.DB)
	recipeRepo := repository.NewRecipeRepository(s.testDB.DB)
	annotationRepo := repository.NewAnnotationRepository(s.testDB.DB)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	equipmentService := service.NewEquipmentService(userRepo)
	recipeService := service.NewRecipeService(recipeRepo, annotationRepo)
	annotationService := service.NewAnnotationService(annotationRepo)

	s.router = router.New(cfg, userRepo, nil, router.Handlers{
		Auth:       handler.NewAuthHandler(authService, cfg.IsProduction()),
		Equipment:  handler.NewEquipmentHandler(equipmentService),
		Recipe:     handler.NewRecipeHandler(recipeService),
		Admin:      handler.NewAdminHandler(recipeService),
		Annotation: handler.NewAnnotationHandler(annotationService),
	})
}

// TearDownSuite runs after all tests
func (s *HandlerIntegrationTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

// SetupTest resets the database and recreates the two standing accounts.
func (s *HandlerIntegrationTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)

	user, err := testutil.DefaultTestUser()
	assert.NoError(s.T(), err)
	admin, err := testutil.DefaultAdminUser()
	assert.NoError(s.T(), err)
	s.testDB.DB.Create(user)
	s.testDB.DB.Create(admin)
}

func (s *HandlerIntegrationTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		assert.NoError(s.T(), json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerIntegrationTestSuite) createRecipe(path, title string, utensils []string) uint {
	refs := make([]map[string]string, 0, len(utensils))
	for _, u := range utensils {
		refs = append(refs, map[string]string{"Utensil": u})
	}
	w := s.request(http.MethodPost, path, gin.H{
		"Title":       title,
		"Description": "test",
		"Utensils":    refs,
		"Recipie":     "step one\nstep two",
		"Ingredients": []string{"coffee"},
	})
	assert.Equal(s.T(), http.StatusCreated, w.Code)

	var resp struct {
		ID uint `json:"id"`
	}
	assert.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ID
}

// TestIdentityMiddleware: missing username is a bad request, unknown
// username is not found.
func (s *HandlerIntegrationTestSuite) TestIdentityMiddleware() {
	w := s.request(http.MethodGet, "/master/recipies", nil)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)

	w = s.request(http.MethodGet, "/master/recipies?username=ghost", nil)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)

	w = s.request(http.MethodGet, "/master/recipies?username=testuser", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)
}

// TestAdminGate: admin routes reject regular accounts.
func (s *HandlerIntegrationTestSuite) TestAdminGate() {
	w := s.request(http.MethodGet, "/admin/recipes?username=testuser", nil)
	assert.Equal(s.T(), http.StatusForbidden, w.Code)

	w = s.request(http.MethodGet, "/admin/recipes?username=admin", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)
}

// TestRegisterAndLoginFlow
func (s *HandlerIntegrationTestSuite) TestRegisterAndLoginFlow() {
	w := s.request(http.MethodPost, "/users", gin.H{
		"Username": "fresh",
		"Password": "Fresh1234567",
		"Utensils": []string{"Pour-over"},
	})
	assert.Equal(s.T(), http.StatusCreated, w.Code)

	// Duplicate username conflicts
	w = s.request(http.MethodPost, "/users", gin.H{
		"Username": "fresh",
		"Password": "Other1234567",
	})
	assert.Equal(s.T(), http.StatusConflict, w.Code)

	// Login sets the token cookie
	w = s.request(http.MethodPost, "/login", gin.H{
		"Username": "fresh",
		"Password": "Fresh1234567",
	})
	assert.Equal(s.T(), http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name == "token" {
			found = true
			assert.True(s.T(), c.HttpOnly)
			assert.NotEmpty(s.T(), c.Value)
		}
	}
	assert.True(s.T(), found, "expected a token cookie")

	w = s.request(http.MethodPost, "/login", gin.H{
		"Username": "fresh",
		"Password": "wrong",
	})
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)

	w = s.request(http.MethodGet, "/users/fresh/role", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.JSONEq(s.T(), `{"role":"user"}`, w.Body.String())
}

// TestListingShapes: the master and admin listings are bare arrays, the
// personal listing is wrapped. All three shapes are client contract.
func (s *HandlerIntegrationTestSuite) TestListingShapes() {
	s.createRecipe("/admin/recipes?username=admin", "Master Cup", []string{"Pour-over"})
	s.createRecipe("/recipies?username=testuser", "My Cup", nil)

	w := s.request(http.MethodGet, "/master/recipies?username=testuser", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)
	var bare []map[string]interface{}
	assert.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &bare))
	assert.Len(s.T(), bare, 1)
	assert.Equal(s.T(), "Master Cup", bare[0]["title"])

	w = s.request(http.MethodGet, "/recipies?username=testuser", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)
	var wrapped struct {
		Recipes []map[string]interface{} `json:"recipes"`
	}
	assert.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &wrapped))
	assert.Len(s.T(), wrapped.Recipes, 1)
	assert.Equal(s.T(), "My Cup", wrapped.Recipes[0]["title"])

	w = s.request(http.MethodGet, "/admin/recipes?username=admin", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)
	bare = nil
	assert.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &bare))
	assert.Len(s.T(), bare, 1)
}

// TestRecipeDetailShape: the detail payload carries the exact keys the
// client renders.
func (s *HandlerIntegrationTestSuite) TestRecipeDetailShape() {
	id := s.createRecipe("/recipies?username=testuser", "Detail Cup", []string{"French Press"})

	w := s.request(http.MethodGet, "/recipie/"+itoa(id)+"?username=testuser", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)

	var detail map[string]interface{}
	assert.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &detail))
	for _, key := range []string{
		"id", "title", "description", "equipment", "ingredients",
		"instructions", "userRating", "userNotes", "isMasterRecipe",
	} {
		assert.Contains(s.T(), detail, key)
	}
	assert.Equal(s.T(), "Detail Cup", detail["title"])
	assert.Equal(s.T(), float64(0), detail["userRating"])
	// Empty collections serialize as [], never null
	assert.NotNil(s.T(), detail["userNotes"])
}

// TestRatingEndpoint: an explicit zero score binds and round-trips.
func (s *HandlerIntegrationTestSuite) TestRatingEndpoint() {
	id := s.createRecipe("/admin/recipes?username=admin", "Rated Cup", nil)

	w := s.request(http.MethodPost, "/recipies/"+itoa(id)+"/rating?username=testuser", gin.H{"rating": 4})
	assert.Equal(s.T(), http.StatusOK, w.Code)

	w = s.request(http.MethodPost, "/recipies/"+itoa(id)+"/rating?username=testuser", gin.H{"rating": 0})
	assert.Equal(s.T(), http.StatusOK, w.Code)

	// Missing score is a binding error
	w = s.request(http.MethodPost, "/recipies/"+itoa(id)+"/rating?username=testuser", gin.H{})
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

// TestNoteEndpoints: notes need no identity; deletion is positional.
func (s *HandlerIntegrationTestSuite) TestNoteEndpoints() {
	id := s.createRecipe("/recipies?username=testuser", "Noted Cup", nil)

	w := s.request(http.MethodPost, "/recipies/"+itoa(id)+"/notes", gin.H{"note": "too bitter"})
	assert.Equal(s.T(), http.StatusOK, w.Code)

	w = s.request(http.MethodDelete, "/recipies/"+itoa(id)+"/notes/5", nil)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)

	w = s.request(http.MethodDelete, "/recipies/"+itoa(id)+"/notes/0", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)

	w = s.request(http.MethodDelete, "/recipies/"+itoa(id)+"/notes/bogus", nil)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

// TestForbiddenAndNotFoundMapping
func (s *HandlerIntegrationTestSuite) TestForbiddenAndNotFoundMapping() {
	id := s.createRecipe("/recipies?username=testuser", "Private Cup", nil)

	// Another registered account cannot read it
	s.request(http.MethodPost, "/users", gin.H{"Username": "peeker", "Password": "Peek12345678"})
	w := s.request(http.MethodGet, "/recipie/"+itoa(id)+"?username=peeker", nil)
	assert.Equal(s.T(), http.StatusForbidden, w.Code)

	w = s.request(http.MethodGet, "/recipie/99999?username=testuser", nil)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)

	// Cloning a personal recipe is forbidden
	w = s.request(http.MethodPost, "/recipies/"+itoa(id)+"/clone?username=peeker", gin.H{
		"Title": "Stolen Cup",
	})
	assert.Equal(s.T(), http.StatusForbidden, w.Code)
}

// TestEquipmentEndpoints
func (s *HandlerIntegrationTestSuite) TestEquipmentEndpoints() {
	w := s.request(http.MethodGet, "/equipment", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.JSONEq(s.T(),
		`{"equipment":["French Press","Pour-over","Espresso Machine","Cold Brew"]}`,
		w.Body.String())

	w = s.request(http.MethodPut, "/users/testuser/equipment", gin.H{
		"Utensils": []string{"Cold Brew"},
	})
	assert.Equal(s.T(), http.StatusOK, w.Code)

	w = s.request(http.MethodGet, "/users/testuser/equipment", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)
	assert.JSONEq(s.T(), `{"equipment":["Cold Brew"]}`, w.Body.String())
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// TestSuite runs all tests in the suite
func TestHandlerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerIntegrationTestSuite))
}
