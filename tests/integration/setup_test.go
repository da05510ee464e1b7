package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"monevo/internal/chat"
	"monevo/internal/handlers"
	"monevo/internal/logger"
	"monevo/internal/middleware"
	"monevo/internal/services"
	"monevo/internal/store"
	"monevo/internal/testutil"
	"monevo/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite database, wired the same way as cmd/api.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	ledger := store.NewGormLedger(db)
	facade := services.NewFacade(ledger)
	processor := chat.NewProcessor(facade, nil)

	budgetHandler := handlers.NewBudgetHandler(facade)
	movementHandler := handlers.NewMovementHandler(facade)
	chatHandler := handlers.NewChatHandler(processor)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")
	v1.Use(middleware.UserIdentity())

	budgets := v1.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetSummary)
	budgets.PUT("/:category", budgetHandler.UpdateBudget)
	budgets.DELETE("/:category", budgetHandler.DeleteBudget)
	budgets.GET("/:category/exists", budgetHandler.BudgetExists)
	budgets.GET("/:category/movements", movementHandler.GetHistory)

	movements := v1.Group("/movements")
	movements.POST("", movementHandler.RecordMovement)

	v1.POST("/chat", chatHandler.ProcessMessage)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(middleware.UserHeader, userID)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// createBudget creates a budget through the API, failing the test on error.
func (app *testApp) createBudget(t *testing.T, userID, body string) {
	t.Helper()
	rec := app.request("POST", "/api/v1/budgets", body, userID)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create budget failed: %d %s", rec.Code, rec.Body.String())
	}
}

// chat sends a free-text message and returns the reply.
func (app *testApp) chat(t *testing.T, userID, text string) string {
	t.Helper()
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		t.Fatalf("failed to marshal chat body: %v", err)
	}
	rec := app.request("POST", "/api/v1/chat", string(body), userID)
	if rec.Code != http.StatusOK {
		t.Fatalf("chat failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["reply"].(string)
}
