// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/moneyboard/backend/internal/application/ledger"
	"github.com/moneyboard/backend/internal/application/usecase/budget"
	"github.com/moneyboard/backend/internal/application/usecase/dashboard"
	"github.com/moneyboard/backend/internal/application/usecase/recurring"
	"github.com/moneyboard/backend/internal/application/usecase/settings"
	"github.com/moneyboard/backend/internal/application/usecase/transaction"
	"github.com/moneyboard/backend/internal/infra/server/router"
	"github.com/moneyboard/backend/internal/integration/adapters"
	"github.com/moneyboard/backend/internal/integration/entrypoint/controller"
	"github.com/moneyboard/backend/internal/integration/entrypoint/middleware"
	"github.com/moneyboard/backend/internal/integration/persistence"
	"github.com/moneyboard/backend/internal/integration/persistence/model"
	"github.com/moneyboard/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// testContext holds the per-scenario state.
type testContext struct {
	db     *mock.Db
	server *httptest.Server
	client *http.Client

	headers       map[string]string
	accessToken   string
	currentUserID uuid.UUID
	currentEmail  string

	responseStatus int
	responseBody   any
	responseRaw    []byte

	lastTransactionID uuid.UUID
	lastRecurringID   uuid.UUID
	lastBudgetID      int
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"transactions":           &model.TransactionModel{},
			"recurring_transactions": &model.RecurringTransactionModel{},
			"user_settings":          &model.UserSettingsModel{},
			"email_queue":            &model.EmailQueueModel{},
		}),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		if err := test.before(); err != nil {
			return ctx, err
		}
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if test.server != nil {
			test.server.Close()
			test.server = nil
		}
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Seed steps
	ctx.Given(`^the following transactions exist:$`, test.theFollowingTransactionsExist)
	ctx.Given(`^the following budgets exist:$`, test.theFollowingBudgetsExist)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
}

// before resets the scenario state and rebuilds the application so each
// scenario starts with an empty ledger, registry and store.
func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.currentUserID = uuid.Nil
	t.currentEmail = ""
	t.responseStatus = 0
	t.responseBody = nil
	t.responseRaw = nil
	t.lastTransactionID = uuid.Nil
	t.lastRecurringID = uuid.Nil
	t.lastBudgetID = 0

	if err := t.db.ClearDB(); err != nil {
		return err
	}
	if err := mock.ClearRedis(mock.NewRedis()); err != nil {
		return err
	}

	if t.server != nil {
		t.server.Close()
	}
	t.server = httptest.NewServer(t.buildEngine())
	return nil
}

// buildEngine wires the full application against the mock store and redis.
func (t *testContext) buildEngine() *gin.Engine {
	transactionRepo := persistence.NewTransactionRepository(t.db.DbConn)
	recurringRepo := persistence.NewRecurringRepository(t.db.DbConn)
	settingsRepo := persistence.NewSettingsRepository(t.db.DbConn)
	emailQueueRepo := persistence.NewEmailQueueRepository(t.db.DbConn)

	sessions := ledger.NewManager(transactionRepo, recurringRepo)
	registry := budget.NewRegistry()
	tokenService := adapters.NewTokenService(testJWTSecret)

	healthController := controller.NewHealthController(func() bool {
		return t.db != nil && t.db.DbConn != nil
	})
	transactionController := controller.NewTransactionController(
		transaction.NewListTransactionsUseCase(sessions),
		transaction.NewCreateTransactionUseCase(sessions),
		transaction.NewUpdateTransactionUseCase(sessions),
		transaction.NewDeleteTransactionUseCase(sessions),
		transaction.NewExportTransactionsUseCase(sessions),
	)
	dashboardController := controller.NewDashboardController(
		dashboard.NewGetOverviewUseCase(sessions),
		dashboard.NewGetAnalyticsUseCase(sessions),
	)
	recurringController := controller.NewRecurringController(
		recurring.NewListRecurringUseCase(sessions),
		recurring.NewCreateRecurringUseCase(sessions),
		recurring.NewToggleRecurringUseCase(sessions),
	)
	budgetController := controller.NewBudgetController(
		budget.NewListBudgetsUseCase(registry, sessions, emailQueueRepo),
		budget.NewCreateBudgetUseCase(registry),
		budget.NewUpdateBudgetUseCase(registry),
		budget.NewDeleteBudgetUseCase(registry),
	)
	settingsController := controller.NewSettingsController(
		settings.NewGetSettingsUseCase(settingsRepo),
		settings.NewUpdateSettingsUseCase(settingsRepo),
	)

	rateLimiter := middleware.NewRateLimiter(mock.NewRedis())
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		transactionController,
		dashboardController,
		recurringController,
		budgetController,
		settingsController,
		rateLimiter,
		authMiddleware,
	)
	return r.Setup("test")
}

func (t *testContext) theAPIServerIsRunning() error {
	if t.server == nil {
		return errors.New("test server is not running")
	}
	return nil
}

// iAmLoggedInAs mints an access token the way the external auth provider
// would, signed with the shared test secret.
func (t *testContext) iAmLoggedInAs(email string) error {
	t.currentUserID = uuid.New()
	t.currentEmail = email

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id": t.currentUserID.String(),
		"email":   email,
		"exp":     jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":     jwt.NewNumericDate(now),
		"sub":     t.currentUserID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}

	t.accessToken = signed
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

// theFollowingTransactionsExist seeds transactions through the API so the
// ledger session mirror stays in sync with the store.
func (t *testContext) theFollowingTransactionsExist(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return errors.New("transactions table needs a header row and at least one data row")
	}

	header := table.Rows[0]
	for _, row := range table.Rows[1:] {
		payload := make(map[string]string, len(header.Cells))
		for i, cell := range header.Cells {
			payload[cell.Value] = t.replacePlaceholders(row.Cells[i].Value)
		}

		body, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		if err := t.executeRequest(http.MethodPost, "/api/v1/transactions", body); err != nil {
			return err
		}
		if t.responseStatus != http.StatusCreated {
			return fmt.Errorf("failed to seed transaction: status %d, body %v", t.responseStatus, t.responseBody)
		}
	}
	return nil
}

// theFollowingBudgetsExist seeds budgets through the API.
func (t *testContext) theFollowingBudgetsExist(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return errors.New("budgets table needs a header row and at least one data row")
	}

	header := table.Rows[0]
	for _, row := range table.Rows[1:] {
		payload := make(map[string]any, len(header.Cells))
		for i, cell := range header.Cells {
			value := row.Cells[i].Value
			if cell.Value == "alert_on_exceed" {
				payload[cell.Value] = value == "true"
				continue
			}
			payload[cell.Value] = value
		}

		body, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		if err := t.executeRequest(http.MethodPost, "/api/v1/budgets", body); err != nil {
			return err
		}
		if t.responseStatus != http.StatusCreated {
			return fmt.Errorf("failed to seed budget: status %d, body %v", t.responseStatus, t.responseBody)
		}
	}
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

// replacePlaceholders substitutes captured ids and relative dates so
// features stay independent of the wall clock.
func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID.String())
	content = strings.ReplaceAll(content, "{{recurring_id}}", t.lastRecurringID.String())
	content = strings.ReplaceAll(content, "{{budget_id}}", strconv.Itoa(t.lastBudgetID))
	content = strings.ReplaceAll(content, "{{today}}", time.Now().UTC().Format("2006-01-02"))
	content = strings.ReplaceAll(content, "{{yesterday}}", time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02"))
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	url := t.server.URL + path

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.responseStatus = resp.StatusCode
	t.responseRaw = raw

	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.responseBody = string(raw)
		return nil
	}
	t.responseBody = parsed
	t.captureIDs(parsed)
	return nil
}

// captureIDs remembers resource ids from create responses for later steps.
func (t *testContext) captureIDs(body map[string]any) {
	idValue, ok := body["id"]
	if !ok {
		return
	}

	switch id := idValue.(type) {
	case string:
		parsed, err := uuid.Parse(id)
		if err != nil {
			return
		}
		// Recurring responses carry a frequency; transactions do not.
		if _, hasFrequency := body["frequency"]; hasFrequency {
			t.lastRecurringID = parsed
		} else {
			t.lastTransactionID = parsed
		}
	case float64:
		t.lastBudgetID = int(id)
	}
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.responseStatus == 0 {
		return errors.New("no response received")
	}
	if t.responseStatus != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expectedStatus, t.responseStatus, string(t.responseRaw))
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if _, ok := t.responseBody.(map[string]any); !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.responseBody)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if !strings.Contains(string(t.responseRaw), t.replacePlaceholders(expected)) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(t.responseRaw))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	value := getFieldValue(t.responseBody, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %s", field, string(t.responseRaw))
	}

	actual := fmt.Sprintf("%v", value)
	expected := t.replacePlaceholders(expectedValue)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if getFieldValue(t.responseBody, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %s", field, string(t.responseRaw))
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	result := t.db.DbConn.Find(entitySlicePtr.Interface())
	if result.Error != nil {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

// getFieldValue resolves a dot-separated path through nested JSON objects
// and arrays (numeric segments index into arrays).
func getFieldValue(object any, dotSeparatedField string) any {
	field := object
	for _, segment := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(segment); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[segment]
	}
	return field
}
