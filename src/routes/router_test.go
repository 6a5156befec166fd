package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"admission-backend/src/agents"
	"admission-backend/src/controllers"
	"admission-backend/src/jobs"
	"admission-backend/src/middleware"
	"admission-backend/src/models"
	"admission-backend/src/services"
	"admission-backend/src/store"
	"admission-backend/src/testutil"
	"admission-backend/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	app   *fiber.App
	gen   *testutil.FakeGenerator
	repos *services.Repositories
}

func newTestServer(t *testing.T, s store.DocumentStore, opts Options) *testServer {
	t.Helper()
	require.NoError(t, store.InitCollections(context.Background(), s))

	repos := services.NewRepositories(s)
	gen := &testutil.FakeGenerator{Response: "model answer"}
	registry := services.NewAgentRegistry(repos)
	deps := agents.Deps{Repos: repos, Generator: gen, Tasks: registry}
	status := services.NewStatusService(repos)
	budgets := services.NewBudgetService(repos)
	officer := agents.NewAdmissionOfficer(deps, status)
	loans := agents.NewLoanOfficer(deps, budgets)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	InitRoutes(app, Controllers{
		Applications: &controllers.ApplicationController{
			Officer:     officer,
			Checker:     agents.NewDocumentChecker(deps),
			Shortlister: agents.NewShortlister(deps),
			Intake:      services.NewIntakeService(repos),
			Apps:        services.NewApplicationService(repos),
		},
		Students:  &controllers.StudentController{Counsellor: agents.NewStudentCounsellor(deps, nil), Loans: loans},
		Admission: &controllers.AdmissionController{Officer: officer},
		Loans:     &controllers.LoanController{Loans: loans, Budgets: budgets},
		Agents:    &controllers.AgentController{Registry: registry, Dispatcher: jobs.NewDispatcher(nil)},
		Health:    &controllers.HealthController{Store: s},
	}, opts)

	return &testServer{app: app, gen: gen, repos: repos}
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}, header ...string) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	resp, err := ts.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]interface{}{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	} else if len(raw) > 0 && raw[0] == '[' {
		var list []interface{}
		require.NoError(t, json.Unmarshal(raw, &list))
		out["items"] = list
	}
	return resp.StatusCode, out
}

func (ts *testServer) submit(t *testing.T, name string) map[string]interface{} {
	t.Helper()
	code, body := ts.do(t, http.MethodPost, "/applications", models.IntakeRequest{
		Name:    name,
		Email:   "student@example.com",
		Marks10: 91,
		Marks12: 88,
		Documents: []models.DocumentInput{
			{Type: models.DocIdentityProof},
			{Type: models.DocPhoto},
		},
	})
	require.Equal(t, http.StatusCreated, code, body)
	return body
}

func TestLivenessAndHealth(t *testing.T) {
	ts := newTestServer(t, store.NewMemoryStore(), Options{})

	resp, err := ts.app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	code, body := ts.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["store"])
}

func TestIntakeAndListing(t *testing.T) {
	ts := newTestServer(t, store.NewMemoryStore(), Options{})
	first := ts.submit(t, "Asha")
	ts.submit(t, "Ravi")

	code, body := ts.do(t, http.MethodGet, "/applications", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, body["items"], 2)

	code, body = ts.do(t, http.MethodGet, "/applications?page=2&limit=1", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 2, body["total"])
	assert.EqualValues(t, 2, body["totalPages"])
	assert.Equal(t, false, body["hasNext"])
	assert.Len(t, body["data"], 1)

	code, body = ts.do(t, http.MethodGet, "/applications/"+first["application_id"].(string), nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Asha", body["student_name"])
	assert.Equal(t, string(models.StatusSubmitted), body["status"])
}

func TestIntakeValidation(t *testing.T) {
	ts := newTestServer(t, store.NewMemoryStore(), Options{})

	code, body := ts.do(t, http.MethodPost, "/applications", models.IntakeRequest{Marks10: 140})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, body["details"], "name")
}

func TestApplicationNotFound(t *testing.T) {
	ts := newTestServer(t, store.NewMemoryStore(), Options{})

	code, body := ts.do(t, http.MethodGet, "/applications/nope", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, agents.MsgApplicationNotFound, body["message"])

	code, body = ts.do(t, http.MethodPost, "/applications/nope/verify-documents", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, string(agents.KindNotFound), body["kind"])
	assert.Equal(t, agents.MsgApplicationNotFound, body["result"])
}

func TestScreening(t *testing.T) {
	ts := newTestServer(t, store.NewMemoryStore(), Options{})

	code, body := ts.do(t, http.MethodPost, "/admission/screen", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, string(agents.KindNothingToProcess), body["kind"])
	assert.Equal(t, agents.MsgNoApplicationsToScreen, body["result"])
	assert.Zero(t, ts.gen.Calls())

	ts.submit(t, "Asha")
	code, body = ts.do(t, http.MethodPost, "/admission/screen", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "model answer", body["result"])
	assert.Equal(t, 1, ts.gen.Calls())
}

func TestLoanEvaluationWithoutBudget(t *testing.T) {
	ts := newTestServer(t, store.NewMemoryStore(), Options{})
	created := ts.submit(t, "Asha")

	code, body := ts.do(t, http.MethodPost, "/students/"+created["student_id"].(string)+"/loan-request",
		models.LoanInput{AmountRequested: 50000, Purpose: "tuition"})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, agents.MsgLoanBudgetMissing, body["result"])
	assert.Zero(t, ts.gen.Calls())

	code, body = ts.do(t, http.MethodGet, "/budget/loan", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = ts.do(t, http.MethodPut, "/budget/loan", models.BudgetRequest{TotalBudget: 100000, RemainingBudget: 100000})
	assert.Equal(t, http.StatusOK, code)

	code, body = ts.do(t, http.MethodPost, "/loans/evaluate", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "model answer", body["result"])
	assert.Equal(t, 1, ts.gen.Calls())
}

func TestStatusChangeAndFeeSlip(t *testing.T) {
	ts := newTestServer(t, store.NewMemoryStore(), Options{})
	appID := ts.submit(t, "Asha")["application_id"].(string)

	code, _ := ts.do(t, http.MethodPost, "/applications/"+appID+"/fee-slip", models.FeeSlipRequest{Amount: 1200})
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	code, body := ts.do(t, http.MethodPatch, "/applications/"+appID+"/status", models.StatusChangeRequest{Status: models.StatusAdmitted})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, string(models.StatusAdmitted), body["status"])

	code, _ = ts.do(t, http.MethodPatch, "/applications/"+appID+"/status", models.StatusChangeRequest{Status: models.StatusUnderReview})
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	resp, err := ts.app.Test(httptest.NewRequest(http.MethodGet, "/applications/"+appID+"/fee-slip/qrcode", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	code, _ = ts.do(t, http.MethodPost, "/applications/"+appID+"/fee-slip", models.FeeSlipRequest{Amount: 1200})
	assert.Equal(t, http.StatusCreated, code)

	resp, err = ts.app.Test(httptest.NewRequest(http.MethodGet, "/applications/"+appID+"/fee-slip/qrcode?size=128", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	code, body = ts.do(t, http.MethodGet, "/admission/status", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, body["total_applications"])
}

func TestCommunicateAndChat(t *testing.T) {
	ts := newTestServer(t, store.NewMemoryStore(), Options{})
	studentID := ts.submit(t, "Asha")["student_id"].(string)

	code, body := ts.do(t, http.MethodPost, "/students/"+studentID+"/communicate", models.CommunicateRequest{Content: "documents received"})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "model answer", body["result"])

	code, _ = ts.do(t, http.MethodPost, "/students/ghost/communicate", models.CommunicateRequest{Content: "hello"})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = ts.do(t, http.MethodPost, "/chat", models.ChatRequest{})
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	code, body = ts.do(t, http.MethodPost, "/chat", models.ChatRequest{Content: "When are results out?"})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, string(agents.KindOK), body["kind"])
}

func TestUpstreamFailures(t *testing.T) {
	failing := &testutil.FailingStore{DocumentStore: store.NewMemoryStore()}
	ts := newTestServer(t, failing, Options{})
	failing.FailReads = true

	code, body := ts.do(t, http.MethodPost, "/admission/screen", nil)
	assert.Equal(t, http.StatusBadGateway, code)
	assert.Equal(t, string(agents.KindUpstreamUnavailable), body["kind"])
	assert.Contains(t, body["result"], "Error: ")

	code, _ = ts.do(t, http.MethodGet, "/applications", nil)
	assert.Equal(t, http.StatusBadGateway, code)

	failing.FailReads = false
	ts.gen.Err = assert.AnError
	ts.submit(t, "Asha")
	code, _ = ts.do(t, http.MethodPost, "/admission/screen", nil)
	assert.Equal(t, http.StatusBadGateway, code)
}

func TestAgentsEndpoints(t *testing.T) {
	ts := newTestServer(t, store.NewMemoryStore(), Options{})

	code, _ := ts.do(t, http.MethodPost, "/agents/tasks", models.TaskRequest{Type: "screen"})
	assert.Equal(t, http.StatusServiceUnavailable, code)

	code, _ = ts.do(t, http.MethodPost, "/agents/tasks", models.TaskRequest{Type: "dance"})
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	ts.do(t, http.MethodPost, "/admission/screen", nil)
	code, body := ts.do(t, http.MethodGet, "/agents", nil)
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, body["items"], 1)
	agent := body["items"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, string(models.RoleAdmissionOfficer), agent["role"])
	assert.Len(t, agent["assigned_tasks"], 1)
}

func TestAuthGuardsWrites(t *testing.T) {
	secret := []byte("test-secret")
	ts := newTestServer(t, store.NewMemoryStore(), Options{AuthEnabled: true, JWTSecret: secret})

	code, _ := ts.do(t, http.MethodPost, "/admission/screen", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = ts.do(t, http.MethodGet, "/applications", nil)
	assert.Equal(t, http.StatusOK, code)

	token, err := utils.GenerateJWT(secret, "staff-1", "staff@example.com", "admissions", time.Hour)
	require.NoError(t, err)
	code, _ = ts.do(t, http.MethodPost, "/admission/screen", nil, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, code)
}

func TestChatRateLimit(t *testing.T) {
	ts := newTestServer(t, store.NewMemoryStore(), Options{ChatLimiter: middleware.ChatRateLimiter(1, nil)})

	code, _ := ts.do(t, http.MethodPost, "/chat", models.ChatRequest{Content: "hi"})
	assert.Equal(t, http.StatusOK, code)
	code, _ = ts.do(t, http.MethodPost, "/chat", models.ChatRequest{Content: "hi again"})
	assert.Equal(t, http.StatusTooManyRequests, code)
}
