package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/hr-dataset-agent/internal/agent"
	"github.com/jonathan/hr-dataset-agent/internal/config"
	"github.com/jonathan/hr-dataset-agent/internal/warehouse"
	"github.com/jonathan/hr-dataset-agent/internal/workflow"
)

type fakeAsker struct {
	resp *agent.Response
	err  error
}

func (f *fakeAsker) Ask(ctx context.Context, question string) (*agent.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeRunner struct {
	summary *workflow.Summary
	err     error
	gotRun  uuid.UUID
}

func (f *fakeRunner) Run(ctx context.Context, runID uuid.UUID, prompt string) (*workflow.Summary, error) {
	f.gotRun = runID
	if f.err != nil {
		return nil, f.err
	}
	return f.summary, nil
}

func openServer(asker Asker, runner Runner) *Server {
	return New(Config{Asker: asker, Runner: runner})
}

func postJSON(t *testing.T, handler http.Handler, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	s := openServer(&fakeAsker{}, &fakeRunner{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAsk_ReturnsAgentResponse(t *testing.T) {
	asker := &fakeAsker{resp: &agent.Response{
		Content:  "There are 13 employees.",
		SQLQuery: "SELECT COUNT(*) FROM employees",
		Dataset:  &warehouse.Dataset{Columns: []string{"count"}, Data: [][]any{{"13"}}},
	}}
	s := openServer(asker, &fakeRunner{})

	rec := postJSON(t, s.Handler(), "/ask", map[string]string{"question": "how many employees?"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp agent.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "There are 13 employees.", resp.Content)
	assert.Equal(t, "SELECT COUNT(*) FROM employees", resp.SQLQuery)
}

func TestAsk_EmptyQuestion(t *testing.T) {
	s := openServer(&fakeAsker{}, &fakeRunner{})
	rec := postJSON(t, s.Handler(), "/ask", map[string]string{"question": "  "}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAsk_UnsafeQueryMapsTo422(t *testing.T) {
	asker := &fakeAsker{err: &agent.UnsafeQueryError{Query: "DROP TABLE employees", Reason: "statement starts with DROP"}}
	s := openServer(asker, &fakeRunner{})

	rec := postJSON(t, s.Handler(), "/ask", map[string]string{"question": "drop it"}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGenerate_ReturnsSummary(t *testing.T) {
	runner := &fakeRunner{summary: &workflow.Summary{Company: "Meridian Advisory", Employees: 13}}
	s := openServer(&fakeAsker{}, runner)

	rec := postJSON(t, s.Handler(), "/generate", map[string]string{"prompt": "a consulting firm"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary workflow.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, "Meridian Advisory", summary.Company)
	assert.Equal(t, uuid.Nil, runner.gotRun)
}

func TestGenerate_PassesRunID(t *testing.T) {
	runner := &fakeRunner{summary: &workflow.Summary{}}
	s := openServer(&fakeAsker{}, runner)
	runID := uuid.New()

	rec := postJSON(t, s.Handler(), "/generate", map[string]string{
		"prompt": "a consulting firm",
		"run_id": runID.String(),
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, runID, runner.gotRun)
}

func TestGenerate_BadRunID(t *testing.T) {
	s := openServer(&fakeAsker{}, &fakeRunner{})
	rec := postJSON(t, s.Handler(), "/generate", map[string]string{
		"prompt": "a consulting firm",
		"run_id": "not-a-uuid",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerate_SpecificationErrorMapsTo502(t *testing.T) {
	runner := &fakeRunner{err: &workflow.SpecificationError{Stage: "company specification", Cause: errors.New("model refused")}}
	s := openServer(&fakeAsker{}, runner)

	rec := postJSON(t, s.Handler(), "/generate", map[string]string{"prompt": "a consulting firm"}, nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func authedServer(t *testing.T) *Server {
	t.Helper()
	passwords := &config.PasswordConfig{BcryptCost: 10}
	hash, err := passwords.HashPassword("hunter2")
	require.NoError(t, err)
	passwords.APIPasswordHash = hash

	jwtService := NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
	return New(Config{
		Asker:     &fakeAsker{resp: &agent.Response{Content: "ok"}},
		Runner:    &fakeRunner{summary: &workflow.Summary{}},
		JWT:       jwtService,
		Passwords: passwords,
	})
}

func TestAuth_LoginThenAsk(t *testing.T) {
	s := authedServer(t)

	rec := postJSON(t, s.Handler(), "/login", map[string]string{"password": "hunter2"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var login loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	rec = postJSON(t, s.Handler(), "/ask", map[string]string{"question": "anything"}, map[string]string{
		"Authorization": "Bearer " + login.Token,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_WrongPassword(t *testing.T) {
	s := authedServer(t)
	rec := postJSON(t, s.Handler(), "/login", map[string]string{"password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_MissingToken(t *testing.T) {
	s := authedServer(t)
	rec := postJSON(t, s.Handler(), "/ask", map[string]string{"question": "anything"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_GarbageToken(t *testing.T) {
	s := authedServer(t)
	rec := postJSON(t, s.Handler(), "/ask", map[string]string{"question": "anything"}, map[string]string{
		"Authorization": "Bearer not-a-token",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_HealthzStaysOpen(t *testing.T) {
	s := authedServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
