package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-controls/plcforge/pkg/codegen"
	"github.com/nexus-controls/plcforge/pkg/config"
	"github.com/nexus-controls/plcforge/pkg/models"
	"github.com/nexus-controls/plcforge/pkg/prompts"
	"github.com/nexus-controls/plcforge/pkg/repository"
	"github.com/nexus-controls/plcforge/pkg/retrieval"
	"github.com/nexus-controls/plcforge/pkg/services"
)

type fakePlanner struct{ plan *models.Plan }

func (f *fakePlanner) CreatePlan(context.Context, string) (*models.Plan, error) {
	return f.plan, nil
}

type fakeChecker struct{}

func (fakeChecker) ValidateStage(context.Context, *models.Stage) (*models.ValidationReport, error) {
	return &models.ValidationReport{Valid: true, Status: "PASS"}, nil
}

type fakeGenerator struct{}

func (fakeGenerator) Generate(_ context.Context, stage *models.Stage) (*codegen.Result, error) {
	body := fmt.Sprintf("Run_%d := TRUE;", stage.StageNumber)
	return &codegen.Result{
		Parsed: &models.ParsedProgram{
			GlobalLabels: []models.Label{{Name: "Start_Button", DataType: "Bool", Device: "X0"}},
			LocalLabels:  []models.Label{{Name: "Run", DataType: "Bool", Class: "VAR"}},
			ProgramBody:  body,
			ProgramBlocks: []models.ProgramBlock{{
				Name: fmt.Sprintf("STAGE_%d", stage.StageNumber), Code: body,
			}},
		},
		ProgramName:   fmt.Sprintf("STAGE_%d", stage.StageNumber),
		ExecutionType: models.ExecutionScan,
	}, nil
}

type fakeInterrogator struct{}

func (fakeInterrogator) Check(context.Context, int, *models.GeneratedCode) (*models.SafetyReport, error) {
	return &models.SafetyReport{OverallStatus: models.SafetyStatusSafe, Severity: "LOW"}, nil
}

type fakeIngester struct{}

func (fakeIngester) Process(context.Context, int, string) (*retrieval.Metadata, error) {
	return &retrieval.Metadata{TotalChunks: 2}, nil
}

type testEnv struct {
	server *Server
}

func newTestServer(t *testing.T) *testEnv {
	t.Helper()
	store := repository.NewMemoryStore()
	svc := services.New(services.Deps{
		Store: store,
		Planner: &fakePlanner{plan: &models.Plan{
			Stages: []models.StageDraft{
				{StageNumber: 1, StageName: "Run", StageType: models.StageTypeOperation, OriginalLogic: "run it"},
			},
			TotalStages: 1,
		}},
		Checker:      fakeChecker{},
		Generator:    fakeGenerator{},
		Interrogator: fakeInterrogator{},
		Manuals:      fakeIngester{},
		UploadsDir:   t.TempDir(),
	})

	server := NewServer(
		config.ServerConfig{Host: "127.0.0.1", Port: 0},
		svc,
		prompts.NewCatalog(t.TempDir()),
		nil,
	)
	return &testEnv{server: server}
}

func (e *testEnv) do(t *testing.T, method, path string, user int, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if user > 0 {
		req.Header.Set("X-User-ID", strconv.Itoa(user))
	}
	rec := httptest.NewRecorder()
	e.server.http.Handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestRequireUser(t *testing.T) {
	env := newTestServer(t)

	rec := env.do(t, http.MethodGet, "/api/v1/projects", 0, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	req.Header.Set("X-User-ID", "not-a-number")
	rec2 := httptest.NewRecorder()
	env.server.http.Handler.ServeHTTP(rec2, req)
	assert.Equal(t, http.StatusUnauthorized, rec2.Code)
}

func TestHealthAndVersion(t *testing.T) {
	env := newTestServer(t)

	rec := env.do(t, http.MethodGet, "/health", 0, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "in-memory")
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))

	rec = env.do(t, http.MethodGet, "/version", 0, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "plcforge")
}

func TestProjectEndpoints(t *testing.T) {
	env := newTestServer(t)

	rec := env.do(t, http.MethodPost, "/api/v1/projects", 7, jsonBody{"name": "Line A"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var project models.Project
	decode(t, rec, &project)
	assert.Equal(t, 7, project.OwnerID)

	// Another user cannot read it.
	rec = env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/projects/%d", project.ID), 8, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/projects/999", 7, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/projects", 7, jsonBody{"name": "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/projects/%d", project.ID), 7, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

type jsonBody = map[string]any

func TestPipelineFlow(t *testing.T) {
	env := newTestServer(t)

	rec := env.do(t, http.MethodPost, "/api/v1/projects", 7, jsonBody{"name": "Line A"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var project models.Project
	decode(t, rec, &project)

	// Ingest logic → one planned stage.
	rec = env.do(t, http.MethodPost, fmt.Sprintf("/api/v1/projects/%d/logic", project.ID), 7,
		jsonBody{"control_logic": "run the conveyor"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var ingest struct {
		Stages []models.Stage `json:"stages"`
	}
	decode(t, rec, &ingest)
	require.Len(t, ingest.Stages, 1)
	stageID := ingest.Stages[0].ID

	// Generation before validation conflicts.
	rec = env.do(t, http.MethodPost, fmt.Sprintf("/api/v1/projects/%d/generate", project.ID), 7, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = env.do(t, http.MethodPost, fmt.Sprintf("/api/v1/stages/%d/validate", stageID), 7, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, fmt.Sprintf("/api/v1/projects/%d/generate", project.ID), 7, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/stages/%d/code", stageID), 7, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Version history carries validate + generate_code.
	rec = env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/stages/%d/versions", stageID), 7, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var history struct {
		Versions []models.VersionEntry `json:"versions"`
	}
	decode(t, rec, &history)
	require.Len(t, history.Versions, 2)
	assert.Equal(t, "1.2.0", history.Versions[0].VersionNumber)

	// Label export is UTF-16 LE with BOM.
	rec = env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/projects/%d/exports/global-labels", project.ID), 7, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []byte{0xFF, 0xFE}, rec.Body.Bytes()[:2])
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "global_labels.csv")
}

func TestStageCodeMissing(t *testing.T) {
	env := newTestServer(t)

	rec := env.do(t, http.MethodPost, "/api/v1/projects", 7, jsonBody{"name": "Line A"})
	var project models.Project
	decode(t, rec, &project)

	rec = env.do(t, http.MethodPost, fmt.Sprintf("/api/v1/projects/%d/logic", project.ID), 7,
		jsonBody{"control_logic": "run"})
	var ingest struct {
		Stages []models.Stage `json:"stages"`
	}
	decode(t, rec, &ingest)

	rec = env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/stages/%d/code", ingest.Stages[0].ID), 7, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPromptEndpoints(t *testing.T) {
	env := newTestServer(t)

	rec := env.do(t, http.MethodGet, "/api/v1/prompts/"+prompts.AgentCodegen, 7, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/prompts/unknown_agent", 7, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/v1/prompts/"+prompts.AgentPlanner, 7,
		jsonBody{"content": "You are a planner."})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/prompts/"+prompts.AgentPlanner+"/versions", 7, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var versions struct {
		Versions []string `json:"versions"`
	}
	decode(t, rec, &versions)
	assert.Len(t, versions.Versions, 1)
}
