package classifier

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apphttp "holyland_phone/internal/http"
	"holyland_phone/internal/http/router"
	"holyland_phone/platform/config"
	"holyland_phone/platform/logger"
	"holyland_phone/platform/phone"
	"holyland_phone/platform/validator"

	"github.com/gin-gonic/gin"
)

func newTestEngine(t *testing.T, maxBatch int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		CORSOrigins:    []string{"http://localhost:4200"},
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
		MaxBatchSize:   maxBatch,
	}
	log := logger.Discard()

	return router.New(&apphttp.App{
		Config:  cfg,
		Logger:  log,
		Modules: []apphttp.Module{NewModule(cfg, validator.New(), log)},
	})
}

func do(engine *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	engine.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Classify(t *testing.T) {
	engine := newTestEngine(t, 10)

	rec := do(engine, http.MethodGet, "/api/v1/phones/classify?number=0501234567", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got Result
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Mobile || got.LandLine || got.International != "972501234567" || got.Category != phone.CategoryMobile {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestHandler_Classify_Clean(t *testing.T) {
	engine := newTestEngine(t, 10)

	rec := do(engine, http.MethodGet, "/api/v1/phones/classify?number=%2B972%2050-123-4567&clean=true", "")
	var got Result
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Local != "0501234567" || got.Input != "+972 50-123-4567" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestHandler_Classify_MissingNumber(t *testing.T) {
	rec := do(newTestEngine(t, 10), http.MethodGet, "/api/v1/phones/classify", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_ClassifyBatch(t *testing.T) {
	engine := newTestEngine(t, 3)

	rec := do(engine, http.MethodPost, "/api/v1/phones/classify", `{"numbers":["0501234567","1800123456","bad"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got BatchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Count != 3 || got.Valid != 2 || !got.Results[1].TollFree {
		t.Fatalf("unexpected batch: %+v", got)
	}

	rec = do(engine, http.MethodPost, "/api/v1/phones/classify", `{"numbers":["1","2","3","4"]}`)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rec.Code)
	}

	rec = do(engine, http.MethodPost, "/api/v1/phones/classify", `{"numbers":[]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty batch, got %d", rec.Code)
	}
}

func TestHandler_International(t *testing.T) {
	rec := do(newTestEngine(t, 10), http.MethodGet, "/api/v1/phones/international?number=*1234", "")

	var got Conversion
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.International != "*1234" {
		t.Fatalf("expected short code to pass through, got %+v", got)
	}
}

func TestHandler_Validate(t *testing.T) {
	engine := newTestEngine(t, 10)

	rec := do(engine, http.MethodPost, "/api/v1/phones/validate", `{"phone":"021234567"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	rec = do(engine, http.MethodPost, "/api/v1/phones/validate", `{"phone":"03-612-3456","clean":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got ValidateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Local != "036123456" || got.Category != phone.CategoryLandLine {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestRouter_HealthAndNotFound(t *testing.T) {
	engine := newTestEngine(t, 10)

	if rec := do(engine, http.MethodGet, "/api/health", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from health, got %d", rec.Code)
	}
	if rec := do(engine, http.MethodGet, "/api/v1/nope", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
