package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nurpe/contract-intel/internal/auth"
	"github.com/nurpe/contract-intel/internal/config"
	"github.com/nurpe/contract-intel/internal/http/middleware"
	"github.com/nurpe/contract-intel/internal/model"
	"github.com/nurpe/contract-intel/internal/repository"
	"github.com/nurpe/contract-intel/internal/service"
)

const testSecret = "router-test-secret"

type memStore struct {
	contracts map[uuid.UUID]*model.Contract
}

func (s *memStore) Create(_ context.Context, contract *model.Contract) error {
	copied := *contract
	s.contracts[contract.ID] = &copied
	return nil
}

func (s *memStore) GetByID(_ context.Context, id uuid.UUID) (*model.Contract, error) {
	contract, ok := s.contracts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *contract
	return &copied, nil
}

func (s *memStore) List(_ context.Context, _ repository.ListFilter) ([]model.Contract, int64, error) {
	var out []model.Contract
	for _, contract := range s.contracts {
		out = append(out, *contract)
	}
	return out, int64(len(out)), nil
}

func (s *memStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.contracts[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.contracts, id)
	return nil
}

type noopProcessor struct{}

func (noopProcessor) Process(_ context.Context, _ uuid.UUID, _ []byte) error { return nil }

type stubGenerator struct{ content []byte }

func (g *stubGenerator) Generate(_ *model.Contract) ([]byte, error) { return g.content, nil }

func newTestRouter(t *testing.T, store *memStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Upload: config.UploadConfig{Dir: t.TempDir(), MaxFileSize: 1 << 20},
	}
	svc := service.NewContractService(
		store,
		noopProcessor{},
		&stubGenerator{content: []byte("xlsx")},
		&stubGenerator{content: []byte("pdf")},
		cfg,
		zerolog.Nop(),
	)
	handler := NewHandler(svc, zerolog.Nop())
	authMiddleware := middleware.Auth(auth.NewParser(testSecret))
	return NewRouter(handler, authMiddleware, "test")
}

func bearerToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": uuid.New().String(),
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return "Bearer " + signed
}

func doRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequestsRequireAuth(t *testing.T) {
	router := newTestRouter(t, &memStore{contracts: map[uuid.UUID]*model.Contract{}})

	req := httptest.NewRequest(http.MethodGet, "/contracts", nil)
	if rec := doRequest(router, req); rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/contracts", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	if rec := doRequest(router, req); rec.Code != http.StatusUnauthorized {
		t.Errorf("bad token: status = %d, want 401", rec.Code)
	}
}

func TestHealthIsPublic(t *testing.T) {
	router := newTestRouter(t, &memStore{contracts: map[uuid.UUID]*model.Contract{}})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if rec := doRequest(router, req); rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rec.Code)
	}
}

func TestUploadContract(t *testing.T) {
	store := &memStore{contracts: map[uuid.UUID]*model.Contract{}}
	router := newTestRouter(t, store)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "nda.pdf")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte("%PDF-1.4 fake")); err != nil {
		t.Fatal(err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/contracts/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", bearerToken(t, "ANALYST"))

	rec := doRequest(router, req)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ContractID string `json:"contract_id"`
		Status     string `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != string(model.StatusPending) {
		t.Errorf("status = %q, want PENDING", resp.Status)
	}
	id, err := uuid.Parse(resp.ContractID)
	if err != nil {
		t.Fatalf("contract_id not a uuid: %v", err)
	}
	if _, ok := store.contracts[id]; !ok {
		t.Error("uploaded contract not persisted")
	}
}

func TestUploadRejectsNonPDF(t *testing.T) {
	router := newTestRouter(t, &memStore{contracts: map[uuid.UUID]*model.Contract{}})

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, _ := writer.CreateFormFile("file", "contract.docx")
	part.Write([]byte("word doc"))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/contracts/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", bearerToken(t, "ANALYST"))

	if rec := doRequest(router, req); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestContractStatusEndpoint(t *testing.T) {
	store := &memStore{contracts: map[uuid.UUID]*model.Contract{}}
	id := uuid.New()
	store.contracts[id] = &model.Contract{
		ID:                 id,
		Filename:           "svc.pdf",
		Status:             model.StatusProcessing,
		ProgressPercentage: 60,
	}
	router := newTestRouter(t, store)

	req := httptest.NewRequest(http.MethodGet, "/contracts/"+id.String()+"/status", nil)
	req.Header.Set("Authorization", bearerToken(t, "ANALYST"))

	rec := doRequest(router, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var view model.ContractStatusView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Status != model.StatusProcessing || view.ProgressPercentage != 60 {
		t.Errorf("view = %+v", view)
	}
}

func TestContractDataNotReady(t *testing.T) {
	store := &memStore{contracts: map[uuid.UUID]*model.Contract{}}
	id := uuid.New()
	store.contracts[id] = &model.Contract{ID: id, Status: model.StatusProcessing}
	router := newTestRouter(t, store)

	req := httptest.NewRequest(http.MethodGet, "/contracts/"+id.String(), nil)
	req.Header.Set("Authorization", bearerToken(t, "ANALYST"))

	if rec := doRequest(router, req); rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestContractDataUnknownID(t *testing.T) {
	router := newTestRouter(t, &memStore{contracts: map[uuid.UUID]*model.Contract{}})

	req := httptest.NewRequest(http.MethodGet, "/contracts/"+uuid.NewString(), nil)
	req.Header.Set("Authorization", bearerToken(t, "ANALYST"))
	if rec := doRequest(router, req); rec.Code != http.StatusNotFound {
		t.Errorf("unknown id: status = %d, want 404", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/contracts/not-a-uuid", nil)
	req.Header.Set("Authorization", bearerToken(t, "ANALYST"))
	if rec := doRequest(router, req); rec.Code != http.StatusBadRequest {
		t.Errorf("bad id: status = %d, want 400", rec.Code)
	}
}

func TestDeleteContractRoles(t *testing.T) {
	store := &memStore{contracts: map[uuid.UUID]*model.Contract{}}
	id := uuid.New()
	store.contracts[id] = &model.Contract{ID: id, Status: model.StatusCompleted}
	router := newTestRouter(t, store)

	req := httptest.NewRequest(http.MethodDelete, "/contracts/"+id.String(), nil)
	req.Header.Set("Authorization", bearerToken(t, "ANALYST"))
	if rec := doRequest(router, req); rec.Code != http.StatusForbidden {
		t.Errorf("analyst delete: status = %d, want 403", rec.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/contracts/"+id.String(), nil)
	req.Header.Set("Authorization", bearerToken(t, "ADMIN"))
	if rec := doRequest(router, req); rec.Code != http.StatusNoContent {
		t.Errorf("admin delete: status = %d, want 204", rec.Code)
	}
}

func TestExportExcelContentDisposition(t *testing.T) {
	store := &memStore{contracts: map[uuid.UUID]*model.Contract{}}
	id := uuid.New()
	store.contracts[id] = &model.Contract{
		ID:       id,
		Filename: "svc.pdf",
		Status:   model.StatusCompleted,
		Data:     &model.ContractData{ContractType: model.TypeService},
	}
	router := newTestRouter(t, store)

	req := httptest.NewRequest(http.MethodGet, "/contracts/"+id.String()+"/export/excel", nil)
	req.Header.Set("Authorization", bearerToken(t, "ANALYST"))

	rec := doRequest(router, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="svc_analysis.xlsx"` {
		t.Errorf("Content-Disposition = %q", got)
	}
}
