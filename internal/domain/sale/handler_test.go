package sale

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/pressdeck/pressdeck-api/internal/domain/platform"
)

func validateRequest(t *testing.T, h *Handler, body ValidateSaleRequest) *httptest.ResponseRecorder {
	t.Helper()

	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/sales/validate", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h.Validate(rr, req)
	return rr
}

func TestValidateHandlerReportsConflict(t *testing.T) {
	gameID := uuid.New()
	platformID := uuid.New()

	repo := &fakeSaleRepo{sales: []*Sale{
		persistedSale(gameID, platformID, "2025-03-01", "2025-03-14", StatusPlanned),
	}}
	platforms := &fakePlatformRepo{platforms: []*platform.Platform{testStorefront(platformID, 30, 14)}}
	h := NewHandler(testService(repo, &fakeGameRepo{}, platforms))

	rr := validateRequest(t, h, ValidateSaleRequest{
		GameID:     gameID.String(),
		PlatformID: platformID.String(),
		StartDate:  "2025-03-20",
		EndDate:    "2025-03-25",
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var out struct {
		Success bool `json:"success"`
		Data    struct {
			OK        bool `json:"ok"`
			Conflicts []struct {
				StartDate string `json:"start_date"`
				EndDate   string `json:"end_date"`
			} `json:"conflicts"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Data.OK {
		t.Fatal("window inside the cooldown must conflict")
	}
	if len(out.Data.Conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(out.Data.Conflicts))
	}
	if out.Data.Conflicts[0].StartDate != "2025-03-01" {
		t.Errorf("conflict start = %s, want 2025-03-01", out.Data.Conflicts[0].StartDate)
	}
}

func TestValidateHandlerCleanWindow(t *testing.T) {
	gameID := uuid.New()
	platformID := uuid.New()

	repo := &fakeSaleRepo{sales: []*Sale{
		persistedSale(gameID, platformID, "2025-03-01", "2025-03-14", StatusPlanned),
	}}
	platforms := &fakePlatformRepo{platforms: []*platform.Platform{testStorefront(platformID, 30, 14)}}
	h := NewHandler(testService(repo, &fakeGameRepo{}, platforms))

	rr := validateRequest(t, h, ValidateSaleRequest{
		GameID:     gameID.String(),
		PlatformID: platformID.String(),
		StartDate:  "2025-06-01",
		EndDate:    "2025-06-07",
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var out struct {
		Data struct {
			OK        bool          `json:"ok"`
			Conflicts []interface{} `json:"conflicts"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.Data.OK {
		t.Fatal("clear window must validate")
	}
	if out.Data.Conflicts == nil {
		t.Error("conflicts must serialize as an empty array, not null")
	}
}

func TestValidateHandlerRejectsBadDates(t *testing.T) {
	h := NewHandler(testService(&fakeSaleRepo{}, &fakeGameRepo{}, &fakePlatformRepo{}))

	rr := validateRequest(t, h, ValidateSaleRequest{
		GameID:     uuid.New().String(),
		PlatformID: uuid.New().String(),
		StartDate:  "03/20/2025",
		EndDate:    "2025-03-25",
	})

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestValidateHandlerUnknownPlatform(t *testing.T) {
	h := NewHandler(testService(&fakeSaleRepo{}, &fakeGameRepo{}, &fakePlatformRepo{}))

	rr := validateRequest(t, h, ValidateSaleRequest{
		GameID:     uuid.New().String(),
		PlatformID: uuid.New().String(),
		StartDate:  "2025-03-20",
		EndDate:    "2025-03-25",
	})

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}
