package public_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/itsprakash91/flood-relief-connect/internal/api/handlers/http/public"
	mock_public "github.com/itsprakash91/flood-relief-connect/internal/api/handlers/http/public/mocks"
	"github.com/itsprakash91/flood-relief-connect/internal/domain"
	"github.com/itsprakash91/flood-relief-connect/internal/middleware"
	"github.com/itsprakash91/flood-relief-connect/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func newHandler(ctrl *gomock.Controller) (*public.Handler, *mock_public.MockRequestWriter, *mock_public.MockRequestReader, *mock_public.MockDonations) {
	writer := mock_public.NewMockRequestWriter(ctrl)
	reader := mock_public.NewMockRequestReader(ctrl)
	donations := mock_public.NewMockDonations(ctrl)
	return public.NewHandler(newTestLogger(), writer, reader, donations), writer, reader, donations
}

func withActor(r *http.Request, actor domain.Actor) *http.Request {
	return r.WithContext(middleware.WithActor(r.Context(), actor))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestRequestCreate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, writer, _, _ := newHandler(ctrl)

	body := `{"category":"water","description":"need drinking water","location":{"lat":26.12,"lng":91.79}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/requests", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	want := &domain.HelpRequest{ID: uuid.New(), Category: domain.CategoryWater, Status: domain.StatusPending}

	writer.EXPECT().
		Create(gomock.Any(), domain.Actor{}, domain.CreateHelpRequest{
			Category:    domain.CategoryWater,
			Description: "need drinking water",
			Location:    domain.LocationInput{Lat: 26.12, Lng: 91.79},
		}).
		Return(want, nil).
		Times(1)

	h.RequestCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.HelpRequest](t, rr)
	if got.ID != want.ID {
		t.Fatalf("unexpected response: got=%+v want=%+v", got, want)
	}
}

func TestRequestCreate_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/requests", bytes.NewBufferString("{bad json"))
	rr := httptest.NewRecorder()

	h.RequestCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestRequestCreate_ValidationError_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, writer, _, _ := newHandler(ctrl)

	body := `{"category":"water","description":"x","location":{"lat":99.9,"lng":91.79}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/requests", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()

	writer.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("bad coords: %w", e.ErrInvalidInput)).
		Times(1)

	h.RequestCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestRequestNearby_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, reader, _ := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/requests/nearby?lat=26.12&lng=91.79&radius=3000", nil)
	rr := httptest.NewRecorder()

	reader.EXPECT().
		Nearby(gomock.Any(), domain.NearbyQuery{Lat: 26.12, Lng: 91.79, RadiusMeters: 3000}).
		Return([]*domain.HelpRequest{{ID: uuid.New(), DistanceMeters: 120.5}}, nil).
		Times(1)

	h.RequestNearby(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[map[string]json.RawMessage](t, rr)
	if _, ok := got["requests"]; !ok {
		t.Fatalf("response missing requests key: %s", rr.Body.String())
	}
}

func TestRequestNearby_MissingCoordinates_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newHandler(ctrl)

	for _, target := range []string{
		"/api/v1/requests/nearby",
		"/api/v1/requests/nearby?lat=26.12",
		"/api/v1/requests/nearby?lng=91.79",
		"/api/v1/requests/nearby?lat=abc&lng=91.79",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rr := httptest.NewRecorder()

		h.RequestNearby(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected %d got %d body=%s", target, http.StatusBadRequest, rr.Code, rr.Body.String())
		}
	}
}

func TestRequestGet_NotFound_404(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, reader, _ := newHandler(ctrl)

	id := uuid.New()
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/requests/"+id.String(), nil), "id", id.String())
	rr := httptest.NewRecorder()

	reader.EXPECT().
		Get(gomock.Any(), id).
		Return(nil, fmt.Errorf("help request: %w", e.ErrNotFound)).
		Times(1)

	h.RequestGet(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d body=%s", http.StatusNotFound, rr.Code, rr.Body.String())
	}
}

func TestRequestGet_BadID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newHandler(ctrl)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/requests/not-a-uuid", nil), "id", "not-a-uuid")
	rr := httptest.NewRecorder()

	h.RequestGet(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestRequestUpdate_Accept_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, writer, _, _ := newHandler(ctrl)

	id := uuid.New()
	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleVolunteer}
	body := fmt.Sprintf(`{"status":"accepted","assigned_volunteer":%q}`, actor.ID)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/requests/"+id.String(), bytes.NewBufferString(body))
	req = withURLParam(req, "id", id.String())
	req = withActor(req, actor)
	rr := httptest.NewRecorder()

	writer.EXPECT().
		Accept(gomock.Any(), actor, id, actor.ID).
		Return(&domain.HelpRequest{ID: id, Status: domain.StatusAccepted, AssignedVolunteer: &actor.ID}, nil).
		Times(1)

	h.RequestUpdate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[domain.HelpRequest](t, rr)
	if got.Status != domain.StatusAccepted {
		t.Fatalf("expected accepted, got %q", got.Status)
	}
}

func TestRequestUpdate_AcceptWithoutVolunteer_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newHandler(ctrl)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/requests/"+id.String(), bytes.NewBufferString(`{"status":"accepted"}`))
	req = withURLParam(req, "id", id.String())
	req = withActor(req, domain.Actor{ID: uuid.New(), Role: domain.RoleVolunteer})
	rr := httptest.NewRecorder()

	h.RequestUpdate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestRequestUpdate_NullVolunteer_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newHandler(ctrl)

	id := uuid.New()
	body := `{"status":"accepted","assigned_volunteer":null}`
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/requests/"+id.String(), bytes.NewBufferString(body))
	req = withURLParam(req, "id", id.String())
	req = withActor(req, domain.Actor{ID: uuid.New(), Role: domain.RoleVolunteer})
	rr := httptest.NewRecorder()

	h.RequestUpdate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestRequestUpdate_Conflict_409(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, writer, _, _ := newHandler(ctrl)

	id := uuid.New()
	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleVolunteer}
	body := fmt.Sprintf(`{"status":"accepted","assigned_volunteer":%q}`, actor.ID)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/requests/"+id.String(), bytes.NewBufferString(body))
	req = withURLParam(req, "id", id.String())
	req = withActor(req, actor)
	rr := httptest.NewRecorder()

	writer.EXPECT().
		Accept(gomock.Any(), actor, id, actor.ID).
		Return(nil, fmt.Errorf("request already accepted: %w", e.ErrConflict)).
		Times(1)

	h.RequestUpdate(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected %d got %d body=%s", http.StatusConflict, rr.Code, rr.Body.String())
	}
}

func TestRequestUpdate_Complete_Forbidden_403(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, writer, _, _ := newHandler(ctrl)

	id := uuid.New()
	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleVolunteer}

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/requests/"+id.String(), bytes.NewBufferString(`{"status":"completed"}`))
	req = withURLParam(req, "id", id.String())
	req = withActor(req, actor)
	rr := httptest.NewRecorder()

	writer.EXPECT().
		Complete(gomock.Any(), actor, id).
		Return(nil, fmt.Errorf("not the assigned volunteer: %w", e.ErrForbidden)).
		Times(1)

	h.RequestUpdate(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected %d got %d body=%s", http.StatusForbidden, rr.Code, rr.Body.String())
	}
}

func TestRequestUpdate_UnknownStatus_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newHandler(ctrl)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/requests/"+id.String(), bytes.NewBufferString(`{"status":"archived"}`))
	req = withURLParam(req, "id", id.String())
	req = withActor(req, domain.Actor{ID: uuid.New(), Role: domain.RoleVolunteer})
	rr := httptest.NewRecorder()

	h.RequestUpdate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestMyRequests_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, reader, _ := newHandler(ctrl)

	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleVictim}
	req := withActor(httptest.NewRequest(http.MethodGet, "/api/v1/me/requests", nil), actor)
	rr := httptest.NewRecorder()

	reader.EXPECT().
		Mine(gomock.Any(), actor).
		Return([]*domain.HelpRequest{{ID: uuid.New()}, {ID: uuid.New()}}, nil).
		Times(1)

	h.MyRequests(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}

	got := decodeJSON[struct {
		Count int `json:"count"`
	}](t, rr)
	if got.Count != 2 {
		t.Fatalf("expected count=2, got %d", got.Count)
	}
}

func TestDonationCreate_Unauthenticated_401(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, donations := newHandler(ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/donations", bytes.NewBufferString(`{"amount":50000}`))
	rr := httptest.NewRecorder()

	donations.EXPECT().
		Create(gomock.Any(), domain.Actor{}, domain.CreateDonation{Amount: 50000}).
		Return(nil, fmt.Errorf("donation: %w", e.ErrUnauthenticated)).
		Times(1)

	h.DonationCreate(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d body=%s", http.StatusUnauthorized, rr.Code, rr.Body.String())
	}
}
