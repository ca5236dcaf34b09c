package service_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/itsprakash91/flood-relief-connect/internal/domain"
	"github.com/itsprakash91/flood-relief-connect/internal/service"
	mock_service "github.com/itsprakash91/flood-relief-connect/internal/service/mocks"
	"github.com/itsprakash91/flood-relief-connect/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func validCreateRequest() domain.CreateHelpRequest {
	return domain.CreateHelpRequest{
		Category:    domain.CategoryWater,
		Description: "drinking water for family of four",
		Location: domain.LocationInput{
			Lat:     26.12,
			Lng:     91.79,
			Address: "Ward 7, relief shelter",
		},
	}
}

func TestRequestCreate_Anonymous_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockHelpRequestRepository(ctrl)
	pub := mock_service.NewMockEventPublisher(ctrl)
	queue := mock_service.NewMockWebhookQueue(ctrl)

	svc := service.NewRequestService(repo, pub, queue, newTestLogger())

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, hr *domain.HelpRequest) error {
			if hr.Requester != nil {
				t.Fatalf("anonymous request must have nil requester, got %v", hr.Requester)
			}
			if hr.Status != domain.StatusPending {
				t.Fatalf("new request must be pending, got %q", hr.Status)
			}
			if hr.ID == uuid.Nil {
				t.Fatal("id must be assigned before insert")
			}
			return nil
		}).
		Times(1)

	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(1)
	queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	hr, err := svc.Create(context.Background(), domain.Actor{}, validCreateRequest())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if hr.Category != domain.CategoryWater {
		t.Fatalf("unexpected category %q", hr.Category)
	}
}

func TestRequestCreate_Authenticated_SetsRequester(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockHelpRequestRepository(ctrl)
	pub := mock_service.NewMockEventPublisher(ctrl)

	svc := service.NewRequestService(repo, pub, nil, newTestLogger())

	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleVictim}

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, hr *domain.HelpRequest) error {
			if hr.Requester == nil || *hr.Requester != actor.ID {
				t.Fatalf("requester not recorded: %v", hr.Requester)
			}
			return nil
		}).
		Times(1)

	pub.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, ev domain.Event) {
			if ev.Type != domain.EventRequestCreated {
				t.Fatalf("expected %q event, got %q", domain.EventRequestCreated, ev.Type)
			}
			if ev.Request == nil {
				t.Fatal("event must carry the full request")
			}
		}).
		Times(1)

	if _, err := svc.Create(context.Background(), actor, validCreateRequest()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestRequestCreate_InvalidCoordinates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockHelpRequestRepository(ctrl)
	svc := service.NewRequestService(repo, nil, nil, newTestLogger())

	req := validCreateRequest()
	req.Location.Lat = 97.0

	_, err := svc.Create(context.Background(), domain.Actor{}, req)
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRequestCreate_MissingFields(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockHelpRequestRepository(ctrl)
	svc := service.NewRequestService(repo, nil, nil, newTestLogger())

	cases := []struct {
		name   string
		mutate func(*domain.CreateHelpRequest)
	}{
		{"empty description", func(r *domain.CreateHelpRequest) { r.Description = "" }},
		{"bad category", func(r *domain.CreateHelpRequest) { r.Category = "gold" }},
		{"no category", func(r *domain.CreateHelpRequest) { r.Category = "" }},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := validCreateRequest()
			tc.mutate(&req)
			if _, err := svc.Create(context.Background(), domain.Actor{}, req); !errors.Is(err, e.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestRequestAccept_Volunteer_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockHelpRequestRepository(ctrl)
	pub := mock_service.NewMockEventPublisher(ctrl)
	queue := mock_service.NewMockWebhookQueue(ctrl)

	svc := service.NewRequestService(repo, pub, queue, newTestLogger())

	reqID := uuid.New()
	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleVolunteer}
	accepted := &domain.HelpRequest{ID: reqID, Status: domain.StatusAccepted, AssignedVolunteer: &actor.ID}

	repo.EXPECT().
		AcceptPending(gomock.Any(), reqID, actor.ID).
		Return(accepted, nil).
		Times(1)

	pub.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, ev domain.Event) {
			if ev.Type != domain.EventRequestUpdated {
				t.Fatalf("expected %q, got %q", domain.EventRequestUpdated, ev.Type)
			}
		}).
		Times(1)
	queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	hr, err := svc.Accept(context.Background(), actor, reqID, actor.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if hr.Status != domain.StatusAccepted {
		t.Fatalf("expected accepted, got %q", hr.Status)
	}
}

// When the guarded update loses the race, the conflict must propagate and no
// event may be published.
func TestRequestAccept_Conflict_NoEvent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockHelpRequestRepository(ctrl)
	pub := mock_service.NewMockEventPublisher(ctrl)
	queue := mock_service.NewMockWebhookQueue(ctrl)

	svc := service.NewRequestService(repo, pub, queue, newTestLogger())

	reqID := uuid.New()
	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleVolunteer}

	repo.EXPECT().
		AcceptPending(gomock.Any(), reqID, actor.ID).
		Return(nil, fmt.Errorf("request already accepted: %w", e.ErrConflict)).
		Times(1)

	_, err := svc.Accept(context.Background(), actor, reqID, actor.ID)
	if !errors.Is(err, e.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestRequestAccept_Authorization(t *testing.T) {
	t.Parallel()

	volunteer := uuid.New()
	other := uuid.New()

	cases := []struct {
		name        string
		actor       domain.Actor
		volunteerID uuid.UUID
		wantErr     error
		commits     bool
	}{
		{"anonymous", domain.Actor{}, volunteer, e.ErrUnauthenticated, false},
		{"victim role", domain.Actor{ID: volunteer, Role: domain.RoleVictim}, volunteer, e.ErrForbidden, false},
		{"nil volunteer", domain.Actor{ID: volunteer, Role: domain.RoleVolunteer}, uuid.Nil, e.ErrInvalidInput, false},
		{"volunteer assigning other", domain.Actor{ID: volunteer, Role: domain.RoleVolunteer}, other, e.ErrForbidden, false},
		{"admin assigning other", domain.Actor{ID: volunteer, Role: domain.RoleAdmin}, other, nil, true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock_service.NewMockHelpRequestRepository(ctrl)
			pub := mock_service.NewMockEventPublisher(ctrl)
			svc := service.NewRequestService(repo, pub, nil, newTestLogger())

			reqID := uuid.New()
			if tc.commits {
				repo.EXPECT().
					AcceptPending(gomock.Any(), reqID, tc.volunteerID).
					Return(&domain.HelpRequest{ID: reqID, Status: domain.StatusAccepted, AssignedVolunteer: &tc.volunteerID}, nil).
					Times(1)
				pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(1)
			}

			_, err := svc.Accept(context.Background(), tc.actor, reqID, tc.volunteerID)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected err: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestRequestComplete_AssignedVolunteer_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockHelpRequestRepository(ctrl)
	pub := mock_service.NewMockEventPublisher(ctrl)
	svc := service.NewRequestService(repo, pub, nil, newTestLogger())

	reqID := uuid.New()
	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleVolunteer}

	repo.EXPECT().
		Get(gomock.Any(), reqID).
		Return(&domain.HelpRequest{ID: reqID, Status: domain.StatusAccepted, AssignedVolunteer: &actor.ID}, nil).
		Times(1)
	repo.EXPECT().
		CompleteAccepted(gomock.Any(), reqID).
		Return(&domain.HelpRequest{ID: reqID, Status: domain.StatusCompleted, AssignedVolunteer: &actor.ID}, nil).
		Times(1)
	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(1)

	hr, err := svc.Complete(context.Background(), actor, reqID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if hr.Status != domain.StatusCompleted {
		t.Fatalf("expected completed, got %q", hr.Status)
	}
}

func TestRequestComplete_NotAssigned_Forbidden(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockHelpRequestRepository(ctrl)
	svc := service.NewRequestService(repo, nil, nil, newTestLogger())

	reqID := uuid.New()
	assigned := uuid.New()
	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleVolunteer}

	repo.EXPECT().
		Get(gomock.Any(), reqID).
		Return(&domain.HelpRequest{ID: reqID, Status: domain.StatusAccepted, AssignedVolunteer: &assigned}, nil).
		Times(1)

	_, err := svc.Complete(context.Background(), actor, reqID)
	if !errors.Is(err, e.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequestComplete_PendingRequest_Conflict(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockHelpRequestRepository(ctrl)
	svc := service.NewRequestService(repo, nil, nil, newTestLogger())

	reqID := uuid.New()
	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleAdmin}

	repo.EXPECT().
		Get(gomock.Any(), reqID).
		Return(&domain.HelpRequest{ID: reqID, Status: domain.StatusPending}, nil).
		Times(1)
	repo.EXPECT().
		CompleteAccepted(gomock.Any(), reqID).
		Return(nil, fmt.Errorf("request is not accepted: %w", e.ErrConflict)).
		Times(1)

	_, err := svc.Complete(context.Background(), actor, reqID)
	if !errors.Is(err, e.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestRequestComplete_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockHelpRequestRepository(ctrl)
	svc := service.NewRequestService(repo, nil, nil, newTestLogger())

	reqID := uuid.New()
	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleVolunteer}

	repo.EXPECT().
		Get(gomock.Any(), reqID).
		Return(nil, fmt.Errorf("help request: %w", e.ErrNotFound)).
		Times(1)

	_, err := svc.Complete(context.Background(), actor, reqID)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRequestOverride_Admin_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockHelpRequestRepository(ctrl)
	pub := mock_service.NewMockEventPublisher(ctrl)
	svc := service.NewRequestService(repo, pub, nil, newTestLogger())

	reqID := uuid.New()
	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleAdmin}
	req := domain.OverrideHelpRequest{Status: domain.StatusCompleted, Notes: "resolved offline by camp staff"}

	repo.EXPECT().
		Override(gomock.Any(), reqID, domain.StatusCompleted, actor.ID, req.Notes).
		Return(&domain.HelpRequest{ID: reqID, Status: domain.StatusCompleted}, nil).
		Times(1)
	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(1)

	hr, err := svc.Override(context.Background(), actor, reqID, req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if hr.Status != domain.StatusCompleted {
		t.Fatalf("expected completed, got %q", hr.Status)
	}
}

func TestRequestOverride_Volunteer_Forbidden(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockHelpRequestRepository(ctrl)
	svc := service.NewRequestService(repo, nil, nil, newTestLogger())

	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleVolunteer}
	req := domain.OverrideHelpRequest{Status: domain.StatusPending}

	_, err := svc.Override(context.Background(), actor, uuid.New(), req)
	if !errors.Is(err, e.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequestOverride_InvalidStatus(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockHelpRequestRepository(ctrl)
	svc := service.NewRequestService(repo, nil, nil, newTestLogger())

	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleAdmin}
	req := domain.OverrideHelpRequest{Status: "cancelled"}

	_, err := svc.Override(context.Background(), actor, uuid.New(), req)
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

// A failing webhook enqueue must not fail the mutation: the commit already
// happened.
func TestRequestCreate_WebhookFailureIgnored(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockHelpRequestRepository(ctrl)
	pub := mock_service.NewMockEventPublisher(ctrl)
	queue := mock_service.NewMockWebhookQueue(ctrl)
	svc := service.NewRequestService(repo, pub, queue, newTestLogger())

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(1)
	queue.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	if _, err := svc.Create(context.Background(), domain.Actor{}, validCreateRequest()); err != nil {
		t.Fatalf("enqueue failure must not surface: %v", err)
	}
}
