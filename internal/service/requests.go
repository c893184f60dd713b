package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/guttosm/diet-service/internal/domain/dto"
	"github.com/guttosm/diet-service/internal/domain/model"
	"github.com/guttosm/diet-service/internal/repository"
)

// Requests defines the clinician diet request operations.
type Requests interface {
	List(ctx context.Context) ([]model.DietRequest, error)
	Get(ctx context.Context, id string) (*model.DietRequest, error)
	Create(ctx context.Context, req *model.DietRequest) (*model.DietRequest, error)
	Update(ctx context.Context, id string, req *model.DietRequest) (*model.DietRequest, error)
	Patch(ctx context.Context, id string, fields map[string]interface{}) (*model.DietRequest, error)
	Delete(ctx context.Context, id string) error
	Approve(ctx context.Context, id string) (*model.DietRequest, error)
	Reject(ctx context.Context, id string) (*model.DietRequest, error)
}

// RequestService implements Requests. Approve and Reject go through the
// request transition table; PATCH edits bypass it deliberately so the admin
// desk can correct mistakes.
type RequestService struct {
	requests repository.DietRequestRepository
	activity *ActivityRecorder
}

// NewRequestService creates a RequestService.
func NewRequestService(requests repository.DietRequestRepository, activity *ActivityRecorder) *RequestService {
	return &RequestService{requests: requests, activity: activity}
}

func validateRequest(req *model.DietRequest) error {
	if req.PatientID == "" {
		return dto.ErrPatientIDRequired
	}
	if req.PatientName == "" {
		return dto.ErrPatientNameRequired
	}
	if !dto.ValidContactNumber(req.ContactNumber) {
		return dto.ErrContactNumberInvalid
	}
	return nil
}

// List returns every diet request.
func (s *RequestService) List(ctx context.Context) ([]model.DietRequest, error) {
	return s.requests.List(ctx)
}

// Get returns one diet request.
func (s *RequestService) Get(ctx context.Context, id string) (*model.DietRequest, error) {
	return s.requests.Get(ctx, id)
}

// Create validates and stores a new diet request. Status defaults to pending.
func (s *RequestService) Create(ctx context.Context, req *model.DietRequest) (*model.DietRequest, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if req.Status == "" {
		req.Status = model.RequestPending
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, "diet_request_created", req.ID, "diet request created for "+req.PatientName)
	return req, nil
}

// Update replaces a diet request.
func (s *RequestService) Update(ctx context.Context, id string, req *model.DietRequest) (*model.DietRequest, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	req.ID = id
	if err := s.requests.Replace(ctx, id, req); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, "diet_request_updated", id, "diet request updated")
	return req, nil
}

// Patch applies a partial update without transition checks.
func (s *RequestService) Patch(ctx context.Context, id string, fields map[string]interface{}) (*model.DietRequest, error) {
	if number, ok := fields["contactNumber"].(string); ok && !dto.ValidContactNumber(number) {
		return nil, dto.ErrContactNumberInvalid
	}
	merged, err := s.requests.Patch(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	s.activity.Record(ctx, "diet_request_updated", id, "diet request patched")
	return merged, nil
}

// Delete removes a diet request.
func (s *RequestService) Delete(ctx context.Context, id string) error {
	if err := s.requests.Delete(ctx, id); err != nil {
		return err
	}
	s.activity.Record(ctx, "diet_request_deleted", id, "diet request deleted")
	return nil
}

// Approve marks a pending request as having its diet order placed.
func (s *RequestService) Approve(ctx context.Context, id string) (*model.DietRequest, error) {
	return s.transition(ctx, id, model.RequestPlaced, "diet_request_approved", "diet request approved")
}

// Reject marks a pending request as rejected.
func (s *RequestService) Reject(ctx context.Context, id string) (*model.DietRequest, error) {
	return s.transition(ctx, id, model.RequestRejected, "diet_request_rejected", "diet request rejected")
}

func (s *RequestService) transition(ctx context.Context, id string, to model.RequestStatus, actionType, message string) (*model.DietRequest, error) {
	req, err := s.requests.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !req.Status.CanTransition(to) {
		return nil, ErrInvalidTransition
	}
	req.Status = to
	if err := s.requests.Replace(ctx, id, req); err != nil {
		return nil, err
	}
	s.activity.Record(ctx, actionType, id, message)
	return req, nil
}
