package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/atriumstudio/atrium/internal/modules/model"
	"github.com/atriumstudio/atrium/internal/modules/repo"
	"go.uber.org/zap"
)

type ContactService interface {
	Submit(ctx context.Context, in SubmitContactInput) (*model.ContactSubmission, error)
	List(ctx context.Context) ([]model.ContactSubmission, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.ContactSubmission, error)
	SetPriority(ctx context.Context, id string, high bool) (*model.ContactSubmission, error)
}

type contactService struct {
	r   repo.ContactRepo
	log *zap.Logger
}

func NewContactService(r repo.ContactRepo, log *zap.Logger) ContactService {
	return &contactService{r: r, log: log}
}

type SubmitContactInput struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	ProjectType string `json:"project_type"`
	Message     string `json:"message"`
}

func (s *contactService) Submit(ctx context.Context, in SubmitContactInput) (*model.ContactSubmission, error) {
	// Presence checks only; the email field is not pattern-validated here.
	for field, v := range map[string]string{
		"first_name":   in.FirstName,
		"last_name":    in.LastName,
		"email":        in.Email,
		"project_type": in.ProjectType,
		"message":      in.Message,
	} {
		if strings.TrimSpace(v) == "" {
			return nil, fmt.Errorf("%w: %s is required", ErrValidation, field)
		}
	}

	sub := &model.ContactSubmission{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		ProjectType: in.ProjectType,
		Message:     in.Message,
		Status:      model.StatusNew,
	}
	if err := s.r.Create(ctx, sub); err != nil {
		return nil, storeErr(err)
	}
	s.log.Info("contact submission received", zap.String("id", sub.ID))
	return sub, nil
}

func (s *contactService) List(ctx context.Context) ([]model.ContactSubmission, error) {
	items, err := s.r.List(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return items, nil
}

func (s *contactService) UpdateStatus(ctx context.Context, id, status string) (*model.ContactSubmission, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: submission id is empty", ErrValidation)
	}
	if !model.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	cur, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	// Lifecycle moves forward only; re-applying the current status is allowed.
	if !model.StatusForwardOf(cur.Status, status) {
		return nil, fmt.Errorf("%w: cannot move status from %q to %q", ErrValidation, cur.Status, status)
	}
	out, err := s.r.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (s *contactService) SetPriority(ctx context.Context, id string, high bool) (*model.ContactSubmission, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: submission id is empty", ErrValidation)
	}
	out, err := s.r.SetPriority(ctx, id, high)
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}
