package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/atriumstudio/atrium/internal/modules/model"
	"github.com/atriumstudio/atrium/internal/pkg/imaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Edit-session states. A session not present in the manager is Closed.
const (
	SessionCreating   = "creating"
	SessionEditing    = "editing"
	SessionSubmitting = "submitting"
)

// EditSessionView is the read-only snapshot handed to callers.
type EditSessionView struct {
	ID        string             `json:"id"`
	State     string             `json:"state"`
	ProjectID string             `json:"project_id,omitempty"`
	Draft     model.ProjectDraft `json:"draft"`
}

type EditSessionService interface {
	BeginCreate(ctx context.Context) (*EditSessionView, error)
	BeginEdit(ctx context.Context, projectID string) (*EditSessionView, error)
	Get(ctx context.Context, sessionID string) (*EditSessionView, error)
	SetField(ctx context.Context, sessionID, field, value string) (*EditSessionView, error)
	AddFeature(ctx context.Context, sessionID string) (*EditSessionView, error)
	RemoveFeature(ctx context.Context, sessionID string, index int) (*EditSessionView, error)
	AddImage(ctx context.Context, sessionID string) (*EditSessionView, error)
	RemoveImage(ctx context.Context, sessionID string, index int) (*EditSessionView, error)
	// AttachImageFile validates and embeds an uploaded file into the draft's
	// main image field. A rejected file leaves the draft untouched.
	AttachImageFile(ctx context.Context, sessionID, declaredType string, size int64, r io.Reader) (*EditSessionView, error)
	Submit(ctx context.Context, sessionID string) (*model.Project, error)
	Cancel(ctx context.Context, sessionID string) error
}

type editSession struct {
	state     string
	projectID string // set in editing mode only
	draft     model.ProjectDraft
	busy      bool
}

// editSessionService holds every open session in memory. Drafts are transient
// by contract and must not outlive the process, so no store backs this map.
type editSessionService struct {
	mu       sync.Mutex
	sessions map[string]*editSession

	projects ProjectService
	log      *zap.Logger
}

func NewEditSessionService(projects ProjectService, log *zap.Logger) EditSessionService {
	return &editSessionService{
		sessions: make(map[string]*editSession),
		projects: projects,
		log:      log,
	}
}

func (s *editSessionService) view(id string, sess *editSession) *EditSessionView {
	v := &EditSessionView{
		ID:        id,
		State:     sess.state,
		ProjectID: sess.projectID,
		Draft:     sess.draft,
	}
	v.Draft.Features = append([]string(nil), sess.draft.Features...)
	v.Draft.AdditionalImages = append([]string(nil), sess.draft.AdditionalImages...)
	return v
}

func (s *editSessionService) BeginCreate(ctx context.Context) (*EditSessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	sess := &editSession{
		state: SessionCreating,
		draft: model.ProjectDraft{
			// One blank slot each so the form always has a row to type into.
			Features:         []string{""},
			AdditionalImages: []string{""},
		},
	}
	s.sessions[id] = sess
	return s.view(id, sess), nil
}

func (s *editSessionService) BeginEdit(ctx context.Context, projectID string) (*EditSessionView, error) {
	p, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft := model.DraftOf(p)
	if len(draft.Features) == 0 {
		draft.Features = []string{""}
	}
	if len(draft.AdditionalImages) == 0 {
		draft.AdditionalImages = []string{""}
	}

	id := uuid.NewString()
	sess := &editSession{
		state:     SessionEditing,
		projectID: projectID,
		draft:     draft,
	}
	s.sessions[id] = sess
	return s.view(id, sess), nil
}

func (s *editSessionService) get(sessionID string) (*editSession, error) {
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *editSessionService) Get(ctx context.Context, sessionID string) (*EditSessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(sessionID, sess), nil
}

func (s *editSessionService) SetField(ctx context.Context, sessionID, field, value string) (*EditSessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	switch field {
	case "title":
		sess.draft.Title = value
	case "category":
		sess.draft.Category = value
	case "image":
		sess.draft.Image = value
	case "description":
		sess.draft.Description = value
	case "location":
		sess.draft.Location = value
	case "year":
		sess.draft.Year = value
	case "size":
		sess.draft.Size = value
	case "client":
		sess.draft.Client = value
	case "full_description":
		sess.draft.FullDescription = value
	default:
		if ok := s.setIndexedField(sess, field, value); !ok {
			return nil, fmt.Errorf("%w: unknown draft field %q", ErrValidation, field)
		}
	}
	return s.view(sessionID, sess), nil
}

// setIndexedField handles "features.N" and "additional_images.N".
func (s *editSessionService) setIndexedField(sess *editSession, field, value string) bool {
	name, idxStr, found := strings.Cut(field, ".")
	if !found {
		return false
	}
	var idx int
	if _, err := fmt.Sscanf(idxStr, "%d", &idx); err != nil {
		return false
	}
	switch name {
	case "features":
		if idx < 0 || idx >= len(sess.draft.Features) {
			return false
		}
		sess.draft.Features[idx] = value
	case "additional_images":
		if idx < 0 || idx >= len(sess.draft.AdditionalImages) {
			return false
		}
		sess.draft.AdditionalImages[idx] = value
	default:
		return false
	}
	return true
}

func (s *editSessionService) AddFeature(ctx context.Context, sessionID string) (*EditSessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	sess.draft.Features = append(sess.draft.Features, "")
	return s.view(sessionID, sess), nil
}

func (s *editSessionService) RemoveFeature(ctx context.Context, sessionID string, index int) (*EditSessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	// The last row never goes away; removing it is a silent no-op.
	if len(sess.draft.Features) > 1 && index >= 0 && index < len(sess.draft.Features) {
		sess.draft.Features = append(sess.draft.Features[:index], sess.draft.Features[index+1:]...)
	}
	return s.view(sessionID, sess), nil
}

func (s *editSessionService) AddImage(ctx context.Context, sessionID string) (*EditSessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	sess.draft.AdditionalImages = append(sess.draft.AdditionalImages, "")
	return s.view(sessionID, sess), nil
}

func (s *editSessionService) RemoveImage(ctx context.Context, sessionID string, index int) (*EditSessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	if len(sess.draft.AdditionalImages) > 1 && index >= 0 && index < len(sess.draft.AdditionalImages) {
		sess.draft.AdditionalImages = append(sess.draft.AdditionalImages[:index], sess.draft.AdditionalImages[index+1:]...)
	}
	return s.view(sessionID, sess), nil
}

func (s *editSessionService) AttachImageFile(ctx context.Context, sessionID, declaredType string, size int64, r io.Reader) (*EditSessionView, error) {
	s.mu.Lock()
	sess, err := s.get(sessionID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if sess.busy {
		s.mu.Unlock()
		return nil, ErrSessionBusy
	}
	if err := imaging.Validate(declaredType, size); err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	// Hold the busy flag, not the lock, across the conversion.
	sess.busy = true
	s.mu.Unlock()

	embedded, convErr := imaging.ConvertToEmbedded(r, declaredType)

	s.mu.Lock()
	defer s.mu.Unlock()
	sess.busy = false
	if convErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageRead, convErr)
	}
	sess.draft.Image = embedded
	return s.view(sessionID, sess), nil
}

// trimBlanks drops empty rows the form left behind.
func trimBlanks(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

func (s *editSessionService) Submit(ctx context.Context, sessionID string) (*model.Project, error) {
	s.mu.Lock()
	sess, err := s.get(sessionID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if sess.busy || sess.state == SessionSubmitting {
		s.mu.Unlock()
		return nil, ErrSessionBusy
	}
	prevState := sess.state
	sess.busy = true
	sess.state = SessionSubmitting

	draft := sess.draft
	draft.Features = trimBlanks(sess.draft.Features)
	draft.AdditionalImages = trimBlanks(sess.draft.AdditionalImages)
	projectID := sess.projectID
	s.mu.Unlock()

	var (
		p      *model.Project
		subErr error
	)
	if prevState == SessionEditing {
		p, subErr = s.projects.Update(ctx, projectID, draft)
	} else {
		p, subErr = s.projects.Create(ctx, draft)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess.busy = false
	if subErr != nil {
		// Keep the session and its draft so the admin can fix and retry.
		sess.state = prevState
		s.log.Warn("edit session submit failed",
			zap.String("session_id", sessionID), zap.Error(subErr))
		return nil, subErr
	}
	delete(s.sessions, sessionID)
	return p, nil
}

func (s *editSessionService) Cancel(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	// An in-flight submit still owns the session; deleting it here would lose
	// the draft that a failed submit hands back for retry.
	if sess.busy || sess.state == SessionSubmitting {
		return ErrSessionBusy
	}
	delete(s.sessions, sessionID)
	return nil
}
