package handler

import (
	"net/http"

	"github.com/atriumstudio/atrium/internal/modules/serializer"
	"github.com/atriumstudio/atrium/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	svc service.ContactService
}

func NewContactHandler(s service.ContactService) *ContactHandler {
	return &ContactHandler{svc: s}
}

type SubmitContactReq struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	ProjectType string `json:"project_type" binding:"required"`
	Message     string `json:"message" binding:"required"`
}

// SubmitContact godoc
//
//	@Summary		Submit contact form
//	@Description	Record one inquiry from the public contact form
//	@Tags			contact
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.SubmitContactReq	true	"Contact payload"
//	@Success		201		{object}	serializer.Response{data=model.ContactSubmission}
//	@Router			/contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	req := SubmitContactReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	sub, err := h.svc.Submit(c.Request.Context(), service.SubmitContactInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		ProjectType: req.ProjectType,
		Message:     req.Message,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: sub})
}

// ListSubmissions godoc
//
//	@Summary		List contact submissions
//	@Description	List submissions newest first
//	@Tags			contact
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.ContactSubmission}
//	@Router			/admin/submissions [get]
func (h *ContactHandler) ListSubmissions(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

type UpdateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// UpdateSubmissionStatus godoc
//
//	@Summary		Update submission status
//	@Description	Move a submission forward in its lifecycle (new -> in_progress -> completed)
//	@Tags			contact
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Submission ID"
//	@Param			payload	body		handler.UpdateStatusReq	true	"Status payload"
//	@Security		BearerAuth
//	@Success		200		{object}	serializer.Response{data=model.ContactSubmission}
//	@Router			/admin/submissions/{id}/status [patch]
func (h *ContactHandler) UpdateSubmissionStatus(c *gin.Context) {
	req := UpdateStatusReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	sub, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: sub})
}

type SetPriorityReq struct {
	HighPriority *bool `json:"high_priority" binding:"required"`
}

// SetSubmissionPriority godoc
//
//	@Summary		Set submission priority
//	@Description	Flag or unflag a submission as high priority, independent of its status
//	@Tags			contact
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Submission ID"
//	@Param			payload	body		handler.SetPriorityReq	true	"Priority payload"
//	@Security		BearerAuth
//	@Success		200		{object}	serializer.Response{data=model.ContactSubmission}
//	@Router			/admin/submissions/{id}/priority [patch]
func (h *ContactHandler) SetSubmissionPriority(c *gin.Context) {
	req := SetPriorityReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	sub, err := h.svc.SetPriority(c.Request.Context(), c.Param("id"), *req.HighPriority)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: sub})
}
