package handler

import (
	"net/http"

	"github.com/atriumstudio/atrium/internal/modules/serializer"
	"github.com/atriumstudio/atrium/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type EditSessionHandler struct {
	svc service.EditSessionService
}

func NewEditSessionHandler(s service.EditSessionService) *EditSessionHandler {
	return &EditSessionHandler{svc: s}
}

type OpenSessionReq struct {
	// ProjectID switches the session into editing mode; empty means create.
	ProjectID string `json:"project_id"`
}

// OpenSession godoc
//
//	@Summary		Open edit session
//	@Description	Open a draft session: creating with an empty form, or editing a copy of a stored project
//	@Tags			editsession
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.OpenSessionReq	true	"Open payload"
//	@Security		BearerAuth
//	@Success		201		{object}	serializer.Response{data=service.EditSessionView}
//	@Router			/admin/edit-sessions [post]
func (h *EditSessionHandler) OpenSession(c *gin.Context) {
	req := OpenSessionReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	var (
		view *service.EditSessionView
		err  error
	)
	if req.ProjectID != "" {
		view, err = h.svc.BeginEdit(c.Request.Context(), req.ProjectID)
	} else {
		view, err = h.svc.BeginCreate(c.Request.Context())
	}
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Data: view})
}

// GetSession godoc
//
//	@Summary		Inspect edit session
//	@Tags			editsession
//	@Produce		json
//	@Param			session_id	path		string	true	"Session ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.EditSessionView}
//	@Router			/admin/edit-sessions/{session_id} [get]
func (h *EditSessionHandler) GetSession(c *gin.Context) {
	view, err := h.svc.Get(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: view})
}

type SetFieldReq struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// SetField godoc
//
//	@Summary		Set draft field
//	@Description	Set one draft field by name; indexed list entries use "features.N" / "additional_images.N"
//	@Tags			editsession
//	@Accept			json
//	@Produce		json
//	@Param			session_id	path		string				true	"Session ID"
//	@Param			payload		body		handler.SetFieldReq	true	"Field payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.EditSessionView}
//	@Router			/admin/edit-sessions/{session_id}/fields [patch]
func (h *EditSessionHandler) SetField(c *gin.Context) {
	req := SetFieldReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	view, err := h.svc.SetField(c.Request.Context(), c.Param("session_id"), req.Field, req.Value)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: view})
}

type ListOpReq struct {
	// Index is required for remove operations and ignored for add.
	Index int `json:"index"`
}

// AddFeature godoc
//
//	@Summary	Append a blank feature row
//	@Tags		editsession
//	@Produce	json
//	@Param		session_id	path	string	true	"Session ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=service.EditSessionView}
//	@Router		/admin/edit-sessions/{session_id}/features [post]
func (h *EditSessionHandler) AddFeature(c *gin.Context) {
	view, err := h.svc.AddFeature(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: view})
}

// RemoveFeature godoc
//
//	@Summary	Remove a feature row
//	@Description	Removing the last remaining row is a no-op
//	@Tags		editsession
//	@Accept		json
//	@Produce	json
//	@Param		session_id	path	string				true	"Session ID"
//	@Param		payload		body	handler.ListOpReq	true	"Index payload"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=service.EditSessionView}
//	@Router		/admin/edit-sessions/{session_id}/features [delete]
func (h *EditSessionHandler) RemoveFeature(c *gin.Context) {
	req := ListOpReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	view, err := h.svc.RemoveFeature(c.Request.Context(), c.Param("session_id"), req.Index)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: view})
}

// AddImage godoc
//
//	@Summary	Append a blank additional-image row
//	@Tags		editsession
//	@Produce	json
//	@Param		session_id	path	string	true	"Session ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=service.EditSessionView}
//	@Router		/admin/edit-sessions/{session_id}/images [post]
func (h *EditSessionHandler) AddImage(c *gin.Context) {
	view, err := h.svc.AddImage(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: view})
}

// RemoveImage godoc
//
//	@Summary	Remove an additional-image row
//	@Description	Removing the last remaining row is a no-op
//	@Tags		editsession
//	@Accept		json
//	@Produce	json
//	@Param		session_id	path	string				true	"Session ID"
//	@Param		payload		body	handler.ListOpReq	true	"Index payload"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=service.EditSessionView}
//	@Router		/admin/edit-sessions/{session_id}/images [delete]
func (h *EditSessionHandler) RemoveImage(c *gin.Context) {
	req := ListOpReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	view, err := h.svc.RemoveImage(c.Request.Context(), c.Param("session_id"), req.Index)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: view})
}

// AttachImage godoc
//
//	@Summary		Attach image file
//	@Description	Validate and embed an uploaded image into the draft's main image field. JPEG, PNG and WebP up to 5 MiB.
//	@Tags			editsession
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			session_id	path		string	true	"Session ID"
//	@Param			file		formData	file	true	"Image file"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.EditSessionView}
//	@Router			/admin/edit-sessions/{session_id}/image-file [post]
func (h *EditSessionHandler) AttachImage(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("file is required", err))
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("cannot read file", err))
		return
	}
	defer f.Close()

	view, err := h.svc.AttachImageFile(c.Request.Context(),
		c.Param("session_id"), fh.Header.Get("Content-Type"), fh.Size, f)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: view})
}

// SubmitSession godoc
//
//	@Summary		Submit edit session
//	@Description	Persist the draft (create or update per mode). On success the session closes; on failure the draft is kept for retry.
//	@Tags			editsession
//	@Produce		json
//	@Param			session_id	path		string	true	"Session ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Project}
//	@Router			/admin/edit-sessions/{session_id}/submit [post]
func (h *EditSessionHandler) SubmitSession(c *gin.Context) {
	p, err := h.svc.Submit(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: p})
}

// CancelSession godoc
//
//	@Summary	Cancel edit session
//	@Tags		editsession
//	@Produce	json
//	@Param		session_id	path	string	true	"Session ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response
//	@Router		/admin/edit-sessions/{session_id} [delete]
func (h *EditSessionHandler) CancelSession(c *gin.Context) {
	if err := h.svc.Cancel(c.Request.Context(), c.Param("session_id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "cancelled"})
}
