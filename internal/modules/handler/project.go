package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/atriumstudio/atrium/internal/modules/serializer"
	"github.com/atriumstudio/atrium/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

type ListProjectsReq struct {
	Category string `form:"category" json:"category" example:"Residential"`
}

// ListProjects godoc
//
//	@Summary		List projects
//	@Description	List portfolio projects, optionally filtered by category. "All" or no filter returns everything.
//	@Tags			project
//	@Produce		json
//	@Param			category	query		string	false	"Category filter"
//	@Success		200			{object}	serializer.Response{data=[]model.Project}
//	@Router			/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	req := ListProjectsReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	items, err := h.svc.List(c.Request.Context(), req.Category)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// GetProject godoc
//
//	@Summary		Get project
//	@Description	Get one project by id. Viewing bumps the view counter without blocking the response.
//	@Tags			project
//	@Produce		json
//	@Param			id	path		string	true	"Project ID"
//	@Success		200	{object}	serializer.Response{data=model.Project}
//	@Router			/projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id := c.Param("id")

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}

	// Counter bump runs detached from the request lifecycle.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		h.svc.RecordView(ctx, id)
	}()

	c.JSON(http.StatusOK, serializer.Response{Data: p})
}

// DeleteProject godoc
//
//	@Summary		Delete project
//	@Description	Delete one project by id
//	@Tags			project
//	@Produce		json
//	@Param			id	path	string	true	"Project ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/admin/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "deleted"})
}
