package handler

import (
	"net/http"

	"github.com/atriumstudio/atrium/internal/modules/serializer"
	"github.com/atriumstudio/atrium/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type TaxonomyHandler struct {
	svc service.TaxonomyService
}

func NewTaxonomyHandler(s service.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{svc: s}
}

// ListCategories godoc
//
//	@Summary		List categories
//	@Description	List active categories ordered by sort order
//	@Tags			taxonomy
//	@Produce		json
//	@Success		200	{object}	serializer.Response{data=[]model.Category}
//	@Router			/categories [get]
func (h *TaxonomyHandler) ListCategories(c *gin.Context) {
	items, err := h.svc.ListCategories(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// ListTags godoc
//
//	@Summary		List tags
//	@Description	List tags ordered by name
//	@Tags			taxonomy
//	@Produce		json
//	@Success		200	{object}	serializer.Response{data=[]model.Tag}
//	@Router			/tags [get]
func (h *TaxonomyHandler) ListTags(c *gin.Context) {
	items, err := h.svc.ListTags(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// AssignTag godoc
//
//	@Summary		Assign tag
//	@Description	Attach a tag to a project; a duplicate pair is a conflict
//	@Tags			taxonomy
//	@Produce		json
//	@Param			id		path	string	true	"Project ID"
//	@Param			tag_id	path	string	true	"Tag ID"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response
//	@Router			/admin/projects/{id}/tags/{tag_id} [post]
func (h *TaxonomyHandler) AssignTag(c *gin.Context) {
	if err := h.svc.AssignTag(c.Request.Context(), c.Param("id"), c.Param("tag_id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Response{Msg: "assigned"})
}

// UnassignTag godoc
//
//	@Summary		Unassign tag
//	@Description	Detach a tag from a project
//	@Tags			taxonomy
//	@Produce		json
//	@Param			id		path	string	true	"Project ID"
//	@Param			tag_id	path	string	true	"Tag ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/admin/projects/{id}/tags/{tag_id} [delete]
func (h *TaxonomyHandler) UnassignTag(c *gin.Context) {
	if err := h.svc.UnassignTag(c.Request.Context(), c.Param("id"), c.Param("tag_id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "unassigned"})
}

// ListProjectsWithTags godoc
//
//	@Summary		List projects with tags
//	@Description	List all projects with their tag lists preloaded
//	@Tags			taxonomy
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Project}
//	@Router			/admin/projects-with-tags [get]
func (h *TaxonomyHandler) ListProjectsWithTags(c *gin.Context) {
	items, err := h.svc.ListProjectsWithTags(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: items})
}
