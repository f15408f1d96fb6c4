package handler

import (
	"errors"
	"net/http"

	"github.com/atriumstudio/atrium/internal/infra/identity"
	"github.com/atriumstudio/atrium/internal/modules/serializer"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	verifier identity.AdminVerifier
}

func NewAuthHandler(v identity.AdminVerifier) *AuthHandler {
	return &AuthHandler{verifier: v}
}

type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResp struct {
	Token string `json:"token"`
}

// Login godoc
//
//	@Summary		Admin login
//	@Description	Exchange admin credentials for a bearer token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.LoginReq	true	"Credentials"
//	@Success		200		{object}	serializer.Response{data=handler.LoginResp}
//	@Router			/admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	req := LoginReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	token, err := h.verifier.SignIn(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, serializer.AuthErr("invalid credentials"))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Data: LoginResp{Token: token}})
}

// Logout godoc
//
//	@Summary		Admin logout
//	@Description	Revoke the presented bearer token
//	@Tags			auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString("admin_token")
	if err := h.verifier.SignOut(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.Response{Msg: "logged out"})
}
