package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/atriumstudio/atrium/docs"
	"github.com/atriumstudio/atrium/internal/config"
	"github.com/atriumstudio/atrium/internal/infra/identity"
	"github.com/atriumstudio/atrium/internal/middleware"
	"github.com/atriumstudio/atrium/internal/modules/handler"
	"github.com/atriumstudio/atrium/internal/modules/serializer"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config             *config.Config
	Log                *zap.Logger
	Verifier           identity.AdminVerifier
	ProjectHandler     *handler.ProjectHandler
	ContactHandler     *handler.ContactHandler
	TaxonomyHandler    *handler.TaxonomyHandler
	StatsHandler       *handler.StatsHandler
	AuthHandler        *handler.AuthHandler
	EditSessionHandler *handler.EditSessionHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	// Initialize logger for serializer package
	serializer.SetLogger(d.Log)

	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(middleware.OtelTracing(d.Config.App.Name))
		r.Use(middleware.TraceID())
	}

	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// public surface
		v1.GET("/projects", d.ProjectHandler.ListProjects)
		v1.GET("/projects/:id", d.ProjectHandler.GetProject)
		v1.GET("/categories", d.TaxonomyHandler.ListCategories)
		v1.GET("/tags", d.TaxonomyHandler.ListTags)
		v1.POST("/contact", d.ContactHandler.SubmitContact)

		admin := v1.Group("/admin")
		{
			admin.POST("/login", d.AuthHandler.Login)

			authed := admin.Group("")
			authed.Use(middleware.AdminAuth(d.Verifier))
			{
				authed.POST("/logout", d.AuthHandler.Logout)

				authed.GET("/submissions", d.ContactHandler.ListSubmissions)
				authed.PATCH("/submissions/:id/status", d.ContactHandler.UpdateSubmissionStatus)
				authed.PATCH("/submissions/:id/priority", d.ContactHandler.SetSubmissionPriority)

				authed.GET("/stats", d.StatsHandler.GetOverview)

				authed.DELETE("/projects/:id", d.ProjectHandler.DeleteProject)
				authed.GET("/projects-with-tags", d.TaxonomyHandler.ListProjectsWithTags)
				authed.POST("/projects/:id/tags/:tag_id", d.TaxonomyHandler.AssignTag)
				authed.DELETE("/projects/:id/tags/:tag_id", d.TaxonomyHandler.UnassignTag)

				sessions := authed.Group("/edit-sessions")
				{
					sessions.POST("", d.EditSessionHandler.OpenSession)
					sessions.GET("/:session_id", d.EditSessionHandler.GetSession)
					sessions.DELETE("/:session_id", d.EditSessionHandler.CancelSession)
					sessions.PATCH("/:session_id/fields", d.EditSessionHandler.SetField)
					sessions.POST("/:session_id/features", d.EditSessionHandler.AddFeature)
					sessions.DELETE("/:session_id/features", d.EditSessionHandler.RemoveFeature)
					sessions.POST("/:session_id/images", d.EditSessionHandler.AddImage)
					sessions.DELETE("/:session_id/images", d.EditSessionHandler.RemoveImage)
					sessions.POST("/:session_id/image-file", d.EditSessionHandler.AttachImage)
					sessions.POST("/:session_id/submit", d.EditSessionHandler.SubmitSession)
				}
			}
		}
	}
	return r
}
