package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/masblog-io/masblog/docs"
	"github.com/masblog-io/masblog/internal/config"
	"github.com/masblog-io/masblog/internal/middleware"
	"github.com/masblog-io/masblog/internal/modules/handler"
	"github.com/masblog-io/masblog/internal/modules/serializer"
	"github.com/masblog-io/masblog/internal/modules/service"
	"github.com/masblog-io/masblog/internal/pkg/roles"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config            *config.Config
	Log               *zap.Logger
	AuthService       service.AuthService
	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	ProfileHandler    *handler.ProfileHandler
	PostHandler       *handler.PostHandler
	CommentHandler    *handler.CommentHandler
	AssetHandler      *handler.AssetHandler
	CategoryHandler   *handler.CategoryHandler
	TagHandler        *handler.TagHandler
	ContactHandler    *handler.ContactHandler
	NewsletterHandler *handler.NewsletterHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authed := middleware.UserAuth(d.AuthService)
	optional := middleware.OptionalAuth(d.AuthService)
	staff := middleware.RequireStaff()

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", d.AuthHandler.SignUp)
			auth.POST("/login", d.AuthHandler.Login)
			auth.POST("/refresh", d.AuthHandler.Refresh)
			auth.GET("/me", authed, d.AuthHandler.Me)
		}

		users := v1.Group("/users", authed, staff)
		{
			users.GET("", d.UserHandler.List)
			users.GET("/:uuid", d.UserHandler.Get)
		}

		profiles := v1.Group("/profiles")
		{
			profiles.GET("", d.ProfileHandler.List)
			profiles.POST("", authed, staff, d.ProfileHandler.Create)
			profiles.GET("/me", authed, d.ProfileHandler.Me)
			profiles.PUT("/me", authed, d.ProfileHandler.UpdateMe)
			profiles.GET("/:uuid", d.ProfileHandler.Get)
			profiles.PUT("/:uuid", authed, d.ProfileHandler.Update)
			profiles.DELETE("/:uuid", authed, d.ProfileHandler.Delete)
		}

		posts := v1.Group("/posts")
		{
			posts.GET("", optional, d.PostHandler.List)
			posts.GET("/slug/:slug", d.PostHandler.GetBySlug)
			posts.GET("/:id", d.PostHandler.Get)
			posts.POST("", authed, middleware.RequireRoles(roles.RoleAdmin, roles.RoleSuperAdmin, roles.RoleEditor, roles.RoleAuthor), d.PostHandler.Create)
			posts.PUT("/:id", authed, d.PostHandler.Update)
			posts.DELETE("/:id", authed, d.PostHandler.Delete)
			posts.PATCH("/:id/status", authed, d.PostHandler.ChangeStatus)
			posts.PATCH("/:id/placement", authed, staff, d.PostHandler.ChangePlacement)

			posts.GET("/:id/comments", optional, d.CommentHandler.ListByPost)
			posts.POST("/:id/comments", authed, d.CommentHandler.Create)
		}

		comments := v1.Group("/comments")
		{
			comments.GET("/:id", d.CommentHandler.Get)
			comments.PUT("/:id", authed, d.CommentHandler.Update)
			comments.DELETE("/:id", authed, d.CommentHandler.Delete)
			comments.PATCH("/:id/moderate", authed, staff, d.CommentHandler.Moderate)
		}

		assets := v1.Group("/assets", authed)
		{
			assets.GET("", d.AssetHandler.List)
			assets.POST("", d.AssetHandler.Upload)
			// by-url and orphaned are registered before the :id routes so
			// gin never tries to parse them as asset ids.
			assets.DELETE("/by-url", d.AssetHandler.DeleteByURL)
			assets.GET("/orphaned", staff, d.AssetHandler.ListOrphaned)
			assets.GET("/:id", d.AssetHandler.Get)
			assets.PUT("/:id", d.AssetHandler.Replace)
			assets.DELETE("/:id", d.AssetHandler.Delete)
			assets.POST("/:id/refs", d.AssetHandler.IncrementRef)
			assets.DELETE("/:id/refs", d.AssetHandler.DecrementRef)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", d.CategoryHandler.List)
			categories.GET("/:id", d.CategoryHandler.Get)
			categories.POST("", authed, staff, d.CategoryHandler.Create)
			categories.PUT("/:id", authed, staff, d.CategoryHandler.Update)
			categories.DELETE("/:id", authed, staff, d.CategoryHandler.Delete)
		}

		tags := v1.Group("/tags")
		{
			tags.GET("", d.TagHandler.List)
			tags.GET("/:id", d.TagHandler.Get)
			tags.POST("", authed, staff, d.TagHandler.Create)
			tags.PUT("/:id", authed, staff, d.TagHandler.Update)
			tags.DELETE("/:id", authed, staff, d.TagHandler.Delete)
		}

		contacts := v1.Group("/contacts")
		{
			contacts.POST("", d.ContactHandler.Create)
			contacts.GET("", authed, staff, d.ContactHandler.List)
			contacts.GET("/:id", authed, staff, d.ContactHandler.Get)
		}

		newsletter := v1.Group("/newsletter/subscribers")
		{
			newsletter.POST("", d.NewsletterHandler.Subscribe)
			newsletter.GET("", authed, staff, d.NewsletterHandler.List)
			newsletter.GET("/:id", authed, staff, d.NewsletterHandler.Get)
		}
	}
	return r
}
