package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/quillhaven/moderation-backend/internal/auth"
	"github.com/quillhaven/moderation-backend/internal/handler"
	"github.com/quillhaven/moderation-backend/internal/middleware"
)

// Setup registers all console routes.
func Setup(r *gin.Engine, gate *auth.Service, authHandler *handler.AuthHandler, console *handler.ConsoleHandler) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/signin", authHandler.SignIn)
		authGroup.POST("/signout", authHandler.SignOut)
	}

	admin := r.Group("/api/admin")
	admin.Use(middleware.RequireOperator(gate))
	{
		admin.POST("/reload", console.Reload)
		admin.GET("/stats", console.Stats)

		admin.GET("/posts", console.ListPosts)
		admin.POST("/posts/:id/hide", console.HidePost)
		admin.POST("/posts/:id/restore", console.RestorePost)
		admin.PUT("/posts/:id/note", console.SetPostNote)

		admin.GET("/marginalia", console.ListMarginalia)
		admin.POST("/marginalia/:id/hide", console.HideMarginalia)
		admin.POST("/marginalia/:id/restore", console.RestoreMarginalia)
		admin.PUT("/marginalia/:id/note", console.SetMarginaliaNote)

		admin.GET("/postcards", console.ListPostcards)
		admin.POST("/postcards/:id/hide", console.HidePostcard)
		admin.POST("/postcards/:id/restore", console.RestorePostcard)

		admin.GET("/discussions", console.ListDiscussions)
		admin.POST("/discussions/:id/activate", console.ActivateDiscussion)
		admin.POST("/discussions/:id/deactivate", console.DeactivateDiscussion)

		admin.GET("/contacts", console.ListContacts)
		admin.POST("/contacts/:id/address", console.AddressContact)
		admin.POST("/contacts/:id/unaddress", console.UnaddressContact)

		admin.GET("/submissions", console.ListSubmissions)
		admin.POST("/submissions/:id/approve", console.ApproveSubmission)
		admin.POST("/submissions/:id/reject", console.RejectSubmission)

		admin.GET("/prompts", console.ListPrompts)
		admin.POST("/prompts", console.CreatePrompt)
		admin.POST("/prompts/:id/activate", console.ActivatePrompt)
		admin.POST("/prompts/:id/deactivate", console.DeactivatePrompt)

		admin.GET("/facilitators", console.ListFacilitators)
		admin.DELETE("/facilitators/:id", console.DeleteFacilitator)
	}
}
