package routes

import (
	"net/http"

	"github.com/nantel10/code-baba/controllers"
	"github.com/nantel10/code-baba/middlewares"
	"github.com/nantel10/code-baba/services"

	"github.com/gin-gonic/gin"
)

type Deps struct {
	Identity *services.IdentityService
	Auth     *controllers.AuthController
	Members  *controllers.MemberController
	Messages *controllers.MessageController

	// PublicDir, when set, serves the PWA client alongside the API.
	PublicDir string
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")
	{
		api.GET("/vapid-public-key", d.Auth.VapidPublicKey)
		api.POST("/verify-code", d.Auth.VerifyCode)
		api.POST("/check-name", d.Auth.CheckName)
		api.POST("/subscribe", d.Auth.Subscribe)
		api.POST("/login", d.Auth.Login)
		api.POST("/logout", d.Auth.Logout)

		api.GET("/messages", d.Messages.List)
		api.POST("/send", d.Messages.Send)

		api.GET("/members", middlewares.AdminRequired(d.Identity), d.Members.List)
	}

	admin := api.Group("/admin")
	admin.Use(middlewares.AdminRequired(d.Identity))
	{
		admin.POST("/members", d.Members.Create)
		admin.PUT("/members/:id", d.Members.Update)
		admin.DELETE("/members/:id", d.Members.Delete)
	}

	if d.PublicDir != "" {
		r.NoRoute(gin.WrapH(http.FileServer(http.Dir(d.PublicDir))))
	}

	return r
}
