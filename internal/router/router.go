package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"sniptaste/internal/auth"
	"sniptaste/internal/chat"
	"sniptaste/internal/middleware"
)

// NewRouter wires every route of the service.
func NewRouter(chatHandler *chat.Handler, authService *auth.Service, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/chat", chatHandler.Chat)
	r.GET("/menu", chatHandler.Menu)

	adminGroup := r.Group("/admin")
	{
		adminGroup.POST("/login", func(c *gin.Context) {
			var req struct {
				Username string `json:"username" binding:"required"`
				Password string `json:"password" binding:"required"`
			}
			if err := c.BindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
				return
			}

			token, err := authService.Login(req.Username, req.Password)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"token": token})
		})

		protected := adminGroup.Group("")
		protected.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
		{
			protected.POST("/catalog/reload", chatHandler.ReloadMenu)
			protected.GET("/orders", chatHandler.RecentOrders)
		}
	}

	return r
}
