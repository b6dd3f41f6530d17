package server

import (
	"fmt"
	"net/http"
	"os"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	errs "github.com/campustech/marketplace/errors"
	"github.com/campustech/marketplace/server/response"
)

func (s *Server) setupRouter() *gin.Engine {
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "test" {
		r := gin.New()
		s.defineRoutes(r)
		return r
	}

	r := gin.New()

	// LoggerWithFormatter middleware will write the logs to gin.DefaultWriter
	// By default gin.DefaultWriter = os.Stdout
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
			param.ClientIP,
			param.TimeStamp.Format(time.RFC1123),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.Latency,
			param.Request.UserAgent(),
			param.ErrorMessage,
		)
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	s.defineRoutes(r)

	return r
}

func (s *Server) defineRoutes(router *gin.Engine) {
	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{Rate: time.Minute, Limit: 10})
	limitRate := limitLoginAttempts(store)

	router.GET("/", s.handleGetProducts())
	router.GET("/product/:id", s.handleGetProduct())
	router.GET("/categories", s.handleGetCategories())

	router.GET("/register", s.handleRegisterForm())
	router.POST("/register", s.handleSignup())
	router.GET("/login", s.handleLoginForm())
	router.POST("/login", limitRate, s.handleLogin())
	router.GET("/logout", s.handleLogout())

	authorized := router.Group("/")
	authorized.Use(s.Authorize())
	authorized.GET("/sell", s.handleSellForm())
	authorized.POST("/sell", s.handleSellProduct())
	authorized.GET("/my_products", s.handleMyProducts())
	authorized.GET("/chat/:product_id", s.handleGetConversation())
	authorized.POST("/send_message", s.handleSendMessage())

	router.NoRoute(func(c *gin.Context) {
		response.JSON(c, "", http.StatusNotFound, nil, errs.ErrNotFound)
	})
}
