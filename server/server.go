package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	errs "github.com/campustech/marketplace/errors"

	"github.com/campustech/marketplace/config"
	"github.com/campustech/marketplace/db"
	"github.com/campustech/marketplace/services"
)

type Server struct {
	Config            *config.Config
	AuthRepository    db.AuthRepository
	ProductRepository db.ProductRepository
	MessageRepository db.MessageRepository
	AuthService       services.AuthService
	ProductService    services.ProductService
	MessageService    services.MessageService
}

// Start runs the HTTP server until an interrupt arrives, then drains
// in-flight requests before exiting.
func (s *Server) Start() {
	r := s.setupRouter()

	port := s.Config.Port
	if port == 0 {
		port = 8080
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: r,
	}

	go func() {
		log.Printf("Server started on port %d", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

// decode binds the JSON request body into v.
func decode(c *gin.Context, v interface{}) error {
	if err := c.ShouldBindJSON(v); err != nil {
		log.Printf("decode error: %v", err)
		return errs.New("unable to parse request body", http.StatusBadRequest)
	}
	return nil
}
