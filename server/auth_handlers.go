package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campustech/marketplace/errors"
	"github.com/campustech/marketplace/models"
	"github.com/campustech/marketplace/server/response"
)

func (s *Server) handleSignup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var signupRequest models.SignupRequest
		if err := decode(c, &signupRequest); err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}
		userResponse, err := s.AuthService.SignupUser(&signupRequest)
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		response.JSON(c, "Registration successful! Please log in.", http.StatusCreated, userResponse, nil)
	}
}

func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var loginRequest models.LoginRequest
		if err := decode(c, &loginRequest); err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}
		userResponse, err := s.AuthService.LoginUser(&loginRequest)
		if err != nil {
			response.JSON(c, "", err.Status, nil, err)
			return
		}
		response.JSON(c, "login successful", http.StatusOK, userResponse, nil)
	}
}

// handleLogout revokes the presented token if there is one. Logging out
// without a session is not an error.
func (s *Server) handleLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken := getTokenFromHeader(c)
		if accessToken != "" && !s.AuthRepository.IsTokenInBlacklist(accessToken) {
			blackListEntry := &models.Blacklist{
				Token: accessToken,
			}
			if err := s.AuthRepository.AddToBlackList(blackListEntry); err != nil {
				log.Printf("Error adding access token to blacklist: %v", err)
				response.JSON(c, "Logout failed", http.StatusInternalServerError, nil, errors.ErrInternalServerError)
				return
			}
		}
		response.JSON(c, "You have been logged out.", http.StatusOK, nil, nil)
	}
}

// handleLoginForm describes the login form for API clients.
func (s *Server) handleLoginForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.JSON(c, "login", http.StatusOK, gin.H{
			"fields": []string{"identifier", "password"},
		}, nil)
	}
}

// handleRegisterForm describes the registration form for API clients.
func (s *Server) handleRegisterForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.JSON(c, "register", http.StatusOK, gin.H{
			"fields": []string{"name", "email", "reg_number", "password", "confirm_password"},
		}, nil)
	}
}
