package server

import (
	"net/http"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"

	errs "github.com/campustech/marketplace/errors"
	"github.com/campustech/marketplace/models"
	"github.com/campustech/marketplace/server/response"
	"github.com/campustech/marketplace/services/jwt"
)

// Authorize gates session-only routes. A missing, revoked, or invalid
// token yields a typed 401 response; on success the resolved user is set
// on the context for the handler.
func (s *Server) Authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken := getTokenFromHeader(c)
		if accessToken == "" {
			respondAndAbort(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}

		if s.AuthRepository.IsTokenInBlacklist(accessToken) {
			respondAndAbort(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}

		secret := s.Config.JWTSecret
		accessClaims, err := jwt.ValidateAndGetClaims(accessToken, secret)
		if err != nil {
			respondAndAbort(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}

		userIDValue := accessClaims["id"]
		var userID uint
		switch v := userIDValue.(type) {
		case float64:
			userID = uint(v)
		default:
			respondAndAbort(c, "", http.StatusBadRequest, nil, errs.New("Invalid userID format", http.StatusBadRequest))
			return
		}

		user, err := s.AuthRepository.FindUserByID(userID)
		if err != nil {
			respondAndAbort(c, "", http.StatusUnauthorized, nil, errs.ErrUnauthorized)
			return
		}

		c.Set("user", user)
		c.Set("userID", userID)
		c.Set("userName", user.Name)
		c.Set("access_token", accessToken)
		c.Next()
	}
}

// limitLoginAttempts throttles credential guessing per client IP.
func limitLoginAttempts(store ratelimit.Store) gin.HandlerFunc {
	mw := ratelimit.RateLimiter(store, &ratelimit.Options{
		ErrorHandler: func(c *gin.Context, info ratelimit.Info) {
			respondAndAbort(c, "Too many login attempts. Please try again in "+time.Until(info.ResetTime).Round(time.Second).String(),
				http.StatusTooManyRequests, nil, errs.New("Too many requests", http.StatusTooManyRequests))
		},
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
		BeforeResponse: nil,
	})
	return mw
}

// respondAndAbort calls response.JSON and aborts the Context
func respondAndAbort(c *gin.Context, message string, status int, data interface{}, e *errs.Error) {
	response.JSON(c, message, status, data, e)
	c.Abort()
}

// getTokenFromHeader returns the token string in the authorization header
func getTokenFromHeader(c *gin.Context) string {
	authHeader := c.Request.Header.Get("Authorization")
	if len(authHeader) > 8 {
		return authHeader[7:]
	}
	return ""
}

// GetUserFromContext returns the session user set by Authorize.
func GetUserFromContext(c *gin.Context) (*models.User, *errs.Error) {
	if userI, exists := c.Get("user"); exists {
		if user, ok := userI.(*models.User); ok {
			return user, nil
		}
		return nil, errs.ErrUnauthorized
	}
	return nil, errs.ErrUnauthorized
}
