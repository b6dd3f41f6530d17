package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campustech/marketplace/errors"
	"github.com/campustech/marketplace/models"
	"github.com/campustech/marketplace/server/response"
)

// handleGetConversation loads the message thread for a product. Buyers see
// their thread with the seller; the seller picks the buyer with ?with=<id>.
func (s *Server) handleGetConversation() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, apiErr := GetUserFromContext(c)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
		if err != nil {
			response.JSON(c, "", errors.ErrProductNotFound.Status, nil, errors.ErrProductNotFound)
			return
		}

		var withUserID uint
		if withStr := c.Query("with"); withStr != "" {
			withID, err := strconv.ParseUint(withStr, 10, 32)
			if err != nil {
				response.JSON(c, "", errors.ErrBadRequest.Status, nil, errors.ErrBadRequest)
				return
			}
			withUserID = uint(withID)
		}

		conversation, apiErr := s.MessageService.GetConversation(uint(productID), user.ID, withUserID)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}
		response.JSON(c, "conversation retrieved successfully", http.StatusOK, conversation, nil)
	}
}

// handleSendMessage keeps the bare {error}/{success} shape the chat
// frontend polls against.
func (s *Server) handleSendMessage() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, apiErr := GetUserFromContext(c)
		if apiErr != nil {
			c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
			return
		}

		var sendRequest models.SendMessageRequest
		if err := c.ShouldBindJSON(&sendRequest); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		messageResponse, apiErr := s.MessageService.SendMessage(user.ID, user.Name, &sendRequest)
		if apiErr != nil {
			c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": messageResponse})
	}
}
