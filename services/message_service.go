package services

import (
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/campustech/marketplace/config"
	"github.com/campustech/marketplace/db"
	apiError "github.com/campustech/marketplace/errors"
	"github.com/campustech/marketplace/models"
)

const messageTimestampFormat = "2006-01-02 15:04:05"

type MessageService interface {
	GetConversation(productID, userID, withUserID uint) (*models.ConversationResponse, *apiError.Error)
	SendMessage(senderID uint, senderName string, request *models.SendMessageRequest) (*models.MessageResponse, *apiError.Error)
}

type messageService struct {
	Config      *config.Config
	messageRepo db.MessageRepository
	productRepo db.ProductRepository
}

func NewMessageService(messageRepo db.MessageRepository, productRepo db.ProductRepository, conf *config.Config) MessageService {
	return &messageService{
		Config:      conf,
		messageRepo: messageRepo,
		productRepo: productRepo,
	}
}

// GetConversation reconstructs the chat between the current user and the
// product's seller. A buyer always talks to the seller; the seller must
// name the buyer via withUserID, and can never open a conversation with
// themselves.
func (m *messageService) GetConversation(productID, userID, withUserID uint) (*models.ConversationResponse, *apiError.Error) {
	product, err := m.productRepo.GetProductByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.ErrProductNotFound
		}
		log.Printf("GetConversation error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	other := product.SellerID
	if product.SellerID == userID {
		if withUserID == 0 || withUserID == userID {
			return nil, apiError.ErrSelfMessaging
		}
		other = withUserID
	}

	messages, err := m.messageRepo.GetConversation(productID, userID, other)
	if err != nil {
		log.Printf("GetConversation error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	rendered := make([]models.MessageResponse, 0, len(messages))
	for _, msg := range messages {
		rendered = append(rendered, models.MessageResponse{
			Content:    msg.Content,
			Timestamp:  msg.CreatedAt.Format(messageTimestampFormat),
			SenderName: msg.Sender.Name,
			SenderID:   msg.SenderID,
		})
	}

	return &models.ConversationResponse{
		Product:  product,
		Messages: rendered,
	}, nil
}

// SendMessage persists one chat line. The receiver is derived as the
// product's seller; only the seller replying to a buyer may name a
// receiver, and sender and receiver are never the same user.
func (m *messageService) SendMessage(senderID uint, senderName string, request *models.SendMessageRequest) (*models.MessageResponse, *apiError.Error) {
	content := strings.TrimSpace(request.Content)
	if content == "" {
		return nil, apiError.ErrEmptyMessage
	}

	product, err := m.productRepo.GetProductByID(request.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.ErrProductNotFound
		}
		log.Printf("SendMessage error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	receiverID := product.SellerID
	if product.SellerID == senderID {
		receiverID = request.ReceiverID
	}
	if receiverID == 0 || receiverID == senderID {
		return nil, apiError.ErrSelfMessaging
	}

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		ProductID:  product.ID,
		Content:    content,
	}

	createdMessage, err := m.messageRepo.CreateMessage(message)
	if err != nil {
		log.Printf("SendMessage error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	return &models.MessageResponse{
		Content:    createdMessage.Content,
		Timestamp:  createdMessage.CreatedAt.Format(messageTimestampFormat),
		SenderName: senderName,
		SenderID:   senderID,
	}, nil
}
