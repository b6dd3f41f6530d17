package db

import (
	"log"

	"github.com/campustech/marketplace/models"
	"gorm.io/gorm"
)

type MessageRepository interface {
	CreateMessage(message *models.Message) (*models.Message, error)
	GetConversation(productID, userA, userB uint) ([]models.Message, error)
}

type messageRepo struct {
	DB *gorm.DB
}

func NewMessageRepo(db *GormDB) MessageRepository {
	return &messageRepo{db.DB}
}

func (m *messageRepo) CreateMessage(message *models.Message) (*models.Message, error) {
	result := m.DB.Create(message)
	if result.Error != nil {
		log.Printf("CreateMessage error: %v", result.Error)
		return nil, result.Error
	}
	return message, nil
}

// GetConversation returns every message on the product exchanged between
// the two participants, in either direction, oldest first.
func (m *messageRepo) GetConversation(productID, userA, userB uint) ([]models.Message, error) {
	var messages []models.Message
	err := m.DB.
		Preload("Sender").
		Where("product_id = ?", productID).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
