package models

// Message is a single chat line tied to one product. A conversation is not
// stored anywhere; it is reconstructed from the product id and the
// unordered pair of participant ids.
type Message struct {
	Model
	SenderID   uint   `json:"sender_id" gorm:"not null;index"`
	Sender     User   `json:"sender" gorm:"foreignKey:SenderID"`
	ReceiverID uint   `json:"receiver_id" gorm:"not null;index"`
	Receiver   User   `json:"receiver" gorm:"foreignKey:ReceiverID"`
	ProductID  uint   `json:"product_id" gorm:"not null;index"`
	Product    Product `json:"-" gorm:"foreignKey:ProductID"`
	Content    string `json:"content" gorm:"type:text;not null"`
}

// SendMessageRequest is the JSON body of POST /send_message. ReceiverID is
// honored only when the sender is the product's seller replying to a buyer;
// for everyone else the receiver is derived as the seller.
type SendMessageRequest struct {
	ProductID  uint   `json:"product_id"`
	Content    string `json:"content"`
	ReceiverID uint   `json:"receiver_id,omitempty"`
}

// MessageResponse is the shape echoed back to the sender and rendered in
// the conversation view.
type MessageResponse struct {
	Content    string `json:"content"`
	Timestamp  string `json:"timestamp"`
	SenderName string `json:"sender_name"`
	SenderID   uint   `json:"sender_id"`
}

// ConversationResponse is the payload of GET /chat/:product_id.
type ConversationResponse struct {
	Product  *Product          `json:"product"`
	Messages []MessageResponse `json:"messages"`
}
