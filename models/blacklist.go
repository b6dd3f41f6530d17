package models

// Blacklist holds revoked access tokens. A token present here is treated
// as logged out regardless of its expiry.
type Blacklist struct {
	Model
	Token string `json:"token" gorm:"type:text;not null"`
}
