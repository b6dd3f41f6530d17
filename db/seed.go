package db

import (
	"log"

	"github.com/campustech/marketplace/models"
	"gorm.io/gorm"
)

func toStringPtr(s string) *string {
	return &s
}

// SeedDemoData loads a small set of demo accounts and listings for local
// development. All demo accounts share the password "password123".
func SeedDemoData(db *gorm.DB) error {
	hashed, err := models.HashPassword("password123")
	if err != nil {
		return err
	}

	users := []models.User{
		{
			Name:           "John Doe",
			Email:          toStringPtr("john@sampleschool.edu"),
			RegNumber:      toStringPtr("H200001A"),
			HashedPassword: hashed,
		},
		{
			Name:           "Jane Smith",
			Email:          toStringPtr("jane@sampleschool.edu"),
			RegNumber:      toStringPtr("H200002B"),
			HashedPassword: hashed,
		},
		{
			Name:           "Mike Johnson",
			RegNumber:      toStringPtr("H200003C"),
			HashedPassword: hashed,
		},
		{
			Name:           "Sarah Wilson",
			Email:          toStringPtr("sarah@sampleschool.edu"),
			HashedPassword: hashed,
		},
	}

	for i := range users {
		if err := db.FirstOrCreate(&users[i], models.User{Name: users[i].Name}).Error; err != nil {
			log.Printf("Failed to seed user %s: %v", users[i].Name, err)
			return err
		}
	}

	products := []models.Product{
		{
			Title:       `MacBook Pro 13" 2020`,
			Description: "Excellent condition MacBook Pro with M1 chip. Perfect for students. Includes charger and original box.",
			Price:       899.99,
			Category:    "Electronics",
			Condition:   "Like New",
			ImageURL:    models.DefaultProductImageURL,
			SellerID:    users[0].ID,
		},
		{
			Title:       "Calculus Textbook - 8th Edition",
			Description: "Stewart Calculus textbook in good condition. No highlighting or writing inside.",
			Price:       45.00,
			Category:    "Books",
			Condition:   "Good",
			ImageURL:    models.DefaultProductImageURL,
			SellerID:    users[1].ID,
		},
		{
			Title:       "iPhone 12 - 128GB",
			Description: "Unlocked iPhone 12 in space gray. Minor scratches on back, screen is perfect.",
			Price:       450.00,
			Category:    "Electronics",
			Condition:   "Good",
			ImageURL:    models.DefaultProductImageURL,
			SellerID:    users[0].ID,
		},
		{
			Title:       "Desk Lamp - IKEA",
			Description: "White adjustable desk lamp from IKEA. Perfect for studying late nights.",
			Price:       15.00,
			Category:    "Furniture",
			Condition:   "Like New",
			ImageURL:    models.DefaultProductImageURL,
			SellerID:    users[2].ID,
		},
	}

	for i := range products {
		if err := db.FirstOrCreate(&products[i], models.Product{Title: products[i].Title}).Error; err != nil {
			log.Printf("Failed to seed product %s: %v", products[i].Title, err)
			return err
		}
	}

	return nil
}
