package models

// DefaultProductImageURL is used when a listing is created without an
// image URL.
const DefaultProductImageURL = "/placeholder.svg?height=300&width=300"

// Product is a marketplace listing owned by a single seller.
type Product struct {
	Model
	Title       string  `json:"title" gorm:"size:200;not null"`
	Description string  `json:"description" gorm:"type:text;not null"`
	Price       float64 `json:"price" gorm:"not null"`
	ImageURL    string  `json:"image_url" gorm:"size:200"`
	Category    string  `json:"category" gorm:"size:50;not null;index"`
	Condition   string  `json:"condition" gorm:"size:20;not null"`
	SellerID    uint    `json:"seller_id" gorm:"not null;index"`
	Seller      User    `json:"seller" gorm:"foreignKey:SellerID"`
	IsAvailable bool    `json:"is_available" gorm:"default:true"`
}

// CreateProductRequest carries the sell form fields. Price arrives as the
// raw form string and is parsed and validated server-side.
type CreateProductRequest struct {
	Title       string `json:"title" conform:"trim"`
	Description string `json:"description" conform:"trim"`
	Price       string `json:"price" conform:"trim"`
	Category    string `json:"category" conform:"trim"`
	Condition   string `json:"condition" conform:"trim"`
	ImageURL    string `json:"image_url" conform:"trim"`
}

// ProductFilter narrows a browse query. Zero values mean "no filter".
type ProductFilter struct {
	Category string
	Search   string
}

// ProductPage is one page of browse results plus the pagination controls.
type ProductPage struct {
	Products   []Product `json:"products"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
	TotalCount int64     `json:"total_count"`
}
