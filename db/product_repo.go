package db

import (
	"log"

	"github.com/campustech/marketplace/models"
	"gorm.io/gorm"
)

// ProductPageSize is the fixed browse page size.
const ProductPageSize = 8

type ProductRepository interface {
	CreateProduct(product *models.Product) (*models.Product, error)
	GetProducts(filter models.ProductFilter, page int) ([]models.Product, int64, error)
	GetProductByID(id uint) (*models.Product, error)
	GetProductsBySellerID(sellerID uint) ([]models.Product, error)
	GetCategories() ([]string, error)
	SetProductAvailability(id uint, available bool) error
}

type productRepo struct {
	DB *gorm.DB
}

func NewProductRepo(db *GormDB) ProductRepository {
	return &productRepo{db.DB}
}

func (p *productRepo) CreateProduct(product *models.Product) (*models.Product, error) {
	result := p.DB.Create(product)
	if result.Error != nil {
		log.Printf("CreateProduct error: %v", result.Error)
		return nil, result.Error
	}
	return product, nil
}

// GetProducts returns one page of available listings matching the filter,
// newest first, plus the total count across all pages.
func (p *productRepo) GetProducts(filter models.ProductFilter, page int) ([]models.Product, int64, error) {
	if page < 1 {
		page = 1
	}

	query := p.DB.Model(&models.Product{}).Where("is_available = ?", true)
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	offset := (page - 1) * ProductPageSize
	err := query.
		Order("created_at DESC").
		Limit(ProductPageSize).
		Offset(offset).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (p *productRepo) GetProductByID(id uint) (*models.Product, error) {
	var product models.Product
	err := p.DB.Where("id = ?", id).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (p *productRepo) GetProductsBySellerID(sellerID uint) ([]models.Product, error) {
	var products []models.Product
	err := p.DB.Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetCategories enumerates the categories in use by any listing, available
// or not, matching the browse sidebar of the original UI.
func (p *productRepo) GetCategories() ([]string, error) {
	var categories []string
	err := p.DB.Model(&models.Product{}).
		Distinct().
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (p *productRepo) SetProductAvailability(id uint, available bool) error {
	result := p.DB.Model(&models.Product{}).Where("id = ?", id).Update("is_available", available)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
