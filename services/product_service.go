package services

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/leebenson/conform"
	"gorm.io/gorm"

	"github.com/campustech/marketplace/config"
	"github.com/campustech/marketplace/db"
	apiError "github.com/campustech/marketplace/errors"
	"github.com/campustech/marketplace/models"
)

type ProductService interface {
	CreateProduct(sellerID uint, request *models.CreateProductRequest) (*models.Product, *apiError.Error)
	GetProducts(filter models.ProductFilter, page int) (*models.ProductPage, error)
	GetProductByID(id uint) (*models.Product, *apiError.Error)
	GetProductsBySellerID(sellerID uint) ([]models.Product, error)
	GetCategories() ([]string, error)
}

type productService struct {
	Config      *config.Config
	productRepo db.ProductRepository
}

func NewProductService(productRepo db.ProductRepository, conf *config.Config) ProductService {
	return &productService{
		Config:      conf,
		productRepo: productRepo,
	}
}

// CreateProduct validates the sell form and stores the listing for the
// session user.
func (p *productService) CreateProduct(sellerID uint, request *models.CreateProductRequest) (*models.Product, *apiError.Error) {
	if err := conform.Strings(request); err != nil {
		log.Printf("CreateProduct conform error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	if request.Title == "" || request.Description == "" || request.Price == "" ||
		request.Category == "" || request.Condition == "" {
		return nil, apiError.New("Please fill in all required fields.", http.StatusBadRequest)
	}

	price, err := strconv.ParseFloat(request.Price, 64)
	if err != nil || price <= 0 {
		return nil, apiError.New("Please enter a valid price.", http.StatusBadRequest)
	}

	imageURL := request.ImageURL
	if imageURL == "" {
		imageURL = models.DefaultProductImageURL
	}

	product := &models.Product{
		Title:       request.Title,
		Description: request.Description,
		Price:       price,
		Category:    request.Category,
		Condition:   request.Condition,
		ImageURL:    imageURL,
		SellerID:    sellerID,
		IsAvailable: true,
	}

	createdProduct, err := p.productRepo.CreateProduct(product)
	if err != nil {
		log.Printf("CreateProduct error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	return createdProduct, nil
}

// GetProducts returns one browse page plus the page count for the
// pagination controls.
func (p *productService) GetProducts(filter models.ProductFilter, page int) (*models.ProductPage, error) {
	if page < 1 {
		page = 1
	}

	products, total, err := p.productRepo.GetProducts(filter, page)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + db.ProductPageSize - 1) / db.ProductPageSize)

	return &models.ProductPage{
		Products:   products,
		Page:       page,
		TotalPages: totalPages,
		TotalCount: total,
	}, nil
}

func (p *productService) GetProductByID(id uint) (*models.Product, *apiError.Error) {
	product, err := p.productRepo.GetProductByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.ErrProductNotFound
		}
		log.Printf("GetProductByID error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return product, nil
}

func (p *productService) GetProductsBySellerID(sellerID uint) ([]models.Product, error) {
	return p.productRepo.GetProductsBySellerID(sellerID)
}

func (p *productService) GetCategories() ([]string, error) {
	return p.productRepo.GetCategories()
}
