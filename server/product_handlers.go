package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campustech/marketplace/errors"
	"github.com/campustech/marketplace/models"
	"github.com/campustech/marketplace/server/response"
)

const DefaultPage = 1

// handleGetProducts is the browse page: available products, newest first,
// optionally narrowed by category and search term.
func (s *Server) handleGetProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		page := getPageFromQuery(c)

		filter := models.ProductFilter{
			Category: c.Query("category"),
			Search:   c.Query("search"),
		}

		productPage, err := s.ProductService.GetProducts(filter, page)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}

		categories, err := s.ProductService.GetCategories()
		if err != nil {
			response.HandleErrors(c, err)
			return
		}

		response.JSON(c, "products retrieved successfully", http.StatusOK, gin.H{
			"products":    productPage.Products,
			"page":        productPage.Page,
			"total_pages": productPage.TotalPages,
			"total_count": productPage.TotalCount,
			"categories":  categories,
		}, nil)
	}
}

func (s *Server) handleGetProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			response.JSON(c, "", errors.ErrProductNotFound.Status, nil, errors.ErrProductNotFound)
			return
		}

		product, apiErr := s.ProductService.GetProductByID(uint(productID))
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}
		response.JSON(c, "product retrieved successfully", http.StatusOK, product, nil)
	}
}

func (s *Server) handleGetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := s.ProductService.GetCategories()
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "categories retrieved successfully", http.StatusOK, categories, nil)
	}
}

func (s *Server) handleSellProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, apiErr := GetUserFromContext(c)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		var createRequest models.CreateProductRequest
		if err := decode(c, &createRequest); err != nil {
			response.JSON(c, "", errors.ErrBadRequest.Status, nil, err)
			return
		}

		product, apiErr := s.ProductService.CreateProduct(user.ID, &createRequest)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}
		response.JSON(c, "Product listed successfully!", http.StatusCreated, product, nil)
	}
}

// handleSellForm describes the listing form for API clients.
func (s *Server) handleSellForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := s.ProductService.GetCategories()
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "sell", http.StatusOK, gin.H{
			"fields":     []string{"title", "description", "price", "image_url", "category", "condition"},
			"categories": categories,
		}, nil)
	}
}

func (s *Server) handleMyProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, apiErr := GetUserFromContext(c)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		products, err := s.ProductService.GetProductsBySellerID(user.ID)
		if err != nil {
			response.HandleErrors(c, err)
			return
		}
		response.JSON(c, "products retrieved successfully", http.StatusOK, products, nil)
	}
}

// getPageFromQuery falls back to the first page when the query value is
// missing or not a positive integer.
func getPageFromQuery(c *gin.Context) int {
	pageStr := c.Query("page")
	if pageStr == "" {
		return DefaultPage
	}

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return DefaultPage
	}

	return page
}
