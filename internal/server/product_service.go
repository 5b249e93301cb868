// file: internal/server/product_service.go
// version: 1.1.0
// guid: d3bc8abb-211b-4291-9f06-16c84c26e241

package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/beanhaus/beanfinder/internal/database"
	"github.com/beanhaus/beanfinder/internal/models"
)

// listProducts returns the catalog, optionally filtered by category.
// GET /api/v1/products?category=blend&limit=50&offset=0
func (s *Server) listProducts(c *gin.Context) {
	limit := parseLimit(c, 50, 500)
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	category := strings.TrimSpace(c.Query("category"))

	products, err := s.store.GetAllProducts()
	if err != nil {
		RespondWithInternalError(c, err)
		return
	}
	if category != "" {
		filtered := products[:0:0]
		for i := range products {
			if strings.EqualFold(products[i].Category, category) {
				filtered = append(filtered, products[i])
			}
		}
		products = filtered
	}

	total := len(products)
	if offset > total {
		offset = total
	}
	end := min(offset+limit, total)
	page := products[offset:end]
	// Ensure we never return null - always return empty array
	if page == nil {
		page = []models.Product{}
	}

	c.JSON(http.StatusOK, ListResponse{
		Items:  page,
		Count:  len(page),
		Limit:  limit,
		Offset: offset,
		Total:  total,
	})
}

// getProduct fetches one product by ULID.
func (s *Server) getProduct(c *gin.Context) {
	product, err := s.store.GetProductByID(c.Param("id"))
	if errors.Is(err, database.ErrNotFound) {
		RespondWithNotFound(c, "product", c.Param("id"))
		return
	}
	if err != nil {
		RespondWithInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, ItemResponse{Data: product})
}

// createProduct stores a new catalog entry and refreshes the snapshot.
func (s *Server) createProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		RespondWithBadRequest(c, "invalid product payload: "+err.Error())
		return
	}
	if err := ValidateProduct(&product); err != nil {
		ve := err.(ValidationError)
		RespondWithValidationError(c, ve.Field, ve.Message)
		return
	}

	created, err := s.store.CreateProduct(&product)
	if err != nil {
		RespondWithInternalError(c, err)
		return
	}
	if err := s.RefreshSnapshot(); err != nil {
		RespondWithInternalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CreateResponse{ID: created.ID, Data: created})
}

// updateProduct replaces a catalog entry and refreshes the snapshot.
func (s *Server) updateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		RespondWithBadRequest(c, "invalid product payload: "+err.Error())
		return
	}
	if err := ValidateProduct(&product); err != nil {
		ve := err.(ValidationError)
		RespondWithValidationError(c, ve.Field, ve.Message)
		return
	}

	updated, err := s.store.UpdateProduct(c.Param("id"), &product)
	if errors.Is(err, database.ErrNotFound) {
		RespondWithNotFound(c, "product", c.Param("id"))
		return
	}
	if err != nil {
		RespondWithInternalError(c, err)
		return
	}
	if err := s.RefreshSnapshot(); err != nil {
		RespondWithInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, ItemResponse{Data: updated})
}

// deleteProduct removes a catalog entry and refreshes the snapshot.
func (s *Server) deleteProduct(c *gin.Context) {
	id := c.Param("id")
	err := s.store.DeleteProduct(id)
	if errors.Is(err, database.ErrNotFound) {
		RespondWithNotFound(c, "product", id)
		return
	}
	if err != nil {
		RespondWithInternalError(c, err)
		return
	}
	if err := s.RefreshSnapshot(); err != nil {
		RespondWithInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, DeleteResponse{Deleted: true, ID: id})
}

// countProducts returns the catalog size.
func (s *Server) countProducts(c *gin.Context) {
	count, err := s.store.CountProducts()
	if err != nil {
		RespondWithInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// listTopRated returns the best-rated products.
// GET /api/v1/products/top-rated?limit=10
func (s *Server) listTopRated(c *gin.Context) {
	limit := parseLimit(c, 10, 100)
	products, err := s.store.GetTopRated(limit)
	if err != nil {
		RespondWithInternalError(c, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, ListResponse{Items: products, Count: len(products), Limit: limit})
}

// listCategories returns the distinct catalog categories.
func (s *Server) listCategories(c *gin.Context) {
	categories, err := s.store.GetCategories()
	if err != nil {
		RespondWithInternalError(c, err)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	c.JSON(http.StatusOK, ListResponse{Items: categories, Count: len(categories)})
}
