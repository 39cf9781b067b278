package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	productdomain "github.com/freshstock/freshstock/internal/product/domain"
)

func (s *Server) AddProduct(c *gin.Context) {
	var payload productdomain.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		AbortWithError(c, &productdomain.ValidationError{Field: "request", Message: "Invalid request body"})
		return
	}

	if _, err := s.productSvc.Create(c.Request.Context(), payload); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, statusResponse{Status: "success", Message: "Product added successfully!"})
}

func (s *Server) EditProduct(c *gin.Context) {
	id, err := productID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var payload productdomain.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		AbortWithError(c, &productdomain.ValidationError{Field: "request", Message: "Invalid request body"})
		return
	}

	if err := s.productSvc.Update(c.Request.Context(), id, payload); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, statusResponse{Status: "success", Message: "Product updated successfully!"})
}

func (s *Server) GetProducts(c *gin.Context) {
	items, err := s.productSvc.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (s *Server) GetCategories(c *gin.Context) {
	categories, err := s.productSvc.Categories(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (s *Server) DeleteProduct(c *gin.Context) {
	id, err := productID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.productSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, statusResponse{Status: "success", Message: "Product deleted successfully!"})
}

func productID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, &productdomain.ValidationError{Field: "id", Message: "Product id must be an integer"}
	}
	return id, nil
}
