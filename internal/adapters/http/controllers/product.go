package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/farejador/internal/adapters/http/handlers"
	"github.com/rafaelleal24/farejador/internal/core/domain"
	"github.com/rafaelleal24/farejador/internal/core/dto"
	"github.com/rafaelleal24/farejador/internal/core/service"
	"github.com/rafaelleal24/farejador/internal/core/serviceerrors"
)

type ProductController struct {
	productService *service.ProductService
}

type ProductResponse struct {
	ID               string  `json:"id"`
	OperatorName     string  `json:"operatorName"`
	EANCode          string  `json:"eanCode"`
	Description      string  `json:"description"`
	Quantity         int     `json:"quantity"`
	QuantityType     string  `json:"quantityType"`
	ExpirationDate   string  `json:"expirationDate"`
	RegistrationDate string  `json:"registrationDate"`
	ImageURL         *string `json:"imageUrl,omitempty"`
	DaysUntilExpiry  int     `json:"daysUntilExpiry"`
	Urgency          string  `json:"urgency"`
}

func NewProductResponse(product *domain.Product, now time.Time) ProductResponse {
	days := domain.DaysUntilExpiry(now, product.ExpirationDate)
	return ProductResponse{
		ID:               string(product.ID),
		OperatorName:     product.OperatorName,
		EANCode:          product.EANCode,
		Description:      product.Description,
		Quantity:         product.Quantity,
		QuantityType:     string(product.QuantityType),
		ExpirationDate:   product.ExpirationDate.In(domain.ReferenceLocation()).Format(domain.ExpirationDateLayout),
		RegistrationDate: domain.FormatRegistrationStamp(product.RegistrationDate),
		ImageURL:         product.ImageURL,
		DaysUntilExpiry:  days,
		Urgency:          string(domain.ClassifyExpiration(days)),
	}
}

func newProductListResponse(products []domain.Product, now time.Time) []ProductResponse {
	response := make([]ProductResponse, len(products))
	for i := range products {
		response[i] = NewProductResponse(&products[i], now)
	}
	return response
}

func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

func (pc *ProductController) productID(c *gin.Context) (domain.ID, bool) {
	id := c.Param("id")
	if !domain.ValidateID(id) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("invalid product ID"))
		return "", false
	}
	return domain.ID(id), true
}

// Register godoc
// @Summary     Register a product
// @Description Registers a new perishable product; ID and registration date are assigned by the server
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       request body     dto.SaveProductRequest true "Product data"
// @Success     201     {object} ProductResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/products [post]
func (pc *ProductController) Register(c *gin.Context) {
	var request dto.SaveProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	product, err := pc.productService.Register(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewProductResponse(product, time.Now()))
}

// GetAll godoc
// @Summary     List all products
// @Description Returns every product in insertion order with its urgency classification
// @Tags        products
// @Produce     json
// @Success     200 {array} ProductResponse
// @Router      /api/v1/products [get]
func (pc *ProductController) GetAll(c *gin.Context) {
	products := pc.productService.GetAll(c.Request.Context())
	c.JSON(http.StatusOK, newProductListResponse(products, time.Now()))
}

// GetByID godoc
// @Summary     Get a product
// @Tags        products
// @Produce     json
// @Param       id  path     string true "Product ID"
// @Success     200 {object} ProductResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [get]
func (pc *ProductController) GetByID(c *gin.Context) {
	id, ok := pc.productID(c)
	if !ok {
		return
	}
	product, err := pc.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(product, time.Now()))
}

// Update godoc
// @Summary     Update a product
// @Description Replaces every caller-supplied field; ID and registration date are preserved
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id      path     string                 true "Product ID"
// @Param       request body     dto.SaveProductRequest true "Product data"
// @Success     200     {object} ProductResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [put]
func (pc *ProductController) Update(c *gin.Context) {
	id, ok := pc.productID(c)
	if !ok {
		return
	}
	var request dto.SaveProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	product, err := pc.productService.Update(c.Request.Context(), id, &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(product, time.Now()))
}

// Delete godoc
// @Summary     Delete a product
// @Tags        products
// @Param       id path string true "Product ID"
// @Success     204
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [delete]
func (pc *ProductController) Delete(c *gin.Context) {
	id, ok := pc.productID(c)
	if !ok {
		return
	}
	if err := pc.productService.Delete(c.Request.Context(), id); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetExpiring godoc
// @Summary     Scan for expiring products
// @Description Returns products expiring within the given number of days, already expired items included
// @Tags        products
// @Produce     json
// @Param       days query    int false "Day threshold" default(3)
// @Success     200  {array}  ProductResponse
// @Failure     400  {object} handlers.ErrorResponse
// @Router      /api/v1/expiring [get]
func (pc *ProductController) GetExpiring(c *gin.Context) {
	days := domain.DefaultExpiringWindowDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			handlers.HandleError(c, serviceerrors.NewInvalidRequestError("days must be an integer"))
			return
		}
		days = parsed
	}

	products, err := pc.productService.GetExpiringWithinDays(c.Request.Context(), days)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProductListResponse(products, time.Now()))
}
