package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/farejador/internal/adapters/http/handlers"
	"github.com/rafaelleal24/farejador/internal/core/domain"
	"github.com/rafaelleal24/farejador/internal/core/service"
)

type LookupController struct {
	lookupService *service.LookupService
}

type LookupResponse struct {
	EANCode     string  `json:"eanCode"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

func NewLookupResponse(result *domain.LookupResult) LookupResponse {
	return LookupResponse{
		EANCode:     result.EANCode,
		Description: result.Description,
		ImageURL:    result.ImageURL,
	}
}

func NewLookupController(lookupService *service.LookupService) *LookupController {
	return &LookupController{lookupService: lookupService}
}

// Lookup godoc
// @Summary     Look up a barcode
// @Description Resolves an EAN code against the remote product catalog
// @Tags        lookup
// @Produce     json
// @Param       ean path     string true "EAN code"
// @Success     200 {object} LookupResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/lookup/{ean} [get]
func (lc *LookupController) Lookup(c *gin.Context) {
	result, err := lc.lookupService.Lookup(c.Request.Context(), c.Param("ean"))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewLookupResponse(result))
}
