package service

import (
	"context"

	"github.com/rafaelleal24/farejador/internal/core/domain"
	"github.com/rafaelleal24/farejador/internal/core/dto"
	"github.com/rafaelleal24/farejador/internal/core/logger"
	"github.com/rafaelleal24/farejador/internal/core/port"
	"github.com/rafaelleal24/farejador/internal/core/serviceerrors"
)

type ProductService struct {
	productRepository port.ProductPort
}

func NewProductService(productRepository port.ProductPort) *ProductService {
	return &ProductService{productRepository: productRepository}
}

func (s *ProductService) insertFromRequest(request *dto.SaveProductRequest) (domain.InsertProduct, error) {
	expiration, err := domain.ParseExpirationDate(request.ExpirationDate)
	if err != nil {
		return domain.InsertProduct{}, serviceerrors.NewInvalidRequestError(err.Error())
	}

	return domain.InsertProduct{
		OperatorName:   request.OperatorName,
		EANCode:        request.EANCode,
		Description:    request.Description,
		Quantity:       request.Quantity,
		QuantityType:   domain.QuantityType(request.QuantityType),
		ExpirationDate: expiration,
		ImageURL:       request.ImageURL,
	}, nil
}

func (s *ProductService) Register(ctx context.Context, request *dto.SaveProductRequest) (*domain.Product, error) {
	in, err := s.insertFromRequest(request)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepository.Save(ctx, in)
	if err != nil {
		logger.Error(ctx, "product: save failed", err, map[string]any{
			"ean_code": request.EANCode,
			"operator": request.OperatorName,
		})
		return nil, err
	}

	logger.Info(ctx, "Product registered", map[string]any{"product_id": product.ID})
	return product, nil
}

func (s *ProductService) GetAll(ctx context.Context) []domain.Product {
	return s.productRepository.GetAll(ctx)
}

func (s *ProductService) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	product, err := s.productRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, serviceerrors.NewNotFoundError("product not found")
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id domain.ID, request *dto.SaveProductRequest) (*domain.Product, error) {
	in, err := s.insertFromRequest(request)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepository.Update(ctx, id, in)
	if err != nil {
		logger.Error(ctx, "product: update failed", err, map[string]any{
			"product_id": id,
		})
		return nil, err
	}
	if product == nil {
		return nil, serviceerrors.NewNotFoundError("product not found")
	}

	logger.Info(ctx, "Product updated", map[string]any{"product_id": id})
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id domain.ID) error {
	removed, err := s.productRepository.Delete(ctx, id)
	if err != nil {
		logger.Error(ctx, "product: delete failed", err, map[string]any{
			"product_id": id,
		})
		return err
	}
	if !removed {
		return serviceerrors.NewNotFoundError("product not found")
	}

	logger.Info(ctx, "Product deleted", map[string]any{"product_id": id})
	return nil
}

// GetExpiringWithinDays returns the subset whose day delta against today in
// the reference timezone is at most days. Already expired products satisfy
// any non-negative threshold and are always included.
func (s *ProductService) GetExpiringWithinDays(ctx context.Context, days int) ([]domain.Product, error) {
	if days < 0 {
		return nil, serviceerrors.NewInvalidRequestError("days must not be negative")
	}
	return s.productRepository.GetExpiringWithinDays(ctx, days), nil
}
