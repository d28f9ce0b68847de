package service

import (
	"context"
	"time"

	"github.com/marquee-live/backoffice/internal/model"
	"github.com/marquee-live/backoffice/internal/model/types"
	"github.com/marquee-live/backoffice/internal/repo"
)

type Product struct {
	ProductRepo *repo.Product
}

func NewProduct(productRepo *repo.Product) *Product {
	return &Product{ProductRepo: productRepo}
}

func (s *Product) GetProducts(ctx context.Context, orgID int) ([]*model.Product, error) {
	return s.ProductRepo.GetProducts(ctx, orgID)
}

func (s *Product) GetProductByID(ctx context.Context, orgID, productID int) (*model.Product, error) {
	return s.ProductRepo.GetProductByID(ctx, orgID, productID)
}

func (s *Product) CreateProduct(ctx context.Context, orgID int, req *types.ProductRequest) (*model.Product, error) {
	now := time.Now()
	product := &model.Product{
		OrgID:       orgID,
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		ImageURL:    req.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.ProductRepo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *Product) UpdateProduct(ctx context.Context, orgID, productID int, req *types.ProductRequest) (*model.Product, error) {
	product := &model.Product{
		ProductID:   productID,
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		ImageURL:    req.ImageURL,
		UpdatedAt:   time.Now(),
	}
	if err := s.ProductRepo.UpdateProduct(ctx, orgID, product); err != nil {
		return nil, err
	}
	return s.ProductRepo.GetProductByID(ctx, orgID, productID)
}

func (s *Product) DeleteProduct(ctx context.Context, orgID, productID int) error {
	return s.ProductRepo.DeleteProduct(ctx, orgID, productID)
}
