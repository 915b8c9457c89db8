package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/cache"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/models"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/repository"

	"github.com/shopspring/decimal"
)

const productCacheTTL = 5 * time.Minute

func productCacheKey(slug string) string {
	return fmt.Sprintf("product:slug:%s", slug)
}

// ProductService 商品服务
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ProductInput 商品创建/更新输入
type ProductInput struct {
	CategoryID  uint
	Slug        string
	Name        string
	SKU         string
	Description string
	Price       models.Money
	Stock       int
	IsActive    *bool
	SortOrder   int
}

// GetBySlug 按 slug 获取上架商品，优先读缓存
func (s *ProductService) GetBySlug(slug string) (*models.Product, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrProductNotFound
	}

	var cached models.Product
	if hit, err := cache.GetJSON(context.Background(), productCacheKey(slug), &cached); err == nil && hit {
		if !cached.IsActive {
			return nil, ErrProductNotFound
		}
		return &cached, nil
	}

	product, err := s.productRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotFound
	}
	_ = cache.SetJSON(context.Background(), productCacheKey(slug), product, productCacheTTL)
	return product, nil
}

// List 商品列表
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

// Get 管理端获取商品
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create 管理端创建商品
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	product := &models.Product{
		CategoryID:  input.CategoryID,
		Slug:        strings.TrimSpace(input.Slug),
		Name:        strings.TrimSpace(input.Name),
		SKU:         strings.TrimSpace(input.SKU),
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		IsActive:    isActive,
		SortOrder:   input.SortOrder,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update 管理端更新商品
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if err := s.validateInput(input); err != nil {
		return nil, err
	}
	oldSlug := product.Slug

	product.CategoryID = input.CategoryID
	product.Slug = strings.TrimSpace(input.Slug)
	product.Name = strings.TrimSpace(input.Name)
	product.SKU = strings.TrimSpace(input.SKU)
	product.Description = input.Description
	product.Price = input.Price
	product.Stock = input.Stock
	product.SortOrder = input.SortOrder
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	_ = cache.Del(context.Background(), productCacheKey(oldSlug))
	if product.Slug != oldSlug {
		_ = cache.Del(context.Background(), productCacheKey(product.Slug))
	}
	return product, nil
}

// Delete 管理端删除商品
func (s *ProductService) Delete(id uint) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	_ = cache.Del(context.Background(), productCacheKey(product.Slug))
	return nil
}

func (s *ProductService) validateInput(input ProductInput) error {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Slug) == "" {
		return ErrProductInvalid
	}
	if input.Price.Decimal.LessThan(decimal.Zero) || input.Stock < 0 {
		return ErrProductInvalid
	}
	if input.CategoryID != 0 {
		category, err := s.categoryRepo.GetByID(input.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return ErrNotFound
		}
	}
	return nil
}
