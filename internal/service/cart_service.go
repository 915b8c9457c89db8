package service

import (
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/models"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/repository"
)

const cartMaxQuantityPerItem = 99

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// CartView 购物车视图
type CartView struct {
	Items  []models.CartItem `json:"items"`
	Totals Totals            `json:"totals"`
}

// List 获取用户购物车条目
func (s *CartService) List(userID uint) ([]models.CartItem, error) {
	if userID == 0 {
		return []models.CartItem{}, nil
	}
	return s.cartRepo.ListByUser(userID)
}

// SetItem 写入购物车条目（数量为增量后的绝对值）
func (s *CartService) SetItem(userID, productID uint, quantity int) (*models.CartItem, error) {
	if quantity <= 0 || quantity > cartMaxQuantityPerItem {
		return nil, ErrQuantityInvalid
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.IsActive {
		return nil, ErrProductInactive
	}
	if product.Stock < quantity {
		return nil, ErrProductOutOfStock
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.Upsert(item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem 删除购物车条目
func (s *CartService) RemoveItem(userID, productID uint) error {
	return s.cartRepo.DeleteByUserAndProduct(userID, productID)
}

// Clear 清空购物车
func (s *CartService) Clear(userID uint) error {
	return s.cartRepo.ClearByUser(userID)
}
