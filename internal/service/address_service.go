package service

import (
	"strings"

	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/models"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/repository"
)

// AddressService 收货地址服务
type AddressService struct {
	addressRepo repository.AddressRepository
}

// NewAddressService 创建地址服务
func NewAddressService(addressRepo repository.AddressRepository) *AddressService {
	return &AddressService{addressRepo: addressRepo}
}

// AddressInput 创建/更新地址输入
type AddressInput struct {
	FullName   string
	Phone      string
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
	IsDefault  bool
}

// List 用户地址列表
func (s *AddressService) List(userID uint) ([]models.Address, error) {
	return s.addressRepo.ListByUser(userID)
}

// Get 获取用户地址
func (s *AddressService) Get(userID, id uint) (*models.Address, error) {
	address, err := s.addressRepo.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, ErrAddressNotFound
	}
	return address, nil
}

// Create 新增地址
func (s *AddressService) Create(userID uint, input AddressInput) (*models.Address, error) {
	address := buildAddress(userID, input)
	if !address.IsComplete() {
		return nil, ErrAddressIncomplete
	}
	if address.IsDefault {
		if err := s.addressRepo.ClearDefaultByUser(userID); err != nil {
			return nil, err
		}
	}
	if err := s.addressRepo.Create(address); err != nil {
		return nil, err
	}
	return address, nil
}

// Update 更新地址
func (s *AddressService) Update(userID, id uint, input AddressInput) (*models.Address, error) {
	address, err := s.addressRepo.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, ErrAddressNotFound
	}

	updated := buildAddress(userID, input)
	updated.ID = address.ID
	updated.CreatedAt = address.CreatedAt
	if !updated.IsComplete() {
		return nil, ErrAddressIncomplete
	}
	if updated.IsDefault && !address.IsDefault {
		if err := s.addressRepo.ClearDefaultByUser(userID); err != nil {
			return nil, err
		}
	}
	if err := s.addressRepo.Update(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete 删除地址
func (s *AddressService) Delete(userID, id uint) error {
	address, err := s.addressRepo.GetByIDAndUser(id, userID)
	if err != nil {
		return err
	}
	if address == nil {
		return ErrAddressNotFound
	}
	return s.addressRepo.Delete(id, userID)
}

func buildAddress(userID uint, input AddressInput) *models.Address {
	country := strings.TrimSpace(input.Country)
	if country == "" {
		country = "India"
	}
	return &models.Address{
		UserID:     userID,
		FullName:   strings.TrimSpace(input.FullName),
		Phone:      strings.TrimSpace(input.Phone),
		Line1:      strings.TrimSpace(input.Line1),
		Line2:      strings.TrimSpace(input.Line2),
		City:       strings.TrimSpace(input.City),
		State:      strings.TrimSpace(input.State),
		PostalCode: strings.TrimSpace(input.PostalCode),
		Country:    country,
		IsDefault:  input.IsDefault,
	}
}
