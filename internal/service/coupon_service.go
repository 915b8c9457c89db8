package service

import (
	"strings"
	"time"

	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/models"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/repository"

	"github.com/shopspring/decimal"
)

// CouponService 优惠券服务
type CouponService struct {
	couponRepo repository.CouponRepository
}

// NewCouponService 创建优惠券服务
func NewCouponService(couponRepo repository.CouponRepository) *CouponService {
	return &CouponService{couponRepo: couponRepo}
}

// Resolve 按优惠码查找并校验优惠券
// 提交了优惠码但校验失败时返回具体的哨兵错误，不做静默忽略。
func (s *CouponService) Resolve(code string, subtotal decimal.Decimal) (*models.Coupon, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(code))
	if trimmed == "" {
		return nil, ErrCouponInvalid
	}

	coupon, err := s.couponRepo.GetByCode(trimmed)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	if err := ValidateCoupon(coupon, subtotal, time.Now()); err != nil {
		return coupon, err
	}
	return coupon, nil
}

// ValidateCoupon 校验优惠券可用性
func ValidateCoupon(coupon *models.Coupon, subtotal decimal.Decimal, now time.Time) error {
	if coupon == nil {
		return ErrCouponNotFound
	}
	if !coupon.IsActive {
		return ErrCouponInactive
	}
	if coupon.ValidFrom != nil && now.Before(*coupon.ValidFrom) {
		return ErrCouponNotStarted
	}
	if coupon.ValidTo != nil && now.After(*coupon.ValidTo) {
		return ErrCouponExpired
	}
	if coupon.MaxUses > 0 && coupon.UsesCount >= coupon.MaxUses {
		return ErrCouponUsageLimit
	}
	if subtotal.LessThan(coupon.MinPurchase.Decimal) {
		return ErrCouponMinPurchase
	}
	return nil
}
