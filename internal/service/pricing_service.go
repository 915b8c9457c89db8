package service

import (
	"time"

	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/config"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/constants"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/models"

	"github.com/shopspring/decimal"
)

// PricingService 订单定价服务
// 税率与运费配置在构造时从字符串解析为 decimal，全程不经过浮点数。
type PricingService struct {
	taxRate               decimal.Decimal
	shippingFlatFee       decimal.Decimal
	freeShippingThreshold decimal.Decimal
}

// NewPricingService 创建定价服务
func NewPricingService(cfg config.ShopConfig) (*PricingService, error) {
	taxRate, err := decimal.NewFromString(cfg.TaxRate)
	if err != nil {
		return nil, err
	}
	flatFee, err := decimal.NewFromString(cfg.ShippingFlatFee)
	if err != nil {
		return nil, err
	}
	threshold, err := decimal.NewFromString(cfg.FreeShippingThreshold)
	if err != nil {
		return nil, err
	}
	return &PricingService{
		taxRate:               taxRate,
		shippingFlatFee:       flatFee,
		freeShippingThreshold: threshold,
	}, nil
}

// PricingLine 参与定价的商品行
type PricingLine struct {
	ProductID uint
	UnitPrice models.Money
	Quantity  int
}

// Totals 定价结果
type Totals struct {
	Subtotal models.Money `json:"subtotal"`
	Shipping models.Money `json:"shipping"`
	Tax      models.Money `json:"tax"`
	Discount models.Money `json:"discount"`
	Total    models.Money `json:"total"`
}

// ComputeTotals 计算订单各项金额
// 运费按小计是否达到包邮门槛取平价运费或 0；
// 税额 = 小计 × 税率，四舍五入保留 2 位（远离零方向）；
// 合计 = 小计 + 运费 + 税额 - 折扣，向下钳制到 0。
func (s *PricingService) ComputeTotals(lines []PricingLine, coupon *models.Coupon) (Totals, error) {
	subtotal := decimal.Zero
	for _, line := range lines {
		if line.Quantity <= 0 {
			return Totals{}, ErrQuantityInvalid
		}
		lineTotal := line.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity)))
		subtotal = subtotal.Add(lineTotal)
	}
	subtotal = subtotal.Round(2)

	shipping := s.shippingFlatFee
	if subtotal.GreaterThanOrEqual(s.freeShippingThreshold) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(s.taxRate).Round(2)

	discount := decimal.Zero
	if coupon != nil {
		if err := ValidateCoupon(coupon, subtotal, time.Now()); err != nil {
			return Totals{}, err
		}
		discount = couponDiscount(coupon, subtotal)
	}

	total := subtotal.Add(shipping).Add(tax).Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Totals{
		Subtotal: models.NewMoneyFromDecimal(subtotal),
		Shipping: models.NewMoneyFromDecimal(shipping),
		Tax:      models.NewMoneyFromDecimal(tax),
		Discount: models.NewMoneyFromDecimal(discount),
		Total:    models.NewMoneyFromDecimal(total),
	}, nil
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

// sumLineSubtotal 累加商品行小计
func sumLineSubtotal(lines []PricingLine) decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.UnitPrice.Decimal.Mul(decimalFromInt(line.Quantity)))
	}
	return subtotal.Round(2)
}

// couponDiscount 计算优惠券折扣金额（调用方需先校验通过）
func couponDiscount(coupon *models.Coupon, subtotal decimal.Decimal) decimal.Decimal {
	switch coupon.Type {
	case constants.CouponTypePercentage:
		return subtotal.Mul(coupon.Value.Decimal).Div(decimal.NewFromInt(100)).Round(2)
	case constants.CouponTypeFixed:
		value := coupon.Value.Decimal.Round(2)
		if value.GreaterThan(subtotal) {
			return subtotal
		}
		return value
	default:
		return decimal.Zero
	}
}
