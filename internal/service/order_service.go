package service

import (
	"crypto/rand"
	"math/big"
	"strings"
	"time"

	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/constants"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/models"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/repository"

	"gorm.io/gorm"
)

const orderNoRandomDigits = 6

// allowedTransitions 订单状态机
// delivered 与 cancelled/refunded 之外的状态均可被取消；
// 只有 delivered 可以进入 refunded。
var allowedTransitions = map[string]map[string]bool{
	constants.OrderStatusPending: {
		constants.OrderStatusProcessing: true,
		constants.OrderStatusCancelled:  true,
	},
	constants.OrderStatusProcessing: {
		constants.OrderStatusShipped:   true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusShipped: {
		constants.OrderStatusDelivered: true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusDelivered: {
		constants.OrderStatusRefunded: true,
	},
	constants.OrderStatusCancelled: {},
	constants.OrderStatusRefunded:  {},
}

// OrderService 订单服务
type OrderService struct {
	orderRepo        repository.OrderRepository
	cartRepo         repository.CartRepository
	productRepo      repository.ProductRepository
	couponRepo       repository.CouponRepository
	addressRepo      repository.AddressRepository
	pricingService   *PricingService
	couponService    *CouponService
	affiliateService *AffiliateService
	currency         string
}

// NewOrderService 创建订单服务
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	couponRepo repository.CouponRepository,
	addressRepo repository.AddressRepository,
	pricingService *PricingService,
	couponService *CouponService,
	affiliateService *AffiliateService,
	currency string,
) *OrderService {
	if strings.TrimSpace(currency) == "" {
		currency = constants.SiteCurrencyDefault
	}
	return &OrderService{
		orderRepo:        orderRepo,
		cartRepo:         cartRepo,
		productRepo:      productRepo,
		couponRepo:       couponRepo,
		addressRepo:      addressRepo,
		pricingService:   pricingService,
		couponService:    couponService,
		affiliateService: affiliateService,
		currency:         currency,
	}
}

// CreateOrderInput 创建订单输入
type CreateOrderInput struct {
	AddressID     uint
	PaymentMethod string
	CouponCode    string
	AffiliateCode string
}

// CreateOrder 从购物车创建订单
// 地址先于其他校验；订单、订单项、优惠券计数、推广订单与清空购物车
// 在同一事务内完成，任一失败整体回滚且购物车保持原样。
func (s *OrderService) CreateOrder(userID uint, input CreateOrderInput) (*models.Order, []Event, error) {
	address, err := s.addressRepo.GetByIDAndUser(input.AddressID, userID)
	if err != nil {
		return nil, nil, err
	}
	if address == nil {
		return nil, nil, ErrAddressNotFound
	}
	if !address.IsComplete() {
		return nil, nil, ErrAddressIncomplete
	}

	if !isSupportedPaymentMethod(input.PaymentMethod) {
		return nil, nil, ErrPaymentMethodInvalid
	}

	cartItems, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, nil, err
	}
	if len(cartItems) == 0 {
		return nil, nil, ErrCartEmpty
	}

	lines := make([]PricingLine, 0, len(cartItems))
	orderItems := make([]models.OrderItem, 0, len(cartItems))
	for _, item := range cartItems {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, nil, err
		}
		if product == nil {
			return nil, nil, ErrProductNotFound
		}
		if !product.IsActive {
			return nil, nil, ErrProductInactive
		}
		if product.Stock < item.Quantity {
			return nil, nil, ErrProductOutOfStock
		}
		lines = append(lines, PricingLine{
			ProductID: product.ID,
			UnitPrice: product.Price,
			Quantity:  item.Quantity,
		})
		lineTotal := product.Price.Decimal.Mul(decimalFromInt(item.Quantity))
		orderItems = append(orderItems, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			ProductSKU:  product.SKU,
			UnitPrice:   product.Price,
			Quantity:    item.Quantity,
			LineTotal:   models.NewMoneyFromDecimal(lineTotal),
		})
	}

	var coupon *models.Coupon
	if strings.TrimSpace(input.CouponCode) != "" {
		subtotal := sumLineSubtotal(lines)
		coupon, err = s.couponService.Resolve(input.CouponCode, subtotal)
		if err != nil {
			return nil, nil, err
		}
	}

	totals, err := s.pricingService.ComputeTotals(lines, coupon)
	if err != nil {
		return nil, nil, err
	}

	// 未知或停用的推广码静默忽略，不阻断下单。
	var affiliate *models.AffiliateUser
	if code := normalizeAffiliateCode(input.AffiliateCode); code != "" {
		affiliate, err = s.affiliateService.ResolveActiveByCode(code)
		if err != nil {
			return nil, nil, err
		}
		if affiliate != nil && affiliate.UserID == userID {
			affiliate = nil
		}
	}

	orderNo, err := generateOrderNo()
	if err != nil {
		return nil, nil, err
	}

	order := &models.Order{
		OrderNo:        orderNo,
		UserID:         userID,
		Status:         constants.OrderStatusPending,
		PaymentStatus:  constants.PaymentStatusPending,
		PaymentMethod:  input.PaymentMethod,
		Currency:       s.currency,
		Subtotal:       totals.Subtotal,
		ShippingCost:   totals.Shipping,
		Tax:            totals.Tax,
		Discount:       totals.Discount,
		Total:          totals.Total,
		ShipFullName:   address.FullName,
		ShipPhone:      address.Phone,
		ShipLine1:      address.Line1,
		ShipLine2:      address.Line2,
		ShipCity:       address.City,
		ShipState:      address.State,
		ShipPostalCode: address.PostalCode,
		ShipCountry:    address.Country,
	}
	if coupon != nil {
		order.CouponCode = coupon.Code
	}
	if affiliate != nil {
		order.AffiliateCode = affiliate.Code
	}

	err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order, orderItems); err != nil {
			return err
		}
		if coupon != nil {
			if err := claimCouponUse(s.couponRepo.WithTx(tx), coupon.ID); err != nil {
				return err
			}
		}
		if affiliate != nil {
			if err := s.affiliateService.CreateOrderTx(tx, affiliate, order); err != nil {
				return err
			}
		}
		return s.cartRepo.WithTx(tx).ClearByUser(userID)
	})
	if err != nil {
		return nil, nil, err
	}

	created, err := s.orderRepo.GetByID(order.ID)
	if err != nil {
		return nil, nil, err
	}
	if created == nil {
		created = order
	}

	events := []Event{{
		Task:    constants.TaskOrderCreatedEmail,
		OrderID: created.ID,
		UserID:  userID,
	}}
	return created, events, nil
}

// PreviewTotals 结算前预览金额（不创建订单）
func (s *OrderService) PreviewTotals(userID uint, couponCode string) (Totals, error) {
	cartItems, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return Totals{}, err
	}
	if len(cartItems) == 0 {
		return Totals{}, ErrCartEmpty
	}

	lines := make([]PricingLine, 0, len(cartItems))
	for _, item := range cartItems {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return Totals{}, err
		}
		if product == nil || !product.IsActive {
			return Totals{}, ErrProductNotFound
		}
		lines = append(lines, PricingLine{
			ProductID: product.ID,
			UnitPrice: product.Price,
			Quantity:  item.Quantity,
		})
	}

	var coupon *models.Coupon
	if strings.TrimSpace(couponCode) != "" {
		coupon, err = s.couponService.Resolve(couponCode, sumLineSubtotal(lines))
		if err != nil {
			return Totals{}, err
		}
	}
	return s.pricingService.ComputeTotals(lines, coupon)
}

// UpdateStatus 管理端推进订单状态
// 非法流转返回 ErrInvalidStateTransition；金额字段创建后不再改动。
func (s *OrderService) UpdateStatus(orderID uint, next string) (*models.Order, []Event, error) {
	next = strings.ToLower(strings.TrimSpace(next))
	if _, ok := allowedTransitions[next]; !ok {
		return nil, nil, ErrInvalidStateTransition
	}

	err := s.orderRepo.Transaction(func(tx *gorm.DB) error {
		repoTx := s.orderRepo.WithTx(tx)
		order, err := repoTx.GetByIDForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		if !allowedTransitions[order.Status][next] {
			return ErrInvalidStateTransition
		}

		now := time.Now()
		updates := map[string]interface{}{}
		switch next {
		case constants.OrderStatusProcessing:
			updates["payment_status"] = constants.PaymentStatusPaid
			if err := s.affiliateService.ConfirmOrderTx(tx, order.ID); err != nil {
				return err
			}
		case constants.OrderStatusShipped:
			updates["shipped_at"] = now
		case constants.OrderStatusDelivered:
			updates["delivered_at"] = now
			if err := s.affiliateService.CompleteOrderTx(tx, order.ID); err != nil {
				return err
			}
		case constants.OrderStatusCancelled:
			updates["cancelled_at"] = now
			if err := s.affiliateService.CancelOrderTx(tx, order.ID); err != nil {
				return err
			}
		case constants.OrderStatusRefunded:
			updates["payment_status"] = constants.PaymentStatusRefunded
		}
		return repoTx.UpdateStatus(order.ID, next, updates)
	})
	if err != nil {
		return nil, nil, err
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, nil, err
	}
	events := []Event{{
		Task:    constants.TaskOrderStatusEmail,
		OrderID: orderID,
		Status:  next,
	}}
	return order, events, nil
}

// CancelByUser 用户取消自己的待支付订单
func (s *OrderService) CancelByUser(userID, orderID uint) (*models.Order, []Event, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, nil, err
	}
	if order == nil {
		return nil, nil, ErrOrderNotFound
	}
	if order.Status != constants.OrderStatusPending {
		return nil, nil, ErrInvalidStateTransition
	}
	return s.UpdateStatus(orderID, constants.OrderStatusCancelled)
}

// GetUserOrder 获取用户订单详情
func (s *OrderService) GetUserOrder(userID, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetUserOrderByNo 按订单号获取用户订单详情
func (s *OrderService) GetUserOrderByNo(userID uint, orderNo string) (*models.Order, error) {
	order, err := s.orderRepo.GetByOrderNoAndUser(strings.TrimSpace(orderNo), userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListUserOrders 用户订单列表
func (s *OrderService) ListUserOrders(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListByUser(filter)
}

// ListAdminOrders 管理端订单列表
func (s *OrderService) ListAdminOrders(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListAdmin(filter)
}

// GetAdminOrder 管理端订单详情
func (s *OrderService) GetAdminOrder(orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// claimCouponUse 事务内加锁复核使用上限后占用一次使用次数。
// 结算前的校验读到的是快照，并发下单必须在锁内重新核对上限。
func claimCouponUse(couponRepo repository.CouponRepository, couponID uint) error {
	coupon, err := couponRepo.GetByIDForUpdate(couponID)
	if err != nil {
		return err
	}
	if coupon == nil {
		return ErrCouponNotFound
	}
	if coupon.MaxUses > 0 && coupon.UsesCount >= coupon.MaxUses {
		return ErrCouponUsageLimit
	}
	return couponRepo.IncrementUsesCount(couponID, 1)
}

func isSupportedPaymentMethod(method string) bool {
	switch method {
	case constants.PaymentMethodCOD, constants.PaymentMethodBankTransfer, constants.PaymentMethodUPI:
		return true
	}
	return false
}

// generateOrderNo 生成订单编号：前缀 + 秒级时间戳 + 随机数字
func generateOrderNo() (string, error) {
	var builder strings.Builder
	builder.WriteString(constants.OrderNoPrefix)
	builder.WriteString(time.Now().Format("20060102150405"))
	max := big.NewInt(10)
	for i := 0; i < orderNoRandomDigits; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		builder.WriteByte(byte('0' + n.Int64()))
	}
	return builder.String(), nil
}
