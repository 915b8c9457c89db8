package service

import "errors"

// 通用错误
var (
	ErrNotFound     = errors.New("record not found")
	ErrUserDisabled = errors.New("user disabled")
)

// 账号错误
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// 地址错误
var (
	ErrAddressNotFound   = errors.New("address not found")
	ErrAddressIncomplete = errors.New("address incomplete")
)

// 商品与购物车错误
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductInvalid    = errors.New("product input invalid")
	ErrProductInactive   = errors.New("product inactive")
	ErrProductOutOfStock = errors.New("product out of stock")
	ErrQuantityInvalid   = errors.New("quantity invalid")
	ErrCartEmpty         = errors.New("cart is empty")
)

// 优惠券错误
var (
	ErrCouponInvalid     = errors.New("coupon invalid")
	ErrCouponNotFound    = errors.New("coupon not found")
	ErrCouponInactive    = errors.New("coupon inactive")
	ErrCouponNotStarted  = errors.New("coupon not started")
	ErrCouponExpired     = errors.New("coupon expired")
	ErrCouponUsageLimit  = errors.New("coupon usage limit reached")
	ErrCouponMinPurchase = errors.New("coupon minimum purchase not met")
)

// 订单错误
var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrPaymentMethodInvalid   = errors.New("payment method invalid")
	ErrInvalidStateTransition = errors.New("invalid order state transition")
)

// 推广返利错误
var (
	ErrAffiliateNotFound      = errors.New("affiliate account not found")
	ErrAffiliateExists        = errors.New("affiliate account already exists")
	ErrAffiliateNotActive     = errors.New("affiliate account not active")
	ErrAffiliateActionInvalid = errors.New("affiliate review action invalid")
	ErrAffiliateCodeExhausted = errors.New("affiliate code generation exhausted")
)

// 提现错误
var (
	ErrWithdrawalNotFound        = errors.New("withdrawal not found")
	ErrWithdrawalAmountInvalid   = errors.New("withdrawal amount invalid")
	ErrWithdrawalBelowMinimum    = errors.New("withdrawal below minimum amount")
	ErrWithdrawalInsufficient    = errors.New("withdrawal exceeds available balance")
	ErrWithdrawalStatusInvalid   = errors.New("withdrawal status does not allow this action")
	ErrWithdrawalDetailsRequired = errors.New("withdrawal payment details required")
)
