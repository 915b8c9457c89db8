package constants

// 订单状态常量
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
	OrderStatusRefunded   = "refunded"
)

// 支付状态常量
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// 支付方式常量
const (
	PaymentMethodCOD          = "cod"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodUPI          = "upi"
)

// 优惠券类型常量
const (
	CouponTypeFixed      = "fixed"
	CouponTypePercentage = "percentage"
)

// 推广返利账户状态常量
const (
	AffiliateStatusPending   = "pending"
	AffiliateStatusActive    = "active"
	AffiliateStatusSuspended = "suspended"
	AffiliateStatusRejected  = "rejected"
)

// 推广返利订单状态常量
const (
	AffiliateOrderStatusPending   = "pending"
	AffiliateOrderStatusConfirmed = "confirmed"
	AffiliateOrderStatusCompleted = "completed"
	AffiliateOrderStatusCancelled = "cancelled"
)

// 推广返利提现状态常量
const (
	WithdrawalStatusPending    = "pending"
	WithdrawalStatusApproved   = "approved"
	WithdrawalStatusProcessing = "processing"
	WithdrawalStatusPaid       = "paid"
	WithdrawalStatusRejected   = "rejected"
)

// 推广返利提现审核动作常量
const (
	WithdrawalActionApprove = "approve"
	WithdrawalActionProcess = "process"
	WithdrawalActionPay     = "pay"
	WithdrawalActionReject  = "reject"
)

// 返利流水类型常量
const (
	TransactionTypeEarning    = "earning"
	TransactionTypeWithdrawal = "withdrawal"
	TransactionTypeBonus      = "bonus"
	TransactionTypeDeduction  = "deduction"
)

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 队列常量
const (
	QueueDefault             = "default"
	TaskOrderCreatedEmail    = "email:order_created"
	TaskOrderStatusEmail     = "email:order_status"
	TaskAffiliateStatusEmail = "email:affiliate_status"
	TaskWithdrawalEmail      = "email:withdrawal_status"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "es"
)

// 推广追踪常量
const (
	AffiliateRefQueryParam = "ref"
	AffiliateCodePrefix    = "ES-"
)

// 订单号前缀常量
const (
	OrderNoPrefix = "ES"
)

// 币种常量
const (
	SiteCurrencyDefault = "INR"
)
