package repository

import "time"

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   uint
	Search       string
	OnlyActive   bool
	WithCategory bool
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page        int
	PageSize    int
	UserID      uint
	Status      string
	OrderNo     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// CouponListFilter 查询优惠券列表的过滤条件
type CouponListFilter struct {
	Page     int
	PageSize int
	Code     string
	IsActive *bool
}

// AffiliateUserListFilter 查询推广账户列表的过滤条件
type AffiliateUserListFilter struct {
	Page     int
	PageSize int
	Status   string
	Search   string
}

// AffiliateOrderListFilter 查询推广订单列表的过滤条件
type AffiliateOrderListFilter struct {
	Page            int
	PageSize        int
	AffiliateUserID uint
	Status          string
	OrderNo         string
}

// WithdrawalListFilter 查询提现申请列表的过滤条件
type WithdrawalListFilter struct {
	Page            int
	PageSize        int
	AffiliateUserID uint
	Status          string
}

// TransactionListFilter 查询返利流水列表的过滤条件
type TransactionListFilter struct {
	Page            int
	PageSize        int
	AffiliateUserID uint
	Type            string
}
