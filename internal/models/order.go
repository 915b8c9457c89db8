package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表
// 金额字段与收货地址均为下单时的快照，创建后不再重算。
type Order struct {
	ID            uint           `gorm:"primarykey" json:"id"`                                       // 主键
	OrderNo       string         `gorm:"uniqueIndex;not null" json:"order_no"`                       // 订单编号
	UserID        uint           `gorm:"index;not null" json:"user_id"`                              // 用户ID
	Status        string         `gorm:"index;not null" json:"status"`                               // 订单状态
	PaymentStatus string         `gorm:"index;not null" json:"payment_status"`                       // 支付状态
	PaymentMethod string         `gorm:"type:varchar(30);not null" json:"payment_method"`            // 支付方式
	Currency      string         `gorm:"not null" json:"currency"`                                   // 币种
	Subtotal      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`      // 商品小计
	ShippingCost  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"shipping_cost"` // 运费
	Tax           Money          `gorm:"type:decimal(20,2);not null;default:0" json:"tax"`           // 税费
	Discount      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"discount"`      // 优惠金额
	Total         Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total"`         // 实付金额
	CouponCode    string         `gorm:"type:varchar(50)" json:"coupon_code,omitempty"`              // 优惠码快照
	AffiliateCode string         `gorm:"type:varchar(32);index" json:"affiliate_code,omitempty"`     // 推广码快照

	// 收货地址快照
	ShipFullName   string `gorm:"type:varchar(100)" json:"ship_full_name"`    // 收件人姓名
	ShipPhone      string `gorm:"type:varchar(30)" json:"ship_phone"`         // 联系电话
	ShipLine1      string `gorm:"type:varchar(255)" json:"ship_line1"`        // 地址行一
	ShipLine2      string `gorm:"type:varchar(255)" json:"ship_line2"`        // 地址行二
	ShipCity       string `gorm:"type:varchar(100)" json:"ship_city"`         // 城市
	ShipState      string `gorm:"type:varchar(100)" json:"ship_state"`        // 省/邦
	ShipPostalCode string `gorm:"type:varchar(20)" json:"ship_postal_code"`   // 邮编
	ShipCountry    string `gorm:"type:varchar(100)" json:"ship_country"`      // 国家

	ShippedAt   *time.Time     `gorm:"index" json:"shipped_at"`   // 发货时间
	DeliveredAt *time.Time     `gorm:"index" json:"delivered_at"` // 签收时间
	CancelledAt *time.Time     `gorm:"index" json:"cancelled_at"` // 取消时间
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`   // 创建时间
	UpdatedAt   time.Time      `gorm:"index" json:"updated_at"`   // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`            // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
