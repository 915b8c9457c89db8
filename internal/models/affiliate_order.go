package models

import (
	"time"

	"gorm.io/gorm"
)

// AffiliateOrder 推广订单
// CommissionRate 在创建时从计划复制，之后不再变化；
// 佣金只在 completed 状态入账一次。
type AffiliateOrder struct {
	ID               uint           `gorm:"primarykey" json:"id"`                                            // 主键
	AffiliateUserID  uint           `gorm:"index;not null" json:"affiliate_user_id"`                         // 推广账户ID
	OrderID          uint           `gorm:"uniqueIndex;not null" json:"order_id"`                            // 订单ID
	OrderNo          string         `gorm:"type:varchar(50);index" json:"order_no"`                          // 订单编号快照
	OrderAmount      Money          `gorm:"type:decimal(20,2);not null" json:"order_amount"`                 // 订单金额快照
	CommissionRate   Money          `gorm:"type:decimal(5,2);not null" json:"commission_rate"`               // 佣金比例快照（百分比）
	CommissionAmount Money          `gorm:"type:decimal(20,2);not null" json:"commission_amount"`            // 佣金金额
	Status           string         `gorm:"type:varchar(20);not null;index" json:"status"`                   // 状态
	CompletedAt      *time.Time     `gorm:"index" json:"completed_at"`                                       // 入账时间
	CreatedAt        time.Time      `gorm:"index" json:"created_at"`                                         // 创建时间
	UpdatedAt        time.Time      `gorm:"index" json:"updated_at"`                                         // 更新时间
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`                                                  // 软删除时间
}

// TableName 指定表名
func (AffiliateOrder) TableName() string {
	return "affiliate_orders"
}
