package models

import (
	"time"

	"gorm.io/gorm"
)

// AffiliateProgram 推广返利计划
// 创建推广订单时从当前计划复制佣金比例，计划后续调整不影响已生成的订单。
type AffiliateProgram struct {
	ID             uint           `gorm:"primarykey" json:"id"`                                        // 主键
	Name           string         `gorm:"type:varchar(100);not null" json:"name"`                      // 计划名称
	CommissionRate Money          `gorm:"type:decimal(5,2);not null" json:"commission_rate"`           // 佣金比例（百分比）
	MinWithdrawal  Money          `gorm:"type:decimal(20,2);not null" json:"min_withdrawal"`           // 最低提现金额
	CookieDays     int            `gorm:"not null;default:30" json:"cookie_days"`                      // 推广归因窗口（天）
	IsActive       bool           `gorm:"not null;default:true;index" json:"is_active"`                // 是否启用
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`                                     // 创建时间
	UpdatedAt      time.Time      `gorm:"index" json:"updated_at"`                                     // 更新时间
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`                                              // 软删除时间
}

// TableName 指定表名
func (AffiliateProgram) TableName() string {
	return "affiliate_programs"
}
