package models

import (
	"time"

	"gorm.io/gorm"
)

// AffiliateWithdrawal 推广提现申请
type AffiliateWithdrawal struct {
	ID              uint           `gorm:"primarykey" json:"id"`                                // 主键
	AffiliateUserID uint           `gorm:"index;not null" json:"affiliate_user_id"`             // 推广账户ID
	Amount          Money          `gorm:"type:decimal(20,2);not null" json:"amount"`           // 申请金额
	PaymentMethod   string         `gorm:"type:varchar(50);not null" json:"payment_method"`     // 收款方式
	PaymentDetails  string         `gorm:"type:text" json:"payment_details"`                    // 收款账号信息
	Status          string         `gorm:"type:varchar(20);not null;index" json:"status"`       // 状态
	AdminNote       string         `gorm:"type:varchar(500)" json:"admin_note"`                 // 审核备注
	PaidAt          *time.Time     `gorm:"index" json:"paid_at"`                                // 打款时间
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                             // 创建时间
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`                             // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                      // 软删除时间
}

// TableName 指定表名
func (AffiliateWithdrawal) TableName() string {
	return "affiliate_withdrawals"
}
