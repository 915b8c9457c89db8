package models

import "time"

// AffiliateTransaction 推广账户流水
// 只追加：每笔余额变动写入一行并记录变动后的可用余额，写入后不修改不删除。
type AffiliateTransaction struct {
	ID              uint      `gorm:"primarykey" json:"id"`                               // 主键
	AffiliateUserID uint      `gorm:"index;not null" json:"affiliate_user_id"`            // 推广账户ID
	Type            string    `gorm:"type:varchar(20);not null;index" json:"type"`        // 类型（earning/withdrawal/bonus/deduction）
	Amount          Money     `gorm:"type:decimal(20,2);not null" json:"amount"`          // 变动金额
	BalanceAfter    Money     `gorm:"type:decimal(20,2);not null" json:"balance_after"`   // 变动后可用余额
	Description     string    `gorm:"type:varchar(255)" json:"description"`               // 说明
	Reference       string    `gorm:"type:varchar(64);index" json:"reference"`            // 关联单号（订单号或提现ID）
	CreatedAt       time.Time `gorm:"index" json:"created_at"`                            // 记账时间
}

// TableName 指定表名
func (AffiliateTransaction) TableName() string {
	return "affiliate_transactions"
}
