package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AffiliateUser 推广返利账户
// TotalEarnings/TotalWithdrawn 为累计值，可用余额由两者相减得出；
// 每笔变动同时写入 AffiliateTransaction 流水以供对账。
type AffiliateUser struct {
	ID             uint           `gorm:"primarykey" json:"id"`                                         // 主键
	UserID         uint           `gorm:"not null;uniqueIndex" json:"user_id"`                          // 用户ID
	Code           string         `gorm:"type:varchar(32);not null;uniqueIndex" json:"code"`            // 推广码（生成后不变）
	Status         string         `gorm:"type:varchar(20);not null;index" json:"status"`                // 状态
	PaymentDetails string         `gorm:"type:text" json:"payment_details"`                             // 收款信息
	TotalEarnings  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_earnings"`  // 累计佣金
	TotalWithdrawn Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_withdrawn"` // 累计已提现
	TotalReferrals int            `gorm:"not null;default:0" json:"total_referrals"`                    // 累计推荐订单数
	TotalClicks    int            `gorm:"not null;default:0" json:"total_clicks"`                       // 累计点击数
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`                                      // 创建时间
	UpdatedAt      time.Time      `gorm:"index" json:"updated_at"`                                      // 更新时间
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`                                               // 软删除时间

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"` // 用户信息
}

// TableName 指定表名
func (AffiliateUser) TableName() string {
	return "affiliate_users"
}

// AvailableBalance 可用余额 = 累计佣金 - 累计已提现
func (a AffiliateUser) AvailableBalance() Money {
	balance := a.TotalEarnings.Decimal.Sub(a.TotalWithdrawn.Decimal)
	if balance.IsNegative() {
		balance = decimal.Zero
	}
	return NewMoneyFromDecimal(balance)
}
