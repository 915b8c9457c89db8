package models

import "time"

// AffiliateClick 推广点击记录
type AffiliateClick struct {
	ID              uint      `gorm:"primarykey" json:"id"`                            // 主键
	AffiliateUserID uint      `gorm:"index;not null" json:"affiliate_user_id"`         // 推广账户ID
	ClientIP        string    `gorm:"type:varchar(64)" json:"client_ip"`               // 访问IP
	UserAgent       string    `gorm:"type:varchar(500)" json:"user_agent"`             // User-Agent
	LandingPath     string    `gorm:"type:varchar(500)" json:"landing_path"`           // 落地页路径
	Referrer        string    `gorm:"type:varchar(500)" json:"referrer"`               // 来源页
	CreatedAt       time.Time `gorm:"index" json:"created_at"`                         // 点击时间
}

// TableName 指定表名
func (AffiliateClick) TableName() string {
	return "affiliate_clicks"
}
