package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Address 收货地址表
type Address struct {
	ID         uint           `gorm:"primarykey" json:"id"`                           // 主键
	UserID     uint           `gorm:"index;not null" json:"user_id"`                  // 用户ID
	FullName   string         `gorm:"type:varchar(100);not null" json:"full_name"`    // 收件人姓名
	Phone      string         `gorm:"type:varchar(30);not null" json:"phone"`         // 联系电话
	Line1      string         `gorm:"type:varchar(255);not null" json:"line1"`        // 地址行一
	Line2      string         `gorm:"type:varchar(255)" json:"line2"`                 // 地址行二
	City       string         `gorm:"type:varchar(100);not null" json:"city"`         // 城市
	State      string         `gorm:"type:varchar(100);not null" json:"state"`        // 省/邦
	PostalCode string         `gorm:"type:varchar(20);not null" json:"postal_code"`   // 邮编
	Country    string         `gorm:"type:varchar(100);default:'India'" json:"country"` // 国家
	IsDefault  bool           `gorm:"not null;default:false" json:"is_default"`       // 是否默认地址
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                        // 创建时间
	UpdatedAt  time.Time      `gorm:"index" json:"updated_at"`                        // 更新时间
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                                 // 软删除时间
}

// TableName 指定表名
func (Address) TableName() string {
	return "addresses"
}

// IsComplete 判断下单所需字段是否齐全
func (a Address) IsComplete() bool {
	required := []string{a.FullName, a.Phone, a.Line1, a.City, a.State, a.PostalCode, a.Country}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return true
}
