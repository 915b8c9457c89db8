package queue

import (
	"encoding/json"

	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderCreatedEmail 下单成功邮件任务
	TaskOrderCreatedEmail = constants.TaskOrderCreatedEmail
	// TaskOrderStatusEmail 订单状态变更邮件任务
	TaskOrderStatusEmail = constants.TaskOrderStatusEmail
	// TaskAffiliateStatusEmail 推广账户审核结果邮件任务
	TaskAffiliateStatusEmail = constants.TaskAffiliateStatusEmail
	// TaskWithdrawalEmail 提现进度邮件任务
	TaskWithdrawalEmail = constants.TaskWithdrawalEmail
)

// OrderCreatedEmailPayload 下单成功邮件任务载荷
type OrderCreatedEmailPayload struct {
	OrderID uint `json:"order_id"`
	UserID  uint `json:"user_id"`
}

// OrderStatusEmailPayload 订单状态邮件任务载荷
type OrderStatusEmailPayload struct {
	OrderID uint   `json:"order_id"`
	Status  string `json:"status"`
}

// AffiliateStatusEmailPayload 推广账户状态邮件任务载荷
type AffiliateStatusEmailPayload struct {
	AffiliateUserID uint   `json:"affiliate_user_id"`
	UserID          uint   `json:"user_id"`
	Status          string `json:"status"`
}

// WithdrawalEmailPayload 提现状态邮件任务载荷
type WithdrawalEmailPayload struct {
	WithdrawalID    uint   `json:"withdrawal_id"`
	AffiliateUserID uint   `json:"affiliate_user_id"`
	UserID          uint   `json:"user_id"`
	Status          string `json:"status"`
}

// NewOrderCreatedEmailTask 创建下单成功邮件任务
func NewOrderCreatedEmailTask(payload OrderCreatedEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderCreatedEmail, body), nil
}

// NewOrderStatusEmailTask 创建订单状态邮件任务
func NewOrderStatusEmailTask(payload OrderStatusEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderStatusEmail, body), nil
}

// NewAffiliateStatusEmailTask 创建推广账户状态邮件任务
func NewAffiliateStatusEmailTask(payload AffiliateStatusEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskAffiliateStatusEmail, body), nil
}

// NewWithdrawalEmailTask 创建提现状态邮件任务
func NewWithdrawalEmailTask(payload WithdrawalEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskWithdrawalEmail, body), nil
}
