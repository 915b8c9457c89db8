package worker

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/logger"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/provider"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/queue"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderCreatedEmail, c.handleOrderCreatedEmail)
	mux.HandleFunc(queue.TaskOrderStatusEmail, c.handleOrderStatusEmail)
	mux.HandleFunc(queue.TaskAffiliateStatusEmail, c.handleAffiliateStatusEmail)
	mux.HandleFunc(queue.TaskWithdrawalEmail, c.handleWithdrawalEmail)
}

func (c *Consumer) handleOrderCreatedEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.OrderCreatedEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_created_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_created_email_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_created_email_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_created_email_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	receiver, err := c.lookupUserEmail(order.UserID)
	if err != nil {
		return err
	}
	if receiver == "" {
		logger.Debugw("worker_order_created_email_skip_empty_receiver", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	subject, body := service.BuildOrderCreatedContent(service.OrderEmailContent{
		OrderNo:  order.OrderNo,
		Status:   order.Status,
		Total:    order.Total,
		Currency: order.Currency,
	})
	return c.sendEmail(receiver, subject, body, "order_no", order.OrderNo)
}

func (c *Consumer) handleOrderStatusEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.OrderStatusEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_status_email_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_status_email_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_status_email_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	receiver, err := c.lookupUserEmail(order.UserID)
	if err != nil {
		return err
	}
	if receiver == "" {
		logger.Debugw("worker_order_status_email_skip_empty_receiver", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	status := strings.TrimSpace(payload.Status)
	if status == "" {
		status = order.Status
	}
	subject, body := service.BuildOrderStatusContent(service.OrderEmailContent{
		OrderNo:  order.OrderNo,
		Status:   status,
		Total:    order.Total,
		Currency: order.Currency,
	})
	return c.sendEmail(receiver, subject, body, "order_no", order.OrderNo)
}

func (c *Consumer) handleAffiliateStatusEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.AffiliateStatusEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_affiliate_status_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.AffiliateUserID == 0 {
		logger.Debugw("worker_affiliate_status_email_skip_invalid_payload")
		return nil
	}
	affiliate, err := c.AffiliateRepo.GetUserByID(payload.AffiliateUserID)
	if err != nil {
		logger.Warnw("worker_affiliate_status_email_fetch_failed", "affiliate_user_id", payload.AffiliateUserID, "error", err)
		return err
	}
	if affiliate == nil {
		logger.Debugw("worker_affiliate_status_email_skip_not_found", "affiliate_user_id", payload.AffiliateUserID)
		return nil
	}
	receiver, err := c.lookupUserEmail(affiliate.UserID)
	if err != nil {
		return err
	}
	if receiver == "" {
		logger.Debugw("worker_affiliate_status_email_skip_empty_receiver", "affiliate_user_id", affiliate.ID)
		return nil
	}
	status := strings.TrimSpace(payload.Status)
	if status == "" {
		status = affiliate.Status
	}
	subject, body := service.BuildAffiliateStatusContent(status)
	return c.sendEmail(receiver, subject, body, "affiliate_code", affiliate.Code)
}

func (c *Consumer) handleWithdrawalEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.WithdrawalEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_withdrawal_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.WithdrawalID == 0 {
		logger.Debugw("worker_withdrawal_email_skip_invalid_payload")
		return nil
	}
	withdrawal, err := c.AffiliateRepo.GetWithdrawalByID(payload.WithdrawalID)
	if err != nil {
		logger.Warnw("worker_withdrawal_email_fetch_failed", "withdrawal_id", payload.WithdrawalID, "error", err)
		return err
	}
	if withdrawal == nil {
		logger.Debugw("worker_withdrawal_email_skip_not_found", "withdrawal_id", payload.WithdrawalID)
		return nil
	}
	affiliate, err := c.AffiliateRepo.GetUserByID(withdrawal.AffiliateUserID)
	if err != nil {
		logger.Warnw("worker_withdrawal_email_fetch_affiliate_failed", "withdrawal_id", withdrawal.ID, "error", err)
		return err
	}
	if affiliate == nil {
		logger.Debugw("worker_withdrawal_email_skip_affiliate_not_found", "withdrawal_id", withdrawal.ID)
		return nil
	}
	receiver, err := c.lookupUserEmail(affiliate.UserID)
	if err != nil {
		return err
	}
	if receiver == "" {
		logger.Debugw("worker_withdrawal_email_skip_empty_receiver", "withdrawal_id", withdrawal.ID)
		return nil
	}
	status := strings.TrimSpace(payload.Status)
	if status == "" {
		status = withdrawal.Status
	}
	subject, body := service.BuildWithdrawalStatusContent(status, withdrawal.Amount)
	return c.sendEmail(receiver, subject, body, "withdrawal_id", withdrawal.ID)
}

// lookupUserEmail 取用户收件地址（用户缺失或邮箱为空返回空串，不阻塞任务）
func (c *Consumer) lookupUserEmail(userID uint) (string, error) {
	if userID == 0 {
		return "", nil
	}
	user, err := c.UserRepo.GetByID(userID)
	if err != nil {
		logger.Warnw("worker_fetch_user_failed", "user_id", userID, "error", err)
		return "", err
	}
	if user == nil {
		return "", nil
	}
	return strings.TrimSpace(user.Email), nil
}

// sendEmail 发送邮件；未配置 SMTP 时降级为日志输出
func (c *Consumer) sendEmail(receiver, subject, body string, logKey string, logValue interface{}) error {
	if c.EmailSender == nil {
		logger.Warnw("worker_email_skip_sender_nil", logKey, logValue)
		return nil
	}
	if err := c.EmailSender.Send(receiver, subject, body); err != nil {
		if errors.Is(err, service.ErrEmailServiceDisabled) {
			logger.Debugw("worker_email_skip_disabled", logKey, logValue)
			return nil
		}
		logger.Warnw("worker_email_send_failed",
			"receiver_email", receiver,
			"subject", subject,
			logKey, logValue,
			"error", err,
		)
		return err
	}
	return nil
}
