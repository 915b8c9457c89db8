package service

import (
	"errors"
	"fmt"
	"mime"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/config"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/constants"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/logger"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/models"
)

// 邮件错误
var (
	ErrEmailServiceDisabled = errors.New("email service disabled")
	ErrInvalidEmail         = errors.New("invalid email address")
)

// EmailSender 邮件发送接口
// SMTP 未启用时由日志实现兜底，通知流程不阻断业务。
type EmailSender interface {
	Send(toEmail, subject, body string) error
}

// EmailService 邮件发送服务
type EmailService struct {
	cfg config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// Send 通过 SMTP 发送文本邮件
func (s *EmailService) Send(toEmail, subject, body string) error {
	if !s.cfg.Enabled {
		return ErrEmailServiceDisabled
	}
	if s.cfg.Host == "" || s.cfg.Port == 0 || s.cfg.From == "" {
		return ErrEmailServiceDisabled
	}
	if _, err := mail.ParseAddress(toEmail); err != nil {
		return ErrInvalidEmail
	}

	from := buildFromAddress(s.cfg.From, s.cfg.FromName)
	msg := buildEmailMessage(from, toEmail, subject, body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" || s.cfg.Password != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}
	return smtp.SendMail(addr, auth, s.cfg.From, []string{toEmail}, []byte(msg))
}

// LoggingEmailSender 仅记录日志的发送实现
type LoggingEmailSender struct{}

// Send 将邮件内容写入日志
func (LoggingEmailSender) Send(toEmail, subject, body string) error {
	logger.Infow("email (logging sender)",
		"to", toEmail,
		"subject", subject,
		"body", body,
	)
	return nil
}

// OrderEmailContent 订单邮件内容输入
type OrderEmailContent struct {
	OrderNo  string
	Status   string
	Total    models.Money
	Currency string
}

// BuildOrderCreatedContent 下单成功邮件内容
func BuildOrderCreatedContent(input OrderEmailContent) (string, string) {
	subject := "Order " + input.OrderNo + " placed"
	body := fmt.Sprintf(
		"Thank you for shopping with Emerald Secrets.\nOrder number: %s\nTotal: %s %s\nWe will notify you when the order status changes.",
		input.OrderNo, input.Currency, input.Total.String(),
	)
	return subject, body
}

// BuildOrderStatusContent 订单状态变更邮件内容
func BuildOrderStatusContent(input OrderEmailContent) (string, string) {
	subject := "Order " + input.OrderNo + " " + input.Status
	var line string
	switch input.Status {
	case constants.OrderStatusProcessing:
		line = "Payment received, the order is being prepared."
	case constants.OrderStatusShipped:
		line = "Your order has been shipped."
	case constants.OrderStatusDelivered:
		line = "Your order has been delivered."
	case constants.OrderStatusCancelled:
		line = "Your order has been cancelled."
	case constants.OrderStatusRefunded:
		line = "Your order has been refunded."
	default:
		line = "Your order status is now " + input.Status + "."
	}
	body := fmt.Sprintf("Order number: %s\n%s", input.OrderNo, line)
	return subject, body
}

// BuildAffiliateStatusContent 推广账户状态邮件内容
func BuildAffiliateStatusContent(status string) (string, string) {
	subject := "Affiliate account " + status
	var line string
	switch status {
	case constants.AffiliateStatusPending:
		line = "Your affiliate application has been received and is pending review."
	case constants.AffiliateStatusActive:
		line = "Your affiliate account is now active. Share your referral link to start earning."
	case constants.AffiliateStatusRejected:
		line = "Your affiliate application was not approved."
	case constants.AffiliateStatusSuspended:
		line = "Your affiliate account has been suspended."
	default:
		line = "Your affiliate account status is now " + status + "."
	}
	return subject, line
}

// BuildWithdrawalStatusContent 提现状态邮件内容
func BuildWithdrawalStatusContent(status string, amount models.Money) (string, string) {
	subject := "Withdrawal " + status
	var line string
	switch status {
	case constants.WithdrawalStatusPending:
		line = "Your withdrawal request has been received."
	case constants.WithdrawalStatusApproved:
		line = "Your withdrawal request has been approved."
	case constants.WithdrawalStatusProcessing:
		line = "Your withdrawal is being processed."
	case constants.WithdrawalStatusPaid:
		line = "Your withdrawal has been paid."
	case constants.WithdrawalStatusRejected:
		line = "Your withdrawal request was rejected."
	default:
		line = "Your withdrawal status is now " + status + "."
	}
	body := fmt.Sprintf("Amount: %s\n%s", amount.String(), line)
	return subject, body
}

func buildFromAddress(from, name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return from
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", trimmed), from)
}

func buildEmailMessage(from, to, subject, body string) string {
	headers := []string{
		"From: " + from,
		"To: " + to,
		"Subject: " + mime.QEncoding.Encode("utf-8", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
	}
	return strings.Join(headers, "\r\n") + "\r\n\r\n" + body
}
