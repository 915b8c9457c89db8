package queue

import (
	"fmt"
	"strings"

	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/config"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/constants"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/service"

	"github.com/hibiken/asynq"
)

const (
	// DefaultQueue 默认队列名称
	DefaultQueue = constants.QueueDefault
)

// Client 队列客户端封装
// 队列关闭时所有入队方法直接返回 nil，业务流程不受影响。
type Client struct {
	client       *asynq.Client
	enabled      bool
	defaultQueue string
}

// NewClient 创建队列客户端
func NewClient(cfg *config.QueueConfig) (*Client, error) {
	if cfg == nil || !cfg.Enabled {
		return &Client{enabled: false, defaultQueue: DefaultQueue}, nil
	}
	opt := buildRedisOpt(cfg)
	client := asynq.NewClient(opt)
	return &Client{
		client:       client,
		enabled:      true,
		defaultQueue: DefaultQueue,
	}, nil
}

// Enabled 判断是否启用
func (c *Client) Enabled() bool {
	return c != nil && c.enabled && c.client != nil
}

// Close 关闭客户端
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// DispatchEvents 将服务层返回的事件逐个入队
// 单个事件入队失败不影响其余事件，由调用方决定是否记录。
func (c *Client) DispatchEvents(events []service.Event) error {
	if !c.Enabled() {
		return nil
	}
	var firstErr error
	for _, event := range events {
		var err error
		switch event.Task {
		case TaskOrderCreatedEmail:
			err = c.EnqueueOrderCreatedEmail(OrderCreatedEmailPayload{
				OrderID: event.OrderID,
				UserID:  event.UserID,
			})
		case TaskOrderStatusEmail:
			err = c.EnqueueOrderStatusEmail(OrderStatusEmailPayload{
				OrderID: event.OrderID,
				Status:  event.Status,
			})
		case TaskAffiliateStatusEmail:
			err = c.EnqueueAffiliateStatusEmail(AffiliateStatusEmailPayload{
				AffiliateUserID: event.AffiliateUserID,
				UserID:          event.UserID,
				Status:          event.Status,
			})
		case TaskWithdrawalEmail:
			err = c.EnqueueWithdrawalEmail(WithdrawalEmailPayload{
				WithdrawalID:    event.WithdrawalID,
				AffiliateUserID: event.AffiliateUserID,
				UserID:          event.UserID,
				Status:          event.Status,
			})
		}
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// EnqueueOrderCreatedEmail 推送下单成功邮件任务
func (c *Client) EnqueueOrderCreatedEmail(payload OrderCreatedEmailPayload, opts ...asynq.Option) error {
	if !c.Enabled() {
		return nil
	}
	task, err := NewOrderCreatedEmailTask(payload)
	if err != nil {
		return err
	}
	options := append([]asynq.Option{asynq.Queue(c.defaultQueue)}, opts...)
	_, err = c.client.Enqueue(task, options...)
	return err
}

// EnqueueOrderStatusEmail 推送订单状态邮件任务
func (c *Client) EnqueueOrderStatusEmail(payload OrderStatusEmailPayload, opts ...asynq.Option) error {
	if !c.Enabled() {
		return nil
	}
	task, err := NewOrderStatusEmailTask(payload)
	if err != nil {
		return err
	}
	options := append([]asynq.Option{asynq.Queue(c.defaultQueue)}, opts...)
	_, err = c.client.Enqueue(task, options...)
	return err
}

// EnqueueAffiliateStatusEmail 推送推广账户状态邮件任务
func (c *Client) EnqueueAffiliateStatusEmail(payload AffiliateStatusEmailPayload, opts ...asynq.Option) error {
	if !c.Enabled() {
		return nil
	}
	task, err := NewAffiliateStatusEmailTask(payload)
	if err != nil {
		return err
	}
	options := append([]asynq.Option{asynq.Queue(c.defaultQueue)}, opts...)
	_, err = c.client.Enqueue(task, options...)
	return err
}

// EnqueueWithdrawalEmail 推送提现状态邮件任务
func (c *Client) EnqueueWithdrawalEmail(payload WithdrawalEmailPayload, opts ...asynq.Option) error {
	if !c.Enabled() {
		return nil
	}
	task, err := NewWithdrawalEmailTask(payload)
	if err != nil {
		return err
	}
	options := append([]asynq.Option{asynq.Queue(c.defaultQueue)}, opts...)
	_, err = c.client.Enqueue(task, options...)
	return err
}

// BuildServerConfig 生成队列服务配置
func BuildServerConfig(cfg *config.QueueConfig) (asynq.RedisClientOpt, asynq.Config) {
	opt := buildRedisOpt(cfg)
	concurrency := 10
	if cfg != nil && cfg.Concurrency > 0 {
		concurrency = cfg.Concurrency
	}
	queues := map[string]int{DefaultQueue: 1}
	if cfg != nil && len(cfg.Queues) > 0 {
		queues = cfg.Queues
	}
	return opt, asynq.Config{
		Concurrency: concurrency,
		Queues:      queues,
	}
}

func buildRedisOpt(cfg *config.QueueConfig) asynq.RedisClientOpt {
	host := "127.0.0.1"
	port := 6379
	password := ""
	db := 0
	if cfg != nil {
		if strings.TrimSpace(cfg.Host) != "" {
			host = strings.TrimSpace(cfg.Host)
		}
		if cfg.Port > 0 {
			port = cfg.Port
		}
		password = cfg.Password
		db = cfg.DB
	}
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       db,
	}
}
