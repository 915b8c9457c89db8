package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/config"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/constants"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/models"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	affiliateCodeSuffixLength = 6
	affiliateCodeMaxRetry     = 8
)

// AffiliateService 推广返利业务服务
// 所有余额变动都在事务内对推广账户行加锁后执行，
// 同一账户的入账、扣减与提现相互串行。
type AffiliateService struct {
	repo     repository.AffiliateRepository
	userRepo repository.UserRepository

	defaultCommissionRate decimal.Decimal
	defaultMinWithdrawal  decimal.Decimal
}

// NewAffiliateService 创建推广返利服务
func NewAffiliateService(repo repository.AffiliateRepository, userRepo repository.UserRepository, cfg config.AffiliateConfig) (*AffiliateService, error) {
	rate, err := decimal.NewFromString(cfg.CommissionRate)
	if err != nil {
		return nil, err
	}
	minWithdrawal, err := decimal.NewFromString(cfg.MinWithdrawal)
	if err != nil {
		return nil, err
	}
	return &AffiliateService{
		repo:                  repo,
		userRepo:              userRepo,
		defaultCommissionRate: rate,
		defaultMinWithdrawal:  minWithdrawal,
	}, nil
}

// AffiliateDashboard 推广用户中心数据
type AffiliateDashboard struct {
	Status           string       `json:"status"`
	Code             string       `json:"code"`
	PromotionPath    string       `json:"promotion_path"`
	TotalClicks      int          `json:"total_clicks"`
	TotalReferrals   int          `json:"total_referrals"`
	TotalEarnings    models.Money `json:"total_earnings"`
	TotalWithdrawn   models.Money `json:"total_withdrawn"`
	AvailableBalance models.Money `json:"available_balance"`
}

// TrackClickInput 推广点击记录输入
type TrackClickInput struct {
	Code        string
	ClientIP    string
	UserAgent   string
	LandingPath string
	Referrer    string
}

// WithdrawalRequestInput 提现申请输入
type WithdrawalRequestInput struct {
	Amount         decimal.Decimal
	PaymentMethod  string
	PaymentDetails string
}

// Apply 用户申请开通推广账户（幂等：已有账户直接返回）
func (s *AffiliateService) Apply(userID uint, paymentDetails string) (*models.AffiliateUser, []Event, error) {
	if userID == 0 {
		return nil, nil, ErrNotFound
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrNotFound
	}
	if user.Status == constants.UserStatusDisabled {
		return nil, nil, ErrUserDisabled
	}

	existing, err := s.repo.GetUserByUserID(userID)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return existing, nil, nil
	}

	for i := 0; i < affiliateCodeMaxRetry; i++ {
		affiliate := &models.AffiliateUser{
			UserID:         userID,
			Code:           generateAffiliateCode(),
			Status:         constants.AffiliateStatusPending,
			PaymentDetails: strings.TrimSpace(paymentDetails),
			TotalEarnings:  models.MoneyZero(),
			TotalWithdrawn: models.MoneyZero(),
		}
		if err := s.repo.CreateUser(affiliate); err != nil {
			if isUniqueViolation(err) {
				continue
			}
			return nil, nil, err
		}
		events := []Event{{
			Task:            constants.TaskAffiliateStatusEmail,
			AffiliateUserID: affiliate.ID,
			UserID:          userID,
			Status:          affiliate.Status,
		}}
		return affiliate, events, nil
	}
	return nil, nil, ErrAffiliateCodeExhausted
}

// affiliateReviewTransitions 账户审核状态机
var affiliateReviewTransitions = map[string]struct{ from, to string }{
	"approve":    {constants.AffiliateStatusPending, constants.AffiliateStatusActive},
	"reject":     {constants.AffiliateStatusPending, constants.AffiliateStatusRejected},
	"suspend":    {constants.AffiliateStatusActive, constants.AffiliateStatusSuspended},
	"reactivate": {constants.AffiliateStatusSuspended, constants.AffiliateStatusActive},
}

// Review 管理端审核推广账户
func (s *AffiliateService) Review(id uint, action string) (*models.AffiliateUser, []Event, error) {
	transition, ok := affiliateReviewTransitions[strings.ToLower(strings.TrimSpace(action))]
	if !ok {
		return nil, nil, ErrAffiliateActionInvalid
	}

	var reviewed *models.AffiliateUser
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		repoTx := s.repo.WithTx(tx)
		affiliate, err := repoTx.GetUserByIDForUpdate(id)
		if err != nil {
			return err
		}
		if affiliate == nil {
			return ErrAffiliateNotFound
		}
		if affiliate.Status != transition.from {
			return ErrInvalidStateTransition
		}
		affiliate.Status = transition.to
		if err := repoTx.UpdateUser(affiliate); err != nil {
			return err
		}
		reviewed = affiliate
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	events := []Event{{
		Task:            constants.TaskAffiliateStatusEmail,
		AffiliateUserID: reviewed.ID,
		UserID:          reviewed.UserID,
		Status:          reviewed.Status,
	}}
	return reviewed, events, nil
}

// ResolveActiveByCode 按推广码查找启用中的账户（未知或停用返回 nil）
func (s *AffiliateService) ResolveActiveByCode(code string) (*models.AffiliateUser, error) {
	normalized := normalizeAffiliateCode(code)
	if normalized == "" {
		return nil, nil
	}
	affiliate, err := s.repo.GetUserByCode(normalized)
	if err != nil {
		return nil, err
	}
	if affiliate == nil || affiliate.Status != constants.AffiliateStatusActive {
		return nil, nil
	}
	return affiliate, nil
}

// GetByUserID 获取用户的推广账户
func (s *AffiliateService) GetByUserID(userID uint) (*models.AffiliateUser, error) {
	if userID == 0 {
		return nil, nil
	}
	return s.repo.GetUserByUserID(userID)
}

// GetDashboard 推广用户中心数据
func (s *AffiliateService) GetDashboard(userID uint) (*AffiliateDashboard, error) {
	affiliate, err := s.repo.GetUserByUserID(userID)
	if err != nil {
		return nil, err
	}
	if affiliate == nil {
		return nil, ErrAffiliateNotFound
	}
	return &AffiliateDashboard{
		Status:           affiliate.Status,
		Code:             affiliate.Code,
		PromotionPath:    "/?" + constants.AffiliateRefQueryParam + "=" + affiliate.Code,
		TotalClicks:      affiliate.TotalClicks,
		TotalReferrals:   affiliate.TotalReferrals,
		TotalEarnings:    affiliate.TotalEarnings,
		TotalWithdrawn:   affiliate.TotalWithdrawn,
		AvailableBalance: affiliate.AvailableBalance(),
	}, nil
}

// TrackClick 记录推广点击（未知推广码忽略）
func (s *AffiliateService) TrackClick(input TrackClickInput) error {
	affiliate, err := s.ResolveActiveByCode(input.Code)
	if err != nil {
		return err
	}
	if affiliate == nil {
		return nil
	}
	click := &models.AffiliateClick{
		AffiliateUserID: affiliate.ID,
		ClientIP:        strings.TrimSpace(input.ClientIP),
		UserAgent:       strings.TrimSpace(input.UserAgent),
		LandingPath:     strings.TrimSpace(input.LandingPath),
		Referrer:        strings.TrimSpace(input.Referrer),
		CreatedAt:       time.Now(),
	}
	if err := s.repo.CreateClick(click); err != nil {
		return err
	}
	return s.repo.IncrementClicks(affiliate.ID, 1)
}

// CreateOrderTx 在下单事务内创建待确认的推广订单
// 佣金比例从当前启用计划复制，无计划时退回默认配置。
func (s *AffiliateService) CreateOrderTx(tx *gorm.DB, affiliate *models.AffiliateUser, order *models.Order) error {
	if affiliate == nil || order == nil {
		return nil
	}
	repoTx := s.repo.WithTx(tx)

	rate := s.defaultCommissionRate
	program, err := repoTx.GetActiveProgram()
	if err != nil {
		return err
	}
	if program != nil {
		rate = program.CommissionRate.Decimal
	}
	commission := order.Total.Decimal.Mul(rate).Div(decimal.NewFromInt(100)).Round(2)

	affiliateOrder := &models.AffiliateOrder{
		AffiliateUserID:  affiliate.ID,
		OrderID:          order.ID,
		OrderNo:          order.OrderNo,
		OrderAmount:      order.Total,
		CommissionRate:   models.NewMoneyFromDecimal(rate),
		CommissionAmount: models.NewMoneyFromDecimal(commission),
		Status:           constants.AffiliateOrderStatusPending,
	}
	if err := repoTx.CreateOrder(affiliateOrder); err != nil {
		return err
	}

	locked, err := repoTx.GetUserByIDForUpdate(affiliate.ID)
	if err != nil {
		return err
	}
	if locked == nil {
		return ErrAffiliateNotFound
	}
	locked.TotalReferrals++
	return repoTx.UpdateUser(locked)
}

// ConfirmOrderTx 在订单事务内确认推广订单（非 pending 状态静默跳过）
func (s *AffiliateService) ConfirmOrderTx(tx *gorm.DB, orderID uint) error {
	repoTx := s.repo.WithTx(tx)
	affiliateOrder, err := repoTx.GetOrderByOrderIDForUpdate(orderID)
	if err != nil {
		return err
	}
	if affiliateOrder == nil {
		return nil
	}
	return s.confirmLocked(repoTx, affiliateOrder)
}

// ConfirmOrder 管理端按推广订单ID确认
func (s *AffiliateService) ConfirmOrder(id uint) error {
	return s.repo.Transaction(func(tx *gorm.DB) error {
		repoTx := s.repo.WithTx(tx)
		affiliateOrder, err := repoTx.GetOrderByIDForUpdate(id)
		if err != nil {
			return err
		}
		if affiliateOrder == nil {
			return ErrNotFound
		}
		return s.confirmLocked(repoTx, affiliateOrder)
	})
}

// CompleteOrderTx 在订单事务内完成推广订单并入账佣金
func (s *AffiliateService) CompleteOrderTx(tx *gorm.DB, orderID uint) error {
	repoTx := s.repo.WithTx(tx)
	affiliateOrder, err := repoTx.GetOrderByOrderIDForUpdate(orderID)
	if err != nil {
		return err
	}
	if affiliateOrder == nil {
		return nil
	}
	return s.completeLocked(repoTx, affiliateOrder)
}

// CompleteOrder 管理端按推广订单ID完成入账
func (s *AffiliateService) CompleteOrder(id uint) error {
	return s.repo.Transaction(func(tx *gorm.DB) error {
		repoTx := s.repo.WithTx(tx)
		affiliateOrder, err := repoTx.GetOrderByIDForUpdate(id)
		if err != nil {
			return err
		}
		if affiliateOrder == nil {
			return ErrNotFound
		}
		return s.completeLocked(repoTx, affiliateOrder)
	})
}

// CancelOrderTx 在订单事务内取消推广订单（已入账的佣金原额回冲）
func (s *AffiliateService) CancelOrderTx(tx *gorm.DB, orderID uint) error {
	repoTx := s.repo.WithTx(tx)
	affiliateOrder, err := repoTx.GetOrderByOrderIDForUpdate(orderID)
	if err != nil {
		return err
	}
	if affiliateOrder == nil {
		return nil
	}
	return s.cancelLocked(repoTx, affiliateOrder)
}

// CancelOrder 管理端按推广订单ID取消
func (s *AffiliateService) CancelOrder(id uint) error {
	return s.repo.Transaction(func(tx *gorm.DB) error {
		repoTx := s.repo.WithTx(tx)
		affiliateOrder, err := repoTx.GetOrderByIDForUpdate(id)
		if err != nil {
			return err
		}
		if affiliateOrder == nil {
			return ErrNotFound
		}
		return s.cancelLocked(repoTx, affiliateOrder)
	})
}

func (s *AffiliateService) confirmLocked(repoTx repository.AffiliateRepository, affiliateOrder *models.AffiliateOrder) error {
	if affiliateOrder.Status != constants.AffiliateOrderStatusPending {
		return nil
	}
	affiliateOrder.Status = constants.AffiliateOrderStatusConfirmed
	return repoTx.UpdateOrder(affiliateOrder)
}

// completeLocked 入账佣金（恰好一次：completed 幂等跳过，cancelled 拒绝）
func (s *AffiliateService) completeLocked(repoTx repository.AffiliateRepository, affiliateOrder *models.AffiliateOrder) error {
	switch affiliateOrder.Status {
	case constants.AffiliateOrderStatusCompleted:
		return nil
	case constants.AffiliateOrderStatusCancelled:
		return ErrInvalidStateTransition
	}

	affiliate, err := repoTx.GetUserByIDForUpdate(affiliateOrder.AffiliateUserID)
	if err != nil {
		return err
	}
	if affiliate == nil {
		return ErrAffiliateNotFound
	}

	commission := affiliateOrder.CommissionAmount.Decimal
	affiliate.TotalEarnings = models.NewMoneyFromDecimal(affiliate.TotalEarnings.Decimal.Add(commission))
	if err := repoTx.UpdateUser(affiliate); err != nil {
		return err
	}

	now := time.Now()
	affiliateOrder.Status = constants.AffiliateOrderStatusCompleted
	affiliateOrder.CompletedAt = &now
	if err := repoTx.UpdateOrder(affiliateOrder); err != nil {
		return err
	}

	return repoTx.CreateTransaction(&models.AffiliateTransaction{
		AffiliateUserID: affiliate.ID,
		Type:            constants.TransactionTypeEarning,
		Amount:          models.NewMoneyFromDecimal(commission),
		BalanceAfter:    affiliate.AvailableBalance(),
		Description:     "commission for order " + affiliateOrder.OrderNo,
		Reference:       affiliateOrder.OrderNo,
		CreatedAt:       now,
	})
}

// cancelLocked 取消推广订单；已入账的按原佣金金额精确回冲
func (s *AffiliateService) cancelLocked(repoTx repository.AffiliateRepository, affiliateOrder *models.AffiliateOrder) error {
	if affiliateOrder.Status == constants.AffiliateOrderStatusCancelled {
		return nil
	}
	wasCompleted := affiliateOrder.Status == constants.AffiliateOrderStatusCompleted

	affiliateOrder.Status = constants.AffiliateOrderStatusCancelled
	if err := repoTx.UpdateOrder(affiliateOrder); err != nil {
		return err
	}
	if !wasCompleted {
		return nil
	}

	affiliate, err := repoTx.GetUserByIDForUpdate(affiliateOrder.AffiliateUserID)
	if err != nil {
		return err
	}
	if affiliate == nil {
		return ErrAffiliateNotFound
	}

	commission := affiliateOrder.CommissionAmount.Decimal
	affiliate.TotalEarnings = models.NewMoneyFromDecimal(affiliate.TotalEarnings.Decimal.Sub(commission))
	if err := repoTx.UpdateUser(affiliate); err != nil {
		return err
	}

	return repoTx.CreateTransaction(&models.AffiliateTransaction{
		AffiliateUserID: affiliate.ID,
		Type:            constants.TransactionTypeDeduction,
		Amount:          models.NewMoneyFromDecimal(commission),
		BalanceAfter:    affiliate.AvailableBalance(),
		Description:     "commission reversed for order " + affiliateOrder.OrderNo,
		Reference:       affiliateOrder.OrderNo,
		CreatedAt:       time.Now(),
	})
}

// RequestWithdrawal 提交提现申请
// 可用余额 = 累计佣金 - 累计已提现 - 其他在途提现（pending/approved/processing）。
func (s *AffiliateService) RequestWithdrawal(userID uint, input WithdrawalRequestInput) (*models.AffiliateWithdrawal, []Event, error) {
	amount := input.Amount.Round(2)
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil, ErrWithdrawalAmountInvalid
	}
	method := strings.TrimSpace(input.PaymentMethod)
	details := strings.TrimSpace(input.PaymentDetails)
	if method == "" || details == "" {
		return nil, nil, ErrWithdrawalDetailsRequired
	}

	var created *models.AffiliateWithdrawal
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		repoTx := s.repo.WithTx(tx)
		affiliate, err := repoTx.GetUserByUserID(userID)
		if err != nil {
			return err
		}
		if affiliate == nil {
			return ErrAffiliateNotFound
		}
		locked, err := repoTx.GetUserByIDForUpdate(affiliate.ID)
		if err != nil {
			return err
		}
		if locked == nil {
			return ErrAffiliateNotFound
		}
		if locked.Status != constants.AffiliateStatusActive {
			return ErrAffiliateNotActive
		}

		minWithdrawal := s.defaultMinWithdrawal
		program, err := repoTx.GetActiveProgram()
		if err != nil {
			return err
		}
		if program != nil {
			minWithdrawal = program.MinWithdrawal.Decimal
		}
		if amount.LessThan(minWithdrawal) {
			return ErrWithdrawalBelowMinimum
		}

		pendingSum, err := repoTx.SumWithdrawalsByStatuses(locked.ID, []string{
			constants.WithdrawalStatusPending,
			constants.WithdrawalStatusApproved,
			constants.WithdrawalStatusProcessing,
		}, 0)
		if err != nil {
			return err
		}
		available := locked.TotalEarnings.Decimal.Sub(locked.TotalWithdrawn.Decimal).Sub(pendingSum)
		if amount.GreaterThan(available) {
			return ErrWithdrawalInsufficient
		}

		created = &models.AffiliateWithdrawal{
			AffiliateUserID: locked.ID,
			Amount:          models.NewMoneyFromDecimal(amount),
			PaymentMethod:   method,
			PaymentDetails:  details,
			Status:          constants.WithdrawalStatusPending,
		}
		return repoTx.CreateWithdrawal(created)
	})
	if err != nil {
		return nil, nil, err
	}

	events := []Event{{
		Task:            constants.TaskWithdrawalEmail,
		AffiliateUserID: created.AffiliateUserID,
		UserID:          userID,
		WithdrawalID:    created.ID,
		Status:          created.Status,
	}}
	return created, events, nil
}

// withdrawalReviewTransitions 提现审核状态机
var withdrawalReviewTransitions = map[string]map[string]string{
	constants.WithdrawalActionApprove: {constants.WithdrawalStatusPending: constants.WithdrawalStatusApproved},
	constants.WithdrawalActionProcess: {constants.WithdrawalStatusApproved: constants.WithdrawalStatusProcessing},
	constants.WithdrawalActionReject: {
		constants.WithdrawalStatusPending:  constants.WithdrawalStatusRejected,
		constants.WithdrawalStatusApproved: constants.WithdrawalStatusRejected,
	},
}

// ReviewWithdrawal 管理端审核提现申请
func (s *AffiliateService) ReviewWithdrawal(id uint, action, adminNote string) (*models.AffiliateWithdrawal, []Event, error) {
	act := strings.ToLower(strings.TrimSpace(action))
	if act == constants.WithdrawalActionPay {
		return s.MarkWithdrawalPaid(id)
	}
	targets, ok := withdrawalReviewTransitions[act]
	if !ok {
		return nil, nil, ErrWithdrawalStatusInvalid
	}

	var reviewed *models.AffiliateWithdrawal
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		repoTx := s.repo.WithTx(tx)
		withdrawal, err := repoTx.GetWithdrawalByIDForUpdate(id)
		if err != nil {
			return err
		}
		if withdrawal == nil {
			return ErrWithdrawalNotFound
		}
		next, ok := targets[withdrawal.Status]
		if !ok {
			return ErrWithdrawalStatusInvalid
		}
		withdrawal.Status = next
		withdrawal.AdminNote = strings.TrimSpace(adminNote)
		if err := repoTx.UpdateWithdrawal(withdrawal); err != nil {
			return err
		}
		reviewed = withdrawal
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	affiliate, err := s.repo.GetUserByID(reviewed.AffiliateUserID)
	if err != nil {
		return nil, nil, err
	}
	events := []Event{{
		Task:            constants.TaskWithdrawalEmail,
		AffiliateUserID: reviewed.AffiliateUserID,
		WithdrawalID:    reviewed.ID,
		Status:          reviewed.Status,
	}}
	if affiliate != nil {
		events[0].UserID = affiliate.UserID
	}
	return reviewed, events, nil
}

// MarkWithdrawalPaid 标记提现已打款并结转余额
// 重复调用返回 ErrWithdrawalStatusInvalid，累计已提现只增加一次。
func (s *AffiliateService) MarkWithdrawalPaid(id uint) (*models.AffiliateWithdrawal, []Event, error) {
	var paid *models.AffiliateWithdrawal
	var userID uint
	err := s.repo.Transaction(func(tx *gorm.DB) error {
		repoTx := s.repo.WithTx(tx)
		withdrawal, err := repoTx.GetWithdrawalByIDForUpdate(id)
		if err != nil {
			return err
		}
		if withdrawal == nil {
			return ErrWithdrawalNotFound
		}
		switch withdrawal.Status {
		case constants.WithdrawalStatusPending,
			constants.WithdrawalStatusApproved,
			constants.WithdrawalStatusProcessing:
		default:
			return ErrWithdrawalStatusInvalid
		}

		affiliate, err := repoTx.GetUserByIDForUpdate(withdrawal.AffiliateUserID)
		if err != nil {
			return err
		}
		if affiliate == nil {
			return ErrAffiliateNotFound
		}

		amount := withdrawal.Amount.Decimal
		affiliate.TotalWithdrawn = models.NewMoneyFromDecimal(affiliate.TotalWithdrawn.Decimal.Add(amount))
		if err := repoTx.UpdateUser(affiliate); err != nil {
			return err
		}

		now := time.Now()
		withdrawal.Status = constants.WithdrawalStatusPaid
		withdrawal.PaidAt = &now
		if err := repoTx.UpdateWithdrawal(withdrawal); err != nil {
			return err
		}

		if err := repoTx.CreateTransaction(&models.AffiliateTransaction{
			AffiliateUserID: affiliate.ID,
			Type:            constants.TransactionTypeWithdrawal,
			Amount:          models.NewMoneyFromDecimal(amount),
			BalanceAfter:    affiliate.AvailableBalance(),
			Description:     "withdrawal paid",
			Reference:       "withdrawal:" + strconv.FormatUint(uint64(withdrawal.ID), 10),
			CreatedAt:       now,
		}); err != nil {
			return err
		}
		paid = withdrawal
		userID = affiliate.UserID
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	events := []Event{{
		Task:            constants.TaskWithdrawalEmail,
		AffiliateUserID: paid.AffiliateUserID,
		UserID:          userID,
		WithdrawalID:    paid.ID,
		Status:          paid.Status,
	}}
	return paid, events, nil
}

// ListUserWithdrawals 用户提现记录
func (s *AffiliateService) ListUserWithdrawals(userID uint, page, pageSize int, status string) ([]models.AffiliateWithdrawal, int64, error) {
	affiliate, err := s.repo.GetUserByUserID(userID)
	if err != nil {
		return nil, 0, err
	}
	if affiliate == nil {
		return []models.AffiliateWithdrawal{}, 0, nil
	}
	return s.repo.ListWithdrawals(repository.WithdrawalListFilter{
		Page:            page,
		PageSize:        pageSize,
		AffiliateUserID: affiliate.ID,
		Status:          strings.TrimSpace(status),
	})
}

// ListUserTransactions 用户返利流水
func (s *AffiliateService) ListUserTransactions(userID uint, page, pageSize int, txnType string) ([]models.AffiliateTransaction, int64, error) {
	affiliate, err := s.repo.GetUserByUserID(userID)
	if err != nil {
		return nil, 0, err
	}
	if affiliate == nil {
		return []models.AffiliateTransaction{}, 0, nil
	}
	return s.repo.ListTransactions(repository.TransactionListFilter{
		Page:            page,
		PageSize:        pageSize,
		AffiliateUserID: affiliate.ID,
		Type:            strings.TrimSpace(txnType),
	})
}

// ListUserOrders 用户推广订单记录
func (s *AffiliateService) ListUserOrders(userID uint, page, pageSize int, status string) ([]models.AffiliateOrder, int64, error) {
	affiliate, err := s.repo.GetUserByUserID(userID)
	if err != nil {
		return nil, 0, err
	}
	if affiliate == nil {
		return []models.AffiliateOrder{}, 0, nil
	}
	return s.repo.ListOrders(repository.AffiliateOrderListFilter{
		Page:            page,
		PageSize:        pageSize,
		AffiliateUserID: affiliate.ID,
		Status:          strings.TrimSpace(status),
	})
}

// ListAdminUsers 管理端推广账户列表
func (s *AffiliateService) ListAdminUsers(filter repository.AffiliateUserListFilter) ([]models.AffiliateUser, int64, error) {
	return s.repo.ListUsers(filter)
}

// ListAdminOrders 管理端推广订单列表
func (s *AffiliateService) ListAdminOrders(filter repository.AffiliateOrderListFilter) ([]models.AffiliateOrder, int64, error) {
	return s.repo.ListOrders(filter)
}

// ListAdminWithdrawals 管理端提现列表
func (s *AffiliateService) ListAdminWithdrawals(filter repository.WithdrawalListFilter) ([]models.AffiliateWithdrawal, int64, error) {
	return s.repo.ListWithdrawals(filter)
}

func normalizeAffiliateCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// generateAffiliateCode 生成推广码：固定前缀 + UUID 前若干位
func generateAffiliateCode() string {
	compact := strings.ReplaceAll(uuid.NewString(), "-", "")
	return constants.AffiliateCodePrefix + strings.ToUpper(compact[:affiliateCodeSuffixLength])
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
