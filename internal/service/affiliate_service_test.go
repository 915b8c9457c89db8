package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/config"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/constants"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/models"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupAffiliateServiceTest(t *testing.T) (*AffiliateService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:affiliate_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.AffiliateProgram{},
		&models.AffiliateUser{},
		&models.AffiliateClick{},
		&models.AffiliateOrder{},
		&models.AffiliateWithdrawal{},
		&models.AffiliateTransaction{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	svc, err := NewAffiliateService(
		repository.NewAffiliateRepository(db),
		repository.NewUserRepository(db),
		config.AffiliateConfig{CommissionRate: "2.00", MinWithdrawal: "1000.00", CookieDays: 30},
	)
	if err != nil {
		t.Fatalf("new affiliate service failed: %v", err)
	}
	return svc, db
}

func createAffiliateTestUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()

	row := models.User{
		Email:        email,
		PasswordHash: "hash",
		DisplayName:  "tester",
		Status:       constants.UserStatusActive,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return row
}

func createTestAffiliate(t *testing.T, db *gorm.DB, userID uint, code, status, earnings, withdrawn string) models.AffiliateUser {
	t.Helper()

	totalEarnings, err := models.NewMoneyFromString(earnings)
	if err != nil {
		t.Fatalf("parse earnings failed: %v", err)
	}
	totalWithdrawn, err := models.NewMoneyFromString(withdrawn)
	if err != nil {
		t.Fatalf("parse withdrawn failed: %v", err)
	}
	row := models.AffiliateUser{
		UserID:         userID,
		Code:           code,
		Status:         status,
		TotalEarnings:  totalEarnings,
		TotalWithdrawn: totalWithdrawn,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("create affiliate failed: %v", err)
	}
	return row
}

func createTestAffiliateOrder(t *testing.T, db *gorm.DB, affiliateUserID, orderID uint, commission, status string) models.AffiliateOrder {
	t.Helper()

	amount, err := models.NewMoneyFromString(commission)
	if err != nil {
		t.Fatalf("parse commission failed: %v", err)
	}
	row := models.AffiliateOrder{
		AffiliateUserID:  affiliateUserID,
		OrderID:          orderID,
		OrderNo:          fmt.Sprintf("ES2026%06d", orderID),
		OrderAmount:      amount,
		CommissionRate:   amount,
		CommissionAmount: amount,
		Status:           status,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("create affiliate order failed: %v", err)
	}
	return row
}

func TestAffiliateApplyIsIdempotent(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)
	user := createAffiliateTestUser(t, db, "apply@example.com")

	first, events, err := svc.Apply(user.ID, "upi:tester@bank")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if first.Status != constants.AffiliateStatusPending {
		t.Fatalf("expected pending status, got %s", first.Status)
	}
	if len(first.Code) == 0 || first.Code[:len(constants.AffiliateCodePrefix)] != constants.AffiliateCodePrefix {
		t.Fatalf("expected code with prefix %s, got %s", constants.AffiliateCodePrefix, first.Code)
	}
	if len(events) != 1 || events[0].Task != constants.TaskAffiliateStatusEmail {
		t.Fatalf("expected affiliate status event, got %+v", events)
	}

	second, events, err := svc.Apply(user.ID, "ignored")
	if err != nil {
		t.Fatalf("second apply failed: %v", err)
	}
	if second.ID != first.ID || second.Code != first.Code {
		t.Fatalf("expected same account on repeat apply, got %+v vs %+v", second, first)
	}
	if len(events) != 0 {
		t.Fatalf("repeat apply must not emit events, got %+v", events)
	}
}

func TestAffiliateReviewStateGuards(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)
	user := createAffiliateTestUser(t, db, "review@example.com")
	affiliate := createTestAffiliate(t, db, user.ID, "ES-REV001", constants.AffiliateStatusPending, "0", "0")

	approved, _, err := svc.Review(affiliate.ID, "approve")
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if approved.Status != constants.AffiliateStatusActive {
		t.Fatalf("expected active, got %s", approved.Status)
	}

	// active 账户不能再次 approve
	if _, _, err := svc.Review(affiliate.ID, "approve"); !errors.Is(err, ErrInvalidStateTransition) {
		t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
	}

	if _, _, err := svc.Review(affiliate.ID, "freeze"); !errors.Is(err, ErrAffiliateActionInvalid) {
		t.Fatalf("expected ErrAffiliateActionInvalid, got %v", err)
	}

	suspended, _, err := svc.Review(affiliate.ID, "suspend")
	if err != nil || suspended.Status != constants.AffiliateStatusSuspended {
		t.Fatalf("suspend failed: %v status=%v", err, suspended)
	}
	reactivated, _, err := svc.Review(affiliate.ID, "reactivate")
	if err != nil || reactivated.Status != constants.AffiliateStatusActive {
		t.Fatalf("reactivate failed: %v status=%v", err, reactivated)
	}
}

func TestCompleteOrderCreditsExactlyOnce(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)
	user := createAffiliateTestUser(t, db, "complete@example.com")
	affiliate := createTestAffiliate(t, db, user.ID, "ES-CMP001", constants.AffiliateStatusActive, "0", "0")
	order := createTestAffiliateOrder(t, db, affiliate.ID, 101, "25.50", constants.AffiliateOrderStatusConfirmed)

	if err := svc.CompleteOrder(order.ID); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	// 重复调用静默幂等
	if err := svc.CompleteOrder(order.ID); err != nil {
		t.Fatalf("repeat complete must be a no-op: %v", err)
	}

	var reloaded models.AffiliateUser
	if err := db.First(&reloaded, affiliate.ID).Error; err != nil {
		t.Fatalf("reload affiliate failed: %v", err)
	}
	if got := reloaded.TotalEarnings.String(); got != "25.50" {
		t.Fatalf("expected earnings credited once (25.50), got %s", got)
	}

	var txns []models.AffiliateTransaction
	if err := db.Where("affiliate_user_id = ?", affiliate.ID).Find(&txns).Error; err != nil {
		t.Fatalf("load transactions failed: %v", err)
	}
	if len(txns) != 1 {
		t.Fatalf("expected exactly one earning transaction, got %d", len(txns))
	}
	if txns[0].Type != constants.TransactionTypeEarning || txns[0].BalanceAfter.String() != "25.50" {
		t.Fatalf("unexpected transaction %+v", txns[0])
	}
}

func TestCompleteCancelledOrderRejected(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)
	user := createAffiliateTestUser(t, db, "complete-cancelled@example.com")
	affiliate := createTestAffiliate(t, db, user.ID, "ES-CCX001", constants.AffiliateStatusActive, "0", "0")
	order := createTestAffiliateOrder(t, db, affiliate.ID, 102, "10.00", constants.AffiliateOrderStatusCancelled)

	if err := svc.CompleteOrder(order.ID); !errors.Is(err, ErrInvalidStateTransition) {
		t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
	}
}

func TestCancelCompletedOrderReversesExactly(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)
	user := createAffiliateTestUser(t, db, "cancel@example.com")
	affiliate := createTestAffiliate(t, db, user.ID, "ES-CAN001", constants.AffiliateStatusActive, "100.10", "0")
	order := createTestAffiliateOrder(t, db, affiliate.ID, 103, "33.33", constants.AffiliateOrderStatusConfirmed)

	if err := svc.CompleteOrder(order.ID); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if err := svc.CancelOrder(order.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	var reloaded models.AffiliateUser
	if err := db.First(&reloaded, affiliate.ID).Error; err != nil {
		t.Fatalf("reload affiliate failed: %v", err)
	}
	// 入账后回冲，余额精确回到初始值
	if got := reloaded.TotalEarnings.String(); got != "100.10" {
		t.Fatalf("expected earnings restored to 100.10, got %s", got)
	}

	var txns []models.AffiliateTransaction
	if err := db.Where("affiliate_user_id = ?", affiliate.ID).Order("id asc").Find(&txns).Error; err != nil {
		t.Fatalf("load transactions failed: %v", err)
	}
	if len(txns) != 2 {
		t.Fatalf("expected earning + deduction, got %d rows", len(txns))
	}
	if txns[1].Type != constants.TransactionTypeDeduction || txns[1].Amount.String() != "33.33" {
		t.Fatalf("unexpected reversal transaction %+v", txns[1])
	}

	// 再次取消幂等
	if err := svc.CancelOrder(order.ID); err != nil {
		t.Fatalf("repeat cancel must be a no-op: %v", err)
	}
}

func TestCancelPendingOrderSkipsLedger(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)
	user := createAffiliateTestUser(t, db, "cancel-pending@example.com")
	affiliate := createTestAffiliate(t, db, user.ID, "ES-CPX001", constants.AffiliateStatusActive, "50.00", "0")
	order := createTestAffiliateOrder(t, db, affiliate.ID, 104, "5.00", constants.AffiliateOrderStatusPending)

	if err := svc.CancelOrder(order.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	var count int64
	if err := db.Model(&models.AffiliateTransaction{}).Where("affiliate_user_id = ?", affiliate.ID).Count(&count).Error; err != nil {
		t.Fatalf("count transactions failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("pending cancel must not write ledger rows, got %d", count)
	}
}

func TestRequestWithdrawalGuards(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)
	user := createAffiliateTestUser(t, db, "withdraw@example.com")
	createTestAffiliate(t, db, user.ID, "ES-WDR001", constants.AffiliateStatusActive, "1200.00", "0")

	input := func(amount string) WithdrawalRequestInput {
		value, err := decimal.NewFromString(amount)
		if err != nil {
			t.Fatalf("parse amount failed: %v", err)
		}
		return WithdrawalRequestInput{
			Amount:         value,
			PaymentMethod:  "upi",
			PaymentDetails: "tester@bank",
		}
	}

	if _, _, err := svc.RequestWithdrawal(user.ID, input("500.00")); !errors.Is(err, ErrWithdrawalBelowMinimum) {
		t.Fatalf("expected ErrWithdrawalBelowMinimum, got %v", err)
	}
	if _, _, err := svc.RequestWithdrawal(user.ID, input("1300.00")); !errors.Is(err, ErrWithdrawalInsufficient) {
		t.Fatalf("expected ErrWithdrawalInsufficient, got %v", err)
	}

	// 恰好等于最低提现金额可以通过
	created, events, err := svc.RequestWithdrawal(user.ID, input("1000.00"))
	if err != nil {
		t.Fatalf("exact-minimum withdrawal failed: %v", err)
	}
	if created.Status != constants.WithdrawalStatusPending {
		t.Fatalf("expected pending withdrawal, got %s", created.Status)
	}
	if len(events) != 1 || events[0].Task != constants.TaskWithdrawalEmail {
		t.Fatalf("expected withdrawal event, got %+v", events)
	}

	// 在途提现占用额度：1200 - 1000 = 200 < 1000
	if _, _, err := svc.RequestWithdrawal(user.ID, input("1000.00")); !errors.Is(err, ErrWithdrawalInsufficient) {
		t.Fatalf("expected pending withdrawal to reserve balance, got %v", err)
	}
}

func TestRequestWithdrawalRejectsInactiveAccount(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)
	user := createAffiliateTestUser(t, db, "withdraw-pending@example.com")
	createTestAffiliate(t, db, user.ID, "ES-WDP001", constants.AffiliateStatusPending, "5000.00", "0")

	amount, _ := decimal.NewFromString("1000.00")
	_, _, err := svc.RequestWithdrawal(user.ID, WithdrawalRequestInput{
		Amount:         amount,
		PaymentMethod:  "upi",
		PaymentDetails: "tester@bank",
	})
	if !errors.Is(err, ErrAffiliateNotActive) {
		t.Fatalf("expected ErrAffiliateNotActive, got %v", err)
	}
}

func TestMarkWithdrawalPaidOnceOnly(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)
	user := createAffiliateTestUser(t, db, "mark-paid@example.com")
	affiliate := createTestAffiliate(t, db, user.ID, "ES-PAY001", constants.AffiliateStatusActive, "2000.00", "0")

	amount, _ := decimal.NewFromString("1000.00")
	created, _, err := svc.RequestWithdrawal(user.ID, WithdrawalRequestInput{
		Amount:         amount,
		PaymentMethod:  "bank_transfer",
		PaymentDetails: "acc 000111",
	})
	if err != nil {
		t.Fatalf("request withdrawal failed: %v", err)
	}

	paid, _, err := svc.MarkWithdrawalPaid(created.ID)
	if err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}
	if paid.Status != constants.WithdrawalStatusPaid || paid.PaidAt == nil {
		t.Fatalf("expected paid status with timestamp, got %+v", paid)
	}

	if _, _, err := svc.MarkWithdrawalPaid(created.ID); !errors.Is(err, ErrWithdrawalStatusInvalid) {
		t.Fatalf("second mark-paid must fail, got %v", err)
	}

	var reloaded models.AffiliateUser
	if err := db.First(&reloaded, affiliate.ID).Error; err != nil {
		t.Fatalf("reload affiliate failed: %v", err)
	}
	if got := reloaded.TotalWithdrawn.String(); got != "1000.00" {
		t.Fatalf("expected total withdrawn 1000.00, got %s", got)
	}
	if got := reloaded.AvailableBalance().String(); got != "1000.00" {
		t.Fatalf("expected available balance 1000.00, got %s", got)
	}
}

func TestWithdrawalReviewFlow(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)
	user := createAffiliateTestUser(t, db, "review-withdraw@example.com")
	createTestAffiliate(t, db, user.ID, "ES-RVW001", constants.AffiliateStatusActive, "3000.00", "0")

	amount, _ := decimal.NewFromString("1500.00")
	created, _, err := svc.RequestWithdrawal(user.ID, WithdrawalRequestInput{
		Amount:         amount,
		PaymentMethod:  "upi",
		PaymentDetails: "tester@bank",
	})
	if err != nil {
		t.Fatalf("request withdrawal failed: %v", err)
	}

	approved, _, err := svc.ReviewWithdrawal(created.ID, constants.WithdrawalActionApprove, "ok")
	if err != nil || approved.Status != constants.WithdrawalStatusApproved {
		t.Fatalf("approve failed: %v status=%+v", err, approved)
	}
	processing, _, err := svc.ReviewWithdrawal(created.ID, constants.WithdrawalActionProcess, "")
	if err != nil || processing.Status != constants.WithdrawalStatusProcessing {
		t.Fatalf("process failed: %v status=%+v", err, processing)
	}
	// processing 状态不允许 reject
	if _, _, err := svc.ReviewWithdrawal(created.ID, constants.WithdrawalActionReject, "no"); !errors.Is(err, ErrWithdrawalStatusInvalid) {
		t.Fatalf("expected ErrWithdrawalStatusInvalid, got %v", err)
	}
}

func TestTrackClickUnknownCodeIgnored(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)
	user := createAffiliateTestUser(t, db, "click@example.com")
	affiliate := createTestAffiliate(t, db, user.ID, "ES-CLK001", constants.AffiliateStatusActive, "0", "0")

	if err := svc.TrackClick(TrackClickInput{Code: "ES-NOPE99", ClientIP: "1.2.3.4"}); err != nil {
		t.Fatalf("unknown code must be ignored: %v", err)
	}

	if err := svc.TrackClick(TrackClickInput{
		Code:        "es-clk001",
		ClientIP:    "1.2.3.4",
		UserAgent:   "test-agent",
		LandingPath: "/products/emerald-ring",
	}); err != nil {
		t.Fatalf("track click failed: %v", err)
	}

	var clicks int64
	if err := db.Model(&models.AffiliateClick{}).Count(&clicks).Error; err != nil {
		t.Fatalf("count clicks failed: %v", err)
	}
	if clicks != 1 {
		t.Fatalf("expected one click row, got %d", clicks)
	}

	var reloaded models.AffiliateUser
	if err := db.First(&reloaded, affiliate.ID).Error; err != nil {
		t.Fatalf("reload affiliate failed: %v", err)
	}
	if reloaded.TotalClicks != 1 {
		t.Fatalf("expected total clicks 1, got %d", reloaded.TotalClicks)
	}
}

func TestLedgerBalanceAfterChain(t *testing.T) {
	svc, db := setupAffiliateServiceTest(t)
	user := createAffiliateTestUser(t, db, "chain@example.com")
	affiliate := createTestAffiliate(t, db, user.ID, "ES-CHN001", constants.AffiliateStatusActive, "0", "0")

	first := createTestAffiliateOrder(t, db, affiliate.ID, 201, "600.00", constants.AffiliateOrderStatusConfirmed)
	second := createTestAffiliateOrder(t, db, affiliate.ID, 202, "700.00", constants.AffiliateOrderStatusConfirmed)

	if err := svc.CompleteOrder(first.ID); err != nil {
		t.Fatalf("complete first failed: %v", err)
	}
	if err := svc.CompleteOrder(second.ID); err != nil {
		t.Fatalf("complete second failed: %v", err)
	}
	amount, _ := decimal.NewFromString("1000.00")
	if _, _, err := svc.RequestWithdrawal(user.ID, WithdrawalRequestInput{
		Amount:         amount,
		PaymentMethod:  "upi",
		PaymentDetails: "tester@bank",
	}); err != nil {
		t.Fatalf("request withdrawal failed: %v", err)
	}
	var withdrawal models.AffiliateWithdrawal
	if err := db.Where("affiliate_user_id = ?", affiliate.ID).First(&withdrawal).Error; err != nil {
		t.Fatalf("load withdrawal failed: %v", err)
	}
	if _, _, err := svc.MarkWithdrawalPaid(withdrawal.ID); err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}

	var txns []models.AffiliateTransaction
	if err := db.Where("affiliate_user_id = ?", affiliate.ID).Order("id asc").Find(&txns).Error; err != nil {
		t.Fatalf("load transactions failed: %v", err)
	}
	expected := []struct {
		txnType string
		balance string
	}{
		{constants.TransactionTypeEarning, "600.00"},
		{constants.TransactionTypeEarning, "1300.00"},
		{constants.TransactionTypeWithdrawal, "300.00"},
	}
	if len(txns) != len(expected) {
		t.Fatalf("expected %d ledger rows, got %d", len(expected), len(txns))
	}
	for i, want := range expected {
		if txns[i].Type != want.txnType || txns[i].BalanceAfter.String() != want.balance {
			t.Fatalf("ledger row %d mismatch: want %+v, got type=%s balance=%s",
				i, want, txns[i].Type, txns[i].BalanceAfter.String())
		}
	}
}
