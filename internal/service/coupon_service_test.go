package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/models"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCouponServiceTest(t *testing.T) (*CouponService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:coupon_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Coupon{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewCouponService(repository.NewCouponRepository(db)), db
}

func createCouponRow(t *testing.T, db *gorm.DB, coupon models.Coupon) models.Coupon {
	t.Helper()

	if err := db.Create(&coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}
	return coupon
}

func TestCouponResolveNormalizesCode(t *testing.T) {
	svc, db := setupCouponServiceTest(t)
	value, _ := models.NewMoneyFromString("10")
	createCouponRow(t, db, models.Coupon{
		Code:     "SPRING10",
		Type:     "percentage",
		Value:    value,
		IsActive: true,
	})

	coupon, err := svc.Resolve("  spring10 ", decimal.NewFromInt(200))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if coupon.Code != "SPRING10" {
		t.Fatalf("unexpected coupon code: %s", coupon.Code)
	}
}

func TestCouponResolveRejectsBlankAndUnknown(t *testing.T) {
	svc, _ := setupCouponServiceTest(t)

	if _, err := svc.Resolve("   ", decimal.NewFromInt(100)); !errors.Is(err, ErrCouponInvalid) {
		t.Fatalf("expected ErrCouponInvalid, got %v", err)
	}
	if _, err := svc.Resolve("NOPE", decimal.NewFromInt(100)); !errors.Is(err, ErrCouponNotFound) {
		t.Fatalf("expected ErrCouponNotFound, got %v", err)
	}
}

func TestValidateCouponGuards(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)
	value, _ := models.NewMoneyFromString("50")
	minPurchase, _ := models.NewMoneyFromString("500")

	base := models.Coupon{
		Code:        "GUARD",
		Type:        "fixed",
		Value:       value,
		MinPurchase: minPurchase,
		IsActive:    true,
	}

	inactive := base
	inactive.IsActive = false
	if err := ValidateCoupon(&inactive, decimal.NewFromInt(600), now); !errors.Is(err, ErrCouponInactive) {
		t.Fatalf("expected ErrCouponInactive, got %v", err)
	}

	notStarted := base
	notStarted.ValidFrom = &future
	if err := ValidateCoupon(&notStarted, decimal.NewFromInt(600), now); !errors.Is(err, ErrCouponNotStarted) {
		t.Fatalf("expected ErrCouponNotStarted, got %v", err)
	}

	expired := base
	expired.ValidTo = &past
	if err := ValidateCoupon(&expired, decimal.NewFromInt(600), now); !errors.Is(err, ErrCouponExpired) {
		t.Fatalf("expected ErrCouponExpired, got %v", err)
	}

	exhausted := base
	exhausted.MaxUses = 3
	exhausted.UsesCount = 3
	if err := ValidateCoupon(&exhausted, decimal.NewFromInt(600), now); !errors.Is(err, ErrCouponUsageLimit) {
		t.Fatalf("expected ErrCouponUsageLimit, got %v", err)
	}

	if err := ValidateCoupon(&base, decimal.NewFromInt(499), now); !errors.Is(err, ErrCouponMinPurchase) {
		t.Fatalf("expected ErrCouponMinPurchase, got %v", err)
	}

	if err := ValidateCoupon(&base, decimal.NewFromInt(500), now); err != nil {
		t.Fatalf("coupon at exact threshold should validate, got %v", err)
	}
}

func TestClaimCouponUseRechecksCapUnderLock(t *testing.T) {
	_, db := setupCouponServiceTest(t)
	value, _ := models.NewMoneyFromString("100")
	coupon := createCouponRow(t, db, models.Coupon{
		Code:     "LASTONE",
		Type:     "fixed",
		Value:    value,
		MaxUses:  1,
		IsActive: true,
	})

	// 第一次占用成功并计数
	err := db.Transaction(func(tx *gorm.DB) error {
		return claimCouponUse(repository.NewCouponRepository(tx), coupon.ID)
	})
	if err != nil {
		t.Fatalf("first claim failed: %v", err)
	}

	// 上限已满时，即使结算前校验读到的是旧计数，锁内复核也必须拒绝
	err = db.Transaction(func(tx *gorm.DB) error {
		return claimCouponUse(repository.NewCouponRepository(tx), coupon.ID)
	})
	if !errors.Is(err, ErrCouponUsageLimit) {
		t.Fatalf("expected ErrCouponUsageLimit, got %v", err)
	}

	var stored models.Coupon
	if err := db.First(&stored, coupon.ID).Error; err != nil {
		t.Fatalf("reload coupon failed: %v", err)
	}
	if stored.UsesCount != 1 {
		t.Fatalf("expected uses_count 1 after rejected claim, got %d", stored.UsesCount)
	}
}

func TestClaimCouponUseUnknownCoupon(t *testing.T) {
	_, db := setupCouponServiceTest(t)

	err := db.Transaction(func(tx *gorm.DB) error {
		return claimCouponUse(repository.NewCouponRepository(tx), 9999)
	})
	if !errors.Is(err, ErrCouponNotFound) {
		t.Fatalf("expected ErrCouponNotFound, got %v", err)
	}
}

func TestValidateCouponUnlimitedUses(t *testing.T) {
	value, _ := models.NewMoneyFromString("10")
	coupon := models.Coupon{
		Code:      "FOREVER",
		Type:      "percentage",
		Value:     value,
		MaxUses:   0,
		UsesCount: 10000,
		IsActive:  true,
	}
	if err := ValidateCoupon(&coupon, decimal.NewFromInt(100), time.Now()); err != nil {
		t.Fatalf("max_uses=0 should mean unlimited, got %v", err)
	}
}
