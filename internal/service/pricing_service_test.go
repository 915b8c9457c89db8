package service

import (
	"errors"
	"testing"

	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/config"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/constants"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/models"
)

func newTestPricingService(t *testing.T) *PricingService {
	t.Helper()

	svc, err := NewPricingService(config.ShopConfig{
		TaxRate:               "0.0665",
		ShippingFlatFee:       "50.00",
		FreeShippingThreshold: "500.00",
	})
	if err != nil {
		t.Fatalf("new pricing service failed: %v", err)
	}
	return svc
}

func mustMoney(t *testing.T, raw string) models.Money {
	t.Helper()

	money, err := models.NewMoneyFromString(raw)
	if err != nil {
		t.Fatalf("parse money %q failed: %v", raw, err)
	}
	return money
}

func TestComputeTotalsTaxRoundingHalfAwayFromZero(t *testing.T) {
	svc := newTestPricingService(t)

	totals, err := svc.ComputeTotals([]PricingLine{
		{ProductID: 1, UnitPrice: mustMoney(t, "450.00"), Quantity: 1},
	}, nil)
	if err != nil {
		t.Fatalf("compute totals failed: %v", err)
	}

	if got := totals.Subtotal.String(); got != "450.00" {
		t.Fatalf("expected subtotal 450.00, got %s", got)
	}
	if got := totals.Shipping.String(); got != "50.00" {
		t.Fatalf("expected flat shipping 50.00 below threshold, got %s", got)
	}
	// 450.00 × 0.0665 = 29.925，远离零方向入为 29.93
	if got := totals.Tax.String(); got != "29.93" {
		t.Fatalf("expected tax 29.93, got %s", got)
	}
	if got := totals.Total.String(); got != "529.93" {
		t.Fatalf("expected total 529.93, got %s", got)
	}
}

func TestComputeTotalsFreeShippingAtThreshold(t *testing.T) {
	svc := newTestPricingService(t)

	totals, err := svc.ComputeTotals([]PricingLine{
		{ProductID: 1, UnitPrice: mustMoney(t, "500.00"), Quantity: 1},
	}, nil)
	if err != nil {
		t.Fatalf("compute totals failed: %v", err)
	}
	if !totals.Shipping.Decimal.IsZero() {
		t.Fatalf("expected free shipping at threshold, got %s", totals.Shipping.String())
	}
}

func TestComputeTotalsPercentageCoupon(t *testing.T) {
	svc := newTestPricingService(t)

	coupon := &models.Coupon{
		Code:     "SAVE10",
		Type:     constants.CouponTypePercentage,
		Value:    mustMoney(t, "10"),
		IsActive: true,
	}
	totals, err := svc.ComputeTotals([]PricingLine{
		{ProductID: 1, UnitPrice: mustMoney(t, "1000.00"), Quantity: 1},
	}, coupon)
	if err != nil {
		t.Fatalf("compute totals failed: %v", err)
	}
	if got := totals.Discount.String(); got != "100.00" {
		t.Fatalf("expected 10%% of 1000 = 100.00, got %s", got)
	}
}

func TestComputeTotalsFixedCouponCappedAtSubtotal(t *testing.T) {
	svc := newTestPricingService(t)

	coupon := &models.Coupon{
		Code:     "BIGFIX",
		Type:     constants.CouponTypeFixed,
		Value:    mustMoney(t, "300.00"),
		IsActive: true,
	}
	totals, err := svc.ComputeTotals([]PricingLine{
		{ProductID: 1, UnitPrice: mustMoney(t, "120.00"), Quantity: 1},
	}, coupon)
	if err != nil {
		t.Fatalf("compute totals failed: %v", err)
	}
	if got := totals.Discount.String(); got != "120.00" {
		t.Fatalf("expected fixed discount capped at subtotal 120.00, got %s", got)
	}
	if totals.Total.Decimal.IsNegative() {
		t.Fatalf("total must not be negative, got %s", totals.Total.String())
	}
}

func TestComputeTotalsRejectsZeroQuantity(t *testing.T) {
	svc := newTestPricingService(t)

	_, err := svc.ComputeTotals([]PricingLine{
		{ProductID: 1, UnitPrice: mustMoney(t, "10.00"), Quantity: 0},
	}, nil)
	if !errors.Is(err, ErrQuantityInvalid) {
		t.Fatalf("expected ErrQuantityInvalid, got %v", err)
	}
}
