package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/config"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/constants"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/models"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:order_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Address{},
		&models.Coupon{},
		&models.Order{},
		&models.OrderItem{},
		&models.AffiliateProgram{},
		&models.AffiliateUser{},
		&models.AffiliateOrder{},
		&models.AffiliateWithdrawal{},
		&models.AffiliateTransaction{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	pricingService, err := NewPricingService(config.ShopConfig{
		TaxRate:               "0.0665",
		ShippingFlatFee:       "50.00",
		FreeShippingThreshold: "500.00",
	})
	if err != nil {
		t.Fatalf("new pricing service failed: %v", err)
	}
	couponRepo := repository.NewCouponRepository(db)
	affiliateService, err := NewAffiliateService(
		repository.NewAffiliateRepository(db),
		repository.NewUserRepository(db),
		config.AffiliateConfig{CommissionRate: "2.00", MinWithdrawal: "1000.00", CookieDays: 30},
	)
	if err != nil {
		t.Fatalf("new affiliate service failed: %v", err)
	}

	svc := NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewProductRepository(db),
		couponRepo,
		repository.NewAddressRepository(db),
		pricingService,
		NewCouponService(couponRepo),
		affiliateService,
		"",
	)
	return svc, db
}

func createOrderTestUser(t *testing.T, db *gorm.DB, email string) models.User {
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

func createTestAddress(t *testing.T, db *gorm.DB, userID uint) models.Address {
	t.Helper()

	row := models.Address{
		UserID:     userID,
		FullName:   "Asha Verma",
		Phone:      "9000000001",
		Line1:      "12 MG Road",
		City:       "Jaipur",
		State:      "Rajasthan",
		PostalCode: "302001",
		Country:    "India",
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("create address failed: %v", err)
	}
	return row
}

func createTestProduct(t *testing.T, db *gorm.DB, slug, price string, stock int) models.Product {
	t.Helper()

	category := models.Category{Slug: slug + "-cat", Name: "Gemstones", IsActive: true}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	unitPrice, err := models.NewMoneyFromString(price)
	if err != nil {
		t.Fatalf("parse price failed: %v", err)
	}
	row := models.Product{
		CategoryID: category.ID,
		Slug:       slug,
		Name:       "Emerald " + slug,
		SKU:        "SKU-" + strings.ToUpper(slug),
		Price:      unitPrice,
		Stock:      stock,
		IsActive:   true,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return row
}

func addCartItem(t *testing.T, db *gorm.DB, userID, productID uint, quantity int) {
	t.Helper()

	row := models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("create cart item failed: %v", err)
	}
}

func createOrderTestCoupon(t *testing.T, db *gorm.DB, code, couponType, value string, maxUses int) models.Coupon {
	t.Helper()

	amount, err := models.NewMoneyFromString(value)
	if err != nil {
		t.Fatalf("parse coupon value failed: %v", err)
	}
	row := models.Coupon{
		Code:        code,
		Type:        couponType,
		Value:       amount,
		MinPurchase: models.MoneyZero(),
		MaxUses:     maxUses,
		IsActive:    true,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}
	return row
}

func TestCreateOrderHappyPath(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	user := createOrderTestUser(t, db, "checkout@example.com")
	address := createTestAddress(t, db, user.ID)
	product := createTestProduct(t, db, "ring", "225.00", 10)
	addCartItem(t, db, user.ID, product.ID, 2)
	createOrderTestCoupon(t, db, "WELCOME10", constants.CouponTypePercentage, "10.00", 5)

	order, events, err := svc.CreateOrder(user.ID, CreateOrderInput{
		AddressID:     address.ID,
		PaymentMethod: constants.PaymentMethodCOD,
		CouponCode:    "welcome10",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if order.Status != constants.OrderStatusPending || order.PaymentStatus != constants.PaymentStatusPending {
		t.Fatalf("unexpected initial state: %s/%s", order.Status, order.PaymentStatus)
	}
	if !strings.HasPrefix(order.OrderNo, constants.OrderNoPrefix) {
		t.Fatalf("expected order no prefix %s, got %s", constants.OrderNoPrefix, order.OrderNo)
	}
	if order.Currency != constants.SiteCurrencyDefault {
		t.Fatalf("expected default currency, got %s", order.Currency)
	}
	// 450 小计；45 折扣；不足 500 收运费 50；税 29.93
	if order.Subtotal.String() != "450.00" ||
		order.Discount.String() != "45.00" ||
		order.ShippingCost.String() != "50.00" ||
		order.Tax.String() != "29.93" ||
		order.Total.String() != "484.93" {
		t.Fatalf("unexpected totals: subtotal=%s discount=%s shipping=%s tax=%s total=%s",
			order.Subtotal, order.Discount, order.ShippingCost, order.Tax, order.Total)
	}
	if order.ShipFullName != address.FullName || order.ShipCity != address.City {
		t.Fatalf("expected address snapshot, got %+v", order)
	}
	if len(order.Items) != 1 {
		t.Fatalf("expected one order item, got %d", len(order.Items))
	}
	item := order.Items[0]
	if item.ProductName != product.Name || item.UnitPrice.String() != "225.00" || item.LineTotal.String() != "450.00" {
		t.Fatalf("unexpected item snapshot %+v", item)
	}

	var coupon models.Coupon
	if err := db.Where("code = ?", "WELCOME10").First(&coupon).Error; err != nil {
		t.Fatalf("reload coupon failed: %v", err)
	}
	if coupon.UsesCount != 1 {
		t.Fatalf("expected uses_count 1, got %d", coupon.UsesCount)
	}

	var cartCount int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount).Error; err != nil {
		t.Fatalf("count cart failed: %v", err)
	}
	if cartCount != 0 {
		t.Fatalf("expected cart cleared, got %d rows", cartCount)
	}

	if len(events) != 1 || events[0].Task != constants.TaskOrderCreatedEmail || events[0].OrderID != order.ID {
		t.Fatalf("expected order created event, got %+v", events)
	}
}

func TestCreateOrderRequiresCompleteAddress(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	user := createOrderTestUser(t, db, "address@example.com")
	incomplete := models.Address{UserID: user.ID, FullName: "Asha", Phone: "9000000001", Line1: "12 MG Road"}
	if err := db.Create(&incomplete).Error; err != nil {
		t.Fatalf("create address failed: %v", err)
	}
	product := createTestProduct(t, db, "pendant", "100.00", 5)
	addCartItem(t, db, user.ID, product.ID, 1)

	_, _, err := svc.CreateOrder(user.ID, CreateOrderInput{
		AddressID:     incomplete.ID,
		PaymentMethod: constants.PaymentMethodCOD,
	})
	if !errors.Is(err, ErrAddressIncomplete) {
		t.Fatalf("expected ErrAddressIncomplete, got %v", err)
	}

	_, _, err = svc.CreateOrder(user.ID, CreateOrderInput{
		AddressID:     incomplete.ID + 100,
		PaymentMethod: constants.PaymentMethodCOD,
	})
	if !errors.Is(err, ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}
}

func TestCreateOrderRejectsEmptyCartAndBadMethod(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	user := createOrderTestUser(t, db, "empty@example.com")
	address := createTestAddress(t, db, user.ID)

	_, _, err := svc.CreateOrder(user.ID, CreateOrderInput{
		AddressID:     address.ID,
		PaymentMethod: "crypto",
	})
	if !errors.Is(err, ErrPaymentMethodInvalid) {
		t.Fatalf("expected ErrPaymentMethodInvalid, got %v", err)
	}

	_, _, err = svc.CreateOrder(user.ID, CreateOrderInput{
		AddressID:     address.ID,
		PaymentMethod: constants.PaymentMethodUPI,
	})
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}

func TestCreateOrderRejectsStockShortage(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	user := createOrderTestUser(t, db, "stock@example.com")
	address := createTestAddress(t, db, user.ID)
	product := createTestProduct(t, db, "bracelet", "80.00", 1)
	addCartItem(t, db, user.ID, product.ID, 3)

	_, _, err := svc.CreateOrder(user.ID, CreateOrderInput{
		AddressID:     address.ID,
		PaymentMethod: constants.PaymentMethodCOD,
	})
	if !errors.Is(err, ErrProductOutOfStock) {
		t.Fatalf("expected ErrProductOutOfStock, got %v", err)
	}
}

func TestCreateOrderWithAffiliateCode(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	buyer := createOrderTestUser(t, db, "buyer@example.com")
	promoter := createOrderTestUser(t, db, "promoter@example.com")
	affiliate := createTestAffiliate(t, db, promoter.ID, "ES-PRM001", constants.AffiliateStatusActive, "0", "0")
	address := createTestAddress(t, db, buyer.ID)
	product := createTestProduct(t, db, "necklace", "600.00", 5)
	addCartItem(t, db, buyer.ID, product.ID, 1)

	order, _, err := svc.CreateOrder(buyer.ID, CreateOrderInput{
		AddressID:     address.ID,
		PaymentMethod: constants.PaymentMethodBankTransfer,
		AffiliateCode: "es-prm001",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if order.AffiliateCode != affiliate.Code {
		t.Fatalf("expected affiliate code snapshot %s, got %s", affiliate.Code, order.AffiliateCode)
	}
	// 600 达到免运费门槛；税 39.90；佣金按 2% 待确认
	if order.ShippingCost.String() != "0.00" || order.Total.String() != "639.90" {
		t.Fatalf("unexpected totals shipping=%s total=%s", order.ShippingCost, order.Total)
	}

	var affiliateOrder models.AffiliateOrder
	if err := db.Where("order_id = ?", order.ID).First(&affiliateOrder).Error; err != nil {
		t.Fatalf("load affiliate order failed: %v", err)
	}
	if affiliateOrder.Status != constants.AffiliateOrderStatusPending {
		t.Fatalf("expected pending affiliate order, got %s", affiliateOrder.Status)
	}
	if affiliateOrder.CommissionAmount.String() != "12.80" {
		t.Fatalf("expected commission 12.80 (2%% of 639.90), got %s", affiliateOrder.CommissionAmount)
	}

	var reloaded models.AffiliateUser
	if err := db.First(&reloaded, affiliate.ID).Error; err != nil {
		t.Fatalf("reload affiliate failed: %v", err)
	}
	if reloaded.TotalReferrals != 1 {
		t.Fatalf("expected total referrals 1, got %d", reloaded.TotalReferrals)
	}
}

func TestCreateOrderIgnoresUnknownAndSelfAffiliateCode(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	user := createOrderTestUser(t, db, "self@example.com")
	createTestAffiliate(t, db, user.ID, "ES-SLF001", constants.AffiliateStatusActive, "0", "0")
	address := createTestAddress(t, db, user.ID)
	product := createTestProduct(t, db, "earrings", "150.00", 5)
	addCartItem(t, db, user.ID, product.ID, 1)

	// 自推不计佣，未知推广码同样静默忽略
	order, _, err := svc.CreateOrder(user.ID, CreateOrderInput{
		AddressID:     address.ID,
		PaymentMethod: constants.PaymentMethodCOD,
		AffiliateCode: "ES-SLF001",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if order.AffiliateCode != "" {
		t.Fatalf("self-referral must not record a code, got %s", order.AffiliateCode)
	}

	var count int64
	if err := db.Model(&models.AffiliateOrder{}).Count(&count).Error; err != nil {
		t.Fatalf("count affiliate orders failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no affiliate order, got %d", count)
	}
}

func TestOrderSnapshotSurvivesProductChanges(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	user := createOrderTestUser(t, db, "snapshot@example.com")
	address := createTestAddress(t, db, user.ID)
	product := createTestProduct(t, db, "brooch", "200.00", 5)
	addCartItem(t, db, user.ID, product.ID, 1)

	order, _, err := svc.CreateOrder(user.ID, CreateOrderInput{
		AddressID:     address.ID,
		PaymentMethod: constants.PaymentMethodCOD,
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	newPrice, _ := models.NewMoneyFromString("999.00")
	if err := db.Model(&models.Product{}).Where("id = ?", product.ID).
		Updates(map[string]interface{}{"price": newPrice, "name": "Renamed"}).Error; err != nil {
		t.Fatalf("update product failed: %v", err)
	}

	reloaded, err := svc.GetUserOrder(user.ID, order.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if reloaded.Items[0].UnitPrice.String() != "200.00" || reloaded.Items[0].ProductName != product.Name {
		t.Fatalf("snapshot must not follow product changes: %+v", reloaded.Items[0])
	}
	if reloaded.Total.String() != order.Total.String() {
		t.Fatalf("order total must stay frozen: %s vs %s", reloaded.Total, order.Total)
	}
}

func createPlainOrder(t *testing.T, svc *OrderService, db *gorm.DB, email string) (models.User, *models.Order) {
	t.Helper()

	user := createOrderTestUser(t, db, email)
	address := createTestAddress(t, db, user.ID)
	product := createTestProduct(t, db, "stone-"+strings.Split(email, "@")[0], "300.00", 5)
	addCartItem(t, db, user.ID, product.ID, 1)

	order, _, err := svc.CreateOrder(user.ID, CreateOrderInput{
		AddressID:     address.ID,
		PaymentMethod: constants.PaymentMethodCOD,
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return user, order
}

func TestUpdateStatusTransitionMatrix(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	_, order := createPlainOrder(t, svc, db, "matrix@example.com")

	// pending 不能直接 shipped / delivered
	for _, next := range []string{constants.OrderStatusShipped, constants.OrderStatusDelivered} {
		if _, _, err := svc.UpdateStatus(order.ID, next); !errors.Is(err, ErrInvalidStateTransition) {
			t.Fatalf("pending -> %s must fail, got %v", next, err)
		}
	}
	if _, _, err := svc.UpdateStatus(order.ID, "archived"); !errors.Is(err, ErrInvalidStateTransition) {
		t.Fatalf("unknown status must fail")
	}

	processing, events, err := svc.UpdateStatus(order.ID, constants.OrderStatusProcessing)
	if err != nil {
		t.Fatalf("to processing failed: %v", err)
	}
	if processing.PaymentStatus != constants.PaymentStatusPaid {
		t.Fatalf("expected paid payment status, got %s", processing.PaymentStatus)
	}
	if len(events) != 1 || events[0].Task != constants.TaskOrderStatusEmail || events[0].Status != constants.OrderStatusProcessing {
		t.Fatalf("expected status event, got %+v", events)
	}

	shipped, _, err := svc.UpdateStatus(order.ID, constants.OrderStatusShipped)
	if err != nil || shipped.ShippedAt == nil {
		t.Fatalf("to shipped failed: %v shipped_at=%v", err, shipped)
	}
	delivered, _, err := svc.UpdateStatus(order.ID, constants.OrderStatusDelivered)
	if err != nil || delivered.DeliveredAt == nil {
		t.Fatalf("to delivered failed: %v", err)
	}

	// delivered 只能 refunded
	if _, _, err := svc.UpdateStatus(order.ID, constants.OrderStatusCancelled); !errors.Is(err, ErrInvalidStateTransition) {
		t.Fatalf("delivered -> cancelled must fail, got %v", err)
	}
	refunded, _, err := svc.UpdateStatus(order.ID, constants.OrderStatusRefunded)
	if err != nil || refunded.PaymentStatus != constants.PaymentStatusRefunded {
		t.Fatalf("to refunded failed: %v", err)
	}
	// refunded 为终态
	if _, _, err := svc.UpdateStatus(order.ID, constants.OrderStatusPending); !errors.Is(err, ErrInvalidStateTransition) {
		t.Fatalf("refunded must be terminal, got %v", err)
	}
}

func TestDeliveredOrderCreditsAffiliate(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	buyer := createOrderTestUser(t, db, "deliver-buyer@example.com")
	promoter := createOrderTestUser(t, db, "deliver-promoter@example.com")
	affiliate := createTestAffiliate(t, db, promoter.ID, "ES-DLV001", constants.AffiliateStatusActive, "0", "0")
	address := createTestAddress(t, db, buyer.ID)
	product := createTestProduct(t, db, "choker", "1000.00", 5)
	addCartItem(t, db, buyer.ID, product.ID, 1)

	order, _, err := svc.CreateOrder(buyer.ID, CreateOrderInput{
		AddressID:     address.ID,
		PaymentMethod: constants.PaymentMethodUPI,
		AffiliateCode: affiliate.Code,
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	for _, next := range []string{constants.OrderStatusProcessing, constants.OrderStatusShipped, constants.OrderStatusDelivered} {
		if _, _, err := svc.UpdateStatus(order.ID, next); err != nil {
			t.Fatalf("to %s failed: %v", next, err)
		}
	}

	var affiliateOrder models.AffiliateOrder
	if err := db.Where("order_id = ?", order.ID).First(&affiliateOrder).Error; err != nil {
		t.Fatalf("load affiliate order failed: %v", err)
	}
	if affiliateOrder.Status != constants.AffiliateOrderStatusCompleted {
		t.Fatalf("expected completed affiliate order, got %s", affiliateOrder.Status)
	}

	var reloaded models.AffiliateUser
	if err := db.First(&reloaded, affiliate.ID).Error; err != nil {
		t.Fatalf("reload affiliate failed: %v", err)
	}
	if !reloaded.TotalEarnings.Decimal.Equal(affiliateOrder.CommissionAmount.Decimal) {
		t.Fatalf("expected earnings %s, got %s", affiliateOrder.CommissionAmount, reloaded.TotalEarnings)
	}
}

func TestCancelledOrderCancelsAffiliate(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	buyer := createOrderTestUser(t, db, "cancel-buyer@example.com")
	promoter := createOrderTestUser(t, db, "cancel-promoter@example.com")
	affiliate := createTestAffiliate(t, db, promoter.ID, "ES-CXL001", constants.AffiliateStatusActive, "0", "0")
	address := createTestAddress(t, db, buyer.ID)
	product := createTestProduct(t, db, "anklet", "400.00", 5)
	addCartItem(t, db, buyer.ID, product.ID, 1)

	order, _, err := svc.CreateOrder(buyer.ID, CreateOrderInput{
		AddressID:     address.ID,
		PaymentMethod: constants.PaymentMethodCOD,
		AffiliateCode: affiliate.Code,
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	cancelled, _, err := svc.UpdateStatus(order.ID, constants.OrderStatusCancelled)
	if err != nil || cancelled.CancelledAt == nil {
		t.Fatalf("cancel failed: %v", err)
	}

	var affiliateOrder models.AffiliateOrder
	if err := db.Where("order_id = ?", order.ID).First(&affiliateOrder).Error; err != nil {
		t.Fatalf("load affiliate order failed: %v", err)
	}
	if affiliateOrder.Status != constants.AffiliateOrderStatusCancelled {
		t.Fatalf("expected cancelled affiliate order, got %s", affiliateOrder.Status)
	}

	var reloaded models.AffiliateUser
	if err := db.First(&reloaded, affiliate.ID).Error; err != nil {
		t.Fatalf("reload affiliate failed: %v", err)
	}
	if !reloaded.TotalEarnings.Decimal.IsZero() {
		t.Fatalf("pending commission must not credit on cancel, got %s", reloaded.TotalEarnings)
	}
}

func TestCancelByUserOnlyWhilePending(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	user, order := createPlainOrder(t, svc, db, "user-cancel@example.com")

	if _, _, err := svc.UpdateStatus(order.ID, constants.OrderStatusProcessing); err != nil {
		t.Fatalf("to processing failed: %v", err)
	}
	if _, _, err := svc.CancelByUser(user.ID, order.ID); !errors.Is(err, ErrInvalidStateTransition) {
		t.Fatalf("non-pending user cancel must fail, got %v", err)
	}

	other, otherOrder := createPlainOrder(t, svc, db, "user-cancel-2@example.com")
	cancelled, _, err := svc.CancelByUser(other.ID, otherOrder.ID)
	if err != nil || cancelled.Status != constants.OrderStatusCancelled {
		t.Fatalf("pending user cancel failed: %v", err)
	}

	// 他人订单不可见
	if _, _, err := svc.CancelByUser(user.ID, otherOrder.ID); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for foreign order, got %v", err)
	}
}

func TestPreviewTotalsMatchesCheckout(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	user := createOrderTestUser(t, db, "preview@example.com")
	address := createTestAddress(t, db, user.ID)
	product := createTestProduct(t, db, "pendant-set", "225.00", 10)
	addCartItem(t, db, user.ID, product.ID, 2)
	createOrderTestCoupon(t, db, "FLAT50", constants.CouponTypeFixed, "50.00", 0)

	preview, err := svc.PreviewTotals(user.ID, "FLAT50")
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}

	order, _, err := svc.CreateOrder(user.ID, CreateOrderInput{
		AddressID:     address.ID,
		PaymentMethod: constants.PaymentMethodCOD,
		CouponCode:    "FLAT50",
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if order.Total.String() != preview.Total.String() ||
		order.Discount.String() != preview.Discount.String() {
		t.Fatalf("preview and checkout totals diverge: preview=%s order=%s", preview.Total, order.Total)
	}
}
