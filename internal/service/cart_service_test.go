package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/models"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:cart_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	svc := NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db))
	return svc, db
}

func TestCartSetItemValidations(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	user := createOrderTestUser(t, db, "cart-guards@example.com")
	product := createTestProduct(t, db, "emerald-pendant", "1500.00", 4)

	if _, err := svc.SetItem(user.ID, product.ID, 0); !errors.Is(err, ErrQuantityInvalid) {
		t.Fatalf("expected ErrQuantityInvalid for zero quantity, got %v", err)
	}
	if _, err := svc.SetItem(user.ID, product.ID, 100); !errors.Is(err, ErrQuantityInvalid) {
		t.Fatalf("expected ErrQuantityInvalid above per-item cap, got %v", err)
	}
	if _, err := svc.SetItem(user.ID, 99999, 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if _, err := svc.SetItem(user.ID, product.ID, 5); !errors.Is(err, ErrProductOutOfStock) {
		t.Fatalf("expected ErrProductOutOfStock, got %v", err)
	}

	if err := db.Model(&models.Product{}).Where("id = ?", product.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate product failed: %v", err)
	}
	if _, err := svc.SetItem(user.ID, product.ID, 1); !errors.Is(err, ErrProductInactive) {
		t.Fatalf("expected ErrProductInactive, got %v", err)
	}
}

func TestCartSetItemUpsertsQuantity(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	user := createOrderTestUser(t, db, "cart-upsert@example.com")
	product := createTestProduct(t, db, "emerald-ring", "2200.00", 10)

	if _, err := svc.SetItem(user.ID, product.ID, 2); err != nil {
		t.Fatalf("first set failed: %v", err)
	}
	if _, err := svc.SetItem(user.ID, product.ID, 5); err != nil {
		t.Fatalf("second set failed: %v", err)
	}

	items, err := svc.List(user.ID)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one cart row, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5 after upsert, got %d", items[0].Quantity)
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	user := createOrderTestUser(t, db, "cart-clear@example.com")
	first := createTestProduct(t, db, "emerald-studs", "800.00", 10)
	second := createTestProduct(t, db, "emerald-chain", "1100.00", 10)

	if _, err := svc.SetItem(user.ID, first.ID, 1); err != nil {
		t.Fatalf("set first failed: %v", err)
	}
	if _, err := svc.SetItem(user.ID, second.ID, 2); err != nil {
		t.Fatalf("set second failed: %v", err)
	}

	if err := svc.RemoveItem(user.ID, first.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	items, err := svc.List(user.ID)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 1 || items[0].ProductID != second.ID {
		t.Fatalf("expected only second product to remain, got %+v", items)
	}

	if err := svc.Clear(user.ID); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	items, err = svc.List(user.ID)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart after clear, got %d rows", len(items))
	}
}

func TestCartListForUnknownUserIsEmpty(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	items, err := svc.List(0)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %d rows", len(items))
	}
}
