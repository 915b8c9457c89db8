package main

import (
	"fmt"
	"time"

	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/config"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/constants"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/logger"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 默认管理员
	if err := models.InitDefaultAdmin("", ""); err != nil {
		stdLog.Printf("Failed to init default admin: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{Name: "Rings", Slug: "rings", IsActive: true, SortOrder: 300},
		{Name: "Necklaces", Slug: "necklaces", IsActive: true, SortOrder: 200},
		{Name: "Earrings", Slug: "earrings", IsActive: true, SortOrder: 100},
	}

	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Slug)
		}
	}

	// 获取分类ID
	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Where("slug IN ?", []string{"rings", "necklaces", "earrings"}).Find(&categoryList).Error; err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Slug] = cat.ID
	}

	// 添加商品
	products := []models.Product{
		{
			CategoryID:  categoryIDs["rings"],
			Slug:        "emerald-solitaire-ring",
			Name:        "Emerald Solitaire Ring",
			SKU:         "ES-RING-001",
			Description: "Classic solitaire ring with a lab-certified Zambian emerald set in sterling silver.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(2499.00)),
			Stock:       12,
			IsActive:    true,
			SortOrder:   300,
		},
		{
			CategoryID:  categoryIDs["rings"],
			Slug:        "vintage-emerald-band",
			Name:        "Vintage Emerald Band",
			SKU:         "ES-RING-002",
			Description: "Art-deco inspired band with five channel-set emeralds.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(1899.00)),
			Stock:       8,
			IsActive:    true,
			SortOrder:   280,
		},
		{
			CategoryID:  categoryIDs["necklaces"],
			Slug:        "emerald-drop-pendant",
			Name:        "Emerald Drop Pendant",
			SKU:         "ES-NECK-001",
			Description: "Teardrop emerald pendant on an 18-inch silver chain.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(3199.00)),
			Stock:       6,
			IsActive:    true,
			SortOrder:   260,
		},
		{
			CategoryID:  categoryIDs["necklaces"],
			Slug:        "layered-gemstone-necklace",
			Name:        "Layered Gemstone Necklace",
			SKU:         "ES-NECK-002",
			Description: "Two-layer necklace mixing emerald and peridot beads.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(1299.00)),
			Stock:       20,
			IsActive:    true,
			SortOrder:   240,
		},
		{
			CategoryID:  categoryIDs["earrings"],
			Slug:        "emerald-stud-earrings",
			Name:        "Emerald Stud Earrings",
			SKU:         "ES-EAR-001",
			Description: "Everyday studs with 4mm round emeralds.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(899.00)),
			Stock:       30,
			IsActive:    true,
			SortOrder:   220,
		},
		{
			CategoryID:  categoryIDs["earrings"],
			Slug:        "chandelier-emerald-earrings",
			Name:        "Chandelier Emerald Earrings",
			SKU:         "ES-EAR-002",
			Description: "Statement chandelier earrings, limited run.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(4599.00)),
			Stock:       3,
			IsActive:    true,
			SortOrder:   200,
		},
	}

	for _, prod := range products {
		if prod.CategoryID == 0 {
			stdLog.Printf("Skip product %s: category_id missing", prod.Slug)
			continue
		}
		var existing models.Product
		if err := models.DB.Where("slug = ?", prod.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Slug, err)
			} else {
				stdLog.Printf("Created product: %s", prod.Slug)
			}
		} else {
			existing.CategoryID = prod.CategoryID
			existing.Name = prod.Name
			existing.SKU = prod.SKU
			existing.Description = prod.Description
			existing.Price = prod.Price
			existing.Stock = prod.Stock
			existing.IsActive = prod.IsActive
			existing.SortOrder = prod.SortOrder
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update product %s: %v", prod.Slug, err)
			} else {
				stdLog.Printf("Updated product: %s", prod.Slug)
			}
		}
	}

	// 添加优惠券
	now := time.Now()
	welcomeValidTo := now.AddDate(0, 3, 0)
	coupons := []models.Coupon{
		{
			Code:        "WELCOME10",
			Type:        constants.CouponTypePercentage,
			Value:       models.NewMoneyFromDecimal(decimal.NewFromInt(10)),
			MinPurchase: models.NewMoneyFromDecimal(decimal.NewFromInt(500)),
			MaxUses:     0,
			ValidTo:     &welcomeValidTo,
			IsActive:    true,
		},
		{
			Code:        "FLAT100",
			Type:        constants.CouponTypeFixed,
			Value:       models.NewMoneyFromDecimal(decimal.NewFromInt(100)),
			MinPurchase: models.NewMoneyFromDecimal(decimal.NewFromInt(1000)),
			MaxUses:     500,
			IsActive:    true,
		},
	}

	for _, coupon := range coupons {
		var existing models.Coupon
		if err := models.DB.Where("code = ?", coupon.Code).First(&existing).Error; err != nil {
			if err := models.DB.Create(&coupon).Error; err != nil {
				stdLog.Printf("Failed to create coupon %s: %v", coupon.Code, err)
			} else {
				stdLog.Printf("Created coupon: %s", coupon.Code)
			}
		} else {
			stdLog.Printf("Coupon already exists: %s", coupon.Code)
		}
	}

	// 添加推广计划
	commissionRate, err := models.NewMoneyFromString(cfg.Affiliate.CommissionRate)
	if err != nil {
		stdLog.Printf("Invalid affiliate commission rate %q: %v", cfg.Affiliate.CommissionRate, err)
		commissionRate = models.NewMoneyFromDecimal(decimal.NewFromInt(2))
	}
	minWithdrawal, err := models.NewMoneyFromString(cfg.Affiliate.MinWithdrawal)
	if err != nil {
		stdLog.Printf("Invalid affiliate min withdrawal %q: %v", cfg.Affiliate.MinWithdrawal, err)
		minWithdrawal = models.NewMoneyFromDecimal(decimal.NewFromInt(1000))
	}

	var program models.AffiliateProgram
	if err := models.DB.Where("is_active = ?", true).First(&program).Error; err != nil {
		program = models.AffiliateProgram{
			Name:           "Emerald Secrets Referral Program",
			CommissionRate: commissionRate,
			MinWithdrawal:  minWithdrawal,
			CookieDays:     cfg.Affiliate.CookieDays,
			IsActive:       true,
		}
		if err := models.DB.Create(&program).Error; err != nil {
			stdLog.Printf("Failed to create affiliate program: %v", err)
		} else {
			stdLog.Println("Created affiliate program")
		}
	} else {
		stdLog.Println("Affiliate program already exists")
	}

	fmt.Println("\n✅ Seed data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- Default admin (admin/admin123 unless already present)")
	fmt.Println("- 3 Categories")
	fmt.Println("- 6 Products")
	fmt.Println("- 2 Coupons (WELCOME10, FLAT100)")
	fmt.Println("- 1 Affiliate program")
}
