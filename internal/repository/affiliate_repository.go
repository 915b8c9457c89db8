package repository

import (
	"errors"

	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AffiliateRepository 推广返利数据访问接口
type AffiliateRepository interface {
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) AffiliateRepository

	GetActiveProgram() (*models.AffiliateProgram, error)
	CreateProgram(program *models.AffiliateProgram) error
	UpdateProgram(program *models.AffiliateProgram) error

	GetUserByID(id uint) (*models.AffiliateUser, error)
	GetUserByIDForUpdate(id uint) (*models.AffiliateUser, error)
	GetUserByUserID(userID uint) (*models.AffiliateUser, error)
	GetUserByCode(code string) (*models.AffiliateUser, error)
	CreateUser(affiliate *models.AffiliateUser) error
	UpdateUser(affiliate *models.AffiliateUser) error
	ListUsers(filter AffiliateUserListFilter) ([]models.AffiliateUser, int64, error)

	CreateClick(click *models.AffiliateClick) error
	IncrementClicks(affiliateUserID uint, delta int) error

	CreateOrder(order *models.AffiliateOrder) error
	UpdateOrder(order *models.AffiliateOrder) error
	GetOrderByID(id uint) (*models.AffiliateOrder, error)
	GetOrderByIDForUpdate(id uint) (*models.AffiliateOrder, error)
	GetOrderByOrderIDForUpdate(orderID uint) (*models.AffiliateOrder, error)
	ListOrders(filter AffiliateOrderListFilter) ([]models.AffiliateOrder, int64, error)

	CreateWithdrawal(withdrawal *models.AffiliateWithdrawal) error
	UpdateWithdrawal(withdrawal *models.AffiliateWithdrawal) error
	GetWithdrawalByID(id uint) (*models.AffiliateWithdrawal, error)
	GetWithdrawalByIDForUpdate(id uint) (*models.AffiliateWithdrawal, error)
	ListWithdrawals(filter WithdrawalListFilter) ([]models.AffiliateWithdrawal, int64, error)
	SumWithdrawalsByStatuses(affiliateUserID uint, statuses []string, excludeID uint) (decimal.Decimal, error)

	CreateTransaction(txn *models.AffiliateTransaction) error
	ListTransactions(filter TransactionListFilter) ([]models.AffiliateTransaction, int64, error)
}

// GormAffiliateRepository GORM 推广返利仓储
type GormAffiliateRepository struct {
	db *gorm.DB
}

// NewAffiliateRepository 创建推广返利仓储
func NewAffiliateRepository(db *gorm.DB) *GormAffiliateRepository {
	return &GormAffiliateRepository{db: db}
}

// WithTx 绑定事务
func (r *GormAffiliateRepository) WithTx(tx *gorm.DB) AffiliateRepository {
	if tx == nil {
		return r
	}
	return &GormAffiliateRepository{db: tx}
}

// Transaction 执行事务
func (r *GormAffiliateRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// GetActiveProgram 获取当前启用的推广计划
func (r *GormAffiliateRepository) GetActiveProgram() (*models.AffiliateProgram, error) {
	var program models.AffiliateProgram
	if err := r.db.Where("is_active = ?", true).Order("id desc").First(&program).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &program, nil
}

// CreateProgram 创建推广计划
func (r *GormAffiliateRepository) CreateProgram(program *models.AffiliateProgram) error {
	return r.db.Create(program).Error
}

// UpdateProgram 更新推广计划
func (r *GormAffiliateRepository) UpdateProgram(program *models.AffiliateProgram) error {
	return r.db.Save(program).Error
}

// GetUserByID 按ID获取推广账户
func (r *GormAffiliateRepository) GetUserByID(id uint) (*models.AffiliateUser, error) {
	var affiliate models.AffiliateUser
	if err := r.db.First(&affiliate, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &affiliate, nil
}

// GetUserByIDForUpdate 按ID获取推广账户并加锁
// 余额变动必须经由该方法取行锁，保证同一账户串行结算。
func (r *GormAffiliateRepository) GetUserByIDForUpdate(id uint) (*models.AffiliateUser, error) {
	var affiliate models.AffiliateUser
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&affiliate, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &affiliate, nil
}

// GetUserByUserID 按用户ID获取推广账户
func (r *GormAffiliateRepository) GetUserByUserID(userID uint) (*models.AffiliateUser, error) {
	var affiliate models.AffiliateUser
	if err := r.db.Where("user_id = ?", userID).First(&affiliate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &affiliate, nil
}

// GetUserByCode 按推广码获取推广账户
func (r *GormAffiliateRepository) GetUserByCode(code string) (*models.AffiliateUser, error) {
	var affiliate models.AffiliateUser
	if err := r.db.Where("code = ?", code).First(&affiliate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &affiliate, nil
}

// CreateUser 创建推广账户
func (r *GormAffiliateRepository) CreateUser(affiliate *models.AffiliateUser) error {
	return r.db.Create(affiliate).Error
}

// UpdateUser 更新推广账户
func (r *GormAffiliateRepository) UpdateUser(affiliate *models.AffiliateUser) error {
	return r.db.Save(affiliate).Error
}

// ListUsers 推广账户列表
func (r *GormAffiliateRepository) ListUsers(filter AffiliateUserListFilter) ([]models.AffiliateUser, int64, error) {
	query := r.db.Model(&models.AffiliateUser{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		query = query.Where("code LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query.Preload("User").Order("id desc"), filter.Page, filter.PageSize)

	var affiliates []models.AffiliateUser
	if err := query.Find(&affiliates).Error; err != nil {
		return nil, 0, err
	}
	return affiliates, total, nil
}

// CreateClick 记录推广点击
func (r *GormAffiliateRepository) CreateClick(click *models.AffiliateClick) error {
	return r.db.Create(click).Error
}

// IncrementClicks 原子累加点击数
func (r *GormAffiliateRepository) IncrementClicks(affiliateUserID uint, delta int) error {
	if delta == 0 {
		return nil
	}
	return r.db.Model(&models.AffiliateUser{}).Where("id = ?", affiliateUserID).
		UpdateColumn("total_clicks", gorm.Expr("total_clicks + ?", delta)).Error
}

// CreateOrder 创建推广订单
func (r *GormAffiliateRepository) CreateOrder(order *models.AffiliateOrder) error {
	return r.db.Create(order).Error
}

// UpdateOrder 更新推广订单
func (r *GormAffiliateRepository) UpdateOrder(order *models.AffiliateOrder) error {
	return r.db.Save(order).Error
}

// GetOrderByID 按ID获取推广订单
func (r *GormAffiliateRepository) GetOrderByID(id uint) (*models.AffiliateOrder, error) {
	var order models.AffiliateOrder
	if err := r.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetOrderByIDForUpdate 按ID获取推广订单并加锁
func (r *GormAffiliateRepository) GetOrderByIDForUpdate(id uint) (*models.AffiliateOrder, error) {
	var order models.AffiliateOrder
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetOrderByOrderIDForUpdate 按订单ID获取推广订单并加锁
func (r *GormAffiliateRepository) GetOrderByOrderIDForUpdate(orderID uint) (*models.AffiliateOrder, error) {
	var order models.AffiliateOrder
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("order_id = ?", orderID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// ListOrders 推广订单列表
func (r *GormAffiliateRepository) ListOrders(filter AffiliateOrderListFilter) ([]models.AffiliateOrder, int64, error) {
	query := r.db.Model(&models.AffiliateOrder{})

	if filter.AffiliateUserID != 0 {
		query = query.Where("affiliate_user_id = ?", filter.AffiliateUserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.OrderNo != "" {
		query = query.Where("order_no LIKE ?", "%"+filter.OrderNo+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query.Order("id desc"), filter.Page, filter.PageSize)

	var orders []models.AffiliateOrder
	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// CreateWithdrawal 创建提现申请
func (r *GormAffiliateRepository) CreateWithdrawal(withdrawal *models.AffiliateWithdrawal) error {
	return r.db.Create(withdrawal).Error
}

// UpdateWithdrawal 更新提现申请
func (r *GormAffiliateRepository) UpdateWithdrawal(withdrawal *models.AffiliateWithdrawal) error {
	return r.db.Save(withdrawal).Error
}

// GetWithdrawalByID 按ID获取提现申请
func (r *GormAffiliateRepository) GetWithdrawalByID(id uint) (*models.AffiliateWithdrawal, error) {
	var withdrawal models.AffiliateWithdrawal
	if err := r.db.First(&withdrawal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &withdrawal, nil
}

// GetWithdrawalByIDForUpdate 按ID获取提现申请并加锁
func (r *GormAffiliateRepository) GetWithdrawalByIDForUpdate(id uint) (*models.AffiliateWithdrawal, error) {
	var withdrawal models.AffiliateWithdrawal
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&withdrawal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &withdrawal, nil
}

// ListWithdrawals 提现申请列表
func (r *GormAffiliateRepository) ListWithdrawals(filter WithdrawalListFilter) ([]models.AffiliateWithdrawal, int64, error) {
	query := r.db.Model(&models.AffiliateWithdrawal{})

	if filter.AffiliateUserID != 0 {
		query = query.Where("affiliate_user_id = ?", filter.AffiliateUserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query.Order("id desc"), filter.Page, filter.PageSize)

	var withdrawals []models.AffiliateWithdrawal
	if err := query.Find(&withdrawals).Error; err != nil {
		return nil, 0, err
	}
	return withdrawals, total, nil
}

// SumWithdrawalsByStatuses 汇总指定状态的提现金额（可排除某一申请）
func (r *GormAffiliateRepository) SumWithdrawalsByStatuses(affiliateUserID uint, statuses []string, excludeID uint) (decimal.Decimal, error) {
	if affiliateUserID == 0 || len(statuses) == 0 {
		return decimal.Zero, nil
	}
	query := r.db.Model(&models.AffiliateWithdrawal{}).
		Where("affiliate_user_id = ? AND status IN ?", affiliateUserID, statuses)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var row struct {
		Total decimal.Decimal
	}
	if err := query.Select("COALESCE(SUM(amount), 0) AS total").Take(&row).Error; err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// CreateTransaction 写入返利流水（只追加）
func (r *GormAffiliateRepository) CreateTransaction(txn *models.AffiliateTransaction) error {
	return r.db.Create(txn).Error
}

// ListTransactions 返利流水列表
func (r *GormAffiliateRepository) ListTransactions(filter TransactionListFilter) ([]models.AffiliateTransaction, int64, error) {
	query := r.db.Model(&models.AffiliateTransaction{})

	if filter.AffiliateUserID != 0 {
		query = query.Where("affiliate_user_id = ?", filter.AffiliateUserID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query.Order("id desc"), filter.Page, filter.PageSize)

	var txns []models.AffiliateTransaction
	if err := query.Find(&txns).Error; err != nil {
		return nil, 0, err
	}
	return txns, total, nil
}
