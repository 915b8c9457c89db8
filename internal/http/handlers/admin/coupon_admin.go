package admin

import (
	"errors"
	"strings"
	"time"

	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/http/response"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/models"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/repository"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/service"

	"github.com/gin-gonic/gin"
)

// CouponRequest 优惠券写入请求
type CouponRequest struct {
	Code        string     `json:"code" binding:"required"`
	Type        string     `json:"type" binding:"required"`
	Value       string     `json:"value" binding:"required"`
	MinPurchase string     `json:"min_purchase"`
	MaxUses     int        `json:"max_uses"`
	ValidFrom   *time.Time `json:"valid_from"`
	ValidTo     *time.Time `json:"valid_to"`
	IsActive    *bool      `json:"is_active"`
}

func (r CouponRequest) toInput() (service.CouponInput, error) {
	value, err := models.NewMoneyFromString(r.Value)
	if err != nil {
		return service.CouponInput{}, err
	}
	minPurchase := models.MoneyZero()
	if strings.TrimSpace(r.MinPurchase) != "" {
		minPurchase, err = models.NewMoneyFromString(r.MinPurchase)
		if err != nil {
			return service.CouponInput{}, err
		}
	}
	return service.CouponInput{
		Code:        r.Code,
		Type:        r.Type,
		Value:       value,
		MinPurchase: minPurchase,
		MaxUses:     r.MaxUses,
		ValidFrom:   r.ValidFrom,
		ValidTo:     r.ValidTo,
		IsActive:    r.IsActive,
	}, nil
}

func respondCouponError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrCouponNotFound):
		respondError(c, response.CodeNotFound, "coupon not found", nil)
	case errors.Is(err, service.ErrCouponInvalid):
		respondError(c, response.CodeBadRequest, "coupon invalid", nil)
	default:
		respondError(c, response.CodeInternal, fallback, err)
	}
}

// ListCoupons 优惠券列表 (Admin)
func (h *Handler) ListCoupons(c *gin.Context) {
	page, pageSize := queryPagination(c)
	filter := repository.CouponListFilter{
		Page:     page,
		PageSize: pageSize,
		Code:     strings.TrimSpace(c.Query("code")),
	}
	if raw := strings.TrimSpace(c.Query("is_active")); raw != "" {
		active := raw == "true" || raw == "1"
		filter.IsActive = &active
	}

	coupons, total, err := h.CouponAdminService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "fetch coupons failed", err)
		return
	}
	respondPage(c, gin.H{"coupons": coupons}, page, pageSize, total)
}

// GetCoupon 优惠券详情 (Admin)
func (h *Handler) GetCoupon(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	coupon, err := h.CouponAdminService.Get(id)
	if err != nil {
		respondCouponError(c, err, "fetch coupon failed")
		return
	}
	response.Success(c, coupon)
}

// CreateCoupon 创建优惠券 (Admin)
func (h *Handler) CreateCoupon(c *gin.Context) {
	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "coupon value invalid", nil)
		return
	}

	coupon, err := h.CouponAdminService.Create(input)
	if err != nil {
		respondCouponError(c, err, "create coupon failed")
		return
	}
	response.Success(c, coupon)
}

// UpdateCoupon 更新优惠券 (Admin)
func (h *Handler) UpdateCoupon(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "coupon value invalid", nil)
		return
	}

	coupon, err := h.CouponAdminService.Update(id, input)
	if err != nil {
		respondCouponError(c, err, "update coupon failed")
		return
	}
	response.Success(c, coupon)
}

// DeleteCoupon 删除优惠券 (Admin)
func (h *Handler) DeleteCoupon(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.CouponAdminService.Delete(id); err != nil {
		respondCouponError(c, err, "delete coupon failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
