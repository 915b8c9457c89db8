package admin

import (
	"errors"
	"strings"

	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/http/response"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/repository"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/service"

	"github.com/gin-gonic/gin"
)

// AffiliateReviewRequest 推广账户审核请求
type AffiliateReviewRequest struct {
	Action string `json:"action" binding:"required"`
}

// WithdrawalReviewRequest 提现审核请求
type WithdrawalReviewRequest struct {
	Action    string `json:"action" binding:"required"`
	AdminNote string `json:"admin_note"`
}

// ListAffiliates 推广账户列表 (Admin)
func (h *Handler) ListAffiliates(c *gin.Context) {
	page, pageSize := queryPagination(c)

	affiliates, total, err := h.AffiliateService.ListAdminUsers(repository.AffiliateUserListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   strings.TrimSpace(c.Query("status")),
		Search:   strings.TrimSpace(c.Query("search")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "fetch affiliates failed", err)
		return
	}
	respondPage(c, gin.H{"affiliates": affiliates}, page, pageSize, total)
}

// ReviewAffiliate 审核推广账户 (Admin)
func (h *Handler) ReviewAffiliate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req AffiliateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	affiliate, events, err := h.AffiliateService.Review(id, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAffiliateNotFound):
			respondError(c, response.CodeNotFound, "affiliate account not found", nil)
		case errors.Is(err, service.ErrAffiliateActionInvalid):
			respondError(c, response.CodeBadRequest, "review action invalid", nil)
		case errors.Is(err, service.ErrInvalidStateTransition):
			respondError(c, response.CodeBadRequest, "status transition not allowed", nil)
		default:
			respondError(c, response.CodeInternal, "review affiliate failed", err)
		}
		return
	}
	h.dispatchEvents(c, events)
	response.Success(c, affiliate)
}

// ListAffiliateOrders 推广订单列表 (Admin)
func (h *Handler) ListAffiliateOrders(c *gin.Context) {
	page, pageSize := queryPagination(c)

	orders, total, err := h.AffiliateService.ListAdminOrders(repository.AffiliateOrderListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   strings.TrimSpace(c.Query("status")),
		OrderNo:  strings.TrimSpace(c.Query("order_no")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "fetch affiliate orders failed", err)
		return
	}
	respondPage(c, gin.H{"orders": orders}, page, pageSize, total)
}

// ConfirmAffiliateOrder 手工确认推广订单 (Admin)
func (h *Handler) ConfirmAffiliateOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.AffiliateService.ConfirmOrder(id); err != nil {
		respondAffiliateOrderError(c, err, "confirm affiliate order failed")
		return
	}
	response.Success(c, gin.H{"confirmed": true})
}

// CompleteAffiliateOrder 手工完成推广订单入账 (Admin)
func (h *Handler) CompleteAffiliateOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.AffiliateService.CompleteOrder(id); err != nil {
		respondAffiliateOrderError(c, err, "complete affiliate order failed")
		return
	}
	response.Success(c, gin.H{"completed": true})
}

// CancelAffiliateOrder 手工取消推广订单 (Admin)
func (h *Handler) CancelAffiliateOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.AffiliateService.CancelOrder(id); err != nil {
		respondAffiliateOrderError(c, err, "cancel affiliate order failed")
		return
	}
	response.Success(c, gin.H{"cancelled": true})
}

// AffiliateOrderBulkRequest 推广订单批量操作请求
type AffiliateOrderBulkRequest struct {
	Action string `json:"action" binding:"required"`
	IDs    []uint `json:"ids" binding:"required,min=1"`
}

// BulkAffiliateOrderAction 批量完成/取消推广订单 (Admin)
// 逐条处理，失败不影响其余条目，结果按 id 汇总返回。
func (h *Handler) BulkAffiliateOrderAction(c *gin.Context) {
	var req AffiliateOrderBulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	var apply func(id uint) error
	switch req.Action {
	case "complete":
		apply = h.AffiliateService.CompleteOrder
	case "cancel":
		apply = h.AffiliateService.CancelOrder
	default:
		respondError(c, response.CodeBadRequest, "bulk action invalid", nil)
		return
	}

	succeeded := make([]uint, 0, len(req.IDs))
	failed := make(map[uint]string)
	for _, id := range req.IDs {
		if err := apply(id); err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				failed[id] = "affiliate order not found"
			case errors.Is(err, service.ErrInvalidStateTransition):
				failed[id] = "status transition not allowed"
			default:
				failed[id] = "operation failed"
			}
			continue
		}
		succeeded = append(succeeded, id)
	}
	response.Success(c, gin.H{"succeeded": succeeded, "failed": failed})
}

func respondAffiliateOrderError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "affiliate order not found", nil)
	case errors.Is(err, service.ErrInvalidStateTransition):
		respondError(c, response.CodeBadRequest, "status transition not allowed", nil)
	default:
		respondError(c, response.CodeInternal, fallback, err)
	}
}

// ListWithdrawals 提现申请列表 (Admin)
func (h *Handler) ListWithdrawals(c *gin.Context) {
	page, pageSize := queryPagination(c)

	withdrawals, total, err := h.AffiliateService.ListAdminWithdrawals(repository.WithdrawalListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   strings.TrimSpace(c.Query("status")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "fetch withdrawals failed", err)
		return
	}
	respondPage(c, gin.H{"withdrawals": withdrawals}, page, pageSize, total)
}

// ReviewWithdrawal 审核提现申请 (Admin)
// action 支持 approve/process/reject/pay。
func (h *Handler) ReviewWithdrawal(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req WithdrawalReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	withdrawal, events, err := h.AffiliateService.ReviewWithdrawal(id, req.Action, req.AdminNote)
	if err != nil {
		respondWithdrawalReviewError(c, err)
		return
	}
	h.dispatchEvents(c, events)
	response.Success(c, withdrawal)
}

// MarkWithdrawalPaid 标记提现已打款 (Admin)
func (h *Handler) MarkWithdrawalPaid(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	withdrawal, events, err := h.AffiliateService.MarkWithdrawalPaid(id)
	if err != nil {
		respondWithdrawalReviewError(c, err)
		return
	}
	h.dispatchEvents(c, events)
	response.Success(c, withdrawal)
}

func respondWithdrawalReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrWithdrawalNotFound):
		respondError(c, response.CodeNotFound, "withdrawal not found", nil)
	case errors.Is(err, service.ErrWithdrawalStatusInvalid):
		respondError(c, response.CodeBadRequest, "withdrawal status does not allow this action", nil)
	case errors.Is(err, service.ErrAffiliateNotFound):
		respondError(c, response.CodeNotFound, "affiliate account not found", nil)
	default:
		respondError(c, response.CodeInternal, "withdrawal review failed", err)
	}
}
