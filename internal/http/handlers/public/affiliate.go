package public

import (
	"errors"
	"strings"

	handlershared "github.com/Manvendrasinghrautela/EmeraldSecrets/internal/http/handlers/shared"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/http/response"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AffiliateApplyRequest 推广账户申请请求
type AffiliateApplyRequest struct {
	PaymentDetails string `json:"payment_details"`
}

// WithdrawalRequest 提现申请请求
type WithdrawalRequest struct {
	Amount         string `json:"amount" binding:"required"`
	PaymentMethod  string `json:"payment_method" binding:"required"`
	PaymentDetails string `json:"payment_details" binding:"required"`
}

// AffiliateApply 申请开通推广账户
func (h *Handler) AffiliateApply(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req AffiliateApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	affiliate, events, err := h.AffiliateService.Apply(uid, req.PaymentDetails)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "user not found", nil)
		case errors.Is(err, service.ErrUserDisabled):
			respondError(c, response.CodeForbidden, "account disabled", nil)
		default:
			respondError(c, response.CodeInternal, "affiliate apply failed", err)
		}
		return
	}
	h.dispatchEvents(c, events)
	response.Success(c, affiliate)
}

// AffiliateDashboard 推广用户中心
func (h *Handler) AffiliateDashboard(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	dashboard, err := h.AffiliateService.GetDashboard(uid)
	if err != nil {
		if errors.Is(err, service.ErrAffiliateNotFound) {
			respondError(c, response.CodeNotFound, "affiliate account not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "fetch dashboard failed", err)
		return
	}
	response.Success(c, dashboard)
}

// AffiliateOrders 推广订单记录
func (h *Handler) AffiliateOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	page, pageSize := queryPagination(c)

	orders, total, err := h.AffiliateService.ListUserOrders(uid, page, pageSize, strings.TrimSpace(c.Query("status")))
	if err != nil {
		respondError(c, response.CodeInternal, "fetch affiliate orders failed", err)
		return
	}
	respondPage(c, gin.H{"orders": orders}, page, pageSize, total)
}

// AffiliateTransactions 返利流水
func (h *Handler) AffiliateTransactions(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	page, pageSize := queryPagination(c)

	transactions, total, err := h.AffiliateService.ListUserTransactions(uid, page, pageSize, strings.TrimSpace(c.Query("type")))
	if err != nil {
		respondError(c, response.CodeInternal, "fetch transactions failed", err)
		return
	}
	respondPage(c, gin.H{"transactions": transactions}, page, pageSize, total)
}

// RequestWithdrawal 提交提现申请
func (h *Handler) RequestWithdrawal(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil {
		respondError(c, response.CodeBadRequest, "withdrawal amount invalid", nil)
		return
	}

	withdrawal, events, err := h.AffiliateService.RequestWithdrawal(uid, service.WithdrawalRequestInput{
		Amount:         amount,
		PaymentMethod:  req.PaymentMethod,
		PaymentDetails: req.PaymentDetails,
	})
	if err != nil {
		respondWithMappedError(c, err, withdrawalErrorRules, response.CodeInternal, "withdrawal request failed")
		return
	}
	h.dispatchEvents(c, events)
	response.Success(c, withdrawal)
}

// AffiliateWithdrawals 提现记录
func (h *Handler) AffiliateWithdrawals(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	page, pageSize := queryPagination(c)

	withdrawals, total, err := h.AffiliateService.ListUserWithdrawals(uid, page, pageSize, strings.TrimSpace(c.Query("status")))
	if err != nil {
		respondError(c, response.CodeInternal, "fetch withdrawals failed", err)
		return
	}
	respondPage(c, gin.H{"withdrawals": withdrawals}, page, pageSize, total)
}

func queryPagination(c *gin.Context) (int, int) {
	return handlershared.QueryPagination(c)
}

func respondPage(c *gin.Context, data interface{}, page, pageSize int, total int64) {
	response.SuccessWithPage(c, data, response.NewPagination(page, pageSize, total))
}
