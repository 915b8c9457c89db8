package public

import (
	"errors"

	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/http/response"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var couponErrorRules = []mappedHandlerError{
	{target: service.ErrCouponInvalid, code: response.CodeBadRequest, msg: "coupon invalid"},
	{target: service.ErrCouponNotFound, code: response.CodeBadRequest, msg: "coupon not found"},
	{target: service.ErrCouponInactive, code: response.CodeBadRequest, msg: "coupon inactive"},
	{target: service.ErrCouponNotStarted, code: response.CodeBadRequest, msg: "coupon not started"},
	{target: service.ErrCouponExpired, code: response.CodeBadRequest, msg: "coupon expired"},
	{target: service.ErrCouponUsageLimit, code: response.CodeBadRequest, msg: "coupon usage limit reached"},
	{target: service.ErrCouponMinPurchase, code: response.CodeBadRequest, msg: "order below coupon minimum purchase"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrAddressNotFound, code: response.CodeNotFound, msg: "address not found"},
	{target: service.ErrAddressIncomplete, code: response.CodeBadRequest, msg: "address incomplete"},
	{target: service.ErrPaymentMethodInvalid, code: response.CodeBadRequest, msg: "payment method not supported"},
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, msg: "cart is empty"},
	{target: service.ErrProductNotFound, code: response.CodeBadRequest, msg: "product not available"},
	{target: service.ErrProductInactive, code: response.CodeBadRequest, msg: "product not available"},
	{target: service.ErrProductOutOfStock, code: response.CodeBadRequest, msg: "product out of stock"},
	{target: service.ErrQuantityInvalid, code: response.CodeBadRequest, msg: "quantity invalid"},
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeBadRequest, msg: "product not available"},
	{target: service.ErrProductInactive, code: response.CodeBadRequest, msg: "product not available"},
	{target: service.ErrProductOutOfStock, code: response.CodeBadRequest, msg: "product out of stock"},
	{target: service.ErrQuantityInvalid, code: response.CodeBadRequest, msg: "quantity invalid"},
}

var withdrawalErrorRules = []mappedHandlerError{
	{target: service.ErrAffiliateNotFound, code: response.CodeNotFound, msg: "affiliate account not found"},
	{target: service.ErrAffiliateNotActive, code: response.CodeBadRequest, msg: "affiliate account not active"},
	{target: service.ErrWithdrawalAmountInvalid, code: response.CodeBadRequest, msg: "withdrawal amount invalid"},
	{target: service.ErrWithdrawalDetailsRequired, code: response.CodeBadRequest, msg: "payment details required"},
	{target: service.ErrWithdrawalBelowMinimum, code: response.CodeBadRequest, msg: "amount below withdrawal minimum"},
	{target: service.ErrWithdrawalInsufficient, code: response.CodeBadRequest, msg: "insufficient available balance"},
}

func respondCheckoutError(c *gin.Context, err error) {
	rules := make([]mappedHandlerError, 0, len(checkoutErrorRules)+len(couponErrorRules))
	rules = append(rules, checkoutErrorRules...)
	rules = append(rules, couponErrorRules...)
	respondWithMappedError(c, err, rules, response.CodeInternal, "order create failed")
}
