package public

import (
	"strconv"

	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/http/response"
	"github.com/Manvendrasinghrautela/EmeraldSecrets/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CartItemRequest 购物车项请求
type CartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// CartItemResponse 购物车项响应
type CartItemResponse struct {
	ProductID uint         `json:"product_id"`
	Quantity  int          `json:"quantity"`
	Name      string       `json:"name"`
	Slug      string       `json:"slug"`
	UnitPrice models.Money `json:"unit_price"`
	LineTotal models.Money `json:"line_total"`
	InStock   bool         `json:"in_stock"`
}

func buildCartItems(items []models.CartItem) []CartItemResponse {
	result := make([]CartItemResponse, 0, len(items))
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		lineTotal := item.Product.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity)))
		result = append(result, CartItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Name:      item.Product.Name,
			Slug:      item.Product.Slug,
			UnitPrice: item.Product.Price,
			LineTotal: models.NewMoneyFromDecimal(lineTotal),
			InStock:   item.Product.IsActive && item.Product.Stock >= item.Quantity,
		})
	}
	return result
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	items, err := h.CartService.List(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "fetch cart failed", err)
		return
	}
	response.Success(c, gin.H{"items": buildCartItems(items)})
}

// PutCartItem 设置购物车项数量
func (h *Handler) PutCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	item, err := h.CartService.SetItem(uid, req.ProductID, req.Quantity)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "update cart failed")
		return
	}
	response.Success(c, item)
}

// DeleteCartItem 移除购物车项
func (h *Handler) DeleteCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "product id invalid", nil)
		return
	}

	if err := h.CartService.RemoveItem(uid, uint(productID)); err != nil {
		respondError(c, response.CodeInternal, "remove cart item failed", err)
		return
	}
	response.Success(c, gin.H{"removed": true})
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(uid); err != nil {
		respondError(c, response.CodeInternal, "clear cart failed", err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}
