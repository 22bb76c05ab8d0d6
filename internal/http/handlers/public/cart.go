package public

import (
	"strconv"

	"github.com/stylemart/internal/constants"
	"github.com/stylemart/internal/http/response"
	"github.com/stylemart/internal/service"

	"github.com/gin-gonic/gin"
)

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrCartNotFound, code: response.CodeNotFound, msg: "cart not found"},
	{target: service.ErrCartItemNotFound, code: response.CodeNotFound, msg: "cart item not found"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "product not found"},
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest, msg: "invalid quantity"},
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, msg: "invalid cart input"},
}

// cartOwnerID parses the path user id and rejects requests for other
// users' carts unless the requester is an admin.
func (h *Handler) cartOwnerID(c *gin.Context) (uint, bool) {
	ownerID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil || ownerID == 0 {
		respondError(c, response.CodeBadRequest, "invalid user id", nil)
		return 0, false
	}
	uid, ok := getUserID(c)
	if !ok {
		return 0, false
	}
	if uint(ownerID) != uid && getUserRole(c) != constants.RoleAdmin {
		response.Forbidden(c, "cannot access another user's cart")
		return 0, false
	}
	return uint(ownerID), true
}

// GetCart returns the user's cart. A user with no cart gets an empty
// one rather than an error.
func (h *Handler) GetCart(c *gin.Context) {
	ownerID, ok := h.cartOwnerID(c)
	if !ok {
		return
	}
	cart, err := h.CartService.Get(ownerID)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to fetch cart", err)
		return
	}
	response.Success(c, cart)
}

// AddCartItemRequest is the add-to-cart payload.
type AddCartItemRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Color     string `json:"color" binding:"required"`
}

// AddCartItem adds a line to the cart. An existing line with the same
// product and size absorbs the quantity instead.
func (h *Handler) AddCartItem(c *gin.Context) {
	ownerID, ok := h.cartOwnerID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	cart, err := h.CartService.AddItem(service.AddCartItemInput{
		UserID:    ownerID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Size:      req.Size,
		Color:     req.Color,
	})
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "failed to add cart item")
		return
	}
	response.Success(c, cart)
}

// UpdateCartItemRequest is the quantity update payload.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// UpdateCartItem sets the quantity of one cart line.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	ownerID, ok := h.cartOwnerID(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid item id", nil)
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	cart, err := h.CartService.UpdateItemQuantity(ownerID, uint(itemID), req.Quantity)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "failed to update cart item")
		return
	}
	response.Success(c, cart)
}

// RemoveCartItem deletes one cart line.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	ownerID, ok := h.cartOwnerID(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid item id", nil)
		return
	}
	cart, err := h.CartService.RemoveItem(ownerID, uint(itemID))
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "failed to remove cart item")
		return
	}
	response.Success(c, cart)
}

// ClearCart removes every line from the cart.
func (h *Handler) ClearCart(c *gin.Context) {
	ownerID, ok := h.cartOwnerID(c)
	if !ok {
		return
	}
	cart, err := h.CartService.Clear(ownerID)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "failed to clear cart")
		return
	}
	response.Success(c, cart)
}
