package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cartsvc "inkpaper-express/internal/service/cart"
)

func getCartHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := svc.View(c.Request.Context(), c.Param("sessionId"))
		if err != nil {
			respondError(c, err, "Cart", "fetch cart items")
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}

func addToCartHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cartsvc.AddInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "Invalid cart item data")
			return
		}
		item, err := svc.Add(c.Request.Context(), in)
		if err != nil {
			respondError(c, err, "Cart item", "add item to cart")
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

type quantityRequest struct {
	Quantity *int `json:"quantity"`
}

func updateCartItemHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		var req quantityRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
			badRequest(c, "Invalid quantity")
			return
		}
		item, err := svc.UpdateQuantity(c.Request.Context(), id, *req.Quantity)
		if err != nil {
			respondError(c, err, "Cart item", "update cart item")
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func removeCartItemHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		if err := svc.Remove(c.Request.Context(), id); err != nil {
			respondError(c, err, "Cart item", "remove cart item")
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// clearCartHandler serves DELETE /api/cart/session/:sessionId, registered
// as /api/cart/:id/:sessionId for the same wildcard reason as tracking.
func clearCartHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Param("id") != "session" {
			c.JSON(http.StatusNotFound, gin.H{"message": "Cart item not found"})
			return
		}
		if err := svc.ClearSession(c.Request.Context(), c.Param("sessionId")); err != nil {
			respondError(c, err, "Cart", "clear cart")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
