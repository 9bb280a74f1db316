package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inkpaper-express/internal/domain"
	ordersvc "inkpaper-express/internal/service/order"
)

func listOrdersHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err, "Orders", "fetch orders")
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}

func getOrderHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		order, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Order", "fetch order")
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// checkoutHandler creates an order from the session's cart and clears
// the cart in the same request.
func checkoutHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ordersvc.CheckoutInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "Invalid order data")
			return
		}
		order, err := svc.Checkout(c.Request.Context(), in)
		if err != nil {
			respondError(c, err, "Order", "create order")
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

type statusRequest struct {
	Status string `json:"status"`
}

func updateOrderStatusHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		var req statusRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
			badRequest(c, "Invalid status")
			return
		}
		order, err := svc.UpdateStatus(c.Request.Context(), id, req.Status)
		if err != nil {
			respondError(c, err, "Order", "update order status")
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// trackOrderHandler serves /api/orders/track/:identifier. The route is
// registered as /api/orders/:id/:identifier (see buildRouter), so any
// other first segment is a plain 404.
func trackOrderHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Param("id") != "track" {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		tracked, err := svc.Track(c.Request.Context(), c.Param("identifier"))
		if err != nil {
			respondError(c, err, "Order", "track order")
			return
		}
		c.JSON(http.StatusOK, tracked)
	}
}
