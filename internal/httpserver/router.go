package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(corsMiddleware(deps.CORSOrigins))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.GET("/sitemap.xml", sitemapHandler(deps.CatalogSvc, deps.BaseURL))
	router.GET("/robots.txt", robotsHandler(deps.BaseURL))

	api := router.Group("/api")

	api.GET("/products", listProductsHandler(deps.CatalogSvc))
	api.GET("/products/:id", getProductHandler(deps.CatalogSvc))
	api.POST("/products", createProductHandler(deps.CatalogSvc))
	api.PUT("/products/:id", updateProductHandler(deps.CatalogSvc))
	api.DELETE("/products/:id", deleteProductHandler(deps.CatalogSvc))

	api.GET("/orders", listOrdersHandler(deps.OrderSvc))
	api.GET("/orders/:id", getOrderHandler(deps.OrderSvc))
	// gin's tree cannot mix the static "track" segment with the :id
	// wildcard, so /api/orders/track/:identifier is registered as a
	// two-param route and dispatched inside the handler.
	api.GET("/orders/:id/:identifier", trackOrderHandler(deps.OrderSvc))
	api.POST("/orders", checkoutHandler(deps.OrderSvc))
	api.PUT("/orders/:id/status", updateOrderStatusHandler(deps.OrderSvc))

	api.GET("/cart/:sessionId", getCartHandler(deps.CartSvc))
	api.POST("/cart", addToCartHandler(deps.CartSvc))
	api.PUT("/cart/:id", updateCartItemHandler(deps.CartSvc))
	api.DELETE("/cart/:id", removeCartItemHandler(deps.CartSvc))
	// Same wildcard constraint for /api/cart/session/:sessionId.
	api.DELETE("/cart/:id/:sessionId", clearCartHandler(deps.CartSvc))

	return router
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
