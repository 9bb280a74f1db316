package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inkpaper-express/internal/domain"
	catalogsvc "inkpaper-express/internal/service/catalog"
)

func listProductsHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context(), c.Query("category"))
		if err != nil {
			respondError(c, err, "Products", "fetch products")
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

func getProductHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		product, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Product", "fetch product")
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func createProductHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalogsvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "Invalid product data")
			return
		}
		product, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, err, "Product", "create product")
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

func updateProductHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		var patch domain.ProductPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			badRequest(c, "Invalid product data")
			return
		}
		product, err := svc.Update(c.Request.Context(), id, patch)
		if err != nil {
			respondError(c, err, "Product", "update product")
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func deleteProductHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err, "Product", "delete product")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
