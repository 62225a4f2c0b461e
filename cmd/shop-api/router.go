package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/MikeMC777/shop-api/docs"
	"github.com/MikeMC777/shop-api/internal/auth"
	"github.com/MikeMC777/shop-api/internal/cart"
	"github.com/MikeMC777/shop-api/internal/catalog"
	"github.com/MikeMC777/shop-api/internal/customer"
	"github.com/MikeMC777/shop-api/internal/httpx"
	"github.com/MikeMC777/shop-api/internal/order"
	"github.com/MikeMC777/shop-api/internal/review"
	"github.com/MikeMC777/shop-api/internal/shipping"
	"github.com/MikeMC777/shop-api/internal/tax"
)

// services is everything the handlers need.
type services struct {
	catalog   *catalog.Service
	customers *customer.Service
	carts     *cart.Service
	orders    *order.Service
	reviews   *review.Service
	taxes     tax.Repository
	shipping  shipping.Repository
	tokens    auth.Verifier
}

func newRouter(log *zap.Logger, s services) *gin.Engine {
	r := gin.New()
	r.Use(httpx.RequestID(), httpx.Logger(log), gin.Recovery(), httpx.Errors(log))
	r.NoRoute(httpx.NoRoute)

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authed := auth.Required(s.tokens)

	r.GET("/departments", listDepartmentsHandler(s.catalog))
	r.GET("/departments/:department_id", getDepartmentHandler(s.catalog))

	r.GET("/categories", listCategoriesHandler(s.catalog))
	r.GET("/categories/:category_id", getCategoryHandler(s.catalog))
	r.GET("/categories/inProduct/:product_id", categoriesInProductHandler(s.catalog))
	r.GET("/categories/inDepartment/:department_id", categoriesInDepartmentHandler(s.catalog))

	r.GET("/attributes", listAttributesHandler(s.catalog))
	r.GET("/attributes/:attribute_id", getAttributeHandler(s.catalog))
	r.GET("/attributes/values/:attribute_id", attributeValuesHandler(s.catalog))
	r.GET("/attributes/inProduct/:product_id", attributesInProductHandler(s.catalog))

	r.GET("/products", listProductsHandler(s.catalog))
	r.GET("/products/search", searchProductsHandler(s.catalog))
	r.GET("/products/:product_id", getProductHandler(s.catalog))
	r.GET("/products/inCategory/:category_id", productsInCategoryHandler(s.catalog))
	r.GET("/products/inDepartment/:department_id", productsInDepartmentHandler(s.catalog))
	r.GET("/products/:product_id/details", productDetailsHandler(s.catalog))
	r.GET("/products/:product_id/locations", productLocationsHandler(s.catalog))
	r.GET("/products/:product_id/reviews", listReviewsHandler(s.reviews))
	r.POST("/products/:product_id/reviews", authed, createReviewHandler(s.reviews))

	r.POST("/customers", registerHandler(s.customers))
	r.POST("/customers/login", loginHandler(s.customers))
	r.GET("/customer", authed, getProfileHandler(s.customers))
	r.PUT("/customer", authed, updateProfileHandler(s.customers))
	r.PUT("/customers/address", authed, updateAddressHandler(s.customers))
	r.PUT("/customers/creditCard", authed, updateCreditCardHandler(s.customers))

	sc := r.Group("/shoppingcart")
	sc.GET("/generateUniqueId", generateCartIDHandler(s.carts))
	sc.POST("/add", addToCartHandler(s.carts))
	sc.GET("/:cart_id", getCartHandler(s.carts))
	sc.PUT("/update/:item_id", updateCartItemHandler(s.carts))
	sc.DELETE("/empty/:cart_id", emptyCartHandler(s.carts))
	sc.DELETE("/removeProduct/:item_id", removeCartItemHandler(s.carts))
	sc.GET("/saveForLater/:item_id", saveForLaterHandler(s.carts))
	sc.GET("/moveToCart/:item_id", moveToCartHandler(s.carts))
	sc.GET("/getSaved/:cart_id", savedItemsHandler(s.carts))
	sc.GET("/totalAmount/:cart_id", cartTotalHandler(s.carts))

	o := r.Group("/orders", authed)
	o.POST("", createOrderHandler(s.orders))
	o.GET("/inCustomer", customerOrdersHandler(s.orders))
	o.GET("/:order_id", orderSummaryHandler(s.orders))
	o.GET("/shortDetail/:order_id", orderShortDetailHandler(s.orders))
	o.PUT("/:order_id/status", updateOrderStatusHandler(s.orders))

	r.GET("/tax", listTaxesHandler(s.taxes))
	r.GET("/tax/:tax_id", getTaxHandler(s.taxes))
	r.GET("/shipping/regions", listRegionsHandler(s.shipping))
	r.GET("/shipping/regions/:shipping_region_id", regionMethodsHandler(s.shipping))

	return r
}
