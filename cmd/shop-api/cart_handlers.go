package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/shop-api/internal/cart"
	"github.com/MikeMC777/shop-api/internal/httpx"
)

// @Summary  New cart id
// @Tags     shoppingcart
// @Success  200 {object} cart.IDResponse
// @Router   /shoppingcart/generateUniqueId [get]
func generateCartIDHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.NewCartID())
	}
}

// addToCartHandler
// @Summary  Add a product to a cart
// @Description Adding the same product with the same attributes again increases the quantity of the existing line.
// @Tags     shoppingcart
// @Accept   json
// @Param    body body cart.AddRequest true "line"
// @Success  200 {object} cart.Line
// @Failure  400 {object} httpx.ErrorBody
// @Router   /shoppingcart/add [post]
func addToCartHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cart.AddRequest
		if err := httpx.Bind(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		l, err := svc.Add(c.Request.Context(), in)
		respond(c, l, err)
	}
}

// @Summary  Cart contents
// @Tags     shoppingcart
// @Param    cart_id path string true "cart id"
// @Success  200 {object} cart.Cart
// @Router   /shoppingcart/{cart_id} [get]
func getCartHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Get(c.Request.Context(), c.Param("cart_id"))
		respond(c, out, err)
	}
}

// @Summary  Change the quantity of a cart line
// @Tags     shoppingcart
// @Accept   json
// @Param    item_id path int true "cart item id"
// @Param    body body cart.UpdateRequest true "quantity"
// @Success  200 {object} cart.Line
// @Failure  400 {object} httpx.ErrorBody
// @Failure  404 {object} httpx.ErrorBody
// @Router   /shoppingcart/update/{item_id} [put]
func updateCartItemHandler(svc *cart.Service) gin.HandlerFunc {
	return withID("item_id", func(c *gin.Context, id int) {
		var in cart.UpdateRequest
		if err := httpx.Bind(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		l, err := svc.Update(c.Request.Context(), id, in.Quantity)
		respond(c, l, err)
	})
}

// @Summary  Remove every line of a cart
// @Tags     shoppingcart
// @Param    cart_id path string true "cart id"
// @Success  200 {object} cart.Deleted
// @Router   /shoppingcart/empty/{cart_id} [delete]
func emptyCartHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := svc.Empty(c.Request.Context(), c.Param("cart_id"))
		respond(c, n, err)
	}
}

// @Summary  Remove a cart line
// @Tags     shoppingcart
// @Param    item_id path int true "cart item id"
// @Success  200 {object} cart.Deleted
// @Router   /shoppingcart/removeProduct/{item_id} [delete]
func removeCartItemHandler(svc *cart.Service) gin.HandlerFunc {
	return withID("item_id", func(c *gin.Context, id int) {
		n, err := svc.Remove(c.Request.Context(), id)
		respond(c, n, err)
	})
}

// @Summary  Move a line to saved for later
// @Tags     shoppingcart
// @Param    item_id path int true "cart item id"
// @Success  200 {object} cart.Line
// @Failure  404 {object} httpx.ErrorBody
// @Router   /shoppingcart/saveForLater/{item_id} [get]
func saveForLaterHandler(svc *cart.Service) gin.HandlerFunc {
	return withID("item_id", func(c *gin.Context, id int) {
		l, err := svc.SaveForLater(c.Request.Context(), id)
		respond(c, l, err)
	})
}

// @Summary  Move a saved line back to the cart
// @Tags     shoppingcart
// @Param    item_id path int true "cart item id"
// @Success  200 {object} cart.Line
// @Failure  404 {object} httpx.ErrorBody
// @Router   /shoppingcart/moveToCart/{item_id} [get]
func moveToCartHandler(svc *cart.Service) gin.HandlerFunc {
	return withID("item_id", func(c *gin.Context, id int) {
		l, err := svc.MoveToCart(c.Request.Context(), id)
		respond(c, l, err)
	})
}

// @Summary  Saved for later lines
// @Tags     shoppingcart
// @Param    cart_id path string true "cart id"
// @Success  200 {object} httpx.Rows[cart.Line]
// @Router   /shoppingcart/getSaved/{cart_id} [get]
func savedItemsHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svc.Saved(c.Request.Context(), c.Param("cart_id"))
		respond(c, httpx.NewRows(rows), err)
	}
}

// @Summary  Total of the buy-now lines
// @Tags     shoppingcart
// @Param    cart_id path string true "cart id"
// @Success  200 {object} cart.Amount
// @Router   /shoppingcart/totalAmount/{cart_id} [get]
func cartTotalHandler(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		amt, err := svc.Total(c.Request.Context(), c.Param("cart_id"))
		respond(c, amt, err)
	}
}
