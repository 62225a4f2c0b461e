package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/shop-api/internal/auth"
	"github.com/MikeMC777/shop-api/internal/httpx"
	"github.com/MikeMC777/shop-api/internal/order"
)

// createOrderHandler
// @Summary   Check out a cart
// @Description Creates an order from the buy-now lines of the cart and empties them. A repeated Idempotency-Key returns the first order.
// @Tags      orders
// @Security  Bearer
// @Accept    json
// @Param     Idempotency-Key header string false "client generated key"
// @Param     body body order.CreateRequest true "checkout"
// @Success   201 {object} order.Created
// @Failure   400 {object} httpx.ErrorBody
// @Failure   409 {object} httpx.ErrorBody
// @Router    /orders [post]
func createOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in order.CreateRequest
		if err := httpx.Bind(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		out, err := svc.Create(c.Request.Context(), order.CreateInput{
			CreateRequest:  in,
			CustomerID:     auth.CustomerID(c),
			IdempotencyKey: strings.TrimSpace(c.GetHeader("Idempotency-Key")),
		})
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}

// @Summary   Orders of the current customer
// @Tags      orders
// @Security  Bearer
// @Success   200 {object} httpx.Rows[order.Order]
// @Router    /orders/inCustomer [get]
func customerOrdersHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svc.CustomerOrders(c.Request.Context(), auth.CustomerID(c))
		respond(c, httpx.NewRows(rows), err)
	}
}

// @Summary   Order with lines and amount breakdown
// @Tags      orders
// @Security  Bearer
// @Param     order_id path int true "order id"
// @Success   200 {object} order.Summary
// @Failure   404 {object} httpx.ErrorBody
// @Router    /orders/{order_id} [get]
func orderSummaryHandler(svc *order.Service) gin.HandlerFunc {
	return withID("order_id", func(c *gin.Context, id int) {
		s, err := svc.Summary(c.Request.Context(), id, auth.CustomerID(c))
		respond(c, s, err)
	})
}

// @Summary   Order header
// @Tags      orders
// @Security  Bearer
// @Param     order_id path int true "order id"
// @Success   200 {object} order.Order
// @Failure   404 {object} httpx.ErrorBody
// @Router    /orders/shortDetail/{order_id} [get]
func orderShortDetailHandler(svc *order.Service) gin.HandlerFunc {
	return withID("order_id", func(c *gin.Context, id int) {
		o, err := svc.ShortDetail(c.Request.Context(), id, auth.CustomerID(c))
		respond(c, o, err)
	})
}

// @Summary   Move an order to its next status
// @Tags      orders
// @Security  Bearer
// @Param     order_id path int true "order id"
// @Param     body body order.StatusRequest true "target status"
// @Success   200 {object} order.Order
// @Failure   400 {object} httpx.ErrorBody
// @Failure   409 {object} httpx.ErrorBody
// @Router    /orders/{order_id}/status [put]
func updateOrderStatusHandler(svc *order.Service) gin.HandlerFunc {
	return withID("order_id", func(c *gin.Context, id int) {
		var in order.StatusRequest
		if err := httpx.Bind(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		o, err := svc.UpdateStatus(c.Request.Context(), id, auth.CustomerID(c), in.Status)
		respond(c, o, err)
	})
}
