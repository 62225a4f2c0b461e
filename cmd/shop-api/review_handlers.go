package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/shop-api/internal/auth"
	"github.com/MikeMC777/shop-api/internal/httpx"
	"github.com/MikeMC777/shop-api/internal/review"
)

// @Summary  Reviews of a product
// @Tags     products
// @Param    product_id path int true "product id"
// @Success  200 {object} review.List
// @Router   /products/{product_id}/reviews [get]
func listReviewsHandler(svc *review.Service) gin.HandlerFunc {
	return withID("product_id", func(c *gin.Context, id int) {
		l, err := svc.ForProduct(c.Request.Context(), id)
		respond(c, l, err)
	})
}

// @Summary   Review a product
// @Tags      products
// @Security  Bearer
// @Param     product_id path int true "product id"
// @Param     body body review.CreateRequest true "review"
// @Success   201 {object} review.Review
// @Failure   409 {object} httpx.ErrorBody
// @Router    /products/{product_id}/reviews [post]
func createReviewHandler(svc *review.Service) gin.HandlerFunc {
	return withID("product_id", func(c *gin.Context, id int) {
		var in review.CreateRequest
		if err := httpx.Bind(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		rv, err := svc.Create(c.Request.Context(), auth.CustomerID(c), id, in)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, rv)
	})
}
