package main

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/shop-api/internal/apperr"
	"github.com/MikeMC777/shop-api/internal/httpx"
	"github.com/MikeMC777/shop-api/internal/shipping"
	"github.com/MikeMC777/shop-api/internal/tax"
)

// @Summary  List taxes
// @Tags     tax
// @Success  200 {object} httpx.Rows[tax.Tax]
// @Router   /tax [get]
func listTaxesHandler(repo tax.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := repo.List(c.Request.Context())
		if err != nil {
			err = apperr.Internal("list taxes", err)
		}
		respond(c, httpx.NewRows(rows), err)
	}
}

// @Summary  Get tax
// @Tags     tax
// @Param    tax_id path int true "tax id"
// @Success  200 {object} tax.Tax
// @Failure  404 {object} httpx.ErrorBody
// @Router   /tax/{tax_id} [get]
func getTaxHandler(repo tax.Repository) gin.HandlerFunc {
	return withID("tax_id", func(c *gin.Context, id int) {
		t, err := repo.Get(c.Request.Context(), id)
		switch {
		case errors.Is(err, tax.ErrNotFound):
			err = apperr.NotFound("tax not found")
		case err != nil:
			err = apperr.Internal("load tax", err)
		}
		respond(c, t, err)
	})
}

// @Summary  List shipping regions
// @Tags     shipping
// @Success  200 {object} httpx.Rows[shipping.Region]
// @Router   /shipping/regions [get]
func listRegionsHandler(repo shipping.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := repo.Regions(c.Request.Context())
		if err != nil {
			err = apperr.Internal("list shipping regions", err)
		}
		respond(c, httpx.NewRows(rows), err)
	}
}

// regionMethodsHandler lists the shipping methods of one region.
// @Summary  Shipping methods of a region
// @Tags     shipping
// @Param    shipping_region_id path int true "shipping region id"
// @Success  200 {object} httpx.Rows[shipping.Method]
// @Failure  404 {object} httpx.ErrorBody
// @Router   /shipping/regions/{shipping_region_id} [get]
func regionMethodsHandler(repo shipping.Repository) gin.HandlerFunc {
	return withID("shipping_region_id", func(c *gin.Context, id int) {
		ctx := c.Request.Context()
		if _, err := repo.Region(ctx, id); err != nil {
			if errors.Is(err, shipping.ErrNotFound) {
				httpx.Fail(c, apperr.NotFound("shipping region not found"))
				return
			}
			httpx.Fail(c, apperr.Internal("load shipping region", err))
			return
		}
		rows, err := repo.Methods(ctx, id)
		if err != nil {
			err = apperr.Internal("list shipping methods", err)
		}
		respond(c, httpx.NewRows(rows), err)
	})
}
