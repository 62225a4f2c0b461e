package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/shop-api/internal/auth"
	"github.com/MikeMC777/shop-api/internal/customer"
	"github.com/MikeMC777/shop-api/internal/httpx"
)

// registerHandler
// @Summary  Register a customer
// @Tags     customers
// @Accept   json
// @Produce  json
// @Param    body body customer.RegisterRequest true "new customer"
// @Success  201 {object} customer.Session
// @Failure  400 {object} httpx.ErrorBody
// @Failure  409 {object} httpx.ErrorBody
// @Router   /customers [post]
func registerHandler(svc *customer.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in customer.RegisterRequest
		if err := httpx.Bind(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		s, err := svc.Register(c.Request.Context(), in)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, s)
	}
}

// loginHandler
// @Summary  Log in
// @Tags     customers
// @Accept   json
// @Param    body body customer.LoginRequest true "credentials"
// @Success  200 {object} customer.Session
// @Failure  401 {object} httpx.ErrorBody
// @Router   /customers/login [post]
func loginHandler(svc *customer.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in customer.LoginRequest
		if err := httpx.Bind(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		s, err := svc.Login(c.Request.Context(), in)
		respond(c, s, err)
	}
}

// @Summary   Current customer
// @Tags      customers
// @Security  Bearer
// @Success   200 {object} customer.Customer
// @Router    /customer [get]
func getProfileHandler(svc *customer.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cu, err := svc.Profile(c.Request.Context(), auth.CustomerID(c))
		respond(c, cu, err)
	}
}

// @Summary   Update the current customer
// @Tags      customers
// @Security  Bearer
// @Accept    json
// @Param     body body customer.UpdateRequest true "profile"
// @Success   200 {object} customer.Customer
// @Failure   400 {object} httpx.ErrorBody
// @Failure   403 {object} httpx.ErrorBody
// @Router    /customer [put]
func updateProfileHandler(svc *customer.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in customer.UpdateRequest
		if err := httpx.Bind(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		cu, err := svc.UpdateProfile(c.Request.Context(), auth.CustomerID(c), in)
		respond(c, cu, err)
	}
}

// @Summary   Update the shipping address
// @Tags      customers
// @Security  Bearer
// @Accept    json
// @Param     body body customer.AddressRequest true "address"
// @Success   200 {object} customer.Customer
// @Failure   400 {object} httpx.ErrorBody
// @Router    /customers/address [put]
func updateAddressHandler(svc *customer.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in customer.AddressRequest
		if err := httpx.Bind(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		cu, err := svc.UpdateAddress(c.Request.Context(), auth.CustomerID(c), in)
		respond(c, cu, err)
	}
}

// @Summary   Store a credit card
// @Description Only the masked number is kept.
// @Tags      customers
// @Security  Bearer
// @Accept    json
// @Param     body body customer.CreditCardRequest true "card"
// @Success   200 {object} customer.Customer
// @Failure   400 {object} httpx.ErrorBody
// @Router    /customers/creditCard [put]
func updateCreditCardHandler(svc *customer.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in customer.CreditCardRequest
		if err := httpx.Bind(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		cu, err := svc.UpdateCreditCard(c.Request.Context(), auth.CustomerID(c), in)
		respond(c, cu, err)
	}
}
