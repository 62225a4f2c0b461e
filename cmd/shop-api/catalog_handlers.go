package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/shop-api/internal/catalog"
	"github.com/MikeMC777/shop-api/internal/httpx"
)

func listParams(c *gin.Context) catalog.ListParams {
	return catalog.ListParams{
		Page:              httpx.PageQuery(c),
		DescriptionLength: httpx.IntQuery(c, "description_length", catalog.DefaultDescriptionLength),
	}
}

// withID parses the named path id and hands it to fn.
func withID(name string, fn func(c *gin.Context, id int)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.IDParam(c, name)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		fn(c, id)
	}
}

// respond writes v as 200 or routes err to the error middleware.
func respond(c *gin.Context, v any, err error) {
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// listDepartmentsHandler
// @Summary  List departments
// @Tags     departments
// @Produce  json
// @Success  200 {object} httpx.Rows[catalog.Department]
// @Router   /departments [get]
func listDepartmentsHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svc.Departments(c.Request.Context())
		respond(c, httpx.NewRows(rows), err)
	}
}

// @Summary  Get department
// @Tags     departments
// @Param    department_id path int true "department id"
// @Success  200 {object} catalog.Department
// @Failure  404 {object} httpx.ErrorBody
// @Router   /departments/{department_id} [get]
func getDepartmentHandler(svc *catalog.Service) gin.HandlerFunc {
	return withID("department_id", func(c *gin.Context, id int) {
		d, err := svc.Department(c.Request.Context(), id)
		respond(c, d, err)
	})
}

// @Summary  List categories
// @Tags     categories
// @Param    page  query int    false "page"
// @Param    limit query int    false "page size"
// @Param    order query string false "category_id or name"
// @Success  200 {object} paging.Result[catalog.Category]
// @Router   /categories [get]
func listCategoriesHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.Categories(c.Request.Context(), httpx.PageQuery(c), c.Query("order"))
		respond(c, res, err)
	}
}

// @Summary  Get category
// @Tags     categories
// @Param    category_id path int true "category id"
// @Success  200 {object} catalog.Category
// @Failure  404 {object} httpx.ErrorBody
// @Router   /categories/{category_id} [get]
func getCategoryHandler(svc *catalog.Service) gin.HandlerFunc {
	return withID("category_id", func(c *gin.Context, id int) {
		cat, err := svc.Category(c.Request.Context(), id)
		respond(c, cat, err)
	})
}

// @Summary  Categories of a product
// @Tags     categories
// @Param    product_id path int true "product id"
// @Success  200 {object} httpx.Rows[catalog.Category]
// @Router   /categories/inProduct/{product_id} [get]
func categoriesInProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return withID("product_id", func(c *gin.Context, id int) {
		rows, err := svc.CategoriesInProduct(c.Request.Context(), id)
		respond(c, httpx.NewRows(rows), err)
	})
}

// @Summary  Categories of a department
// @Tags     categories
// @Param    department_id path int true "department id"
// @Success  200 {object} httpx.Rows[catalog.Category]
// @Failure  404 {object} httpx.ErrorBody
// @Router   /categories/inDepartment/{department_id} [get]
func categoriesInDepartmentHandler(svc *catalog.Service) gin.HandlerFunc {
	return withID("department_id", func(c *gin.Context, id int) {
		rows, err := svc.CategoriesInDepartment(c.Request.Context(), id)
		respond(c, httpx.NewRows(rows), err)
	})
}

// @Summary  List attributes
// @Tags     attributes
// @Success  200 {object} httpx.Rows[catalog.Attribute]
// @Router   /attributes [get]
func listAttributesHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svc.Attributes(c.Request.Context())
		respond(c, httpx.NewRows(rows), err)
	}
}

// @Summary  Get attribute
// @Tags     attributes
// @Param    attribute_id path int true "attribute id"
// @Success  200 {object} catalog.Attribute
// @Failure  404 {object} httpx.ErrorBody
// @Router   /attributes/{attribute_id} [get]
func getAttributeHandler(svc *catalog.Service) gin.HandlerFunc {
	return withID("attribute_id", func(c *gin.Context, id int) {
		a, err := svc.Attribute(c.Request.Context(), id)
		respond(c, a, err)
	})
}

// @Summary  Values of an attribute
// @Tags     attributes
// @Param    attribute_id path int true "attribute id"
// @Success  200 {object} httpx.Rows[catalog.AttributeValue]
// @Failure  404 {object} httpx.ErrorBody
// @Router   /attributes/values/{attribute_id} [get]
func attributeValuesHandler(svc *catalog.Service) gin.HandlerFunc {
	return withID("attribute_id", func(c *gin.Context, id int) {
		rows, err := svc.AttributeValues(c.Request.Context(), id)
		respond(c, httpx.NewRows(rows), err)
	})
}

// @Summary  Attribute values of a product
// @Tags     attributes
// @Param    product_id path int true "product id"
// @Success  200 {object} httpx.Rows[catalog.ProductAttribute]
// @Router   /attributes/inProduct/{product_id} [get]
func attributesInProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return withID("product_id", func(c *gin.Context, id int) {
		rows, err := svc.AttributesInProduct(c.Request.Context(), id)
		respond(c, httpx.NewRows(rows), err)
	})
}

// listProductsHandler
// @Summary  List products
// @Tags     products
// @Param    page               query int false "page"
// @Param    limit              query int false "page size"
// @Param    description_length query int false "truncate descriptions (default 200)"
// @Success  200 {object} paging.Result[catalog.Product]
// @Router   /products [get]
func listProductsHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.Products(c.Request.Context(), listParams(c))
		respond(c, res, err)
	}
}

// searchProductsHandler
// @Summary  Search products by name
// @Tags     products
// @Param    query_string query string true  "terms separated by spaces or commas"
// @Param    all_words    query string false "on|true to require every term"
// @Success  200 {object} paging.Result[catalog.Product]
// @Failure  400 {object} httpx.ErrorBody
// @Router   /products/search [get]
func searchProductsHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.Search(c.Request.Context(), c.Query("query_string"), httpx.BoolQuery(c, "all_words"), listParams(c))
		respond(c, res, err)
	}
}

// @Summary  Get product
// @Tags     products
// @Param    product_id path int true "product id"
// @Success  200 {object} catalog.Product
// @Failure  400 {object} httpx.ErrorBody
// @Failure  404 {object} httpx.ErrorBody
// @Router   /products/{product_id} [get]
func getProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return withID("product_id", func(c *gin.Context, id int) {
		p, err := svc.Product(c.Request.Context(), id)
		respond(c, p, err)
	})
}

// @Summary  Products of a category
// @Tags     products
// @Param    category_id        path  int true  "category id"
// @Param    page               query int false "page"
// @Param    limit              query int false "page size"
// @Param    description_length query int false "truncate descriptions (default 200)"
// @Success  200 {object} paging.Result[catalog.Product]
// @Router   /products/inCategory/{category_id} [get]
func productsInCategoryHandler(svc *catalog.Service) gin.HandlerFunc {
	return withID("category_id", func(c *gin.Context, id int) {
		res, err := svc.ProductsInCategory(c.Request.Context(), id, listParams(c))
		respond(c, res, err)
	})
}

// @Summary  Products of a department
// @Tags     products
// @Param    department_id      path  int true  "department id"
// @Param    page               query int false "page"
// @Param    limit              query int false "page size"
// @Param    description_length query int false "truncate descriptions (default 200)"
// @Success  200 {object} paging.Result[catalog.Product]
// @Failure  404 {object} httpx.ErrorBody
// @Router   /products/inDepartment/{department_id} [get]
func productsInDepartmentHandler(svc *catalog.Service) gin.HandlerFunc {
	return withID("department_id", func(c *gin.Context, id int) {
		res, err := svc.ProductsInDepartment(c.Request.Context(), id, listParams(c))
		respond(c, res, err)
	})
}

// @Summary  Product with its attributes
// @Tags     products
// @Param    product_id path int true "product id"
// @Success  200 {object} catalog.ProductDetails
// @Failure  404 {object} httpx.ErrorBody
// @Router   /products/{product_id}/details [get]
func productDetailsHandler(svc *catalog.Service) gin.HandlerFunc {
	return withID("product_id", func(c *gin.Context, id int) {
		d, err := svc.ProductDetails(c.Request.Context(), id)
		respond(c, d, err)
	})
}

// @Summary  Categories and departments of a product
// @Tags     products
// @Param    product_id path int true "product id"
// @Success  200 {object} httpx.Rows[catalog.Location]
// @Failure  404 {object} httpx.ErrorBody
// @Router   /products/{product_id}/locations [get]
func productLocationsHandler(svc *catalog.Service) gin.HandlerFunc {
	return withID("product_id", func(c *gin.Context, id int) {
		rows, err := svc.ProductLocations(c.Request.Context(), id)
		respond(c, httpx.NewRows(rows), err)
	})
}
