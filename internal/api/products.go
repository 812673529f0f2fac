package api

import (
	"github.com/labstack/echo/v4"
	"github.com/openretail/storeapi/internal/domain"
	"github.com/openretail/storeapi/internal/webserver"
)

// registerProductRoutes registers product CRUD endpoints
func registerProductRoutes() {
	webserver.ApiGET("/products", listProducts)
	webserver.ApiGET("/products/:id", getProduct)
	webserver.ApiPOST("/products", createProduct)
	webserver.ApiPUT("/products/:id", updateProduct)
	webserver.ApiDELETE("/products/:id", deleteProduct)
}

func listProducts(c echo.Context) error {
	rows, err := products.List(c.Request().Context())
	if err != nil {
		return serverError(c, err)
	}
	return ok(c, rows)
}

func getProduct(c echo.Context) error {
	id, valid := uuidParam(c, "id")
	if !valid {
		return notFound(c)
	}
	product, err := products.Get(c.Request().Context(), id)
	if err != nil {
		return serverError(c, err)
	}
	if product == nil {
		return notFound(c)
	}
	return ok(c, product)
}

func createProduct(c echo.Context) error {
	var in domain.CreateProductInput
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "Unable to parse product parameters")
	}
	product, err := products.Create(c.Request().Context(), &in)
	if err != nil {
		return serverError(c, err)
	}
	return created(c, "/api/products/"+product.ID, product)
}

func updateProduct(c echo.Context) error {
	id, valid := uuidParam(c, "id")
	if !valid {
		return notFound(c)
	}
	var in domain.UpdateProductInput
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "Unable to parse product parameters")
	}
	updated, err := products.Update(c.Request().Context(), id, &in)
	if err != nil {
		return serverError(c, err)
	}
	if !updated {
		return notFound(c)
	}
	return noContent(c)
}

func deleteProduct(c echo.Context) error {
	id, valid := uuidParam(c, "id")
	if !valid {
		return notFound(c)
	}
	deleted, err := products.Delete(c.Request().Context(), id)
	if err != nil {
		return serverError(c, err)
	}
	if !deleted {
		return notFound(c)
	}
	return noContent(c)
}
