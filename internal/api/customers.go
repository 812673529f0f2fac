package api

import (
	"github.com/labstack/echo/v4"
	"github.com/openretail/storeapi/internal/domain"
	"github.com/openretail/storeapi/internal/webserver"
)

// registerCustomerRoutes registers customer CRUD endpoints plus the
// order-creation endpoint.
func registerCustomerRoutes() {
	webserver.ApiGET("/customers", listCustomers)
	webserver.ApiGET("/customers/:id", getCustomer)
	webserver.ApiGET("/customers/:id/orders", getCustomerOrders)
	webserver.ApiPOST("/customers", createCustomer)
	webserver.ApiPUT("/customers/:id", updateCustomer)
	webserver.ApiDELETE("/customers/:id", deleteCustomer)
	webserver.ApiPOST("/customers/:id/orders", customerCreateOrder)
}

func listCustomers(c echo.Context) error {
	rows, err := customers.List(c.Request().Context())
	if err != nil {
		return serverError(c, err)
	}
	return ok(c, rows)
}

func getCustomer(c echo.Context) error {
	id, valid := uuidParam(c, "id")
	if !valid {
		return notFound(c)
	}
	customer, err := customers.Get(c.Request().Context(), id)
	if err != nil {
		return serverError(c, err)
	}
	if customer == nil {
		return notFound(c)
	}
	return ok(c, customer)
}

func getCustomerOrders(c echo.Context) error {
	id, valid := uuidParam(c, "id")
	if !valid {
		return notFound(c)
	}
	ctx := c.Request().Context()
	customer, err := customers.Get(ctx, id)
	if err != nil {
		return serverError(c, err)
	}
	if customer == nil {
		return notFound(c)
	}
	rows, err := customers.Orders(ctx, id)
	if err != nil {
		return serverError(c, err)
	}
	return ok(c, rows)
}

func createCustomer(c echo.Context) error {
	var in domain.CreateCustomerInput
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "Unable to parse customer parameters")
	}
	customer, err := customers.Create(c.Request().Context(), &in)
	if err != nil {
		return handleServiceError(c, err)
	}
	return created(c, "/api/customers/"+customer.ID, customer)
}

func updateCustomer(c echo.Context) error {
	id, valid := uuidParam(c, "id")
	if !valid {
		return notFound(c)
	}
	var in domain.UpdateCustomerInput
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "Unable to parse customer parameters")
	}
	updated, err := customers.Update(c.Request().Context(), id, &in)
	if err != nil {
		return serverError(c, err)
	}
	if !updated {
		return notFound(c)
	}
	return noContent(c)
}

func deleteCustomer(c echo.Context) error {
	id, valid := uuidParam(c, "id")
	if !valid {
		return notFound(c)
	}
	deleted, err := customers.Delete(c.Request().Context(), id)
	if err != nil {
		return serverError(c, err)
	}
	if !deleted {
		return notFound(c)
	}
	return noContent(c)
}

func customerCreateOrder(c echo.Context) error {
	id, valid := uuidParam(c, "id")
	if !valid {
		return badRequest(c, "Invalid customer or product IDs.")
	}
	var in domain.CreateOrderInput
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "Unable to parse order parameters")
	}
	order, err := customers.CreateOrder(c.Request().Context(), id, &in)
	if err != nil {
		return serverError(c, err)
	}
	if order == nil {
		return badRequest(c, "Invalid customer or product IDs.")
	}
	return created(c, "/api/customers/"+order.CustomerID+"/orders", order)
}
