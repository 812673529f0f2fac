package api

import (
	"github.com/labstack/echo/v4"
	"github.com/openretail/storeapi/internal/domain"
	"github.com/openretail/storeapi/internal/webserver"
)

// registerOrderRoutes registers order read/update/delete endpoints. Orders
// are created through POST /customers/:id/orders only.
func registerOrderRoutes() {
	webserver.ApiGET("/orders", listOrders)
	webserver.ApiGET("/orders/:id", getOrder)
	webserver.ApiPUT("/orders/:id", updateOrder)
	webserver.ApiDELETE("/orders/:id", deleteOrder)
}

func listOrders(c echo.Context) error {
	rows, err := orders.List(c.Request().Context())
	if err != nil {
		return serverError(c, err)
	}
	return ok(c, rows)
}

func getOrder(c echo.Context) error {
	id, valid := uuidParam(c, "id")
	if !valid {
		return notFound(c)
	}
	order, err := orders.Get(c.Request().Context(), id)
	if err != nil {
		return serverError(c, err)
	}
	if order == nil {
		return notFound(c)
	}
	return ok(c, order)
}

func updateOrder(c echo.Context) error {
	id, valid := uuidParam(c, "id")
	if !valid {
		return notFound(c)
	}
	var in domain.UpdateOrderInput
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "Unable to parse order parameters")
	}
	updated, err := orders.Update(c.Request().Context(), id, &in)
	if err != nil {
		return serverError(c, err)
	}
	if !updated {
		return notFound(c)
	}
	return noContent(c)
}

func deleteOrder(c echo.Context) error {
	id, valid := uuidParam(c, "id")
	if !valid {
		return notFound(c)
	}
	deleted, err := orders.Delete(c.Request().Context(), id)
	if err != nil {
		return serverError(c, err)
	}
	if !deleted {
		return notFound(c)
	}
	return noContent(c)
}
