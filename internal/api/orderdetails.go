package api

import (
	"github.com/labstack/echo/v4"
	"github.com/openretail/storeapi/internal/domain"
	"github.com/openretail/storeapi/internal/webserver"
)

// registerOrderDetailRoutes registers order-detail endpoints
func registerOrderDetailRoutes() {
	webserver.ApiGET("/orderdetails", listOrderDetails)
	webserver.ApiGET("/orderdetails/:id", getOrderDetail)
	webserver.ApiPOST("/orderdetails", createOrderDetail)
	webserver.ApiPUT("/orderdetails/:id", updateOrderDetail)
	webserver.ApiDELETE("/orderdetails/:id", deleteOrderDetail)
}

func listOrderDetails(c echo.Context) error {
	rows, err := orderDetails.List(c.Request().Context())
	if err != nil {
		return serverError(c, err)
	}
	return ok(c, rows)
}

func getOrderDetail(c echo.Context) error {
	id, valid := uuidParam(c, "id")
	if !valid {
		return notFound(c)
	}
	detail, err := orderDetails.Get(c.Request().Context(), id)
	if err != nil {
		return serverError(c, err)
	}
	if detail == nil {
		return notFound(c)
	}
	return ok(c, detail)
}

func createOrderDetail(c echo.Context) error {
	var in domain.CreateOrderDetailInput
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "Unable to parse order detail parameters")
	}
	detail, err := orderDetails.Create(c.Request().Context(), &in)
	if err != nil {
		return serverError(c, err)
	}
	return created(c, "/api/orderdetails/"+detail.ID, detail)
}

func updateOrderDetail(c echo.Context) error {
	id, valid := uuidParam(c, "id")
	if !valid {
		return notFound(c)
	}
	var in domain.UpdateOrderDetailInput
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "Unable to parse order detail parameters")
	}
	updated, err := orderDetails.Update(c.Request().Context(), id, &in)
	if err != nil {
		return serverError(c, err)
	}
	if !updated {
		return notFound(c)
	}
	return noContent(c)
}

func deleteOrderDetail(c echo.Context) error {
	id, valid := uuidParam(c, "id")
	if !valid {
		return notFound(c)
	}
	deleted, err := orderDetails.Delete(c.Request().Context(), id)
	if err != nil {
		return serverError(c, err)
	}
	if !deleted {
		return notFound(c)
	}
	return noContent(c)
}
