// Package api exposes the HTTP resource surface: one collection of
// endpoints per entity, translating requests into domain service calls and
// failure signals into status codes.
package api

import (
	"github.com/openretail/storeapi/internal/app"
	"github.com/openretail/storeapi/internal/service"
)

var (
	customers    *service.CustomerService
	products     *service.ProductService
	orders       *service.OrderService
	orderDetails *service.OrderDetailService
)

// Init wires the domain services and registers all routes. The webserver
// must be initialized first.
func Init(ac app.AppContext) {
	st := ac.Store()
	customers = service.NewCustomerService(st)
	products = service.NewProductService(st)
	orders = service.NewOrderService(st)
	orderDetails = service.NewOrderDetailService(st)

	registerCustomerRoutes()
	registerProductRoutes()
	registerOrderRoutes()
	registerOrderDetailRoutes()
}
