package http

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ListParams are the query parameters shared by the list operations.
type ListParams struct {
	Status *string
	Limit  *int
	Cursor *string
}

// ServerInterface is the operation set described by docs/openapi.yaml. Path and
// query parameters arrive already bound.
type ServerInterface interface {
	CreateOrder(ctx echo.Context) error
	ListOrders(ctx echo.Context, params ListParams) error
	CountOrdersByStatus(ctx echo.Context) error
	GetOrder(ctx echo.Context, id uuid.UUID) error
	ChangeOrderStatus(ctx echo.Context, id uuid.UUID) error
	ChangeOrderTrackingStatus(ctx echo.Context, id uuid.UUID) error

	CreatePurchase(ctx echo.Context) error
	ListPurchases(ctx echo.Context, params ListParams) error
	CountPurchasesByStatus(ctx echo.Context) error
	GetPurchase(ctx echo.Context, id uuid.UUID) error
	ChangePurchaseStatus(ctx echo.Context, id uuid.UUID) error

	OrderTransitions(ctx echo.Context, status string) error
	PurchaseTransitions(ctx echo.Context, status string) error

	PurgeActivityLogs(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	params, err := bindListParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) CountOrdersByStatus(ctx echo.Context) error {
	return w.Handler.CountOrdersByStatus(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) ChangeOrderStatus(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ChangeOrderStatus(ctx, id)
}

func (w *ServerInterfaceWrapper) ChangeOrderTrackingStatus(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ChangeOrderTrackingStatus(ctx, id)
}

func (w *ServerInterfaceWrapper) CreatePurchase(ctx echo.Context) error {
	return w.Handler.CreatePurchase(ctx)
}

func (w *ServerInterfaceWrapper) ListPurchases(ctx echo.Context) error {
	params, err := bindListParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ListPurchases(ctx, params)
}

func (w *ServerInterfaceWrapper) CountPurchasesByStatus(ctx echo.Context) error {
	return w.Handler.CountPurchasesByStatus(ctx)
}

func (w *ServerInterfaceWrapper) GetPurchase(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetPurchase(ctx, id)
}

func (w *ServerInterfaceWrapper) ChangePurchaseStatus(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ChangePurchaseStatus(ctx, id)
}

func (w *ServerInterfaceWrapper) OrderTransitions(ctx echo.Context) error {
	status, err := bindStatus(ctx)
	if err != nil {
		return err
	}
	return w.Handler.OrderTransitions(ctx, status)
}

func (w *ServerInterfaceWrapper) PurchaseTransitions(ctx echo.Context) error {
	status, err := bindStatus(ctx)
	if err != nil {
		return err
	}
	return w.Handler.PurchaseTransitions(ctx, status)
}

func (w *ServerInterfaceWrapper) PurgeActivityLogs(ctx echo.Context) error {
	return w.Handler.PurgeActivityLogs(ctx)
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation under baseURL.
func RegisterHandlers(router EchoRouter, si ServerInterface, baseURL string) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/api/v1/orders", w.CreateOrder)
	router.GET(baseURL+"/api/v1/orders", w.ListOrders)
	router.GET(baseURL+"/api/v1/orders/stats", w.CountOrdersByStatus)
	router.GET(baseURL+"/api/v1/orders/:id", w.GetOrder)
	router.POST(baseURL+"/api/v1/orders/:id/status", w.ChangeOrderStatus)
	router.POST(baseURL+"/api/v1/orders/:id/tracking", w.ChangeOrderTrackingStatus)

	router.POST(baseURL+"/api/v1/purchases", w.CreatePurchase)
	router.GET(baseURL+"/api/v1/purchases", w.ListPurchases)
	router.GET(baseURL+"/api/v1/purchases/stats", w.CountPurchasesByStatus)
	router.GET(baseURL+"/api/v1/purchases/:id", w.GetPurchase)
	router.POST(baseURL+"/api/v1/purchases/:id/status", w.ChangePurchaseStatus)

	router.GET(baseURL+"/api/v1/transitions/orders/:status", w.OrderTransitions)
	router.GET(baseURL+"/api/v1/transitions/purchases/:status", w.PurchaseTransitions)

	router.POST(baseURL+"/api/v1/activity-logs/purge", w.PurgeActivityLogs)
}

func bindID(ctx echo.Context) (uuid.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

func bindStatus(ctx echo.Context) (string, error) {
	var status string
	err := runtime.BindStyledParameterWithOptions("simple", "status", ctx.Param("status"), &status,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}
	return status, nil
}

func bindListParams(ctx echo.Context) (ListParams, error) {
	var params ListParams
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "cursor", ctx.QueryParams(), &params.Cursor); err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter cursor: %s", err))
	}
	return params, nil
}
