package http

import (
	"net/http"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), req.Customer, req.Actor, toLineInputs(req.Lines))
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	id := cmd.OrderID().String()
	c.Response().Header().Set(echo.HeaderLocation, "/api/v1/orders/"+id)
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// ListOrders handles GET /api/v1/orders?status=&limit=&cursor=.
func (s *Server) ListOrders(c echo.Context, params ListParams) error {
	query, err := queries.NewListOrdersQuery(deref(params.Status), deref(params.Limit), deref(params.Cursor))
	if err != nil {
		return s.fail(c, err)
	}
	page, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	items := make([]OrderResponse, 0, len(page.Items))
	for _, o := range page.Items {
		items = append(items, toOrderResponse(o))
	}
	return c.JSON(http.StatusOK, PageResponse[OrderResponse]{Items: items, NextCursor: page.NextCursor})
}

// CountOrdersByStatus handles GET /api/v1/orders/stats.
func (s *Server) CountOrdersByStatus(c echo.Context) error {
	counts, err := s.h.CountOrdersByStatus.Handle(c.Request().Context(), queries.NewCountOrdersByStatusQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, countsResponse(counts))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context, id uuid.UUID) error {
	return s.respondWithOrder(c, kernel.UUIDFromGoogle(id))
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status and answers with the
// updated order.
func (s *Server) ChangeOrderStatus(c echo.Context, rawID uuid.UUID) error {
	id := kernel.UUIDFromGoogle(rawID)
	var req ChangeStatusRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, req.Status, req.Actor)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.ChangeOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return s.respondWithOrder(c, id)
}

// ChangeOrderTrackingStatus handles POST /api/v1/orders/:id/tracking.
func (s *Server) ChangeOrderTrackingStatus(c echo.Context, rawID uuid.UUID) error {
	id := kernel.UUIDFromGoogle(rawID)
	var req ChangeTrackingRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewChangeOrderTrackingStatusCommand(id, req.PaymentStatus, req.ShippingStatus, req.Actor)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.ChangeOrderTrackingStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return s.respondWithOrder(c, id)
}

func (s *Server) respondWithOrder(c echo.Context, id kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(c, err)
	}
	detail, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrderDetailResponse(detail))
}
