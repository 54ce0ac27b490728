package http

import (
	"net/http"

	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/purchase"

	"github.com/labstack/echo/v4"
)

// OrderTransitions handles GET /api/v1/transitions/orders/:status. It answers
// from the in-process table and never touches storage.
func (s *Server) OrderTransitions(c echo.Context, raw string) error {
	status, err := order.ParseStatus(raw)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, TransitionsResponse{
		Status:              status.String(),
		AllowedNextStatuses: statusStrings(order.AllowedNextStates(status)),
		Terminal:            status.IsTerminal(),
	})
}

// PurchaseTransitions handles GET /api/v1/transitions/purchases/:status.
func (s *Server) PurchaseTransitions(c echo.Context, raw string) error {
	status, err := purchase.ParseStatus(raw)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, TransitionsResponse{
		Status:              status.String(),
		AllowedNextStatuses: statusStrings(purchase.AllowedNextStates(status)),
		Terminal:            status.IsTerminal(),
	})
}
