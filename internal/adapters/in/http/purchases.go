package http

import (
	"net/http"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CreatePurchase handles POST /api/v1/purchases.
func (s *Server) CreatePurchase(c echo.Context) error {
	var req CreatePurchaseRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreatePurchaseCommand(id, req.Supplier, req.Actor, toLineInputs(req.Lines))
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.CreatePurchase.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, "/api/v1/purchases/"+id.String())
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// ListPurchases handles GET /api/v1/purchases?status=&limit=&cursor=.
func (s *Server) ListPurchases(c echo.Context, params ListParams) error {
	query, err := queries.NewListPurchasesQuery(deref(params.Status), deref(params.Limit), deref(params.Cursor))
	if err != nil {
		return s.fail(c, err)
	}
	page, err := s.h.ListPurchases.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	items := make([]PurchaseResponse, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, toPurchaseResponse(p))
	}
	return c.JSON(http.StatusOK, PageResponse[PurchaseResponse]{Items: items, NextCursor: page.NextCursor})
}

// CountPurchasesByStatus handles GET /api/v1/purchases/stats.
func (s *Server) CountPurchasesByStatus(c echo.Context) error {
	counts, err := s.h.CountPurchasesByStatus.Handle(c.Request().Context(), queries.NewCountPurchasesByStatusQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, countsResponse(counts))
}

// GetPurchase handles GET /api/v1/purchases/:id.
func (s *Server) GetPurchase(c echo.Context, id uuid.UUID) error {
	return s.respondWithPurchase(c, kernel.UUIDFromGoogle(id))
}

// ChangePurchaseStatus handles POST /api/v1/purchases/:id/status.
func (s *Server) ChangePurchaseStatus(c echo.Context, rawID uuid.UUID) error {
	id := kernel.UUIDFromGoogle(rawID)
	var req ChangeStatusRequest
	if err := bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewChangePurchaseStatusCommand(id, req.Status, req.Actor)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.ChangePurchaseStatus.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return s.respondWithPurchase(c, id)
}

func (s *Server) respondWithPurchase(c echo.Context, id kernel.UUID) error {
	query, err := queries.NewGetPurchaseQuery(id)
	if err != nil {
		return s.fail(c, err)
	}
	detail, err := s.h.GetPurchase.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toPurchaseDetailResponse(detail))
}
