package http

import (
	"time"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
)

type LineRequest struct {
	SKU       string `json:"sku"       validate:"required,max=64"`
	Quantity  int    `json:"quantity"  validate:"min=1,max=100000"`
	UnitPrice int64  `json:"unitPrice" validate:"min=0"`
}

type CreateOrderRequest struct {
	Customer string        `json:"customer" validate:"required,max=200"`
	Actor    string        `json:"actor"    validate:"required,max=128"`
	Lines    []LineRequest `json:"lines"    validate:"required,min=1,max=200,dive"`
}

type CreatePurchaseRequest struct {
	Supplier string        `json:"supplier" validate:"required,max=200"`
	Actor    string        `json:"actor"    validate:"required,max=128"`
	Lines    []LineRequest `json:"lines"    validate:"required,min=1,max=200,dive"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Actor  string `json:"actor"  validate:"required,max=128"`
}

type ChangeTrackingRequest struct {
	PaymentStatus  string `json:"paymentStatus"`
	ShippingStatus string `json:"shippingStatus" validate:"required_without=PaymentStatus"`
	Actor          string `json:"actor"          validate:"required,max=128"`
}

type PurgeActivityLogsRequest struct {
	OlderThanDays int  `json:"olderThanDays" validate:"required,min=1"`
	BatchSize     int  `json:"batchSize"     validate:"omitempty,min=1,max=1000"`
	MaxBatches    int  `json:"maxBatches"    validate:"omitempty,min=1,max=10000"`
	DryRun        bool `json:"dryRun"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type ErrorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type LineResponse struct {
	SKU       string `json:"sku"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
	Subtotal  int64  `json:"subtotal"`
}

type HistoryResponse struct {
	Seq        int       `json:"seq"`
	Timestamp  time.Time `json:"timestamp"`
	Actor      string    `json:"actor"`
	StatusType string    `json:"statusType"`
	OldStatus  string    `json:"oldStatus"`
	NewStatus  string    `json:"newStatus"`
}

type OrderResponse struct {
	ID             string    `json:"id"`
	Customer       string    `json:"customer"`
	Total          int64     `json:"total"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"paymentStatus"`
	ShippingStatus string    `json:"shippingStatus"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Version        int64     `json:"version"`
}

type OrderDetailResponse struct {
	OrderResponse
	Lines               []LineResponse    `json:"lines"`
	History             []HistoryResponse `json:"history"`
	AllowedNextStatuses []string          `json:"allowedNextStatuses"`
}

type PurchaseResponse struct {
	ID        string    `json:"id"`
	Supplier  string    `json:"supplier"`
	Total     int64     `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Version   int64     `json:"version"`
}

type PurchaseDetailResponse struct {
	PurchaseResponse
	Lines               []LineResponse    `json:"lines"`
	History             []HistoryResponse `json:"history"`
	AllowedNextStatuses []string          `json:"allowedNextStatuses"`
}

type PageResponse[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
}

type PurgeActivityLogsResponse struct {
	Cutoff  time.Time `json:"cutoff"`
	Deleted int64     `json:"deleted"`
	Batches int       `json:"batches"`
	DryRun  bool      `json:"dryRun"`
}

type TransitionsResponse struct {
	Status              string   `json:"status"`
	AllowedNextStatuses []string `json:"allowedNextStatuses"`
	Terminal            bool     `json:"terminal"`
}

func toLineInputs(lines []LineRequest) []commands.LineInput {
	inputs := make([]commands.LineInput, 0, len(lines))
	for _, l := range lines {
		inputs = append(inputs, commands.LineInput{SKU: l.SKU, Quantity: l.Quantity, UnitPrice: l.UnitPrice})
	}
	return inputs
}

func toLineResponses(lines []queries.LineView) []LineResponse {
	out := make([]LineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, LineResponse(l))
	}
	return out
}

func toHistoryResponses(history []queries.HistoryView) []HistoryResponse {
	out := make([]HistoryResponse, 0, len(history))
	for _, h := range history {
		out = append(out, HistoryResponse(h))
	}
	return out
}

func toOrderResponse(o queries.OrderSummary) OrderResponse {
	return OrderResponse{
		ID:             o.ID.String(),
		Customer:       o.Customer,
		Total:          o.Total,
		Status:         o.Status.String(),
		PaymentStatus:  o.PaymentStatus.String(),
		ShippingStatus: o.ShippingStatus.String(),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
		Version:        o.Version,
	}
}

func toOrderDetailResponse(o queries.GetOrderQueryResponse) OrderDetailResponse {
	return OrderDetailResponse{
		OrderResponse:       toOrderResponse(o.OrderSummary),
		Lines:               toLineResponses(o.Lines),
		History:             toHistoryResponses(o.History),
		AllowedNextStatuses: statusStrings(o.AllowedNextStatuses),
	}
}

func toPurchaseResponse(p queries.PurchaseSummary) PurchaseResponse {
	return PurchaseResponse{
		ID:        p.ID.String(),
		Supplier:  p.Supplier,
		Total:     p.Total,
		Status:    p.Status.String(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Version:   p.Version,
	}
}

func toPurchaseDetailResponse(p queries.GetPurchaseQueryResponse) PurchaseDetailResponse {
	return PurchaseDetailResponse{
		PurchaseResponse:    toPurchaseResponse(p.PurchaseSummary),
		Lines:               toLineResponses(p.Lines),
		History:             toHistoryResponses(p.History),
		AllowedNextStatuses: statusStrings(p.AllowedNextStatuses),
	}
}

func statusStrings[S ~string](statuses []S) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}

func countsResponse[S ~string](counts map[S]int64) map[string]int64 {
	out := make(map[string]int64, len(counts))
	for s, n := range counts {
		out[string(s)] = n
	}
	return out
}
