// Package orderrepo maps order aggregates onto the orders, order_lines and
// status_history tables.
package orderrepo

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/transition"

	"github.com/google/uuid"
)

type OrderDTO struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Customer       string         `gorm:"type:varchar(200);not null"`
	Total          int64          `gorm:"not null"`
	Status         string         `gorm:"type:varchar(32);not null;index"`
	PaymentStatus  string         `gorm:"type:varchar(32);not null"`
	ShippingStatus string         `gorm:"type:varchar(32);not null"`
	CreatedAt      time.Time      `gorm:"not null;index:idx_orders_created_id,priority:1,sort:desc"`
	UpdatedAt      time.Time      `gorm:"not null"`
	Version        int64          `gorm:"not null"`
	Lines          []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type OrderLineDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"primaryKey;autoIncrement:false"`
	SKU       string    `gorm:"column:sku;type:varchar(64);not null"`
	Quantity  int       `gorm:"not null"`
	UnitPrice int64     `gorm:"not null"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	id := aggregate.ID().Bytes()
	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for i, li := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:   id,
			Position:  i,
			SKU:       li.SKU(),
			Quantity:  li.Quantity(),
			UnitPrice: li.UnitPrice().Amount(),
		})
	}

	return OrderDTO{
		ID:             id,
		Customer:       aggregate.Customer(),
		Total:          aggregate.Total().Amount(),
		Status:         aggregate.Status().String(),
		PaymentStatus:  aggregate.PaymentStatus().String(),
		ShippingStatus: aggregate.ShippingStatus().String(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
		Version:        aggregate.Version(),
		Lines:          lines,
	}
}

func toDomain(dto OrderDTO, history []transition.Entry) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]kernel.LineItem, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		price, priceErr := kernel.NewMoney(l.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		li, lineErr := kernel.NewLineItem(l.SKU, l.Quantity, price)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, li)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:             id,
		Customer:       dto.Customer,
		Lines:          lines,
		Status:         order.Status(dto.Status),
		PaymentStatus:  order.PaymentStatus(dto.PaymentStatus),
		ShippingStatus: order.ShippingStatus(dto.ShippingStatus),
		History:        history,
		CreatedAt:      dto.CreatedAt.UTC(),
		UpdatedAt:      dto.UpdatedAt.UTC(),
		Version:        dto.Version,
	})
}
