// Package purchaserepo maps purchase aggregates onto the purchases,
// purchase_lines and status_history tables.
package purchaserepo

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/purchase"
	"backoffice/internal/core/domain/model/transition"

	"github.com/google/uuid"
)

type PurchaseDTO struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Supplier  string            `gorm:"type:varchar(200);not null"`
	Total     int64             `gorm:"not null"`
	Status    string            `gorm:"type:varchar(32);not null;index"`
	CreatedAt time.Time         `gorm:"not null;index"`
	UpdatedAt time.Time         `gorm:"not null"`
	Version   int64             `gorm:"not null"`
	Lines     []PurchaseLineDTO `gorm:"foreignKey:PurchaseID;constraint:OnDelete:CASCADE"`
}

func (PurchaseDTO) TableName() string {
	return "purchases"
}

type PurchaseLineDTO struct {
	PurchaseID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position   int       `gorm:"primaryKey;autoIncrement:false"`
	SKU        string    `gorm:"column:sku;type:varchar(64);not null"`
	Quantity   int       `gorm:"not null"`
	UnitPrice  int64     `gorm:"not null"`
}

func (PurchaseLineDTO) TableName() string {
	return "purchase_lines"
}

func fromDomain(aggregate *purchase.Purchase) PurchaseDTO {
	id := aggregate.ID().Bytes()
	lines := make([]PurchaseLineDTO, 0, len(aggregate.Lines()))
	for i, li := range aggregate.Lines() {
		lines = append(lines, PurchaseLineDTO{
			PurchaseID: id,
			Position:   i,
			SKU:        li.SKU(),
			Quantity:   li.Quantity(),
			UnitPrice:  li.UnitPrice().Amount(),
		})
	}

	return PurchaseDTO{
		ID:        id,
		Supplier:  aggregate.Supplier(),
		Total:     aggregate.Total().Amount(),
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
		Version:   aggregate.Version(),
		Lines:     lines,
	}
}

func toDomain(dto PurchaseDTO, history []transition.Entry) (*purchase.Purchase, error) {
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

	return purchase.RestorePurchase(purchase.Snapshot{
		ID:        id,
		Supplier:  dto.Supplier,
		Lines:     lines,
		Status:    purchase.Status(dto.Status),
		History:   history,
		CreatedAt: dto.CreatedAt.UTC(),
		UpdatedAt: dto.UpdatedAt.UTC(),
		Version:   dto.Version,
	})
}
