package queries

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LineView is one line of an order or purchase.
type LineView struct {
	SKU       string
	Quantity  int
	UnitPrice int64
	Subtotal  int64
}

// HistoryView is one status history entry.
type HistoryView struct {
	Seq        int
	Timestamp  time.Time
	Actor      string
	StatusType string
	OldStatus  string
	NewStatus  string
}

type lineRow struct {
	SKU       string
	Quantity  int
	UnitPrice int64
}

type historyRow struct {
	Seq        int
	ChangedAt  time.Time
	Actor      string
	StatusType string
	OldStatus  string
	NewStatus  string
}

func loadLines(ctx context.Context, db *gorm.DB, table, ownerColumn string, id uuid.UUID) ([]LineView, error) {
	var rows []lineRow
	err := db.WithContext(ctx).Table(table).
		Select("sku, quantity, unit_price").
		Where(ownerColumn+" = ?", id).
		Order("position").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	lines := make([]LineView, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, LineView{
			SKU:       r.SKU,
			Quantity:  r.Quantity,
			UnitPrice: r.UnitPrice,
			Subtotal:  r.UnitPrice * int64(r.Quantity),
		})
	}
	return lines, nil
}

func loadHistory(ctx context.Context, db *gorm.DB, entityType string, id kernel.UUID) ([]HistoryView, error) {
	var rows []historyRow
	err := db.WithContext(ctx).Table("status_history").
		Select("seq, changed_at, actor, status_type, old_status, new_status").
		Where("entity_type = ? AND entity_id = ?", entityType, id.Bytes()).
		Order("seq").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	history := make([]HistoryView, 0, len(rows))
	for _, r := range rows {
		history = append(history, HistoryView{
			Seq:        r.Seq,
			Timestamp:  r.ChangedAt.UTC(),
			Actor:      r.Actor,
			StatusType: r.StatusType,
			OldStatus:  r.OldStatus,
			NewStatus:  r.NewStatus,
		})
	}
	return history, nil
}

func countByStatus(ctx context.Context, db *gorm.DB, table string) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := db.WithContext(ctx).Table(table).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
