// Package statushistory persists the append-only status history shared by orders
// and purchases. Rows are keyed by (entity_type, entity_id, seq) where seq is the
// entry's index in the aggregate's history, so re-inserting an entry fails instead
// of duplicating it.
package statushistory

import (
	"context"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/transition"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EntryDTO struct {
	EntityType string    `gorm:"type:varchar(16);primaryKey"`
	EntityID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int       `gorm:"primaryKey;autoIncrement:false"`
	ChangedAt  time.Time `gorm:"not null"`
	Actor      string    `gorm:"type:varchar(128);not null"`
	StatusType string    `gorm:"type:varchar(16);not null"`
	OldStatus  string    `gorm:"type:varchar(32);not null"`
	NewStatus  string    `gorm:"type:varchar(32);not null"`
}

func (EntryDTO) TableName() string {
	return "status_history"
}

// Append inserts entries numbered from firstSeq.
func Append(
	ctx context.Context,
	db *gorm.DB,
	entityType string,
	entityID kernel.UUID,
	firstSeq int,
	entries []transition.Entry,
) error {
	if len(entries) == 0 {
		return nil
	}

	dtos := make([]EntryDTO, 0, len(entries))
	for i, e := range entries {
		dtos = append(dtos, EntryDTO{
			EntityType: entityType,
			EntityID:   entityID.Bytes(),
			Seq:        firstSeq + i,
			ChangedAt:  e.Timestamp,
			Actor:      e.Actor,
			StatusType: string(e.StatusType),
			OldStatus:  e.OldStatus,
			NewStatus:  e.NewStatus,
		})
	}
	return db.WithContext(ctx).Create(&dtos).Error
}

// Load returns the history of one aggregate in seq order.
func Load(ctx context.Context, db *gorm.DB, entityType string, entityID kernel.UUID) ([]transition.Entry, error) {
	var dtos []EntryDTO
	err := db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID.Bytes()).
		Order("seq").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]transition.Entry, 0, len(dtos))
	for _, d := range dtos {
		entries = append(entries, transition.Entry{
			Timestamp:  d.ChangedAt.UTC(),
			Actor:      d.Actor,
			StatusType: transition.StatusType(d.StatusType),
			OldStatus:  d.OldStatus,
			NewStatus:  d.NewStatus,
		})
	}
	return entries, nil
}
