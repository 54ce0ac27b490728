// Package activitylogrepo stores the audit trail of back-office actions.
package activitylogrepo

import (
	"time"

	"backoffice/internal/core/domain/model/activity"

	"github.com/google/uuid"
)

type ActivityLogDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Actor      string    `gorm:"type:varchar(128);not null"`
	Action     string    `gorm:"type:varchar(32);not null"`
	EntityType string    `gorm:"type:varchar(16);not null"`
	EntityID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Message    string    `gorm:"type:varchar(1024);not null"`
	CreatedAt  time.Time `gorm:"not null;index"`
}

func (ActivityLogDTO) TableName() string {
	return "activity_logs"
}

func fromDomain(log *activity.Log) ActivityLogDTO {
	return ActivityLogDTO{
		ID:         log.ID().Bytes(),
		Actor:      log.Actor().String(),
		Action:     string(log.Action()),
		EntityType: log.EntityType(),
		EntityID:   log.EntityID().Bytes(),
		Message:    log.Message(),
		CreatedAt:  log.CreatedAt(),
	}
}
