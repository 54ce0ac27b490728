package commands

import (
	"context"
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/activity"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/transition"
	"backoffice/internal/core/ports"
)

func recordActivity(
	ctx context.Context,
	repo ports.ActivityLogRepository,
	actor string,
	action activity.Action,
	entityType string,
	entityID kernel.UUID,
	message string,
	now time.Time,
) error {
	entry, err := activity.NewLog(actor, action, entityType, entityID, message, now)
	if err != nil {
		return err
	}
	return repo.Add(ctx, entry)
}

func actionFor(statusType transition.StatusType) activity.Action {
	switch statusType {
	case transition.StatusTypePayment:
		return activity.ActionPaymentStatusChanged
	case transition.StatusTypeShipping:
		return activity.ActionShippingStatusChanged
	default:
		return activity.ActionStatusChanged
	}
}

func describe(entry transition.Entry) string {
	return fmt.Sprintf("%s status %s -> %s", entry.StatusType, entry.OldStatus, entry.NewStatus)
}
