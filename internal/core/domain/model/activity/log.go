// Package activity records who did what to which order or purchase. Records are
// write-once and removed only by the retention purge.
package activity

import (
	"errors"
	"strings"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

type Action string

const (
	ActionCreated               Action = "created"
	ActionStatusChanged         Action = "status_changed"
	ActionPaymentStatusChanged  Action = "payment_status_changed"
	ActionShippingStatusChanged Action = "shipping_status_changed"
)

const MessageMaxLength = 1024

var ErrLogIsNotConstructed = errors.New("activity log must be created via NewLog or RestoreLog")

type Log struct {
	id         kernel.UUID
	actor      kernel.Actor
	action     Action
	entityType string
	entityID   kernel.UUID
	message    string
	createdAt  time.Time

	isConstructed bool
}

func NewLog(
	actor string,
	action Action,
	entityType string,
	entityID kernel.UUID,
	message string,
	now time.Time,
) (*Log, error) {
	return RestoreLog(kernel.NewUUID(), actor, action, entityType, entityID, message, now)
}

func RestoreLog(
	id kernel.UUID,
	actor string,
	action Action,
	entityType string,
	entityID kernel.UUID,
	message string,
	createdAt time.Time,
) (*Log, error) {
	l := &Log{
		action:        action,
		entityType:    strings.TrimSpace(entityType),
		entityID:      entityID,
		message:       message,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	who, actorErr := kernel.NewActor(actor)
	l.actor = who

	var actionErr, typeErr, msgErr error
	if action == "" {
		actionErr = errs.NewValueIsRequiredError("action")
	}
	if l.entityType == "" {
		typeErr = errs.NewValueIsRequiredError("entityType")
	}
	if len(message) > MessageMaxLength {
		msgErr = errs.NewValueIsOutOfRangeError("message length", len(message), 0, MessageMaxLength)
	}

	if err := errors.Join(id.Validate(), actorErr, actionErr, typeErr, entityID.Validate(), msgErr); err != nil {
		return nil, err
	}
	l.id = id
	return l, nil
}

func (l *Log) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLogIsNotConstructed
	}
	return nil
}

func (l *Log) ID() kernel.UUID       { return l.id }
func (l *Log) Actor() kernel.Actor   { return l.actor }
func (l *Log) Action() Action        { return l.action }
func (l *Log) EntityType() string    { return l.entityType }
func (l *Log) EntityID() kernel.UUID { return l.entityID }
func (l *Log) Message() string       { return l.message }
func (l *Log) CreatedAt() time.Time  { return l.createdAt }
