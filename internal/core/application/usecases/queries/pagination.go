package queries

import (
	"context"
	"errors"
	"time"

	"backoffice/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Page is one slice of a listing. NextCursor is empty on the last page.
type Page[T any] struct {
	Items      []T
	NextCursor string
}

type pageRequest struct {
	status string
	limit  int
	cursor *Cursor
}

func newPageRequest(status string, limit int, cursorToken string) (pageRequest, error) {
	if limit == 0 {
		limit = DefaultPageLimit
	}

	var limitErr error
	if limit < 1 || limit > MaxPageLimit {
		limitErr = errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageLimit)
	}
	cursor, cursorErr := DecodeCursor(cursorToken)

	if err := errors.Join(limitErr, cursorErr); err != nil {
		return pageRequest{}, err
	}
	return pageRequest{status: status, limit: limit, cursor: cursor}, nil
}

type keyedRow interface {
	key() (time.Time, uuid.UUID)
}

// fetchPage runs a keyset page query against table. It reads one row more than
// requested to learn whether another page exists.
func fetchPage[R keyedRow](ctx context.Context, db *gorm.DB, table string, columns string, req pageRequest) ([]R, string, error) {
	q := db.WithContext(ctx).Table(table).Select(columns)
	if req.status != "" {
		q = q.Where("status = ?", req.status)
	}
	if req.cursor != nil {
		q = q.Where("(created_at, id) < (?, ?)", req.cursor.CreatedAt, req.cursor.ID)
	}

	var rows []R
	if err := q.Order("created_at DESC, id DESC").Limit(req.limit + 1).Scan(&rows).Error; err != nil {
		return nil, "", err
	}

	next := ""
	if len(rows) > req.limit {
		rows = rows[:req.limit]
		createdAt, id := rows[len(rows)-1].key()
		next = Cursor{CreatedAt: createdAt, ID: id}.Encode()
	}
	return rows, next, nil
}
