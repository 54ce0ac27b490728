package queries

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

// Cursor is the keyset position after the last row of a page. Pages are ordered
// by (created_at DESC, id DESC), so the next page holds rows strictly below it.
type Cursor struct {
	CreatedAt time.Time `json:"c"`
	ID        uuid.UUID `json:"i"`
}

// Encode renders the cursor as an opaque URL-safe token.
func (c Cursor) Encode() string {
	raw, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(raw)
}

// DecodeCursor parses a token produced by Encode. An empty token means "first page".
func DecodeCursor(token string) (*Cursor, error) {
	if token == "" {
		return nil, nil //nolint:nilnil // no cursor is a valid state
	}

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("cursor", fmt.Errorf("not base64url: %w", err))
	}

	var c Cursor
	if err = json.Unmarshal(raw, &c); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("cursor", fmt.Errorf("malformed: %w", err))
	}
	if c.ID == uuid.Nil || c.CreatedAt.IsZero() {
		return nil, errs.NewValueIsInvalidError("cursor")
	}
	return &c, nil
}
