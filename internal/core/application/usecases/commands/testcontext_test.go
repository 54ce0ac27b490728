package commands_test

import (
	"context"
	"testing"
)

// testContext returns a context that is canceled when the test completes,
// mirroring testing.T.Context (unavailable before Go 1.24).
func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
