package interfaces

import (
	"context"

	"renohub/internal/domain/entities"
)

// IActivitySink is the append-only event log the core emits into.
//
// Emit is fire-and-forget: implementations must never block the caller beyond
// a short internal timeout and never propagate a failure into the emitting
// operation. Payloads are redacted before they reach the sink.
type IActivitySink interface {
	Emit(ctx context.Context, event entities.ActivityEvent)
}
