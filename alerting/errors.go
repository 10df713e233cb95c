package alerting

import (
	"fmt"

	"github.com/modelwatch/modelwatch/models"
)

// ValidationError rejects a malformed observation before evaluation;
// nothing is persisted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "invalid observation: " + e.Message
}

// InvalidTransitionError reports a lifecycle operation attempted from a
// state that forbids it. Status carries the alert's actual current
// status so the caller can re-check.
type InvalidTransitionError struct {
	AlertId   string
	Status    models.AlertStatus
	Operation string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s alert %s in status %q", e.Operation, e.AlertId, e.Status)
}
