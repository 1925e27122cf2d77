package usecase

import (
	"strings"
	"time"

	"renohub/internal/domain/entities"
	"renohub/internal/pricing"

	"github.com/google/uuid"
)

// NewActivityEvent builds an event envelope with a generated id and the
// current timestamp. An empty userID is recorded as "anonymous".
func NewActivityEvent(userID, action string, payload map[string]any) entities.ActivityEvent {
	if userID == "" {
		userID = "anonymous"
	}
	return entities.ActivityEvent{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		UserID:    userID,
		Action:    action,
		Payload:   payload,
	}
}

// RedactFormData produces the loggable summary of submitted form data:
// file fields are replaced by their count (raw content never reaches the
// sink) and fields whose name suggests a password or phone number are masked.
func RedactFormData(tpl entities.Template, form pricing.FormData) map[string]any {
	out := make(map[string]any, len(form))
	for key, value := range form {
		if spec, ok := tpl.Field(key); ok && spec.Type == entities.FieldFile {
			out[key] = form.FileCount(key)
			continue
		}
		lower := strings.ToLower(key)
		if strings.Contains(lower, "password") || strings.Contains(lower, "phone") {
			out[key] = "[REDACTED]"
			continue
		}
		out[key] = value
	}
	return out
}
