package usecase

import (
	"context"
	"errors"
	"time"

	"renohub/internal/domain/catalog"
	"renohub/internal/domain/entities"
	"renohub/internal/infrastructure/metrics"
	"renohub/internal/pricing"
	"renohub/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrTemplateNotFound = errors.New("template not found")

// IEstimateUseCase exposes the estimate calculation operation.
type IEstimateUseCase interface {
	CalculateEstimate(ctx context.Context, templateID string, form pricing.FormData, userID string) (entities.Estimate, error)
}

// EstimateUseCase wraps the pure calculation engine with the collaborators a
// calculation touches: the template catalog, the activity sink, and an
// optional simulated round-trip delay (the UI expects an estimate to "take a
// moment"; tests run with zero delay).
type EstimateUseCase struct {
	sink  interfaces.IActivitySink
	log   *zap.Logger
	delay time.Duration
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(sink interfaces.IActivitySink, log *zap.Logger, delay time.Duration) *EstimateUseCase {
	return &EstimateUseCase{sink: sink, log: log, delay: delay}
}

// CalculateEstimate computes the estimate for one template + form data pair.
//
// An unknown template id is a data-integrity defect, not a user error: it is
// logged loudly and the documented zero estimate is returned alongside
// ErrTemplateNotFound so callers can degrade gracefully instead of crashing
// the flow. Every call emits one ESTIMATE_CALCULATED event, the unknown
// template path included, and only after the estimate value is fully
// constructed.
func (u *EstimateUseCase) CalculateEstimate(ctx context.Context, templateID string, form pricing.FormData, userID string) (entities.Estimate, error) {
	if u.delay > 0 {
		select {
		case <-time.After(u.delay):
		case <-ctx.Done():
			return entities.ZeroEstimate(templateID), ctx.Err()
		}
	}

	tpl, ok := catalog.Get(templateID)
	if !ok {
		u.log.Error("estimate requested for unknown template",
			zap.String("template_id", templateID))
		estimate := entities.ZeroEstimate(templateID)
		u.emitCalculated(ctx, templateID, tpl, form, userID, estimate)
		return estimate, ErrTemplateNotFound
	}

	estimate := pricing.Calculate(tpl, form)
	metrics.EstimatesCalculated.WithLabelValues(templateID).Inc()
	u.emitCalculated(ctx, templateID, tpl, form, userID, estimate)

	return estimate, nil
}

func (u *EstimateUseCase) emitCalculated(ctx context.Context, templateID string, tpl entities.Template, form pricing.FormData, userID string, estimate entities.Estimate) {
	u.sink.Emit(ctx, NewActivityEvent(userID, entities.ActionEstimateCalculated, map[string]any{
		"templateId": templateID,
		"formData":   RedactFormData(tpl, form),
		"summary": map[string]any{
			"total":        estimate.Total,
			"materialCost": estimate.MaterialCost,
			"laborHours":   estimate.LaborHours,
		},
	}))
}
