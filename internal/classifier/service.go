package classifier

import (
	"context"
	"fmt"

	"holyland_phone/platform/apperr"
	"holyland_phone/platform/config"
	"holyland_phone/platform/logger"
	"holyland_phone/platform/phone"
)

// Service classifies and converts Holy Land phone numbers.
type Service struct {
	maxBatch int
	log      *logger.Logger
}

func NewService(cfg config.PhoneConfig, log *logger.Logger) *Service {
	return &Service{
		maxBatch: cfg.GetMaxBatchSize(),
		log:      log,
	}
}

// Classify returns the full report for raw. When clean is set the input is
// passed through phone.Sanitize first; Input always holds the caller's string.
func (s *Service) Classify(ctx context.Context, raw string, clean bool) Result {
	report := phone.Classify(prepare(raw, clean))
	report.Input = raw

	result := Result{Report: report}
	if e164, ok := phone.E164(report.Local); ok {
		result.E164 = e164
		result.LibType = phone.LibType(report.Local)
	}

	s.log.WithContext(ctx).Classified(string(report.Category), report.Valid)
	return result
}

// ClassifyBatch classifies every number in order. It fails when the batch is
// empty or larger than the configured limit, or when ctx is cancelled.
func (s *Service) ClassifyBatch(ctx context.Context, numbers []string, clean bool) (BatchResponse, error) {
	if len(numbers) == 0 {
		return BatchResponse{}, apperr.Validation("at least one number is required").WithOp("classify batch")
	}
	if len(numbers) > s.maxBatch {
		return BatchResponse{}, apperr.TooLarge(fmt.Sprintf("batch exceeds %d numbers", s.maxBatch)).
			WithOp("classify batch").
			WithDetails(map[string]int{"max": s.maxBatch, "got": len(numbers)})
	}

	resp := BatchResponse{Results: make([]Result, 0, len(numbers))}
	for _, raw := range numbers {
		if err := ctx.Err(); err != nil {
			return BatchResponse{}, apperr.Wrap(apperr.KindInternal, "batch cancelled", err).WithOp("classify batch")
		}
		result := s.Classify(ctx, raw, clean)
		if result.Valid {
			resp.Valid++
		}
		resp.Results = append(resp.Results, result)
	}
	resp.Count = len(resp.Results)

	return resp, nil
}

// International converts raw to its international form.
func (s *Service) International(raw string, clean bool) Conversion {
	number := phone.NewHolyLand(prepare(raw, clean))
	return Conversion{
		Input:         raw,
		Local:         number.Local(),
		International: number.International(),
	}
}

func prepare(raw string, clean bool) string {
	if clean {
		return phone.Sanitize(raw)
	}
	return raw
}
