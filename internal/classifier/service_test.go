package classifier

import (
	"context"
	"testing"

	"holyland_phone/platform/apperr"
	"holyland_phone/platform/config"
	"holyland_phone/platform/logger"
	"holyland_phone/platform/phone"
)

func newTestService(maxBatch int) *Service {
	return NewService(&config.Config{MaxBatchSize: maxBatch}, logger.Discard())
}

func TestService_Classify(t *testing.T) {
	svc := newTestService(10)

	got := svc.Classify(context.Background(), "972501234567", false)
	if got.Local != "0501234567" || !got.Mobile || got.Category != phone.CategoryMobile {
		t.Fatalf("unexpected report: %+v", got.Report)
	}
	if got.Input != "972501234567" {
		t.Fatalf("expected raw input to be kept, got %q", got.Input)
	}
	if got.E164 != "+972501234567" {
		t.Fatalf("expected E.164 form, got %q", got.E164)
	}
}

func TestService_Classify_Clean(t *testing.T) {
	svc := newTestService(10)

	dirty := svc.Classify(context.Background(), "+972 50-123-4567", false)
	if dirty.Valid {
		t.Fatalf("expected unsanitized input to be invalid")
	}

	clean := svc.Classify(context.Background(), "+972 50-123-4567", true)
	if !clean.Valid || clean.Local != "0501234567" || clean.Input != "+972 50-123-4567" {
		t.Fatalf("unexpected sanitized report: %+v", clean.Report)
	}
}

func TestService_Classify_ShortCodeHasNoE164(t *testing.T) {
	got := newTestService(10).Classify(context.Background(), "*1234", false)
	if !got.Special || got.International != "*1234" {
		t.Fatalf("unexpected report: %+v", got.Report)
	}
	if got.E164 != "" || got.LibType != "" {
		t.Fatalf("expected no libphonenumber data for short code, got %q/%q", got.E164, got.LibType)
	}
}

func TestService_ClassifyBatch(t *testing.T) {
	svc := newTestService(3)

	resp, err := svc.ClassifyBatch(context.Background(), []string{"0501234567", "*1234", "nope"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Count != 3 || resp.Valid != 2 {
		t.Fatalf("expected 3 results with 2 valid, got %d/%d", resp.Count, resp.Valid)
	}
	if resp.Results[2].Input != "nope" || resp.Results[2].Category != phone.CategoryUnknown {
		t.Fatalf("expected results in input order, got %+v", resp.Results[2].Report)
	}
}

func TestService_ClassifyBatch_Limits(t *testing.T) {
	svc := newTestService(2)

	if _, err := svc.ClassifyBatch(context.Background(), nil, false); apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("expected validation error for empty batch, got %v", err)
	}
	_, err := svc.ClassifyBatch(context.Background(), []string{"1", "2", "3"}, false)
	if apperr.GetKind(err) != apperr.KindTooLarge {
		t.Fatalf("expected too large error, got %v", err)
	}
}

func TestService_ClassifyBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := newTestService(5).ClassifyBatch(ctx, []string{"0501234567"}, false); err == nil {
		t.Fatalf("expected cancelled context to abort the batch")
	}
}

func TestService_International(t *testing.T) {
	svc := newTestService(1)

	got := svc.International("0501234567", false)
	if got.International != "972501234567" || got.Local != "0501234567" {
		t.Fatalf("unexpected conversion: %+v", got)
	}

	got = svc.International("00972 3 612 3456", true)
	if got.Local != "036123456" || got.International != "97236123456" {
		t.Fatalf("unexpected sanitized conversion: %+v", got)
	}
}
