package validator

import "testing"

type contactRequest struct {
	Phone  string `validate:"required,holyland"`
	Mobile string `validate:"omitempty,il_mobile"`
}

func TestPhoneTags(t *testing.T) {
	v := New()

	if err := v.Struct(contactRequest{Phone: "036123456", Mobile: "972501234567"}); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
	if err := v.Struct(contactRequest{Phone: "021234567"}); err == nil {
		t.Fatalf("expected invalid phone to fail")
	}
	if err := v.Struct(contactRequest{Phone: "*1234", Mobile: "036123456"}); err == nil {
		t.Fatalf("expected land line in mobile field to fail")
	}
	if err := v.Var("0721234567", "il_landline"); err != nil {
		t.Fatalf("expected VoIP land line to pass, got %v", err)
	}
}
