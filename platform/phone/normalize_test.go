package phone

import "testing"

func TestSanitize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"+972 50-123-4567", "972501234567"},
		{"00972501234567", "972501234567"},
		{"(03) 612.3456", "036123456"},
		{"０５０１２３４５６７", "0501234567"},
		{"  *1234 ", "*1234"},
		{"0501234567", "0501234567"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := Sanitize(tc.in); got != tc.want {
			t.Fatalf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitize_ThenClassify(t *testing.T) {
	p := NewHolyLand(Sanitize("+972 (50) 123-4567"))
	if p.Local() != "0501234567" || !p.IsMobile() {
		t.Fatalf("expected sanitized mobile number, got %q", p.Local())
	}
}

func TestE164(t *testing.T) {
	got, ok := E164("0501234567")
	if !ok || got != "+972501234567" {
		t.Fatalf("E164(0501234567) = %q, %v", got, ok)
	}

	if _, ok := E164(""); ok {
		t.Fatalf("expected empty input to fail")
	}
	if _, ok := E164("not a number"); ok {
		t.Fatalf("expected garbage input to fail")
	}
}

func TestNormalizeE164_FallsBackToTrimmedInput(t *testing.T) {
	if got := NormalizeE164("  hello "); got != "hello" {
		t.Fatalf("expected trimmed fallback, got %q", got)
	}
	if got := NormalizeE164(" +972501234567 "); got != "+972501234567" {
		t.Fatalf("expected E.164 output, got %q", got)
	}
}

func TestLibType(t *testing.T) {
	if got := LibType("0501234567"); got != "MOBILE" {
		t.Fatalf("expected MOBILE, got %q", got)
	}
	if got := LibType("*1234"); got != "" {
		t.Fatalf("expected no type for a short code, got %q", got)
	}
}
