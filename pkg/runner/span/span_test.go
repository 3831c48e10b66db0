package span

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"tableflip.dev/monthpick/pkg/month"
)

func TestSpanJSON(t *testing.T) {
	var buf bytes.Buffer
	s := Span{From: "01/2025", To: "11/2024", JSON: true, Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != `["11/2024","12/2024","01/2025"]` {
		t.Fatalf("unexpected output %s", got)
	}
}

func TestSpanInvalid(t *testing.T) {
	s := Span{From: "01/2025", To: "2025-03"}
	err := s.Do(context.Background())
	if !errors.Is(err, month.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
