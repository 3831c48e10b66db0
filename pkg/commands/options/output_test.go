package options

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
)

func TestHandleError(t *testing.T) {
	var buf bytes.Buffer
	was := color.Output
	color.Output = &buf
	defer func() { color.Output = was }()

	boom := errors.New("boom")

	plain := &OutputOptions{}
	if err := plain.HandleError(boom); !errors.Is(err, boom) {
		t.Fatalf("expected the error back, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("plain output should not print, got %q", buf.String())
	}

	js := &OutputOptions{JSON: true}
	if err := js.HandleError(boom); err != nil {
		t.Fatalf("json output should swallow the error, got %v", err)
	}
	if buf.String() != "{\"error\":\"boom\"}\n" {
		t.Fatalf("unexpected json %q", buf.String())
	}
	if err := js.HandleError(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
