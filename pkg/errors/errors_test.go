package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestErrorString(t *testing.T) {
	err := InvalidConfiguration("ripple.New", "alpha %v outside [0, 1]", 1.5)
	got := err.Error()
	want := "ripple.New [invalid_configuration]: alpha 1.5 outside [0, 1]"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindInvalidConfiguration, "invalid_configuration"},
		{KindTooManyChildren, "too_many_children"},
		{KindParsing, "parsing"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestSentinelMatching(t *testing.T) {
	cfgErr := InvalidConfiguration("ripple.New", "bad")
	if !stderrors.Is(cfgErr, ErrInvalidConfiguration) {
		t.Error("expected InvalidConfiguration to match its sentinel")
	}
	if stderrors.Is(cfgErr, ErrTooManyChildren) {
		t.Error("kinds must not cross-match")
	}

	wrapped := fmt.Errorf("loading: %w", TooManyChildren("ripple.PerformLayout", 2))
	if !stderrors.Is(wrapped, ErrTooManyChildren) {
		t.Error("expected wrapped TooManyChildren to match")
	}

	var target *Error
	if !stderrors.As(wrapped, &target) || target.Kind != KindTooManyChildren {
		t.Errorf("As = %v", target)
	}
	if target.StackTrace == "" {
		t.Error("expected TooManyChildren to capture a stack")
	}
}

func TestPanicErrorUnwrap(t *testing.T) {
	perr := &PanicError{Op: "engine.Frame", Value: TooManyChildren("x", 3)}
	if !stderrors.Is(perr, ErrTooManyChildren) {
		t.Error("expected panicked error to match sentinel")
	}
	if (&PanicError{Value: "boom"}).Unwrap() != nil {
		t.Error("non-error panic values should not unwrap")
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = "engine.HandlePointer"
	if got, want := err.Error(), "panic in engine.HandlePointer: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestParseErrorString(t *testing.T) {
	err := &ParseError{Field: "colorAlpha", Value: "lots", Reason: "want a number"}
	if got, want := err.Error(), "attribute colorAlpha=lots: want a number"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *Error
	handler := &testHandler{onError: func(err *Error) { captured = err }}
	prev := SetHandler(handler)
	defer SetHandler(prev)

	Report(&Error{Op: "test.op", Kind: KindParsing, Err: stderrors.New("bad yaml")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{onPanic: func(err *PanicError) { captured = err }}
	prev := SetHandler(handler)
	defer SetHandler(prev)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
}

func TestRecoverInto(t *testing.T) {
	prev := SetHandler(&testHandler{})
	defer SetHandler(prev)

	run := func() (err error) {
		defer RecoverInto("test.frame", &err)
		panic(TooManyChildren("test.layout", 2))
	}
	err := run()
	if err == nil {
		t.Fatal("expected error from recovered panic")
	}
	if !stderrors.Is(err, ErrTooManyChildren) {
		t.Errorf("err = %v, want TooManyChildren", err)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	prev := SetHandler(nil)
	defer SetHandler(prev)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandleError(InvalidConfiguration("ripple.New", "min radius -1 is negative"))
	h.HandlePanic(&PanicError{Op: "engine.Frame", Value: "boom"})

	out := buf.String()
	for _, want := range []string{
		"[ripple error] ripple.New: min radius -1 is negative",
		"[ripple panic] engine.Frame: boom",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

type testHandler struct {
	onError func(*Error)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *Error) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
