package numeric

import (
	"context"
	"errors"
	"log/slog"
	"testing"
)

func TestApplyOptions(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		want     Config
		allows16 bool
		allows64 bool
	}{
		{"default", nil, Config{}, true, true},
		{"scalar only", []Option{WithScalarOnly()}, Config{ScalarOnly: true}, false, false},
		{"max width", []Option{WithMaxWidth(32)}, Config{MaxWidth: 32}, true, false},
		{"non-positive width ignored", []Option{WithMaxWidth(0), WithMaxWidth(-8)}, Config{}, true, true},
		{"nil option skipped", []Option{nil, WithMaxWidth(16)}, Config{MaxWidth: 16}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ApplyOptions(tt.opts...)
			if cfg != tt.want {
				t.Fatalf("config = %+v, want %+v", cfg, tt.want)
			}
			if cfg.Allows(16) != tt.allows16 || cfg.Allows(64) != tt.allows64 {
				t.Fatalf("Allows(16)=%v Allows(64)=%v", cfg.Allows(16), cfg.Allows(64))
			}
		})
	}
}

func TestErrorsUnwrap(t *testing.T) {
	tests := []struct {
		err  error
		want error
	}{
		{&LengthMismatchError{Op: "convert", Want: 3, Got: 2}, ErrLengthMismatch},
		{&UnsupportedTypePairError{From: "string", To: "int32"}, ErrUnsupportedTypePair},
		{&RangeError{Index: 5, Len: 4}, ErrRange},
	}
	for _, tt := range tests {
		if !errors.Is(tt.err, tt.want) {
			t.Errorf("%v does not wrap %v", tt.err, tt.want)
		}
		if tt.err.Error() == "" {
			t.Errorf("%T has empty message", tt.err)
		}
	}
}

func TestPlanVectorized(t *testing.T) {
	if ScalarPlan(10).Vectorized() {
		t.Fatal("scalar plan reported vectorized")
	}
	p := Plan{Tier: "avx2", Width: 32, Lanes: 8, Bulk: 16, Remainder: 3}
	if !p.Vectorized() {
		t.Fatal("plan with bulk not vectorized")
	}
	if OpNot.String() != "not" || !OpNot.Unary() || OpAnd.Unary() {
		t.Fatal("bitwise op metadata wrong")
	}
}

type recordHandler struct {
	records *[]string
}

func (h recordHandler) Enabled(context.Context, slog.Level) bool { return true }
func (h recordHandler) Handle(_ context.Context, r slog.Record) error {
	*h.records = append(*h.records, r.Message)
	return nil
}
func (h recordHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h recordHandler) WithGroup(string) slog.Handler      { return h }

func TestSetLogger(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("default logger must be silent")
	}

	var got []string
	SetLogger(slog.New(recordHandler{records: &got}))
	defer SetLogger(nil)

	Logger().Debug("hello")
	if len(got) != 1 || got[0] != "hello" {
		t.Fatalf("records = %v", got)
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("SetLogger(nil) must restore the silent logger")
	}
}
