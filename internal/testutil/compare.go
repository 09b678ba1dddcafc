package testutil

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cwbudde/algo-numconv/internal/view"
	"github.com/cwbudde/algo-numconv/numeric"
)

// FirstMismatch returns the index of the first element whose bit pattern
// differs between a and b, or -1 when they are identical. It returns an error
// if the slices differ in length.
func FirstMismatch[T numeric.Number](a, b []T) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	ab, bb := view.Of(a).Bytes(), view.Of(b).Bytes()
	if bytes.Equal(ab, bb) {
		return -1, nil
	}
	size := view.Of(a).Size()
	for i := range a {
		if !bytes.Equal(ab[i*size:(i+1)*size], bb[i*size:(i+1)*size]) {
			return i, nil
		}
	}
	return -1, nil
}

// RequireEqual fails t unless got and want are identical bit for bit. NaN
// payloads and the sign of zero count.
func RequireEqual[T numeric.Number](t testing.TB, got, want []T) {
	t.Helper()
	i, err := FirstMismatch(got, want)
	if err != nil {
		t.Fatal(err)
	}
	if i < 0 {
		return
	}
	t.Fatalf("first mismatch at index %d: got %v, want %v\n(-want +got):\n%s",
		i, got[i], want[i], cmp.Diff(want, got))
}

// RequireSameBytes fails t unless the two views hold identical bytes.
func RequireSameBytes(t testing.TB, got, want view.View) {
	t.Helper()
	if got.ByteLen() != want.ByteLen() {
		t.Fatalf("byte length mismatch: got %d, want %d", got.ByteLen(), want.ByteLen())
	}
	g, w := got.Bytes(), want.Bytes()
	if bytes.Equal(g, w) {
		return
	}
	for i := range g {
		if g[i] != w[i] {
			size := max(got.Size(), 1)
			t.Fatalf("%v: first differing byte %d (element %d): got %#02x, want %#02x", got, i, i/size, g[i], w[i])
		}
	}
}
