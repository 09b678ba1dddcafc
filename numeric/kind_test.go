package numeric

import "testing"

type (
	sample  int16
	level   float32
	counter uint64
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		got  Kind
		want Kind
	}{
		{"int8", KindOf[int8](), Int8},
		{"int16", KindOf[int16](), Int16},
		{"int32", KindOf[int32](), Int32},
		{"int64", KindOf[int64](), Int64},
		{"uint8", KindOf[uint8](), Uint8},
		{"byte", KindOf[byte](), Uint8},
		{"uint16", KindOf[uint16](), Uint16},
		{"uint32", KindOf[uint32](), Uint32},
		{"uint64", KindOf[uint64](), Uint64},
		{"float32", KindOf[float32](), Float32},
		{"float64", KindOf[float64](), Float64},
		{"named int16", KindOf[sample](), Int16},
		{"named float32", KindOf[level](), Float32},
		{"named uint64", KindOf[counter](), Uint64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("KindOf = %s, want %s", tt.got, tt.want)
			}
		})
	}
}

func TestKindProperties(t *testing.T) {
	tests := []struct {
		kind                       Kind
		size                       int
		isFloat, isInteger, signed bool
	}{
		{Int8, 1, false, true, true},
		{Uint16, 2, false, true, false},
		{Int32, 4, false, true, true},
		{Uint64, 8, false, true, false},
		{Float32, 4, true, false, true},
		{Float64, 8, true, false, true},
		{KindInvalid, 0, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if tt.kind.Size() != tt.size || tt.kind.IsFloat() != tt.isFloat ||
				tt.kind.IsInteger() != tt.isInteger || tt.kind.IsSigned() != tt.signed {
				t.Fatalf("%s: size=%d float=%v int=%v signed=%v", tt.kind,
					tt.kind.Size(), tt.kind.IsFloat(), tt.kind.IsInteger(), tt.kind.IsSigned())
			}
		})
	}
	if len(Kinds) != 10 {
		t.Fatalf("len(Kinds) = %d, want 10", len(Kinds))
	}
	for _, k := range Kinds {
		if !k.Valid() {
			t.Errorf("%s not valid", k)
		}
	}
}

func TestPair(t *testing.T) {
	p := PairOf[uint8, float64]()
	if p.String() != "uint8->float64" || p.MaxSize() != 8 || !p.Valid() {
		t.Fatalf("pair %s: MaxSize=%d Valid=%v", p, p.MaxSize(), p.Valid())
	}
	if PairOf[float64, uint8]() == p {
		t.Fatal("pairs must be ordered")
	}
	if (Pair{From: Int8}).Valid() {
		t.Fatal("pair with invalid destination reported valid")
	}
}
