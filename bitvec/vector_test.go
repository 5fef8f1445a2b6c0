package bitvec

import "testing"

func TestSetClearToggleBit(t *testing.T) {
	v := NewVector(3)
	for _, index := range []int{0, 1, 31, 32, 33, 63, 64, 95} {
		set := v.SetBit(index)
		if !set.Bit(index) {
			t.Fatalf("bit %d not set", index)
		}
		if v.Bit(index) {
			t.Fatalf("SetBit mutated the receiver at bit %d", index)
		}
		cleared := set.ClearBit(index)
		if cleared.Bit(index) {
			t.Fatalf("bit %d still set after clear", index)
		}
		toggled := set.ToggleBit(index)
		if toggled.Bit(index) {
			t.Fatalf("bit %d still set after toggle", index)
		}
		if !toggled.ToggleBit(index).Bit(index) {
			t.Fatalf("bit %d not restored by second toggle", index)
		}
	}
}

func TestShiftLeft(t *testing.T) {
	tests := []struct {
		name  string
		v     Vector
		shift int
		want  Vector
	}{
		{
			name:  "within word",
			v:     VectorOf(0x00000001, 0),
			shift: 4,
			want:  VectorOf(0x00000010, 0),
		},
		{
			name:  "whole word",
			v:     VectorOf(0x12345678, 0),
			shift: 32,
			want:  VectorOf(0, 0x12345678),
		},
		{
			name:  "cross word carry",
			v:     VectorOf(0x80000001, 0),
			shift: 1,
			want:  VectorOf(0x00000002, 0x00000001),
		},
		{
			name:  "word plus bits",
			v:     VectorOf(0x12345678, 0),
			shift: 40,
			want:  VectorOf(0, 0x34567800),
		},
		{
			name:  "drops high bits",
			v:     VectorOf(0, 0xF0000000),
			shift: 8,
			want:  VectorOf(0, 0),
		},
		{
			name:  "zero shift",
			v:     VectorOf(0xDEADBEEF),
			shift: 0,
			want:  VectorOf(0xDEADBEEF),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.ShiftLeft(tt.shift)
			if !got.Equal(tt.want) {
				t.Errorf("ShiftLeft(%d) = %s, want %s", tt.shift, got, tt.want)
			}
		})
	}
}

// A two-word vector shifted left by 40 must land the low word's bits in the
// high word, 8 positions up.
func TestShiftLeftByFortyCrossesWordBoundary(t *testing.T) {
	v := VectorOf(0x000000FF, 0)
	got := v.ShiftLeft(40)
	want := VectorOf(0, 0x0000FF00)
	if !got.Equal(want) {
		t.Fatalf("ShiftLeft(40) = %s, want %s", got, want)
	}
	for i := 0; i < 8; i++ {
		if !got.Bit(40 + i) {
			t.Fatalf("bit %d should be set after shifting bit %d left by 40", 40+i, i)
		}
	}
}

func TestShiftRight(t *testing.T) {
	tests := []struct {
		name  string
		v     Vector
		shift int
		want  Vector
	}{
		{
			name:  "within word",
			v:     VectorOf(0x00000010, 0),
			shift: 4,
			want:  VectorOf(0x00000001, 0),
		},
		{
			name:  "whole word",
			v:     VectorOf(0, 0x12345678),
			shift: 32,
			want:  VectorOf(0x12345678, 0),
		},
		{
			name:  "cross word carry",
			v:     VectorOf(0, 0x00000001),
			shift: 1,
			want:  VectorOf(0x80000000, 0),
		},
		{
			name:  "word plus bits",
			v:     VectorOf(0, 0xAB000000),
			shift: 40,
			want:  VectorOf(0x00AB0000, 0),
		},
		{
			name:  "drops low bits",
			v:     VectorOf(0x000000FF, 0),
			shift: 8,
			want:  VectorOf(0, 0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.ShiftRight(tt.shift)
			if !got.Equal(tt.want) {
				t.Errorf("ShiftRight(%d) = %s, want %s", tt.shift, got, tt.want)
			}
		})
	}
}

func TestShiftRoundTrip(t *testing.T) {
	v := VectorOf(0x0000BEEF, 0x00000000)
	for _, k := range []int{1, 7, 16, 32, 40} {
		got := v.ShiftLeft(k).ShiftRight(k)
		if !got.Equal(v) {
			t.Errorf("left-right round trip by %d = %s, want %s", k, got, v)
		}
	}
}

func TestArithShiftRight(t *testing.T) {
	tests := []struct {
		name  string
		v     Vector
		shift int
		want  Vector
	}{
		{
			name:  "negative fills ones",
			v:     VectorOf(0, 0x80000000),
			shift: 4,
			want:  VectorOf(0, 0xF8000000),
		},
		{
			name:  "negative across words",
			v:     VectorOf(0, 0x80000000),
			shift: 36,
			want:  VectorOf(0xF8000000, 0xFFFFFFFF),
		},
		{
			name:  "positive matches logical",
			v:     VectorOf(0, 0x40000000),
			shift: 4,
			want:  VectorOf(0, 0x04000000),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.ArithShiftRight(tt.shift)
			if !got.Equal(tt.want) {
				t.Errorf("ArithShiftRight(%d) = %s, want %s", tt.shift, got, tt.want)
			}
		})
	}
}

func TestEqualAcrossWidths(t *testing.T) {
	if !VectorOf(5).Equal(VectorOf(5, 0, 0)) {
		t.Fatal("same value at different widths must compare equal")
	}
	if !VectorOf(5, 0).Equal(VectorOf(5)) {
		t.Fatal("equality must hold with operands swapped")
	}
	if VectorOf(5).Equal(VectorOf(5, 1)) {
		t.Fatal("different values must not compare equal")
	}
	if !NewVector(0).Equal(NewVector(4)) {
		t.Fatal("zero vectors of any width must compare equal")
	}
}

func TestBinaryOpsResizeRightOperand(t *testing.T) {
	wide := VectorOf(0xFF00FF00, 0x0000FFFF)
	narrow := VectorOf(0x0F0F0F0F)

	and := wide.And(narrow)
	if want := VectorOf(0x0F000F00, 0); !and.Equal(want) {
		t.Errorf("And zero-extends: got %s, want %s", and, want)
	}
	or := wide.Or(narrow)
	if want := VectorOf(0xFF0FFF0F, 0x0000FFFF); !or.Equal(want) {
		t.Errorf("Or zero-extends: got %s, want %s", or, want)
	}
	xor := wide.Xor(narrow)
	if want := VectorOf(0xF00FF00F, 0x0000FFFF); !xor.Equal(want) {
		t.Errorf("Xor zero-extends: got %s, want %s", xor, want)
	}

	// The receiver's width wins: a wider right operand is truncated.
	truncated := narrow.And(wide)
	if got := truncated.WordCount(); got != 1 {
		t.Fatalf("result width = %d words, want 1", got)
	}
	if want := VectorOf(0x0F000F00); !truncated.Equal(want) {
		t.Errorf("And truncates: got %s, want %s", truncated, want)
	}
}

func TestNot(t *testing.T) {
	v := VectorOf(0x00000000, 0xFFFF0000)
	got := v.Not()
	if want := VectorOf(0xFFFFFFFF, 0x0000FFFF); !got.Equal(want) {
		t.Errorf("Not() = %s, want %s", got, want)
	}
	if !got.Not().Equal(v) {
		t.Error("double complement must restore the original")
	}
}

func TestIsZero(t *testing.T) {
	if !NewVector(3).IsZero() {
		t.Fatal("fresh vector must be zero")
	}
	if NewVector(3).SetBit(64).IsZero() {
		t.Fatal("vector with a set bit is not zero")
	}
}
