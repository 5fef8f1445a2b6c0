package bitvec

import (
	"fmt"
	"strings"
)

const (
	// WordBits is the width of a single storage word.
	WordBits = 32

	signBit = uint32(1) << (WordBits - 1)
)

// Vector is an arbitrary-width unsigned integer stored as 32-bit words,
// least-significant word first. All operations are pure: they return a new
// Vector and never mutate the receiver. Binary operations resize the right
// operand (zero-extending or truncating) to the receiver's word count before
// combining, so the result always has the receiver's width.
//
// Bit indices beyond the declared width are not bounds-checked; callers are
// expected to stay within Width().
type Vector struct {
	words []uint32
}

// NewVector returns a zero-filled vector of wordCount words.
func NewVector(wordCount int) Vector {
	if wordCount < 0 {
		wordCount = 0
	}
	return Vector{words: make([]uint32, wordCount)}
}

// VectorOf builds a vector from explicit words, least significant first.
func VectorOf(words ...uint32) Vector {
	v := Vector{words: make([]uint32, len(words))}
	copy(v.words, words)
	return v
}

// Clone returns a copy backed by fresh storage.
func (v Vector) Clone() Vector {
	return VectorOf(v.words...)
}

// WordCount returns the number of 32-bit words.
func (v Vector) WordCount() int {
	return len(v.words)
}

// Width returns the logical bit width.
func (v Vector) Width() int {
	return len(v.words) * WordBits
}

// Word returns the i-th word (0 = least significant).
func (v Vector) Word(i int) uint32 {
	return v.words[i]
}

// Words returns a copy of the backing words, least significant first.
func (v Vector) Words() []uint32 {
	return append([]uint32(nil), v.words...)
}

// resized returns v zero-extended or truncated to wordCount words.
func (v Vector) resized(wordCount int) Vector {
	out := make([]uint32, wordCount)
	copy(out, v.words)
	return Vector{words: out}
}

// And returns v AND right, sized to v.
func (v Vector) And(right Vector) Vector {
	out := right.resized(len(v.words))
	for i := range out.words {
		out.words[i] &= v.words[i]
	}
	return out
}

// Or returns v OR right, sized to v.
func (v Vector) Or(right Vector) Vector {
	out := right.resized(len(v.words))
	for i := range out.words {
		out.words[i] |= v.words[i]
	}
	return out
}

// Xor returns v XOR right, sized to v.
func (v Vector) Xor(right Vector) Vector {
	out := right.resized(len(v.words))
	for i := range out.words {
		out.words[i] ^= v.words[i]
	}
	return out
}

// Not returns the bitwise complement of v.
func (v Vector) Not() Vector {
	out := make([]uint32, len(v.words))
	for i, w := range v.words {
		out[i] = ^w
	}
	return Vector{words: out}
}

// ShiftLeft returns v shifted left by n bits. Bits shifted past the top word
// are dropped; zeros fill from the bottom.
func (v Vector) ShiftLeft(n int) Vector {
	if n <= 0 {
		return v.Clone()
	}
	out := make([]uint32, len(v.words))
	wordShift := n / WordBits
	bitShift := uint(n % WordBits)
	for i := len(out) - 1; i >= wordShift; i-- {
		w := v.words[i-wordShift] << bitShift
		if bitShift > 0 && i-wordShift-1 >= 0 {
			w |= v.words[i-wordShift-1] >> (WordBits - bitShift)
		}
		out[i] = w
	}
	return Vector{words: out}
}

// ShiftRight returns v logically shifted right by n bits, filling with zeros.
func (v Vector) ShiftRight(n int) Vector {
	if n <= 0 {
		return v.Clone()
	}
	out := make([]uint32, len(v.words))
	wordShift := n / WordBits
	bitShift := uint(n % WordBits)
	for i := 0; i+wordShift < len(v.words); i++ {
		w := v.words[i+wordShift] >> bitShift
		if bitShift > 0 && i+wordShift+1 < len(v.words) {
			w |= v.words[i+wordShift+1] << (WordBits - bitShift)
		}
		out[i] = w
	}
	return Vector{words: out}
}

// ArithShiftRight returns v shifted right by n bits, replicating the top
// word's sign bit into the vacated high bits.
func (v Vector) ArithShiftRight(n int) Vector {
	out := v.ShiftRight(n)
	if n <= 0 || len(v.words) == 0 || v.words[len(v.words)-1]&signBit == 0 {
		return out
	}
	width := v.Width()
	if n > width {
		n = width
	}
	for i := width - n; i < width; i++ {
		out.words[i/WordBits] |= 1 << uint(i%WordBits)
	}
	return out
}

// Equal reports whether v and other hold the same numeric value. The shorter
// operand is zero-extended, so vectors of different declared widths with the
// same value compare equal.
func (v Vector) Equal(other Vector) bool {
	longest := len(v.words)
	if len(other.words) > longest {
		longest = len(other.words)
	}
	for i := 0; i < longest; i++ {
		var a, b uint32
		if i < len(v.words) {
			a = v.words[i]
		}
		if i < len(other.words) {
			b = other.words[i]
		}
		if a != b {
			return false
		}
	}
	return true
}

// IsZero reports whether every bit is clear.
func (v Vector) IsZero() bool {
	for _, w := range v.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Bit reports whether bit index is set.
func (v Vector) Bit(index int) bool {
	return v.words[index/WordBits]&(1<<uint(index%WordBits)) != 0
}

// SetBit returns v with bit index set.
func (v Vector) SetBit(index int) Vector {
	out := v.Clone()
	out.words[index/WordBits] |= 1 << uint(index%WordBits)
	return out
}

// ClearBit returns v with bit index cleared.
func (v Vector) ClearBit(index int) Vector {
	out := v.Clone()
	out.words[index/WordBits] &^= 1 << uint(index%WordBits)
	return out
}

// ToggleBit returns v with bit index flipped.
func (v Vector) ToggleBit(index int) Vector {
	out := v.Clone()
	out.words[index/WordBits] ^= 1 << uint(index%WordBits)
	return out
}

// String renders the vector as hex words, most significant first.
func (v Vector) String() string {
	if len(v.words) == 0 {
		return "0x0"
	}
	var sb strings.Builder
	sb.WriteString("0x")
	for i := len(v.words) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%08x", v.words[i])
		if i > 0 {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
