package bitvec

import "math/bits"

// Bitboard is a fixed-width set of bits backed by a single machine word for
// boards of up to 32 bits, or by a Vector above that. Both backings expose
// the same contract; callers never see which one is in use.
//
// Like Vector, operations are pure and bit indices are not bounds-checked.
// Binary operations expect both operands to have been built with the same
// bit count; mixed-width operands are resolved through the Vector rules.
type Bitboard struct {
	bits  int
	small bool
	word  uint32
	wide  Vector
}

// NewBitboard returns an empty board of the given bit count.
func NewBitboard(bitCount int) Bitboard {
	if bitCount <= WordBits {
		return Bitboard{bits: bitCount, small: true}
	}
	wordCount := (bitCount + WordBits - 1) / WordBits
	return Bitboard{bits: bitCount, wide: NewVector(wordCount)}
}

// BitboardFromWord returns a single-word board holding word.
func BitboardFromWord(bitCount int, word uint32) Bitboard {
	b := NewBitboard(bitCount)
	if b.small {
		b.word = word
		return b
	}
	b.wide.words[0] = word
	return b
}

// Bits returns the declared bit count.
func (b Bitboard) Bits() int {
	return b.bits
}

// Bit reports whether bit index is set.
func (b Bitboard) Bit(index int) bool {
	if b.small {
		return b.word&(1<<uint(index)) != 0
	}
	return b.wide.Bit(index)
}

// SetBit returns b with bit index set.
func (b Bitboard) SetBit(index int) Bitboard {
	if b.small {
		b.word |= 1 << uint(index)
		return b
	}
	b.wide = b.wide.SetBit(index)
	return b
}

// ClearBit returns b with bit index cleared.
func (b Bitboard) ClearBit(index int) Bitboard {
	if b.small {
		b.word &^= 1 << uint(index)
		return b
	}
	b.wide = b.wide.ClearBit(index)
	return b
}

// ToggleBit returns b with bit index flipped.
func (b Bitboard) ToggleBit(index int) Bitboard {
	if b.small {
		b.word ^= 1 << uint(index)
		return b
	}
	b.wide = b.wide.ToggleBit(index)
	return b
}

// And returns b AND other.
func (b Bitboard) And(other Bitboard) Bitboard {
	if b.small && other.small {
		b.word &= other.word
		return b
	}
	b = b.widen()
	b.wide = b.wide.And(other.widen().wide)
	return b
}

// Or returns b OR other.
func (b Bitboard) Or(other Bitboard) Bitboard {
	if b.small && other.small {
		b.word |= other.word
		return b
	}
	b = b.widen()
	b.wide = b.wide.Or(other.widen().wide)
	return b
}

// Xor returns b XOR other.
func (b Bitboard) Xor(other Bitboard) Bitboard {
	if b.small && other.small {
		b.word ^= other.word
		return b
	}
	b = b.widen()
	b.wide = b.wide.Xor(other.widen().wide)
	return b
}

// ShiftRight returns b logically shifted right by n bits.
func (b Bitboard) ShiftRight(n int) Bitboard {
	if n <= 0 {
		return b
	}
	if b.small {
		if n >= WordBits {
			b.word = 0
		} else {
			b.word >>= uint(n)
		}
		return b
	}
	b.wide = b.wide.ShiftRight(n)
	return b
}

// ShiftLeft returns b shifted left by n bits.
func (b Bitboard) ShiftLeft(n int) Bitboard {
	if n <= 0 {
		return b
	}
	if b.small {
		if n >= WordBits {
			b.word = 0
		} else {
			b.word <<= uint(n)
		}
		return b
	}
	b.wide = b.wide.ShiftLeft(n)
	return b
}

// Contains reports whether every set bit of mask is also set in b.
func (b Bitboard) Contains(mask Bitboard) bool {
	return b.And(mask).Equal(mask)
}

// Equal reports whether b and other hold the same bits.
func (b Bitboard) Equal(other Bitboard) bool {
	if b.small && other.small {
		return b.word == other.word
	}
	return b.widen().wide.Equal(other.widen().wide)
}

// IsZero reports whether every bit is clear.
func (b Bitboard) IsZero() bool {
	if b.small {
		return b.word == 0
	}
	return b.wide.IsZero()
}

// OnesCount returns the number of set bits.
func (b Bitboard) OnesCount() int {
	if b.small {
		return bits.OnesCount32(b.word)
	}
	count := 0
	for _, w := range b.wide.words {
		count += bits.OnesCount32(w)
	}
	return count
}

// widen returns b with Vector backing regardless of size.
func (b Bitboard) widen() Bitboard {
	if !b.small {
		return b
	}
	return Bitboard{bits: b.bits, wide: VectorOf(b.word)}
}
