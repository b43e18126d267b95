// Copyright (c) 2026 The rainbeam developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcparser

import "math"

// DecodeVarInt decodes the CompactSize integer starting at pos in buf
// and returns it along with the offset of the first byte after its
// encoding.  The first byte selects the width: values below 0xfd are
// the value itself, while 0xfd, 0xfe and 0xff prefix a little-endian
// 16, 32 or 64 bit value respectively.
//
// Non-canonical encodings are accepted: a value that would fit in a
// smaller form but is encoded in a larger one decodes to the same
// value.  It returns ErrOutOfBounds if the buffer ends before the
// encoding does.
func DecodeVarInt(buf []byte, pos int) (uint64, int, error) {
	if pos < 0 || pos >= len(buf) {
		return 0, 0, ErrOutOfBounds
	}

	discriminant := buf[pos]
	pos++

	var width int
	switch discriminant {
	case 0xff:
		width = 64
	case 0xfe:
		width = 32
	case 0xfd:
		width = 16
	default:
		return uint64(discriminant), pos, nil
	}

	rv, err := ReadLittleEndian(buf, pos, width)
	if err != nil {
		return 0, 0, err
	}
	return rv, pos + width/8, nil
}

// AppendVarInt appends the CompactSize encoding of val to b and returns
// the extended slice.  The smallest form that can represent val is
// always used.
func AppendVarInt(b []byte, val uint64) []byte {
	switch {
	case val > math.MaxUint32:
		b = append(b, 0xff)
		for i := 0; i < 8; i++ {
			b = append(b, byte(val>>(8*i)))
		}
	case val > math.MaxUint16:
		b = append(b, 0xfe)
		for i := 0; i < 4; i++ {
			b = append(b, byte(val>>(8*i)))
		}
	case val >= 0xfd:
		b = append(b, 0xfd, byte(val), byte(val>>8))
	default:
		b = append(b, byte(val))
	}
	return b
}

// VarIntSerializeSize returns the number of bytes it would take to
// serialize val as a CompactSize integer.
func VarIntSerializeSize(val uint64) int {
	// The value is small enough to be represented by itself, so it's
	// just 1 byte.
	if val < 0xfd {
		return 1
	}

	// Discriminant 1 byte plus 2 bytes for the uint16.
	if val <= math.MaxUint16 {
		return 3
	}

	// Discriminant 1 byte plus 4 bytes for the uint32.
	if val <= math.MaxUint32 {
		return 5
	}

	// Discriminant 1 byte plus 8 bytes for the uint64.
	return 9
}
