// Copyright (c) 2026 The rainbeam developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcparser

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// versionSize is the size of the transaction version field.
	versionSize = 4

	// outPointSize is the size of a serialized outpoint: the referenced
	// transaction hash plus a 4-byte output index.
	outPointSize = chainhash.HashSize + 4

	// sequenceSize is the size of a transaction input sequence number.
	sequenceSize = 4

	// valueSize is the size of a transaction output value.
	valueSize = 8

	// minTxInPayload is the minimum payload size for a transaction
	// input: outpoint 36 bytes + varint for signature script length 1
	// byte + sequence 4 bytes.
	minTxInPayload = outPointSize + 1 + sequenceSize

	// minTxOutPayload is the minimum payload size for a transaction
	// output: value 8 bytes + varint for pk script length 1 byte.
	minTxOutPayload = valueSize + 1
)

// ReadLittleEndian decodes the unsigned little-endian integer of the
// given bit width (16, 32 or 64) starting at pos in buf.  The result is
// always widened to a uint64.  It returns ErrOutOfBounds if fewer than
// widthBits/8 bytes remain at pos, and panics if widthBits is anything
// other than 16, 32 or 64.
func ReadLittleEndian(buf []byte, pos int, widthBits int) (uint64, error) {
	switch widthBits {
	case 16, 32, 64:
	default:
		panic(fmt.Sprintf("btcparser: unsupported width %d bits", widthBits))
	}

	size := widthBits / 8
	if pos < 0 || pos+size > len(buf) {
		return 0, ErrOutOfBounds
	}

	var rv uint64
	for i := 0; i < size; i++ {
		rv |= uint64(buf[pos+i]) << (8 * i)
	}
	return rv, nil
}
