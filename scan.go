// Copyright (c) 2026 The rainbeam developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcparser

// InputScan is the result of walking a transaction's input array.
type InputScan struct {
	// ScriptLengths holds the signature script length of each scanned
	// input, in input order.  The scripts themselves are skipped, never
	// copied.
	ScriptLengths []uint64

	// EndPos is the offset of the first byte after the last input
	// record, i.e. the start of the output count, and is only set when
	// the scan covered the entire input array.  After a partial scan it
	// is -1, since the offset past the scanned prefix does not locate
	// the output section and must not be used to continue parsing.
	EndPos int
}

// OutputScan is the result of walking a transaction's output array.
type OutputScan struct {
	// Values holds the value of each scanned output in satoshi, in
	// output order.
	Values []uint64

	// ScriptLengths holds the public key script length of each scanned
	// output, in output order.
	ScriptLengths []uint64

	// EndPos is the offset of the first byte after the last output
	// record, i.e. the start of the lock time, and is only set when the
	// scan covered the entire output array.  After a partial scan it is
	// -1.  See InputScan.EndPos.
	EndPos int
}

// ScanInputs walks the transaction input array that starts at pos in
// buf, beginning with its CompactSize count, and records the signature
// script length of each input.  Outpoints, script bytes and sequence
// numbers are skipped by arithmetic without being read.
//
// A stop of 0 scans every input.  A nonzero stop scans exactly that
// many; it is rejected with ErrInvalidStopCount when it exceeds the
// encoded count, never clamped.  ErrOutOfBounds is returned when the
// buffer ends before the requested records do, or when the encoded
// count could not possibly fit in the bytes remaining.
func ScanInputs(buf []byte, pos int, stop uint64) (*InputScan, error) {
	count, pos, err := DecodeVarInt(buf, pos)
	if err != nil {
		return nil, err
	}

	// The count is attacker controlled.  A count that cannot fit in the
	// remaining bytes even if every input were minimal is rejected
	// before any result storage is sized from it.
	if count > uint64(len(buf)-pos)/minTxInPayload {
		return nil, ErrOutOfBounds
	}

	halt := count
	if stop != 0 {
		if stop > count {
			return nil, ErrInvalidStopCount
		}
		halt = stop
	}

	scriptLengths := make([]uint64, 0, halt)
	for i := uint64(0); i < halt; i++ {
		if pos+outPointSize > len(buf) {
			return nil, ErrOutOfBounds
		}
		pos += outPointSize

		scriptLen, next, err := DecodeVarInt(buf, pos)
		if err != nil {
			return nil, err
		}
		pos = next

		if scriptLen > uint64(len(buf)-pos) {
			return nil, ErrOutOfBounds
		}
		pos += int(scriptLen)

		if pos+sequenceSize > len(buf) {
			return nil, ErrOutOfBounds
		}
		pos += sequenceSize

		scriptLengths = append(scriptLengths, scriptLen)
	}

	endPos := pos
	if halt < count {
		endPos = -1
	}
	log.Tracef("Scanned %d of %d inputs, end offset %d", halt, count,
		endPos)

	return &InputScan{ScriptLengths: scriptLengths, EndPos: endPos}, nil
}

// ScanOutputs walks the transaction output array that starts at pos in
// buf, beginning with its CompactSize count, and records the value and
// public key script length of each output.  Script bytes are skipped by
// arithmetic without being read.
//
// The stop parameter behaves exactly as in ScanInputs, including the
// ErrInvalidStopCount and ErrOutOfBounds rules.
func ScanOutputs(buf []byte, pos int, stop uint64) (*OutputScan, error) {
	count, pos, err := DecodeVarInt(buf, pos)
	if err != nil {
		return nil, err
	}

	// Same early rejection of impossible counts as ScanInputs.
	if count > uint64(len(buf)-pos)/minTxOutPayload {
		return nil, ErrOutOfBounds
	}

	halt := count
	if stop != 0 {
		if stop > count {
			return nil, ErrInvalidStopCount
		}
		halt = stop
	}

	values := make([]uint64, 0, halt)
	scriptLengths := make([]uint64, 0, halt)
	for i := uint64(0); i < halt; i++ {
		value, err := ReadLittleEndian(buf, pos, 64)
		if err != nil {
			return nil, err
		}
		pos += valueSize

		scriptLen, next, err := DecodeVarInt(buf, pos)
		if err != nil {
			return nil, err
		}
		pos = next

		if scriptLen > uint64(len(buf)-pos) {
			return nil, ErrOutOfBounds
		}
		pos += int(scriptLen)

		values = append(values, value)
		scriptLengths = append(scriptLengths, scriptLen)
	}

	endPos := pos
	if halt < count {
		endPos = -1
	}
	log.Tracef("Scanned %d of %d outputs, end offset %d", halt, count,
		endPos)

	return &OutputScan{
		Values:        values,
		ScriptLengths: scriptLengths,
		EndPos:        endPos,
	}, nil
}
