// Copyright (c) 2026 The rainbeam developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcparser

// OutputInfo describes a single transaction output without carrying its
// script: the value in satoshi and the length of the public key script
// that was skipped.
type OutputInfo struct {
	Value       uint64
	PkScriptLen uint64
}

// ExtractFirstTwoOutputs returns the value and public key script length
// of the first two outputs of the serialized transaction in buf.  The
// version field is skipped without validation, the input array is fully
// scanned to locate the output section, and only the first two output
// records are decoded.
//
// It returns ErrInsufficientOutputs when the transaction has fewer than
// two outputs, and ErrOutOfBounds when the encoding is truncated or
// otherwise malformed.  On error both OutputInfo results are zero and
// must not be used.
func ExtractFirstTwoOutputs(buf []byte) (OutputInfo, OutputInfo, error) {
	// The input array must be scanned in full.  A partial scan would
	// not leave the cursor at the output count.
	inputs, err := ScanInputs(buf, versionSize, 0)
	if err != nil {
		return OutputInfo{}, OutputInfo{}, err
	}

	outputs, err := ScanOutputs(buf, inputs.EndPos, 2)
	if err != nil {
		if err == ErrInvalidStopCount {
			// Fewer than two outputs encoded.
			return OutputInfo{}, OutputInfo{}, ErrInsufficientOutputs
		}
		return OutputInfo{}, OutputInfo{}, err
	}
	if len(outputs.Values) < 2 {
		return OutputInfo{}, OutputInfo{}, ErrInsufficientOutputs
	}

	first := OutputInfo{
		Value:       outputs.Values[0],
		PkScriptLen: outputs.ScriptLengths[0],
	}
	second := OutputInfo{
		Value:       outputs.Values[1],
		PkScriptLen: outputs.ScriptLengths[1],
	}
	log.Tracef("Extracted outputs %v and %v", first, second)
	return first, second, nil
}

// ExtractLockTime returns the lock time of the serialized transaction
// in buf.  Both the input and output arrays are fully scanned to locate
// the trailing 4-byte field; all other fields are skipped.
func ExtractLockTime(buf []byte) (uint32, error) {
	inputs, err := ScanInputs(buf, versionSize, 0)
	if err != nil {
		return 0, err
	}

	outputs, err := ScanOutputs(buf, inputs.EndPos, 0)
	if err != nil {
		return 0, err
	}

	lockTime, err := ReadLittleEndian(buf, outputs.EndPos, 32)
	if err != nil {
		return 0, err
	}
	return uint32(lockTime), nil
}
