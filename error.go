// Copyright (c) 2026 The rainbeam developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package btcparser

import "errors"

// Parsing errors.  Decoding is all or nothing: when any of these is
// returned, every other return value is meaningless and must not be
// used.  The same malformed buffer always fails the same way, so there
// is nothing to retry.
var (
	// ErrOutOfBounds is returned when a read would extend past the end
	// of the buffer, including the case where a record count implies
	// more payload than the buffer has left.
	ErrOutOfBounds = errors.New("read beyond end of buffer")

	// ErrInvalidStopCount is returned when the requested number of
	// records to scan exceeds the count encoded in the transaction.
	// The request is never silently clamped to the actual count.
	ErrInvalidStopCount = errors.New("stop count exceeds record count")

	// ErrInsufficientOutputs is returned by ExtractFirstTwoOutputs when
	// the transaction has fewer than two outputs.
	ErrInsufficientOutputs = errors.New("transaction has fewer than two outputs")
)
