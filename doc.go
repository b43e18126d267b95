// Copyright (c) 2026 The rainbeam developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package btcparser extracts individual fields from raw serialized bitcoin
transactions without deserializing them.

Given the wire encoding of a transaction as a byte slice, the package
walks the encoding with a forward-only cursor, decoding CompactSize
integers and little-endian fixed-width integers as it goes, and skipping
script bytes by arithmetic rather than copying them.  It never
interprets scripts, verifies signatures, or computes transaction hashes;
it only locates and returns the requested fields.  This makes it
suitable for callers that hold a full transaction but need just a couple
of values from it, such as payment verifiers checking the amounts and
script sizes of the first outputs.

The input buffer is treated as untrusted.  Every read is bounds checked
against the buffer length, record counts are validated against the bytes
actually remaining before any result storage is allocated, and malformed
or truncated encodings fail fast with one of the package's sentinel
errors.  Decoding is pure: the buffer is only read, no state is kept
between calls, and concurrent use against the same or different buffers
is safe.
*/
package btcparser
