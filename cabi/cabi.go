//go:build cgo

// Package cabi exposes package patterns across a C ABI, mirroring the two
// entry points of the reference crate's `sys` cdylib: parse a pattern string
// directly into a caller-owned buffer, then scan a data buffer using that
// buffer's contents. It is built only when cgo is enabled and is not part of
// the regular Go API surface.
package cabi

/*
#include <stddef.h>
#include <stdint.h>
*/
import "C"

import (
	"unsafe"

	"github.com/greaka/patterns"
)

// ParsePattern parses the len bytes at pat as UTF-8 pattern text with the
// given alignment and writes the compiled pattern directly into the buffer
// at res. The buffer behind res must be at least sizeof(patterns.CompiledPattern)
// bytes and is treated as opaque by callers, matching the reference crate's
// own `parse_pattern(pat, len, res: *mut Pattern)` contract: `CompiledPattern`
// holds no embedded pointers, so copying it by value into caller-owned memory
// is safe without any handle indirection. On parse error, res is left
// untouched.
//
//export ParsePattern
func ParsePattern(pat *C.uint8_t, length C.size_t, alignment C.int, res unsafe.Pointer) {
	if pat == nil || res == nil {
		return
	}
	text := C.GoStringN((*C.char)(unsafe.Pointer(pat)), C.int(length))

	compiled, err := patterns.Compile(text, int(alignment))
	if err != nil {
		return
	}

	*(*patterns.CompiledPattern)(res) = *compiled
}

// MatchPattern scans the len bytes at data using the pattern at pat (as
// written by a prior ParsePattern call), writing up to capacity match
// offsets into res and the number written into *numRes. pat must point to a
// valid CompiledPattern; a nil pat is a no-op.
//
//export MatchPattern
func MatchPattern(pat unsafe.Pointer, data *C.uint8_t, length C.size_t, res *C.size_t, capacity C.size_t, numRes *C.size_t) {
	if numRes == nil {
		return
	}
	*numRes = 0

	if pat == nil {
		return
	}
	compiled := (*patterns.CompiledPattern)(pat)

	var buf []byte
	if data != nil && length > 0 {
		buf = unsafe.Slice((*byte)(unsafe.Pointer(data)), int(length))
	}

	out := unsafe.Slice(res, int(capacity))
	cursor := compiled.Scan(buf)
	n := 0
	for n < int(capacity) {
		pos, found := cursor.Next()
		if !found {
			break
		}
		out[n] = C.size_t(pos)
		n++
	}
	*numRes = C.size_t(n)
}
