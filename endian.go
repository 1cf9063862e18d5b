// SPDX-License-Identifier: MIT
//
// Copyright (c) 2024 Adrian "asie" Siekierka
// Copyright (c) 2017 Kevin Kirchner

package elfpp

import "encoding/binary"

// converter decodes multi-byte integers from file order into host
// values. It holds the file's byte order (binary.LittleEndian or
// binary.BigEndian), chosen once from the file encoding and reused for
// every field in the image; the host's own byte order never enters
// into it.
type converter struct {
	order binary.ByteOrder
}

// newConverter builds a converter for the given file encoding. Only
// EncodingLSB and EncodingMSB are meaningful; callers validate the
// encoding during the identity probe before constructing one.
func newConverter(enc Encoding) converter {
	if enc == EncodingMSB {
		return converter{order: binary.BigEndian}
	}
	return converter{order: binary.LittleEndian}
}

func (c converter) u16(b []byte) uint16 { return c.order.Uint16(b) }
func (c converter) u32(b []byte) uint32 { return c.order.Uint32(b) }
func (c converter) u64(b []byte) uint64 { return c.order.Uint64(b) }

func (c converter) i16(b []byte) int16 { return int16(c.order.Uint16(b)) }
func (c converter) i32(b []byte) int32 { return int32(c.order.Uint32(b)) }
func (c converter) i64(b []byte) int64 { return int64(c.order.Uint64(b)) }
