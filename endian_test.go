// SPDX-License-Identifier: MIT
//
// Copyright (c) 2024 Adrian "asie" Siekierka
// Copyright (c) 2017 Kevin Kirchner

package elfpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConverterSameEndianIsIdentity(t *testing.T) {
	c := newConverter(EncodingLSB)
	buf := []byte{0xEF, 0xBE, 0xAD, 0xDE}
	assert.Equal(t, uint32(0xDEADBEEF), c.u32(buf))
}

func TestConverterCrossEndianSwaps(t *testing.T) {
	// Scenario E: (little, big) — a big-endian converter reading a
	// buffer yields the byte-reversed value of a little-endian read.
	big := newConverter(EncodingMSB)
	buf := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	assert.Equal(t, uint32(0xDEADBEEF), big.u32(buf))

	buf16 := []byte{0x01, 0x00}
	assert.Equal(t, uint16(0x0100), big.u16(buf16))
}

func TestConverterScenarioEValues(t *testing.T) {
	big := newConverter(EncodingMSB)
	// convert(0x00102442) = 0x42241000 when read big-endian.
	buf := []byte{0x00, 0x10, 0x24, 0x42}
	assert.Equal(t, uint32(0x42241000), big.u32(buf))
}

func TestConverterInvolution(t *testing.T) {
	// Scenario F: round-tripping through encode-then-decode with
	// mismatched host/file order must recover the original value.
	for _, x := range []uint64{0, 1, 0xDEADBEEFCAFEBABE, 0x0102030405060708} {
		le := newConverter(EncodingLSB)
		be := newConverter(EncodingMSB)

		buf := make([]byte, 8)
		be.order.PutUint64(buf, x)
		decoded := be.u64(buf)
		assert.Equal(t, x, decoded)

		buf2 := make([]byte, 8)
		le.order.PutUint64(buf2, decoded)
		roundTripped := le.order.Uint64(buf2)
		assert.Equal(t, decoded, roundTripped)
	}
}

func TestConverterEightBitPassthrough(t *testing.T) {
	// 8-bit values are always returned unchanged regardless of
	// encoding; there is nothing to reorder within a single byte.
	buf := []byte{0x7F}
	assert.Equal(t, buf[0], byte(0x7F))
}
