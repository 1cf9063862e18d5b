// SPDX-License-Identifier: MIT
//
// Copyright (c) 2024 Adrian "asie" Siekierka
// Copyright (c) 2017 Kevin Kirchner

package elfpp

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignUp(t *testing.T) {
	assert.Equal(t, uint32(0), alignUp(0, 4))
	assert.Equal(t, uint32(8), alignUp(8, 4))
	assert.Equal(t, uint32(12), alignUp(9, 4))
	assert.Equal(t, uint32(4), alignUp(1, 4))
}

// buildNote constructs one GNU-style note record: namesz, descsz, type,
// name (namesz bytes including trailing NUL), padding to 4-byte
// alignment, description bytes, padding to 4-byte alignment.
func buildNote(order binary.ByteOrder, name string, desc []byte, typ uint32) []byte {
	nameBytes := append([]byte(name), 0)
	var buf []byte
	hdr := make([]byte, 12)
	order.PutUint32(hdr[0:4], uint32(len(nameBytes)))
	order.PutUint32(hdr[4:8], uint32(len(desc)))
	order.PutUint32(hdr[8:12], typ)
	buf = append(buf, hdr...)
	buf = append(buf, nameBytes...)
	for len(buf)%4 != 0 {
		buf = append(buf, 0)
	}
	buf = append(buf, desc...)
	for len(buf)%4 != 0 {
		buf = append(buf, 0)
	}
	return buf
}

func TestDecodeNoteSectionSingleEntry(t *testing.T) {
	order := binary.LittleEndian
	data := buildNote(order, "GNU", []byte{1, 2, 3, 4}, 3)
	sec := &Section{Type: SHT_NOTE, Size: uint64(len(data)), Data: data}

	ns := decodeNoteSection(sec, newConverter(EncodingLSB))
	require.Len(t, ns.Entries, 1)
	assert.Equal(t, "GNU", ns.Entries[0].Name)
	assert.Equal(t, []byte{1, 2, 3, 4}, ns.Entries[0].Description)
	assert.Equal(t, uint32(3), ns.Entries[0].Type)
}

func TestDecodeNoteSectionMultipleEntries(t *testing.T) {
	order := binary.LittleEndian
	var data []byte
	data = append(data, buildNote(order, "GNU", []byte{0xAB}, 1)...)
	data = append(data, buildNote(order, "Go", []byte{1, 2, 3, 4, 5}, 4)...)
	sec := &Section{Type: SHT_NOTE, Size: uint64(len(data)), Data: data}

	ns := decodeNoteSection(sec, newConverter(EncodingLSB))
	require.Len(t, ns.Entries, 2)
	assert.Equal(t, "GNU", ns.Entries[0].Name)
	assert.Equal(t, "Go", ns.Entries[1].Name)
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, ns.Entries[1].Description)
}

func TestDecodeNoteSectionEmptyName(t *testing.T) {
	order := binary.LittleEndian
	hdr := make([]byte, 12)
	order.PutUint32(hdr[0:4], 0)
	order.PutUint32(hdr[4:8], 0)
	order.PutUint32(hdr[8:12], 0)
	sec := &Section{Type: SHT_NOTE, Size: uint64(len(hdr)), Data: hdr}

	ns := decodeNoteSection(sec, newConverter(EncodingLSB))
	require.Len(t, ns.Entries, 1)
	assert.Equal(t, "", ns.Entries[0].Name)
	assert.Empty(t, ns.Entries[0].Description)
}

func TestDecodeNoteSectionStopsOnShortRemainder(t *testing.T) {
	sec := &Section{Type: SHT_NOTE, Size: 5, Data: []byte{1, 2, 3, 4, 5}}
	ns := decodeNoteSection(sec, newConverter(EncodingLSB))
	assert.Empty(t, ns.Entries)
}
