// SPDX-License-Identifier: MIT
//
// Copyright (c) 2024 Adrian "asie" Siekierka
// Copyright (c) 2017 Kevin Kirchner

package elfpp

import "bytes"

// StringSection is a section whose data is a sequence of NUL-terminated
// byte strings addressed by offset — shstrtab, strtab, and the like.
type StringSection struct {
	*Section
}

// GetString returns the NUL-terminated string beginning at offset within
// the section's data. Per spec.md §7, an out-of-range offset yields the
// empty string rather than an error — the public query surface degrades
// to sentinel values, it does not raise.
func (s StringSection) GetString(offset uint32) string {
	data := s.Data
	if uint64(offset) >= uint64(len(data)) {
		return ""
	}
	end := bytes.IndexByte(data[offset:], 0)
	if end < 0 {
		return string(data[offset:])
	}
	return string(data[offset : offset+uint32(end)])
}
