// SPDX-License-Identifier: MIT
//
// Copyright (c) 2024 Adrian "asie" Siekierka
// Copyright (c) 2017 Kevin Kirchner

package elfpp

const (
	rel32Size  = 8
	rel64Size  = 16
	rela32Size = 12
	rela64Size = 24
)

// RelocationEntry is one REL or RELA record, with its symbol index
// resolved against the relocation section's linked symbol table.
type RelocationEntry struct {
	Offset       uint64
	Info         uint64
	SymbolIndex  uint32
	Type         uint32
	Addend       int64 // 0 when the owning section's kind is REL
	Symbol       *Symbol
}

// RelocationSection is a section upgraded to SHT_REL or SHT_RELA, per
// spec.md §4.6. The class flag and addend-presence are both implied by
// the section's own Type and the image's class, so neither is stored
// redundantly on every entry.
type RelocationSection struct {
	*Section
	Symbols *SymbolSection
	HasAddend bool
	Entries   []RelocationEntry
}

// decodeRelocationSection walks a relocation section's already-loaded
// bytes into RelocationEntry records. Grounded on the teacher's
// readRelocation, adapted to decode from an in-memory buffer and to
// resolve the symbol by slice index rather than unconditionally —
// spec.md §3 requires a null resolved-symbol on a bad index rather than
// an out-of-range panic.
func decodeRelocationSection(sec *Section, symbols *SymbolSection, class Class, c converter) *RelocationSection {
	hasAddend := sec.Type == SHT_RELA
	entrySize := rel32Size
	switch {
	case class == Class64 && hasAddend:
		entrySize = rela64Size
	case class == Class64:
		entrySize = rel64Size
	case hasAddend:
		entrySize = rela32Size
	}

	rs := &RelocationSection{Section: sec, Symbols: symbols, HasAddend: hasAddend}
	if entrySize == 0 {
		return rs
	}
	count := int(sec.Size) / entrySize
	rs.Entries = make([]RelocationEntry, 0, count)

	data := sec.Data
	for i := 0; i < count; i++ {
		off := i * entrySize
		if off+entrySize > len(data) {
			break
		}
		rec := data[off : off+entrySize]

		var e RelocationEntry
		var info uint64
		if class == Class64 {
			e.Offset = c.u64(rec[0:8])
			info = c.u64(rec[8:16])
			e.Info = info
			e.SymbolIndex = uint32(info >> 32)
			e.Type = uint32(info)
			if hasAddend {
				e.Addend = c.i64(rec[16:24])
			}
		} else {
			e.Offset = uint64(c.u32(rec[0:4]))
			info = uint64(c.u32(rec[4:8]))
			e.Info = info
			e.SymbolIndex = uint32(info >> 8)
			e.Type = uint32(info & 0xFF)
			if hasAddend {
				e.Addend = int64(c.i32(rec[8:12]))
			}
		}

		if symbols != nil && int(e.SymbolIndex) < len(symbols.Symbols) {
			e.Symbol = &symbols.Symbols[e.SymbolIndex]
		}

		rs.Entries = append(rs.Entries, e)
	}
	return rs
}
