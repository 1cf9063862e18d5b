// SPDX-License-Identifier: MIT
//
// Copyright (c) 2024 Adrian "asie" Siekierka
// Copyright (c) 2017 Kevin Kirchner

package elfpp

const (
	dyn32Size = 8
	dyn64Size = 16
)

// DynamicEntry is one (d_tag, d_un) pair of a dynamic section. ValueKind
// classifies how d_un should be interpreted per the tag table in
// spec.md §4.6 and original_source/include/libelfpp/section.h's
// DynamicSectionEntry.
type DynamicEntry struct {
	Tag       DynTag
	Value     uint64
	ValueKind DynValueKind
}

// TagName returns the textual name of the entry's tag, or the empty
// string for an unrecognized tag, per spec.md §4.6.
func (e DynamicEntry) TagName() string { return e.Tag.TagName() }

// DynamicSection is a section upgraded to SHT_DYNAMIC.
type DynamicSection struct {
	*Section
	Entries []DynamicEntry
}

// decodeDynamicSection walks a dynamic section's already-loaded bytes
// into DynamicEntry records. Grounded on spec.md §4.6's explicit tag
// classification (no corpus example parses .dynamic directly; the
// teacher's own ELF reader never builds a typed dynamic-section view).
func decodeDynamicSection(sec *Section, class Class, c converter) *DynamicSection {
	entrySize := dyn32Size
	if class == Class64 {
		entrySize = dyn64Size
	}
	ds := &DynamicSection{Section: sec}
	if entrySize == 0 {
		return ds
	}
	count := int(sec.Size) / entrySize
	ds.Entries = make([]DynamicEntry, 0, count)

	data := sec.Data
	for i := 0; i < count; i++ {
		off := i * entrySize
		if off+entrySize > len(data) {
			break
		}
		rec := data[off : off+entrySize]

		var tag DynTag
		var val uint64
		if class == Class64 {
			tag = DynTag(c.i64(rec[0:8]))
			val = c.u64(rec[8:16])
		} else {
			tag = DynTag(c.i32(rec[0:4]))
			val = uint64(c.u32(rec[4:8]))
		}

		ds.Entries = append(ds.Entries, DynamicEntry{
			Tag:       tag,
			Value:     val,
			ValueKind: tag.valueKind(),
		})
		if tag == DT_NULL {
			break
		}
	}
	return ds
}

// neededLibraries walks the dynamic section's DT_NEEDED entries through
// the given string table, returning the soname of every needed shared
// object in entry order. Grounded on original_source/src/libelfpp.cpp's
// ELFFile::getNeededLibraries, a feature the spec.md distillation
// dropped (see SPEC_FULL.md §3).
func (ds *DynamicSection) neededLibraries(strings *StringSection) []string {
	if strings == nil {
		return nil
	}
	var out []string
	for _, e := range ds.Entries {
		if e.Tag == DT_NEEDED {
			out = append(out, strings.GetString(uint32(e.Value)))
		}
	}
	return out
}
