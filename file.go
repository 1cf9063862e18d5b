// SPDX-License-Identifier: MIT
//
// Copyright (c) 2024 Adrian "asie" Siekierka
// Copyright (c) 2017 Kevin Kirchner

package elfpp

import (
	"fmt"
	"io"
	"os"
)

// ElfImage is the immutable, fully-typed object graph produced by Open.
// Every nested entity shares one endianness converter and is constructed
// exactly once; closure of the backing byte source completes before
// Open returns, per spec.md §3's lifecycle contract.
type ElfImage struct {
	Filename string
	Header   FileHeader

	Segments []*Segment
	Sections []*Section

	// Strings is the section named by the file header's string-table
	// index (e_shstrndx), wrapped as a StringSection. Nil if
	// e_shstrndx is SHN_UNDEF.
	Strings *StringSection

	Dynamic   *DynamicSection
	Symbols   []*SymbolSection
	Relocations []*RelocationSection
	Notes     []*NoteSection

	conv converter
}

// Open parses path as an ELF file, running the full pipeline described
// in spec.md §2 and ordered per §4.8/§9: identity → file header →
// sections → name resolution → typed upcasts → segments →
// segment/section mapping. The underlying file handle is released
// before Open returns, regardless of outcome.
func Open(path string) (*ElfImage, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer f.Close()

	img, err := decodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	img.Filename = path
	return img, nil
}

func decodeImage(r io.ReadSeeker) (*ElfImage, error) {
	ident := make([]byte, identSize)
	if _, err := io.ReadFull(r, ident); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return nil, ErrTruncated
		}
		return nil, err
	}

	id, err := probeIdentity(ident)
	if err != nil {
		return nil, err
	}
	conv := newConverter(id.encoding)

	trailing := elfHeader32Size
	if id.class == Class64 {
		trailing = elfHeader64Size
	}
	headerBuf := make([]byte, identSize+trailing)
	copy(headerBuf, ident)
	if _, err := io.ReadFull(r, headerBuf[identSize:]); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return nil, ErrTruncated
		}
		return nil, err
	}
	header, err := decodeFileHeader(id, headerBuf, conv)
	if err != nil {
		return nil, err
	}

	img := &ElfImage{Header: header, conv: conv}

	// Sections, before segments: see spec.md §9 open question 1.
	if header.SectionHeaderCount > 0 {
		if _, err := r.Seek(int64(header.SectionHeaderOffset), io.SeekStart); err != nil {
			return nil, err
		}
		for i := 0; i < int(header.SectionHeaderCount); i++ {
			if _, err := r.Seek(int64(header.SectionHeaderOffset)+int64(i)*int64(header.SectionHeaderSize), io.SeekStart); err != nil {
				return nil, err
			}
			sec, err := decodeSectionHeader(r, i, header.Class, conv)
			if err != nil {
				return nil, err
			}
			img.Sections = append(img.Sections, sec)
		}
	}

	// Name resolution: must occur before typed upcasts (spec.md §4.5).
	if header.StringTableIndex != SHN_UNDEF && int(header.StringTableIndex) < len(img.Sections) {
		img.Strings = &StringSection{Section: img.Sections[header.StringTableIndex]}
		for _, sec := range img.Sections {
			sec.Name = img.Strings.GetString(sec.nameOffset)
		}
	}

	img.runTypedUpcasts(header.Class)

	// Segments, after sections.
	if header.ProgramHeaderCount > 0 {
		if _, err := r.Seek(int64(header.ProgramHeaderOffset), io.SeekStart); err != nil {
			return nil, err
		}
		for i := 0; i < int(header.ProgramHeaderCount); i++ {
			if _, err := r.Seek(int64(header.ProgramHeaderOffset)+int64(i)*int64(header.ProgramHeaderSize), io.SeekStart); err != nil {
				return nil, err
			}
			seg, err := decodeProgramHeader(r, i, header.Class, conv)
			if err != nil {
				return nil, err
			}
			img.Segments = append(img.Segments, seg)
		}
	}

	// Segment↔section mapping, last.
	for _, seg := range img.Segments {
		if seg.Type == PT_NULL {
			continue
		}
		seg.associateSections(img.Sections)
	}

	return img, nil
}

// runTypedUpcasts implements spec.md §4.6. Symbol tables and string
// sections are resolved in a first sweep so that the second sweep, over
// relocation sections, can resolve sh_link against an already-decoded
// SymbolSection regardless of on-disk ordering between the two.
func (img *ElfImage) runTypedUpcasts(class Class) {
	symbolSections := make(map[int]*SymbolSection, 4)

	for _, sec := range img.Sections {
		switch sec.Type {
		case SHT_SYMTAB, SHT_DYNSYM:
			strs := img.stringSectionAt(int(sec.Link))
			ss := decodeSymbolSection(sec, strs, class, img.conv)
			symbolSections[sec.Index] = ss
			img.Symbols = append(img.Symbols, ss)
		case SHT_DYNAMIC:
			ds := decodeDynamicSection(sec, class, img.conv)
			img.Dynamic = ds
		case SHT_NOTE:
			img.Notes = append(img.Notes, decodeNoteSection(sec, img.conv))
		}
	}

	for _, sec := range img.Sections {
		if sec.Type != SHT_REL && sec.Type != SHT_RELA {
			continue
		}
		rs := decodeRelocationSection(sec, symbolSections[int(sec.Link)], class, img.conv)
		img.Relocations = append(img.Relocations, rs)
	}
}

// stringSectionAt wraps the section at idx as a StringSection, or nil
// if idx is out of range. It does not verify sec.Type == SHT_STRTAB:
// malformed sh_link values degrade to an empty-looking string table
// rather than a hard failure, per spec.md §7's sentinel-value policy.
func (img *ElfImage) stringSectionAt(idx int) *StringSection {
	if idx < 0 || idx >= len(img.Sections) {
		return nil
	}
	return &StringSection{Section: img.Sections[idx]}
}

// NeededLibraries returns the soname of every DT_NEEDED entry in the
// image's dynamic section, resolved through its linked string table, in
// entry order. Returns nil if the image has no dynamic section.
func (img *ElfImage) NeededLibraries() []string {
	if img.Dynamic == nil {
		return nil
	}
	strs := img.stringSectionAt(int(img.Dynamic.Link))
	return img.Dynamic.neededLibraries(strs)
}

// FindSymbol returns the first symbol named name across every symbol
// section, in section then entry order, or (nil, false) if no symbol
// section exists or none matches.
func (img *ElfImage) FindSymbol(name string) (*Symbol, bool) {
	for _, ss := range img.Symbols {
		for i := range ss.Symbols {
			if ss.Symbols[i].Name == name {
				return &ss.Symbols[i], true
			}
		}
	}
	return nil, false
}
