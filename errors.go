// SPDX-License-Identifier: MIT
//
// Copyright (c) 2024 Adrian "asie" Siekierka
// Copyright (c) 2017 Kevin Kirchner

package elfpp

import "errors"

// Sentinel errors returned by the identity probe and the decoders built
// on top of it. Call sites wrap these with fmt.Errorf("...: %w", ...)
// to attach position or value context, matching the style of the
// teacher's own serialization_*.go files.
var (
	// ErrBadMagic means e_ident[0:4] did not read \x7fELF.
	ErrBadMagic = errors.New("elfpp: not an ELF file: bad magic")

	// ErrBadClass means e_ident[EI_CLASS] was neither ELFCLASS32 nor
	// ELFCLASS64.
	ErrBadClass = errors.New("elfpp: unrecognized ELF class")

	// ErrBadEncoding means e_ident[EI_DATA] was neither ELFDATA2LSB nor
	// ELFDATA2MSB.
	ErrBadEncoding = errors.New("elfpp: unrecognized ELF data encoding")

	// ErrTruncated means fewer bytes were available than a fixed-size
	// structure requires.
	ErrTruncated = errors.New("elfpp: truncated ELF file")
)

// maxReasonableCount bounds a section or segment's on-disk data size
// against the implausible. Exceeding it degrades the entity to an
// empty, size=0 buffer rather than failing the parse (spec.md §5/§7/§8);
// it does not distinguish a corrupt length field from a genuine
// allocation failure, and need not, since both are handled identically.
const maxReasonableCount = 1 << 30
