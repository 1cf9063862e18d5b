// SPDX-License-Identifier: MIT
//
// Copyright (c) 2024 Adrian "asie" Siekierka
// Copyright (c) 2017 Kevin Kirchner

// Package elfpp is a read-only ELF object-file reader. It parses the
// System V Executable and Linkable Format, validates the identification
// prefix, and exposes a navigable, fully-typed object graph covering the
// file header, program headers (segments), section headers, and the
// principal structured sections (string, symbol, dynamic, relocation,
// note).
//
// The package never mutates the underlying file, never memory-maps it,
// and never attempts to repair malformed structures. Every value is
// constructed once during Open and is immutable thereafter, so a parsed
// ElfImage may be shared freely across goroutines.
package elfpp

// Version is the library's version number, surfaced for diagnostics and
// for CLI tools built on top of the package.
const Version = "1.0.0"
