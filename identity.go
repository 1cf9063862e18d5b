// SPDX-License-Identifier: MIT
//
// Copyright (c) 2024 Adrian "asie" Siekierka
// Copyright (c) 2017 Kevin Kirchner

package elfpp

import "fmt"

// identSize is the length of the ELF identification prefix, e_ident.
const identSize = 16

var elfMagic = [4]byte{0x7F, 0x45, 0x4C, 0x46} // "\x7fELF"

// identity holds the decoded e_ident prefix, the first thing read from
// any ELF file and the only part of the format that is class- and
// encoding-independent by construction.
type identity struct {
	class         Class
	encoding      Encoding
	headerVersion uint8
	abi           OSABI
	abiVersion    uint8
}

// probeIdentity validates and decodes a 16-byte e_ident buffer. It is
// the first stage of the pipeline: every subsequent decoder depends on
// the class and encoding determined here. Grounded on the teacher's
// readElfHeader, which performs the same raw byte comparison rather
// than using a string/bytes.Equal helper.
func probeIdentity(ident []byte) (identity, error) {
	if len(ident) < identSize {
		return identity{}, ErrTruncated
	}
	if ident[0] != elfMagic[0] || ident[1] != elfMagic[1] ||
		ident[2] != elfMagic[2] || ident[3] != elfMagic[3] {
		return identity{}, ErrBadMagic
	}

	class := Class(ident[4])
	if class != Class32 && class != Class64 {
		return identity{}, fmt.Errorf("%w: %d", ErrBadClass, ident[4])
	}

	enc := Encoding(ident[5])
	if enc != EncodingLSB && enc != EncodingMSB {
		return identity{}, fmt.Errorf("%w: %d", ErrBadEncoding, ident[5])
	}

	id := identity{
		class:         class,
		encoding:      enc,
		headerVersion: ident[6],
		abi:           OSABI(ident[7]),
		abiVersion:    ident[8],
	}
	return id, nil
}
