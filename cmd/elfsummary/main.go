// SPDX-License-Identifier: MIT
//
// Copyright (c) 2024 Adrian "asie" Siekierka
// Copyright (c) 2017 Kevin Kirchner

// Command elfsummary prints a one-shot summary of an ELF file: class,
// data encoding, type, machine, entry point, segment/section counts,
// and needed shared libraries. It takes a single positional argument
// and no flags.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Darth-Revan/libelfpp"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) != 2 {
		log.Fatal().Msg("usage: elfsummary <file>")
	}
	path := os.Args[1]

	img, err := elfpp.Open(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("failed to open ELF file")
	}

	h := img.Header
	fmt.Printf("File:            %s\n", path)
	fmt.Printf("Class:           %s\n", h.Class)
	fmt.Printf("Data encoding:   %s\n", h.Encoding)
	fmt.Printf("Type:            %s\n", h.Type)
	fmt.Printf("Machine:         %s\n", h.Machine)
	fmt.Printf("Entry point:     0x%x\n", h.Entry)
	fmt.Printf("Segments:        %d\n", len(img.Segments))
	fmt.Printf("Sections:        %d\n", len(img.Sections))

	if needed := img.NeededLibraries(); len(needed) > 0 {
		fmt.Printf("Needed libraries: %s\n", strings.Join(needed, ", "))
	}

	os.Exit(0)
}
