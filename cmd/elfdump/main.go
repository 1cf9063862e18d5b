// SPDX-License-Identifier: MIT
//
// Copyright (c) 2024 Adrian "asie" Siekierka
// Copyright (c) 2017 Kevin Kirchner

// Command elfdump is a readelf-style dumper built on top of elfpp. It
// prints the parts of an ELF file named by its flags: file header,
// program headers and segment/section mapping, section headers, symbol
// tables, the dynamic section, note sections, and relocation sections.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Darth-Revan/libelfpp"
)

type flags struct {
	fileHeader bool
	segments   bool
	sections   bool
	headers    bool
	symbols    bool
	dynamic    bool
	notes      bool
	relocs     bool
}

func parseFlags() (flags, string) {
	var f flags
	flag.BoolVar(&f.fileHeader, "f", false, "print file header")
	flag.BoolVar(&f.fileHeader, "file-header", false, "print file header")
	flag.BoolVar(&f.segments, "l", false, "print program headers and section mapping")
	flag.BoolVar(&f.segments, "segments", false, "print program headers and section mapping")
	flag.BoolVar(&f.sections, "S", false, "print section headers")
	flag.BoolVar(&f.sections, "sections", false, "print section headers")
	flag.BoolVar(&f.headers, "e", false, "equivalent to -f -l -S")
	flag.BoolVar(&f.headers, "headers", false, "equivalent to -f -l -S")
	flag.BoolVar(&f.symbols, "s", false, "print symbol tables")
	flag.BoolVar(&f.symbols, "symbols", false, "print symbol tables")
	flag.BoolVar(&f.dynamic, "d", false, "print dynamic section")
	flag.BoolVar(&f.dynamic, "dynamic", false, "print dynamic section")
	flag.BoolVar(&f.notes, "n", false, "print note sections")
	flag.BoolVar(&f.notes, "notes", false, "print note sections")
	flag.BoolVar(&f.relocs, "r", false, "print relocation sections")
	flag.BoolVar(&f.relocs, "relocs", false, "print relocation sections")
	flag.Parse()

	if f.headers {
		f.fileHeader = true
		f.segments = true
		f.sections = true
	}

	if flag.NArg() != 1 {
		log.Fatal().Msg("usage: elfdump [flags] <file>")
	}
	return f, flag.Arg(0)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	f, path := parseFlags()

	img, err := elfpp.Open(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("failed to open ELF file")
		os.Exit(1)
	}

	if f.fileHeader {
		printFileHeader(img)
	}
	if f.segments {
		printSegments(img)
	}
	if f.sections {
		printSections(img)
	}
	if f.symbols {
		printSymbols(img)
	}
	if f.dynamic {
		printDynamic(img)
	}
	if f.notes {
		printNotes(img)
	}
	if f.relocs {
		printRelocations(img)
	}

	os.Exit(0)
}

func printFileHeader(img *elfpp.ElfImage) {
	h := img.Header
	fmt.Println("ELF Header:")
	fmt.Printf("  Class:                             %s\n", h.Class)
	fmt.Printf("  Data:                              %s\n", h.Encoding)
	fmt.Printf("  Version:                           %d\n", h.Version)
	fmt.Printf("  OS/ABI:                            %s\n", h.ABI)
	fmt.Printf("  Type:                              %s\n", h.Type)
	fmt.Printf("  Machine:                           %s\n", h.Machine)
	fmt.Printf("  Entry point address:               0x%x\n", h.Entry)
	fmt.Printf("  Start of program headers:          %d\n", h.ProgramHeaderOffset)
	fmt.Printf("  Start of section headers:          %d\n", h.SectionHeaderOffset)
	fmt.Printf("  Flags:                             0x%x\n", h.Flags)
	fmt.Printf("  Number of program headers:         %d\n", h.ProgramHeaderCount)
	fmt.Printf("  Number of section headers:         %d\n", h.SectionHeaderCount)
	fmt.Printf("  Section header string table index: %d\n", h.StringTableIndex)
	fmt.Println()
}

func printSegments(img *elfpp.ElfImage) {
	fmt.Println("Program Headers:")
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Type\tOffset\tVirtAddr\tPhysAddr\tFileSiz\tMemSiz\tFlg\tAlign")
	for _, seg := range img.Segments {
		fmt.Fprintf(w, "%s\t0x%x\t0x%x\t0x%x\t0x%x\t0x%x\t%s\t0x%x\n",
			seg.Type, seg.Offset, seg.VirtualAddress, seg.PhysicalAddress,
			seg.FileSize, seg.MemorySize, seg.Flags, seg.Align)
	}
	w.Flush()

	fmt.Println("\n Section to Segment mapping:")
	w = tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Segment\tSections")
	for _, seg := range img.Segments {
		names := make([]string, 0, len(seg.Sections))
		for _, idx := range seg.Sections {
			if idx >= 0 && idx < len(img.Sections) {
				names = append(names, img.Sections[idx].Name)
			}
		}
		fmt.Fprintf(w, "%02d\t%s\n", seg.Index, joinNames(names))
	}
	w.Flush()
	fmt.Println()
}

func printSections(img *elfpp.ElfImage) {
	fmt.Println("Section Headers:")
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "[Nr]\tName\tType\tAddress\tOffset\tSize\tFlg\tLk\tInf\tAl")
	for _, s := range img.Sections {
		fmt.Fprintf(w, "[%2d]\t%s\t%s\t%016x\t%08x\t%08x\t%s\t%d\t%d\t%d\n",
			s.Index, s.Name, s.Type, s.Address, s.Offset, s.Size, s.Flags.String(),
			s.Link, s.Info, s.AddrAlign)
	}
	w.Flush()
	fmt.Println()
}

func printSymbols(img *elfpp.ElfImage) {
	for _, ss := range img.Symbols {
		fmt.Printf("Symbol table '%s' contains %d entries:\n", ss.Name, len(ss.Symbols))
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "Num\tValue\tSize\tType\tBind\tNdx\tName")
		for i, sym := range ss.Symbols {
			fmt.Fprintf(w, "%d\t%016x\t%d\t%s\t%s\t%d\t%s\n",
				i, sym.Value, sym.Size, sym.TypeString(), sym.BindingString(),
				sym.SectionIndex, sym.Name)
		}
		w.Flush()
		fmt.Println()
	}
}

func printDynamic(img *elfpp.ElfImage) {
	if img.Dynamic == nil {
		return
	}
	fmt.Printf("Dynamic section at offset 0x%x contains %d entries:\n", img.Dynamic.Offset, len(img.Dynamic.Entries))
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Tag\tType\tValue")
	for _, e := range img.Dynamic.Entries {
		fmt.Fprintf(w, "0x%x\t%s\t0x%x\n", int64(e.Tag), e.TagName(), e.Value)
	}
	w.Flush()
	fmt.Println()
}

func printNotes(img *elfpp.ElfImage) {
	for _, ns := range img.Notes {
		fmt.Printf("Displaying notes found in: %s\n", ns.Name)
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "Owner\tDataSize\tDescription")
		for _, n := range ns.Entries {
			fmt.Fprintf(w, "%s\t0x%x\t%d\n", n.Name, len(n.Description), n.Type)
		}
		w.Flush()
		fmt.Println()
	}
}

func printRelocations(img *elfpp.ElfImage) {
	for _, rs := range img.Relocations {
		fmt.Printf("Relocation section '%s' at offset 0x%x contains %d entries:\n",
			rs.Name, rs.Offset, len(rs.Entries))
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "Offset\tInfo\tType\tSym. Name\tAddend")
		for _, e := range rs.Entries {
			name := ""
			if e.Symbol != nil {
				name = e.Symbol.Name
			}
			fmt.Fprintf(w, "%012x\t%012x\t%d\t%s\t%d\n", e.Offset, e.Info, e.Type, name, e.Addend)
		}
		w.Flush()
		fmt.Println()
	}
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += " "
		}
		out += n
	}
	return out
}
