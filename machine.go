// SPDX-License-Identifier: MIT
//
// Copyright (c) 2024 Adrian "asie" Siekierka
// Copyright (c) 2017 Kevin Kirchner

package elfpp

// Machine constants, e_machine. Grounded on the EM_386/EM_MIPS/EM_ARM
// subset kept by constants.go's teacher source, expanded to the fuller
// EM_* surface referenced throughout the retrieved corpus's ELF-adjacent
// files (the set mirrors the one carried by the Go standard library's
// debug/elf package, which several of the retrieved readers import
// directly instead of redefining their own).
const (
	EM_NONE        Machine = 0
	EM_M32         Machine = 1
	EM_SPARC       Machine = 2
	EM_386         Machine = 3
	EM_68K         Machine = 4
	EM_88K         Machine = 5
	EM_IAMCU       Machine = 6
	EM_860         Machine = 7
	EM_MIPS        Machine = 8
	EM_S370        Machine = 9
	EM_MIPS_RS3_LE Machine = 10
	EM_PARISC      Machine = 15
	EM_VPP500      Machine = 17
	EM_SPARC32PLUS Machine = 18
	EM_960         Machine = 19
	EM_PPC         Machine = 20
	EM_PPC64       Machine = 21
	EM_S390        Machine = 22
	EM_SPU         Machine = 23
	EM_V800        Machine = 36
	EM_FR20        Machine = 37
	EM_RH32        Machine = 38
	EM_RCE         Machine = 39
	EM_ARM         Machine = 40
	EM_ALPHA       Machine = 41
	EM_SH          Machine = 42
	EM_SPARCV9     Machine = 43
	EM_TRICORE     Machine = 44
	EM_ARC         Machine = 45
	EM_H8_300      Machine = 46
	EM_H8_300H     Machine = 47
	EM_H8S         Machine = 48
	EM_H8_500      Machine = 49
	EM_IA_64       Machine = 50
	EM_MIPS_X      Machine = 51
	EM_COLDFIRE    Machine = 52
	EM_68HC12      Machine = 53
	EM_MMA         Machine = 54
	EM_PCP         Machine = 55
	EM_NCPU        Machine = 56
	EM_NDR1        Machine = 57
	EM_STARCORE    Machine = 58
	EM_ME16        Machine = 59
	EM_ST100       Machine = 60
	EM_TINYJ       Machine = 61
	EM_X86_64      Machine = 62
	EM_PDSP        Machine = 63
	EM_PDP10       Machine = 64
	EM_PDP11       Machine = 65
	EM_FX66        Machine = 66
	EM_ST9PLUS     Machine = 67
	EM_ST7         Machine = 68
	EM_68HC16      Machine = 69
	EM_68HC11      Machine = 70
	EM_68HC08      Machine = 71
	EM_68HC05      Machine = 72
	EM_SVX         Machine = 73
	EM_ST19        Machine = 74
	EM_VAX         Machine = 75
	EM_CRIS        Machine = 76
	EM_JAVELIN     Machine = 77
	EM_FIREPATH    Machine = 78
	EM_ZSP         Machine = 79
	EM_MMIX        Machine = 80
	EM_HUANY       Machine = 81
	EM_PRISM       Machine = 82
	EM_AVR         Machine = 83
	EM_FR30        Machine = 84
	EM_D10V        Machine = 85
	EM_D30V        Machine = 86
	EM_V850        Machine = 87
	EM_M32R        Machine = 88
	EM_MN10300     Machine = 89
	EM_MN10200     Machine = 90
	EM_PJ          Machine = 91
	EM_OPENRISC    Machine = 92
	EM_ARC_COMPACT Machine = 93
	EM_XTENSA      Machine = 94
	EM_VIDEOCORE   Machine = 95
	EM_TMM_GPP     Machine = 96
	EM_NS32K       Machine = 97
	EM_TPC         Machine = 98
	EM_SNP1K       Machine = 99
	EM_ST200       Machine = 100
	EM_IP2K        Machine = 101
	EM_MAX         Machine = 102
	EM_CR          Machine = 103
	EM_F2MC16      Machine = 104
	EM_MSP430      Machine = 105
	EM_BLACKFIN    Machine = 106
	EM_SE_C33      Machine = 107
	EM_SEP         Machine = 108
	EM_ARCA        Machine = 109
	EM_UNICORE     Machine = 110
	EM_EXCESS      Machine = 111
	EM_DXP         Machine = 112
	EM_ALTERA_NIOS2 Machine = 113
	EM_CRX         Machine = 114
	EM_XGATE       Machine = 115
	EM_C166        Machine = 116
	EM_M16C        Machine = 117
	EM_DSPIC30F    Machine = 118
	EM_CE          Machine = 119
	EM_M32C        Machine = 120
	EM_TSK3000      Machine = 131
	EM_RS08         Machine = 132
	EM_SHARC        Machine = 133
	EM_ECOG2        Machine = 134
	EM_SCORE7       Machine = 135
	EM_DSP24        Machine = 136
	EM_VIDEOCORE3   Machine = 137
	EM_LATTICEMICO32 Machine = 138
	EM_SE_C17       Machine = 139
	EM_TI_C6000     Machine = 140
	EM_TI_C2000     Machine = 141
	EM_TI_C5500     Machine = 142
	EM_MMDSP_PLUS   Machine = 160
	EM_CYPRESS_M8C  Machine = 161
	EM_R32C         Machine = 162
	EM_TRIMEDIA     Machine = 163
	EM_HEXAGON      Machine = 164
	EM_8051         Machine = 165
	EM_STXP7X       Machine = 166
	EM_NDS32        Machine = 167
	EM_ECOG1        Machine = 168
	EM_MAXQ30       Machine = 169
	EM_XIMO16       Machine = 170
	EM_MANIK        Machine = 171
	EM_CRAYNV2      Machine = 172
	EM_RX           Machine = 173
	EM_METAG        Machine = 174
	EM_MCST_ELBRUS  Machine = 175
	EM_ECOG16       Machine = 176
	EM_CR16         Machine = 177
	EM_ETPU         Machine = 178
	EM_SLE9X        Machine = 179
	EM_L10M         Machine = 180
	EM_K10M         Machine = 181
	EM_AARCH64      Machine = 183
	EM_AVR32        Machine = 185
	EM_STM8         Machine = 186
	EM_TILE64       Machine = 187
	EM_TILEPRO      Machine = 188
	EM_MICROBLAZE   Machine = 189
	EM_CUDA         Machine = 190
	EM_TILEGX       Machine = 191
	EM_CLOUDSHIELD  Machine = 192
	EM_COREA_1ST    Machine = 193
	EM_COREA_2ND    Machine = 194
	EM_ARCV2        Machine = 195
	EM_OPEN8        Machine = 196
	EM_RL78         Machine = 197
	EM_VIDEOCORE5   Machine = 198
	EM_78KOR        Machine = 199
	EM_56800EX      Machine = 200
	EM_BA1          Machine = 201
	EM_BA2          Machine = 202
	EM_XCORE        Machine = 203
	EM_MCHP_PIC     Machine = 204
	EM_KM32         Machine = 210
	EM_KMX32        Machine = 211
	EM_EMX16        Machine = 212
	EM_EMX8         Machine = 213
	EM_KVARC        Machine = 214
	EM_CDP          Machine = 215
	EM_COGE         Machine = 216
	EM_COOL         Machine = 217
	EM_NORC         Machine = 218
	EM_CSR_KALIMBA  Machine = 219
	EM_Z80          Machine = 220
	EM_VISIUM       Machine = 221
	EM_FT32         Machine = 222
	EM_MOXIE        Machine = 223
	EM_AMDGPU       Machine = 224
	EM_RISCV        Machine = 243
	EM_BPF          Machine = 247
	EM_CSKY         Machine = 252
	EM_LOONGARCH    Machine = 258
)

var machineNames = map[Machine]string{
	EM_NONE:        "None",
	EM_M32:         "WE32100",
	EM_SPARC:       "Sparc",
	EM_386:         "Intel 80386",
	EM_68K:         "MC68000",
	EM_88K:         "MC88000",
	EM_IAMCU:       "Intel MCU",
	EM_860:         "Intel 80860",
	EM_MIPS:        "MIPS R3000",
	EM_S370:        "IBM System/370",
	EM_MIPS_RS3_LE: "MIPS R3000 little-endian",
	EM_PARISC:      "HPPA",
	EM_SPARC32PLUS: "Sparc v8+",
	EM_PPC:         "PowerPC",
	EM_PPC64:       "PowerPC64",
	EM_S390:        "IBM S/390",
	EM_ARM:         "ARM",
	EM_ALPHA:       "Alpha",
	EM_SH:          "Renesas SuperH",
	EM_SPARCV9:     "Sparc v9",
	EM_TRICORE:     "Siemens Tricore",
	EM_ARC:         "ARC",
	EM_IA_64:       "Intel IA-64",
	EM_COLDFIRE:    "Motorola Coldfire",
	EM_X86_64:      "Advanced Micro Devices X86-64 processor",
	EM_VAX:         "DEC Vax",
	EM_CRIS:        "Axis CRIS",
	EM_AVR:         "Atmel AVR 8-bit",
	EM_FR30:        "Fujitsu FR30",
	EM_V850:        "NEC v850",
	EM_M32R:        "Renesas M32R",
	EM_MN10300:     "Matsushita MN10300",
	EM_OPENRISC:    "OpenRISC",
	EM_ARC_COMPACT: "ARCompact",
	EM_XTENSA:      "Tensilica Xtensa",
	EM_VIDEOCORE:   "Broadcom VideoCore",
	EM_BLACKFIN:    "Analog Devices Blackfin",
	EM_MSP430:      "TI MSP430",
	EM_Z80:         "Zilog Z80",
	EM_AARCH64:     "AArch64",
	EM_AVR32:       "Atmel AVR32",
	EM_TILE64:      "Tilera TILE64",
	EM_TILEPRO:     "Tilera TILEPro",
	EM_MICROBLAZE:  "Xilinx MicroBlaze",
	EM_TILEGX:      "Tilera TILE-Gx",
	EM_RISCV:       "RISC-V",
	EM_BPF:         "Linux BPF",
	EM_CSKY:        "C-SKY",
	EM_LOONGARCH:   "LoongArch",
	EM_XCORE:       "XMOS xCORE",
	EM_CUDA:        "NVIDIA CUDA",
}

func (m Machine) String() string {
	if name, ok := machineNames[m]; ok {
		return name
	}
	return "Unknown"
}
