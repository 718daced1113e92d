// Package artifact defines the naming conventions shared by every stage of
// the emulation library build. Generated files carry no manifest or index;
// their identity is structural, inferred from these prefixes and suffixes,
// so the convention is defined once here and nowhere else.
package artifact

import (
	"strings"
	"unicode"
)

const (
	// GeneratedPrefix marks files emitted by a previous build pass.
	GeneratedPrefix = "g_"

	// IRSuffix is the extension of textual IR files consumed by the assembler.
	IRSuffix = ".ll"

	// ObjectSuffix is the extension of assembled intermediate binary objects.
	ObjectSuffix = ".bc"

	// LibrarySuffix is the extension of linked library binaries.
	LibrarySuffix = ".lib"

	// VariantDirPrefix identifies the per-hardware-generation subdirectories.
	VariantDirPrefix = "gfx"
)

// Fixed names for the common stage.
const (
	CommonLibrary = "glslEmu.lib"
	CommonHeader  = "g_llpcGlslEmuLib.h"

	ArithIR    = "g_glslArithOpEmu.ll"
	ArithIRF64 = "g_glslArithOpEmuF64.ll"
	ImageIR    = "g_glslImageOpEmu.ll"
)

const (
	specialObjectPrefix = "glsl"
	specialObjectSuffix = "Emu.bc"
)

// IsGenerated reports whether name identifies an artifact produced by a
// previous run: a generated header or IR file, a binary object, or a
// library binary.
func IsGenerated(name string) bool {
	return strings.HasPrefix(name, GeneratedPrefix) ||
		strings.HasSuffix(name, ObjectSuffix) ||
		strings.HasSuffix(name, LibrarySuffix)
}

// IsVariantDir reports whether name follows the hardware-generation
// subdirectory convention.
func IsVariantDir(name string) bool {
	return strings.HasPrefix(name, VariantDirPrefix)
}

// IsIR reports whether name is a textual IR file.
func IsIR(name string) bool {
	return strings.HasSuffix(name, IRSuffix)
}

// IsObject reports whether name is an intermediate binary object.
func IsObject(name string) bool {
	return strings.HasSuffix(name, ObjectSuffix)
}

// IsSpecialObject reports whether name is the binary object of the given
// optional single-purpose feature.
func IsSpecialObject(name, feature string) bool {
	return strings.HasPrefix(name, specialObjectPrefix+feature) &&
		strings.HasSuffix(name, specialObjectSuffix)
}

// ObjectForIR returns the binary-object path the assembler produces for the
// given IR file path.
func ObjectForIR(irPath string) string {
	return strings.TrimSuffix(irPath, IRSuffix) + ObjectSuffix
}

// SpecialLibrary returns the library binary name for an optional feature.
func SpecialLibrary(feature string) string {
	return specialObjectPrefix + feature + "Emu" + LibrarySuffix
}

// SpecialHeader returns the generated header name for an optional feature.
func SpecialHeader(feature string) string {
	return "g_llpcGlsl" + feature + "EmuLib.h"
}

// VariantLibrary returns the library binary name for a hardware-generation
// tag, for example "glslEmuGfx9.lib" for "gfx9".
func VariantLibrary(tag string) string {
	return "glslEmu" + title(tag) + LibrarySuffix
}

// VariantHeader returns the generated header name for a hardware-generation
// tag, for example "g_llpcGlslEmuLibGfx9.h" for "gfx9".
func VariantHeader(tag string) string {
	return "g_llpcGlslEmuLib" + title(tag) + ".h"
}

// title upper-cases the first rune only, matching the embedding contract's
// capitalization of variant tags.
func title(tag string) string {
	if tag == "" {
		return tag
	}
	runes := []rune(tag)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
