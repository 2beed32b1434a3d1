// Package naming maps between icon entry geometry and PNG file names.
//
// The encoder looks up its inputs as "{size}.png" for every size of a
// SizeSet. The decoder derives a file name from an entry's width, height
// and bit depth, adding the height and depth only when they cannot be
// inferred from the plain size name.
package naming

import (
	"fmt"
	"strconv"
)

// Size is an icon edge length in pixels.
type Size uint32

// MaxSize is the largest edge length an ICO directory record can express.
const MaxSize Size = 256

// DefaultBitsPerPixel is the depth of entries produced from RGBA PNGs.
const DefaultBitsPerPixel = 32

// Extension is appended to every derived file name.
const Extension = ".png"

// canonicalSizes follows the Windows app icon scaling table.
var canonicalSizes = []Size{16, 20, 24, 30, 32, 36, 40, 48, 60, 64, 72, 80, 96, 256}

// SizeSet is an immutable, ascending list of icon sizes.
type SizeSet struct {
	sizes []Size
}

// CanonicalSizes returns the default size set.
func CanonicalSizes() SizeSet {
	sizes := make([]Size, len(canonicalSizes))
	copy(sizes, canonicalSizes)
	return SizeSet{sizes: sizes}
}

// ParseSizes builds a SizeSet from plain integers. The values must be
// within 1..256, strictly ascending and free of duplicates.
func ParseSizes(values []int) (SizeSet, error) {
	if len(values) == 0 {
		return SizeSet{}, fmt.Errorf("size list is empty")
	}

	sizes := make([]Size, 0, len(values))
	for i, v := range values {
		if v < 1 || v > int(MaxSize) {
			return SizeSet{}, fmt.Errorf("size %d out of range 1..%d", v, MaxSize)
		}
		if i > 0 && v <= values[i-1] {
			return SizeSet{}, fmt.Errorf("sizes must be strictly ascending: %d follows %d", v, values[i-1])
		}
		sizes = append(sizes, Size(v))
	}
	return SizeSet{sizes: sizes}, nil
}

// Sizes returns a copy of the sizes in ascending order.
func (s SizeSet) Sizes() []Size {
	out := make([]Size, len(s.sizes))
	copy(out, s.sizes)
	return out
}

// Len returns the number of sizes in the set.
func (s SizeSet) Len() int {
	return len(s.sizes)
}

// Contains reports whether size is a member of the set.
func (s SizeSet) Contains(size Size) bool {
	for _, v := range s.sizes {
		if v == size {
			return true
		}
	}
	return false
}

// Ints returns the sizes as plain integers, for configuration output.
func (s SizeSet) Ints() []int {
	out := make([]int, len(s.sizes))
	for i, v := range s.sizes {
		out[i] = int(v)
	}
	return out
}

// InputName returns the file name the encoder expects for size.
func InputName(size Size) string {
	return strconv.FormatUint(uint64(size), 10) + Extension
}

// EntryName derives the output file name for an entry of the given
// geometry and depth.
func (s SizeSet) EntryName(width, height uint32, bitsPerPixel uint16) string {
	name := strconv.FormatUint(uint64(width), 10)
	if width != height || !s.Contains(Size(width)) {
		name += "x" + strconv.FormatUint(uint64(height), 10)
	}
	if bitsPerPixel != DefaultBitsPerPixel {
		name += "@" + strconv.FormatUint(uint64(bitsPerPixel), 10)
	}
	return name + Extension
}
