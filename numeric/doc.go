// Package numeric holds the vocabulary shared by the bulk conversion and
// bitwise packages: element kinds, type pairs, errors, options and plans.
//
// The work itself lives in the sub-packages:
//
//   - numeric/convert: array-to-array numeric conversion
//   - numeric/bitwise: elementwise AND, OR, XOR, AND-NOT and NOT
//   - numeric/capability: the vector tiers usable on this processor
//
// Every operation validates its inputs before touching the destination,
// runs the widest usable vector kernel over the largest whole-register
// prefix of the buffer and finishes the tail with a scalar kernel. A missing
// instruction set is not an error; the operation just runs narrower or
// scalar.
//
// # Configuration
//
// Operations accept [Option] values:
//
//	convert.Convert(src, dst, numeric.WithMaxWidth(16)) // at most 128-bit tiers
//	bitwise.And(a, b, dst, numeric.WithScalarOnly())   // no vector kernels
//
// Setting NUMCONV_NO_SIMD=1 in the environment disables vector tiers for the
// whole process.
package numeric
