// Package matrix implements the small dense matrices used to build,
// combine and invert coordinate transforms.
//
// What you get:
//   - Dense: row-major storage whose cells are xprec.Term values, so a
//     structural zero is an exact absence rather than a rounded 0, and
//     every nonzero cell carries an extended-precision error term.
//   - Inverse and Solve: an LU solver with partial pivoting that runs
//     entirely in extended precision and, on the inversion path, knows
//     how to carry NaN "unknown value" placeholders of an affine matrix
//     through to the corresponding cells of the inverse.
//   - Transform factories: NewTransform (envelopes and/or axis
//     directions), NewDimensionSelect, NewPassThrough, NewAffine,
//     ResizeAffine, ForceUniformScale, ForceNonZeroScales.
//   - Facade operations on Dense: Mul, MulVec, Transpose,
//     NormalizeColumns, ConvertBefore, ConvertAfter, Translate,
//     RemoveRows, RemoveColumns.
//   - Comparison (Equal, EqualMode with Strict / ByContract /
//     Approximate), a box-drawing Format renderer, and an Unmodifiable
//     read-only view.
//
// Error contract:
//   - All failures are package sentinels ("matrix: ..."), matched with
//     errors.Is; public entry points never panic.
//
// Numeric policy:
//   - 0 × anything = 0, including NaN and ±Inf: a structurally absent
//     cell never absorbs a contaminated value.
//   - Values set from decimal literals are completed with the error of
//     the literal (xprec.FromDecimal), so chains like degrees→radians→
//     degrees round-trip bit-exactly.
//
// Concurrency:
//   - Dense is single-writer. Freeze a finished matrix behind
//     Unmodifiable before sharing it across goroutines.
package matrix
