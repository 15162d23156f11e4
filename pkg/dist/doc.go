// Package dist samples bounded creature scale factors.
//
// A configuration string names the shape of the distribution ([Resolve]);
// the sampler then draws one value inside [min, max] for that shape.
//
// # Distributions
//
//   - [Uniform]: flat across the range. The fallback for unknown names.
//   - [Normal]: centered on the midpoint with ±3σ spanning the range.
//   - [LeftExponential]: bulk near max, thin tail toward min.
//   - [RightExponential]: bulk near min, thin tail toward max.
//
// Non-uniform kinds use rejection sampling: out-of-range draws are discarded
// and redrawn, which keeps the conditional shape of the truncated
// distribution instead of piling mass on the bounds.
//
// # Usage
//
//	src := dist.NewSource(42)
//	kind := dist.Resolve("Normal")
//	v := dist.Sample(0.8, 1.2, kind, src)
//
// Callers must check [Range.Valid] first. A degenerate range is not sampled.
//
// # Version
//
// See [Version].
package dist
