package dist

import "math"

const (
	// DefaultLambda is the rate of both exponential kinds when none is configured.
	DefaultLambda = 1.0

	// DefaultMaxAttempts caps the rejection loop of the non-uniform kinds.
	DefaultMaxAttempts = 10000
)

// Range is a closed interval of scale values.
type Range struct {
	Min float64
	Max float64
}

// Valid reports whether the range can be sampled (Max > Min).
func (r Range) Valid() bool {
	return r.Max > r.Min
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp pins v into [Min, Max]. NaN maps to Min.
func (r Range) Clamp(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < r.Min:
		return r.Min
	case v > r.Max:
		return r.Max
	default:
		return v
	}
}

// Request describes one draw.
type Request struct {
	Range Range
	Kind  Kind

	// Lambda is the exponential rate. Zero or negative means the sampler default.
	Lambda float64
}

// Sampler draws bounded values. The zero value uses DefaultLambda and
// DefaultMaxAttempts.
type Sampler struct {
	// Lambda is used for requests that carry no lambda of their own.
	Lambda float64

	// MaxAttempts bounds the rejection loop. After that many rejected
	// candidates the last one is clamped into range.
	MaxAttempts int
}

var defaultSampler Sampler

// Sample draws one value in [min, max] for kind using the default sampler.
// The caller must ensure max > min.
func Sample(min, max float64, kind Kind, src Source) float64 {
	return defaultSampler.Sample(Request{Range: Range{Min: min, Max: max}, Kind: kind}, src)
}

// Sample draws one value in req.Range. The caller must ensure the range is valid.
func (s Sampler) Sample(req Request, src Source) float64 {
	r := req.Range
	switch req.Kind {
	case Normal:
		// Halve and divide before combining so wide finite ranges do not overflow.
		mean := r.Min/2 + r.Max/2
		stdDev := r.Max/6 - r.Min/6
		return s.reject(r, func() float64 {
			return mean + src.NormFloat64()*stdDev
		})
	case LeftExponential:
		lambda := s.lambda(req.Lambda)
		return s.reject(r, func() float64 {
			return r.Max + math.Log(1-src.Float64())/lambda
		})
	case RightExponential:
		lambda := s.lambda(req.Lambda)
		return s.reject(r, func() float64 {
			return r.Min - math.Log(1-src.Float64())/lambda
		})
	default:
		u := src.Float64()
		return r.Clamp(r.Min*(1-u) + r.Max*u)
	}
}

// reject redraws until a candidate lands in r or the attempt cap is hit.
func (s Sampler) reject(r Range, draw func() float64) float64 {
	attempts := s.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}
	var v float64
	for i := 0; i < attempts; i++ {
		v = draw()
		if r.Contains(v) {
			return v
		}
	}
	return r.Clamp(v)
}

func (s Sampler) lambda(l float64) float64 {
	if l > 0 {
		return l
	}
	if s.Lambda > 0 {
		return s.Lambda
	}
	return DefaultLambda
}
