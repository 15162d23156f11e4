package dist

import "strings"

// Kind is the shape of the density used to pick a scale within a range.
type Kind int

const (
	Uniform Kind = iota
	Normal
	LeftExponential
	RightExponential
)

// String returns the configuration token for the kind.
func (k Kind) String() string {
	switch k {
	case Normal:
		return "normal"
	case LeftExponential:
		return "leftexponential"
	case RightExponential:
		return "rightexponential"
	default:
		return "uniform"
	}
}

// Kinds lists every distribution kind in declaration order.
func Kinds() []Kind {
	return []Kind{Uniform, Normal, LeftExponential, RightExponential}
}

// Resolve maps a configuration string to a Kind, ignoring case.
// Unrecognized input, including the empty string, resolves to Uniform.
func Resolve(name string) Kind {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "normal":
		return Normal
	case "leftexponential":
		return LeftExponential
	case "rightexponential":
		return RightExponential
	default:
		return Uniform
	}
}
