package generators

import (
	"math"
	"math/rand"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
)

type DistKind int

const (
	Normal DistKind = iota
	ChiSquared
	StudentsT
	FDist
)

func (k DistKind) String() string {
	switch k {
	case Normal:
		return "n"
	case ChiSquared:
		return "c"
	case StudentsT:
		return "t"
	case FDist:
		return "f"
	default:
		return "DistKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseDistKind maps a one-letter type code to a kind. Unrecognised codes
// fall back to Normal.
func ParseDistKind(code string) DistKind {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "c", "chi", "chisquared":
		return ChiSquared
	case "t", "student", "studentst":
		return StudentsT
	case "f":
		return FDist
	default:
		return Normal
	}
}

type DistributionOptions struct {
	Kind      DistKind
	Count     int
	Precision int
	// DoF is "k" for chi-squared and Student's t, "d1/d2" for F (d2 defaults
	// to 1). Normal ignores it.
	DoF string
}

func DefaultDistributionOptions() DistributionOptions {
	return DistributionOptions{Kind: Normal, Count: DefaultCount, Precision: 2, DoF: "1"}
}

type quantiler interface {
	Quantile(p float64) float64
}

// Distribution samples Count+1 values by inverse transform: a fresh uniform
// draw in (0, 1) is fed to the quantile function of the chosen distribution.
func Distribution(rng *rand.Rand, opts DistributionOptions) ([]float64, error) {
	if err := checkCommon(rng, opts.Count); err != nil {
		return nil, err
	}
	if opts.Precision < 0 {
		return nil, invalidf("precision must be >= 0, got %d", opts.Precision)
	}
	dist, err := quantileFor(opts.Kind, opts.DoF)
	if err != nil {
		return nil, err
	}

	scale := math.Pow(10, float64(opts.Precision))
	out := make([]float64, 0, opts.Count+1)
	for i := 0; i <= opts.Count; i++ {
		x := dist.Quantile(openUnit(rng))
		out = append(out, math.Round(x*scale)/scale)
	}
	return out, nil
}

// openUnit draws from (0, 1); the quantile of 0 is infinite for unbounded tails.
func openUnit(rng *rand.Rand) float64 {
	for {
		if u := rng.Float64(); u > 0 {
			return u
		}
	}
}

func quantileFor(kind DistKind, dof string) (quantiler, error) {
	switch kind {
	case Normal:
		return distuv.Normal{Mu: 0, Sigma: 1}, nil
	case ChiSquared:
		k, err := parseDoF(dof)
		if err != nil {
			return nil, err
		}
		return distuv.ChiSquared{K: k}, nil
	case StudentsT:
		nu, err := parseDoF(dof)
		if err != nil {
			return nil, err
		}
		return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: nu}, nil
	case FDist:
		d1, d2, err := ParseFDoF(dof)
		if err != nil {
			return nil, err
		}
		return distuv.F{D1: d1, D2: d2}, nil
	default:
		return nil, invalidf("unknown distribution %s", kind)
	}
}

func parseDoF(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 || math.IsInf(v, 0) {
		return 0, invalidf("degrees of freedom must be a positive number, got %q", s)
	}
	return v, nil
}

// ParseFDoF splits "numerator/denominator"; a missing denominator is 1.
func ParseFDoF(s string) (d1, d2 float64, err error) {
	num, den, found := strings.Cut(s, "/")
	if d1, err = parseDoF(num); err != nil {
		return 0, 0, err
	}
	if !found || strings.TrimSpace(den) == "" {
		return d1, 1, nil
	}
	if d2, err = parseDoF(den); err != nil {
		return 0, 0, err
	}
	return d1, d2, nil
}
