package model

import "fmt"

// Variant selects which parts of the projection are modeled.
// Keep these values stable; they appear in configs and API requests.
type Variant string

const (
	// VariantDiscounted projects discounted cash flows only.
	VariantDiscounted Variant = "discounted"
	// VariantMetrics adds IRR, NPV and payback.
	VariantMetrics Variant = "metrics"
	// VariantFeedIn adds feed-in revenue and the crossover year.
	VariantFeedIn Variant = "feed_in"
)

func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case "":
		return VariantFeedIn, nil
	case VariantDiscounted, VariantMetrics, VariantFeedIn:
		return Variant(s), nil
	default:
		return "", fmt.Errorf("unsupported variant: %q", s)
	}
}

func (v Variant) ModelsFeedIn() bool { return v == VariantFeedIn }

func (v Variant) HasMetrics() bool { return v == VariantMetrics || v == VariantFeedIn }

func (v Variant) HasCrossover() bool { return v == VariantFeedIn }

// SignConvention controls how the SLB scenario combines the escalated grid
// cost with feed-in revenue and opex.
type SignConvention string

const (
	// SignAsSpecified: cost + revenue - opex.
	SignAsSpecified SignConvention = "as_specified"
	// SignCorrected: revenue - cost - opex.
	SignCorrected SignConvention = "corrected"
)

func ParseSignConvention(s string) (SignConvention, error) {
	switch SignConvention(s) {
	case "":
		return SignAsSpecified, nil
	case SignAsSpecified, SignCorrected:
		return SignConvention(s), nil
	default:
		return "", fmt.Errorf("unsupported sign convention: %q", s)
	}
}

// Options bundles the modeling choices of a run.
type Options struct {
	Variant Variant
	Sign    SignConvention
}

func DefaultOptions() Options {
	return Options{Variant: VariantFeedIn, Sign: SignAsSpecified}
}
