package nbr

import (
	"fmt"
	"strings"
)

type BarType string

const (
	CA25 BarType = "CA-25" // plain
	CA50 BarType = "CA-50" // ribbed
	CA60 BarType = "CA-60" // ribbed, high strength
)

func (b BarType) Valid() bool {
	_, ok := barProps[b]
	return ok
}

// Plain reports whether the bar has a smooth surface.
func (b BarType) Plain() bool { return b == CA25 }

type BondCondition string

const (
	BondGood BondCondition = "good"
	BondPoor BondCondition = "poor"
)

func (c BondCondition) Valid() bool { return c == BondGood || c == BondPoor }

type AnchorageType string

const (
	Straight AnchorageType = "straight"
	Hook     AnchorageType = "hook"
)

func (a AnchorageType) Valid() bool { return a == Straight || a == Hook }

type SteelRatioOption string

const (
	RatioEqual  SteelRatioOption = "equal"
	RatioCustom SteelRatioOption = "custom"
)

func (o SteelRatioOption) Valid() bool { return o == RatioEqual || o == RatioCustom }

// AggressivenessClass is the environmental exposure class (table 6.1).
type AggressivenessClass string

const (
	CAA1 AggressivenessClass = "I"
	CAA2 AggressivenessClass = "II"
	CAA3 AggressivenessClass = "III"
	CAA4 AggressivenessClass = "IV"
)

func (c AggressivenessClass) Valid() bool {
	_, ok := coverByClass[c]
	return ok
}

func ParseBarType(s string) (BarType, error) {
	switch strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "")) {
	case "CA25":
		return CA25, nil
	case "CA50":
		return CA50, nil
	case "CA60":
		return CA60, nil
	}
	return "", fmt.Errorf("unknown bar type %q", s)
}

func ParseBondCondition(s string) (BondCondition, error) {
	c := BondCondition(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown bond condition %q", s)
	}
	return c, nil
}

func ParseAnchorageType(s string) (AnchorageType, error) {
	a := AnchorageType(strings.ToLower(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", fmt.Errorf("unknown anchorage type %q", s)
	}
	return a, nil
}

func ParseSteelRatioOption(s string) (SteelRatioOption, error) {
	o := SteelRatioOption(strings.ToLower(strings.TrimSpace(s)))
	if !o.Valid() {
		return "", fmt.Errorf("unknown steel ratio option %q", s)
	}
	return o, nil
}

func ParseAggressivenessClass(s string) (AggressivenessClass, error) {
	c := AggressivenessClass(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown aggressiveness class %q", s)
	}
	return c, nil
}
