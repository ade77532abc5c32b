// Package entity contains the core business objects of the project.
package entity

// PolicyKind discriminates how a discount or margin value is applied.
type PolicyKind string

const (
	// PolicyAmount applies the value as a flat rupee amount.
	PolicyAmount PolicyKind = "amount"

	// PolicyPercent applies the value as a percentage of the item price.
	PolicyPercent PolicyKind = "percent"
)

// Valid reports whether the kind is one of the known policy kinds.
func (k PolicyKind) Valid() bool {
	return k == PolicyAmount || k == PolicyPercent
}

// DiscountPolicy describes either a customer discount or an agent margin
// attached to a coupon.
type DiscountPolicy struct {
	Kind  PolicyKind `json:"kind"`
	Value float64    `json:"value"`
}

// AmountFor resolves the policy against an item price.
// Percent policies are computed against the price; amount policies are flat.
func (p DiscountPolicy) AmountFor(price float64) float64 {
	if p.Kind == PolicyPercent {
		return price * p.Value / 100
	}

	return p.Value
}

// Validate checks the policy bounds: value must be positive and percent
// values cannot exceed 100.
func (p DiscountPolicy) Validate() bool {
	if !p.Kind.Valid() || p.Value <= 0 {
		return false
	}
	if p.Kind == PolicyPercent && p.Value > 100 {
		return false
	}

	return true
}
