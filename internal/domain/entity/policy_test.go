package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscountPolicy_AmountFor(t *testing.T) {
	tests := []struct {
		name     string
		policy   DiscountPolicy
		price    float64
		expected float64
	}{
		{
			name:     "flat amount ignores price",
			policy:   DiscountPolicy{Kind: PolicyAmount, Value: 50},
			price:    1299,
			expected: 50,
		},
		{
			name:     "percent of price",
			policy:   DiscountPolicy{Kind: PolicyPercent, Value: 10},
			price:    1299,
			expected: 129.9,
		},
		{
			name:     "percent of zero price",
			policy:   DiscountPolicy{Kind: PolicyPercent, Value: 10},
			price:    0,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.policy.AmountFor(tt.price), 0.001)
		})
	}
}

func TestDiscountPolicy_Validate(t *testing.T) {
	tests := []struct {
		name   string
		policy DiscountPolicy
		valid  bool
	}{
		{name: "valid flat amount", policy: DiscountPolicy{Kind: PolicyAmount, Value: 50}, valid: true},
		{name: "valid percent", policy: DiscountPolicy{Kind: PolicyPercent, Value: 20}, valid: true},
		{name: "percent at bound", policy: DiscountPolicy{Kind: PolicyPercent, Value: 100}, valid: true},
		{name: "percent over bound", policy: DiscountPolicy{Kind: PolicyPercent, Value: 101}, valid: false},
		{name: "zero value", policy: DiscountPolicy{Kind: PolicyAmount, Value: 0}, valid: false},
		{name: "negative value", policy: DiscountPolicy{Kind: PolicyAmount, Value: -5}, valid: false},
		{name: "unknown kind", policy: DiscountPolicy{Kind: "gift", Value: 10}, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.policy.Validate())
		})
	}
}
