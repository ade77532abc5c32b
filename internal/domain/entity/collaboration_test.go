package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveCollabCode(t *testing.T) {
	tests := []struct {
		name       string
		couponCode string
		mobile     string
		expected   string
	}{
		{
			name:       "standard ten digit mobile",
			couponCode: "JOYSTORE20",
			mobile:     "9876543210",
			expected:   "JOYSTORE20-9810",
		},
		{
			name:       "twelve digit mobile with country code",
			couponCode: "DIWALI50",
			mobile:     "919876543210",
			expected:   "DIWALI50-9110",
		},
		{
			name:       "coupon code case is preserved",
			couponCode: "MixedCase",
			mobile:     "1234567890",
			expected:   "MixedCase-1290",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveCollabCode(tt.couponCode, tt.mobile))
		})
	}
}

func TestDeriveCollabCode_Deterministic(t *testing.T) {
	first := DeriveCollabCode("JOYSTORE20", "9876543210")
	second := DeriveCollabCode("JOYSTORE20", "9876543210")

	assert.Equal(t, first, second)
}

func TestNormalizeMobile(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "plain digits", raw: "9876543210", expected: "9876543210"},
		{name: "spaces and dashes", raw: "98765 432-10", expected: "9876543210"},
		{name: "country code prefix", raw: "+91 98765 43210", expected: "919876543210"},
		{name: "letters stripped", raw: "abc123", expected: "123"},
		{name: "empty", raw: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeMobile(tt.raw))
		})
	}
}

func TestCollabDetail_MarginOwed(t *testing.T) {
	detail := &CollabDetail{
		AgentMargin: DiscountPolicy{Kind: PolicyAmount, Value: 50},
	}

	// Never redeemed: the flat margin value is owed.
	assert.InDelta(t, 50.0, detail.MarginOwed(), 0.001)

	detail.Usages = []*CouponUsage{
		{MarginAmount: 30},
		{MarginAmount: 45.5},
	}

	assert.InDelta(t, 75.5, detail.MarginOwed(), 0.001)
}
