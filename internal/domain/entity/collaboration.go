package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MarginStatus tracks the payout state of a collaboration.
type MarginStatus string

const (
	// MarginPending means the agent has not been paid for this collab yet.
	MarginPending MarginStatus = "pending"

	// MarginPaid is terminal: the margin has been settled to the agent's wallet.
	MarginPaid MarginStatus = "paid"
)

// Collaboration represents one agent's personalized referral relationship to a coupon.
// The collab code is a pure function of (coupon code, agent mobile), so minting the
// same pair twice always resolves to the same record.
type Collaboration struct {
	ID           uuid.UUID    `json:"id"`
	CouponID     uuid.UUID    `json:"coupon_id"`
	AgentUserID  *uuid.UUID   `json:"agent_user_id"` // Nullable: a collab may be unlinked from an account.
	AgentMobile  string       `json:"agent_mobile"`  // Digits only, at least 10.
	Code         string       `json:"code"`          // Derived: <COUPON_CODE>-<4 digits>, globally unique.
	MarginStatus MarginStatus `json:"margin_status"`
	MarginPaidAt *time.Time   `json:"margin_paid_at,omitempty"`
	MarginPaidBy *uuid.UUID   `json:"margin_paid_by,omitempty"` // Operator who settled, for the audit trail.
	CreatedAt    time.Time    `json:"created_at"`
}

// CollabDetail is a Collaboration enriched with coupon, product and seller
// display data plus its usage rows, for the admin payout table.
type CollabDetail struct {
	Collaboration

	CouponCode  string         `json:"coupon_code"`
	AgentMargin DiscountPolicy `json:"agent_margin"`
	ProductName string         `json:"product_name"`
	SellerName  string         `json:"seller_name"`
	Usages      []*CouponUsage `json:"usages"`
}

// MarginOwed returns the amount owed to the agent: the sum of frozen per-usage
// margins, falling back to the coupon's flat margin value when the code was
// never redeemed.
func (d *CollabDetail) MarginOwed() float64 {
	if len(d.Usages) == 0 {
		return d.AgentMargin.Value
	}

	var total float64
	for _, u := range d.Usages {
		total += u.MarginAmount
	}

	return total
}

// DeriveCollabCode computes the deterministic collab code for a coupon code and
// a digits-only mobile number: the first two and last two digits of the mobile
// are appended to the coupon code. Case is preserved from the coupon code.
func DeriveCollabCode(couponCode, mobile string) string {
	var b strings.Builder
	b.Grow(len(couponCode) + 5)
	b.WriteString(couponCode)
	b.WriteByte('-')
	b.WriteString(mobile[:2])
	b.WriteString(mobile[len(mobile)-2:])

	return b.String()
}

// NormalizeMobile strips every non-digit rune from a raw phone string.
func NormalizeMobile(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
