package domain

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

type PromoCode struct {
	ID               int32        `json:"id"`
	Code             string       `json:"code"`
	DiscountType     DiscountType `json:"discount_type"`
	DiscountValue    int32        `json:"discount_value"`
	TimesUsed        int32        `json:"times_used"`
	MaxUses          int32        `json:"max_uses"`
	ExpiresOn        *string      `json:"expires_on"`
	Active           bool         `json:"active"`
	MinPurchaseCents int32        `json:"min_purchase_cents"`
	CreatedOn        string       `json:"created_on"`
	UpdatedOn        string       `json:"updated_on"`
}
