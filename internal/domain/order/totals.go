package order

// Surcharges holds the flat fee charged for each special-requirements flag.
type Surcharges struct {
	ColdPacking     float64
	GiftWrap        float64
	FragileHandling float64
}

// SurchargeTotal sums the fees for the requested flags. No-contact delivery
// never carries a fee.
func (s Surcharges) SurchargeTotal(req SpecialRequirements) float64 {
	var total float64
	if req.ColdPacking {
		total += s.ColdPacking
	}
	if req.GiftWrap {
		total += s.GiftWrap
	}
	if req.FragileHandling {
		total += s.FragileHandling
	}
	return total
}

// ComputeTotal combines the line-item subtotal, delivery fee, special-
// requirements surcharges and discount into the payable amount. The result
// is clamped at zero: a discount larger than everything else yields a free
// order, never a negative one. The discount itself is applied unclamped,
// so a fixed coupon may eat into delivery and surcharges.
func ComputeTotal(subtotal, deliveryFee float64, req SpecialRequirements, surcharges Surcharges, discount float64) float64 {
	total := subtotal + deliveryFee + surcharges.SurchargeTotal(req) - discount
	if total < 0 {
		return 0
	}
	return total
}
