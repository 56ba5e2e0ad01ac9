package order

import "testing"

func TestSurchargeTotal(t *testing.T) {
	fees := Surcharges{ColdPacking: 30, GiftWrap: 25, FragileHandling: 20}

	cases := []struct {
		name string
		req  SpecialRequirements
		want float64
	}{
		{"none", SpecialRequirements{}, 0},
		{"cold packing only", SpecialRequirements{ColdPacking: true}, 30},
		{"all paid flags", SpecialRequirements{ColdPacking: true, GiftWrap: true, FragileHandling: true}, 75},
		{"no-contact is free", SpecialRequirements{NoContactDelivery: true}, 0},
		{"no-contact with gift wrap", SpecialRequirements{NoContactDelivery: true, GiftWrap: true}, 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := fees.SurchargeTotal(tc.req); got != tc.want {
				t.Errorf("SurchargeTotal = %.2f, want %.2f", got, tc.want)
			}
		})
	}
}

func TestComputeTotal(t *testing.T) {
	fees := Surcharges{ColdPacking: 30, GiftWrap: 25, FragileHandling: 20}

	cases := []struct {
		name        string
		subtotal    float64
		deliveryFee float64
		req         SpecialRequirements
		discount    float64
		want        float64
	}{
		{"no extras", 500, 40, SpecialRequirements{}, 0, 540},
		{"with surcharge", 500, 40, SpecialRequirements{ColdPacking: true}, 0, 570},
		{"discount applied", 600, 40, SpecialRequirements{}, 100, 540},
		{"discount eats delivery fee", 50, 40, SpecialRequirements{}, 80, 10},
		{"clamped at zero", 50, 0, SpecialRequirements{}, 100, 0},
		{"large discount never negative", 100, 40, SpecialRequirements{GiftWrap: true}, 1000, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeTotal(tc.subtotal, tc.deliveryFee, tc.req, fees, tc.discount)
			if got != tc.want {
				t.Errorf("ComputeTotal = %.2f, want %.2f", got, tc.want)
			}
		})
	}
}
