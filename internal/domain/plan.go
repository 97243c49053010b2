package domain

// Plan prices are fixed server-side. The client-supplied price is checked
// against this table to defend against tampering.
var PlanPrices = map[string]float64{
	"1month":   15,
	"3months":  25,
	"6months":  45,
	"12months": 60,
}

func ValidPlanID(planID string) bool {
	_, ok := PlanPrices[planID]
	return ok
}

func ValidPlanPrice(planID string, price float64) bool {
	expected, ok := PlanPrices[planID]
	return ok && expected == price
}
