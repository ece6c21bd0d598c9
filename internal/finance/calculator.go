// Package finance computes the billed totals for a maintenance operation.
// The computation is pure: same inputs, same snapshot, no error paths.
package finance

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// Rate selectors form a closed table; anything unrecognized maps to zero.
var rateTable = map[string]decimal.Decimal{
	"5%":  decimal.NewFromFloat(0.05),
	"18%": decimal.NewFromFloat(0.18),
	"28%": decimal.NewFromFloat(0.28),
}

var (
	surcharge18 = decimal.NewFromFloat(1.18)
	surcharge28 = decimal.NewFromFloat(1.28)
	hundred     = decimal.NewFromInt(100)
)

// Rate maps a selector string ("5%", "18%", "28%") to its decimal multiplier.
func Rate(selector string) decimal.Decimal {
	if rate, ok := rateTable[selector]; ok {
		return rate
	}
	return decimal.Zero
}

// ParseNumber coerces arbitrary JSON input to a float. Malformed, empty or
// missing values become 0; nothing fails.
func ParseNumber(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0
		}
		return parsed
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

// Inputs are the raw billing fields of an operation entry. DiscountLabour is
// percentage points; the three selectors go through the rate table.
type Inputs struct {
	Amount          float64
	SpareWithoutTax float64
	Labour          float64
	OutsideLabour   float64
	DiscountLabour  float64
	SpareWith18GST  float64
	SpareWith28GST  float64
	DiscountOnParts string
	GSTOnParts      string
	GSTOnLabour     string
}

// Totals is the derived billing snapshot, rounded half-up to 2 places.
type Totals struct {
	SpareDiscountAmount                  float64
	SpareAfterDiscount                   float64
	SpareGSTAmount                       float64
	SpareWithGST                         float64
	LabourAfterDiscount                  float64
	LabourGSTAmount                      float64
	LabourWithGST                        float64
	Spare18WithGST                       float64
	Spare28WithGST                       float64
	TotalInvAmountPayable                float64
	TotalAmountWithDiscountButWithoutTax float64
}

// Calculate derives the billed totals. Parts: discount then GST on the
// discounted base. Labour: percentage discount then GST. The 18/28 spare
// buckets take a flat surcharge and skip the discount path entirely.
func Calculate(in Inputs) Totals {
	spareWithoutTax := decimal.NewFromFloat(in.SpareWithoutTax)
	spareDiscount := spareWithoutTax.Mul(Rate(in.DiscountOnParts))
	spareAfterDiscount := spareWithoutTax.Sub(spareDiscount)
	spareGST := spareAfterDiscount.Mul(Rate(in.GSTOnParts))
	spareWithGST := spareAfterDiscount.Add(spareGST)

	labour := decimal.NewFromFloat(in.Labour)
	labourDiscount := labour.Mul(decimal.NewFromFloat(in.DiscountLabour).Div(hundred))
	labourAfterDiscount := labour.Sub(labourDiscount)
	labourGST := labourAfterDiscount.Mul(Rate(in.GSTOnLabour))
	labourWithGST := labourAfterDiscount.Add(labourGST)

	bucket18 := decimal.NewFromFloat(in.SpareWith18GST)
	bucket28 := decimal.NewFromFloat(in.SpareWith28GST)
	spare18WithGST := bucket18.Mul(surcharge18)
	spare28WithGST := bucket28.Mul(surcharge28)

	totalPayable := decimal.NewFromFloat(in.Amount).
		Add(spareWithGST).
		Add(labourWithGST).
		Add(decimal.NewFromFloat(in.OutsideLabour)).
		Add(spare18WithGST).
		Add(spare28WithGST)

	totalWithoutTax := spareAfterDiscount.
		Add(labourAfterDiscount).
		Add(bucket18).
		Add(bucket28)

	return Totals{
		SpareDiscountAmount:                  round2(spareDiscount),
		SpareAfterDiscount:                   round2(spareAfterDiscount),
		SpareGSTAmount:                       round2(spareGST),
		SpareWithGST:                         round2(spareWithGST),
		LabourAfterDiscount:                  round2(labourAfterDiscount),
		LabourGSTAmount:                      round2(labourGST),
		LabourWithGST:                        round2(labourWithGST),
		Spare18WithGST:                       round2(spare18WithGST),
		Spare28WithGST:                       round2(spare28WithGST),
		TotalInvAmountPayable:                round2(totalPayable),
		TotalAmountWithDiscountButWithoutTax: round2(totalWithoutTax),
	}
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
