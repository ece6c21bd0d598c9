package finance

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRate(t *testing.T) {
	cases := []struct {
		selector string
		want     float64
	}{
		{"5%", 0.05},
		{"18%", 0.18},
		{"28%", 0.28},
		{"", 0},
		{"12%", 0},
		{"18", 0},
	}
	for _, tc := range cases {
		t.Run(tc.selector, func(t *testing.T) {
			got, _ := Rate(tc.selector).Float64()
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseNumber(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  float64
	}{
		{"float", 12.5, 12.5},
		{"int", 7, 7},
		{"json number", json.Number("42.25"), 42.25},
		{"numeric string", "1500.50", 1500.5},
		{"malformed string", "abc", 0},
		{"empty string", "", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseNumber(tc.value))
		})
	}
}

func TestCalculateParts(t *testing.T) {
	totals := Calculate(Inputs{
		SpareWithoutTax: 1000,
		DiscountOnParts: "18%",
		GSTOnParts:      "5%",
	})

	assert.Equal(t, 180.0, totals.SpareDiscountAmount)
	assert.Equal(t, 820.0, totals.SpareAfterDiscount)
	assert.Equal(t, 41.0, totals.SpareGSTAmount)
	assert.Equal(t, 861.0, totals.SpareWithGST)
	assert.Equal(t, 861.0, totals.TotalInvAmountPayable)
	assert.Equal(t, 820.0, totals.TotalAmountWithDiscountButWithoutTax)
}

func TestCalculateLabour(t *testing.T) {
	totals := Calculate(Inputs{
		Labour:         500,
		DiscountLabour: 10,
		GSTOnLabour:    "18%",
	})

	assert.Equal(t, 450.0, totals.LabourAfterDiscount)
	assert.Equal(t, 81.0, totals.LabourGSTAmount)
	assert.Equal(t, 531.0, totals.LabourWithGST)
	assert.Equal(t, 531.0, totals.TotalInvAmountPayable)
	assert.Equal(t, 450.0, totals.TotalAmountWithDiscountButWithoutTax)
}

func TestCalculateBuckets(t *testing.T) {
	totals := Calculate(Inputs{
		SpareWith18GST: 100,
		SpareWith28GST: 100,
	})

	assert.Equal(t, 118.0, totals.Spare18WithGST)
	assert.Equal(t, 128.0, totals.Spare28WithGST)
	assert.Equal(t, 246.0, totals.TotalInvAmountPayable)
	// The without-tax total carries the raw bucket values.
	assert.Equal(t, 200.0, totals.TotalAmountWithDiscountButWithoutTax)
}

func TestCalculateCombined(t *testing.T) {
	totals := Calculate(Inputs{
		Amount:          250,
		SpareWithoutTax: 1000,
		Labour:          500,
		OutsideLabour:   300,
		DiscountLabour:  10,
		SpareWith18GST:  100,
		SpareWith28GST:  50,
		DiscountOnParts: "18%",
		GSTOnParts:      "5%",
		GSTOnLabour:     "18%",
	})

	// 250 + 861 + 531 + 300 + 118 + 64 = 2124
	assert.Equal(t, 2124.0, totals.TotalInvAmountPayable)
	// 820 + 450 + 100 + 50 = 1420
	assert.Equal(t, 1420.0, totals.TotalAmountWithDiscountButWithoutTax)
}

func TestCalculateZeroInputs(t *testing.T) {
	totals := Calculate(Inputs{})
	assert.Equal(t, Totals{}, totals)
}

func TestCalculateUnknownSelectorsApplyNothing(t *testing.T) {
	totals := Calculate(Inputs{
		SpareWithoutTax: 1000,
		DiscountOnParts: "??",
		GSTOnParts:      "No GST",
	})

	assert.Equal(t, 0.0, totals.SpareDiscountAmount)
	assert.Equal(t, 1000.0, totals.SpareAfterDiscount)
	assert.Equal(t, 0.0, totals.SpareGSTAmount)
	assert.Equal(t, 1000.0, totals.SpareWithGST)
}

func TestCalculateRounding(t *testing.T) {
	totals := Calculate(Inputs{
		SpareWithoutTax: 33.33,
		GSTOnParts:      "18%",
	})

	// 33.33 * 0.18 = 5.9994, rounds half-up to 6.00
	assert.Equal(t, 6.0, totals.SpareGSTAmount)
	assert.Equal(t, 39.33, totals.SpareWithGST)
}
