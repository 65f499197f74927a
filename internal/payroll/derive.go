package payroll

import (
	"math/rand"

	"github.com/san-kum/paysim/internal/compute"
)

// Derive fills every monetary column of t elementwise on the given backend.
// The variable tax rates and the three benefit columns are fresh uniform
// draws; taxes are computed from the rounded gross so the statutory-factor
// identities hold at two decimals. Net pay is computed last, from the
// finalized deduction columns.
func Derive(b compute.Backend, rng *rand.Rand, t *Table) {
	n := t.Len()

	reg := compute.Floats(t.RegularHours)
	ot := compute.Floats(t.OvertimeHours)

	// gross = rate * (regular + 1.5 * overtime)
	hours := b.AddScaled(reg, ot, OvertimeMultiplier)
	t.GrossWages = b.Round2(b.Mul(hours, t.BaseRates))

	federalRates := b.Uniform(rng, n, FederalRateMin, FederalRateMax)
	stateRates := b.Uniform(rng, n, StateRateMin, StateRateMax)

	t.FederalTax = b.Round2(b.Mul(t.GrossWages, federalRates))
	t.StateTax = b.Round2(b.Mul(t.GrossWages, stateRates))
	t.SocialSecurity = b.Round2(b.Scale(t.GrossWages, SocialSecurityRate))
	t.Medicare = b.Round2(b.Scale(t.GrossWages, MedicareRate))

	t.HealthInsurance = b.Round2(b.Uniform(rng, n, HealthInsuranceMin, HealthInsuranceMax))
	t.Retirement = b.Round2(b.Uniform(rng, n, RetirementMin, RetirementMax))
	t.OtherDeductions = b.Round2(b.Uniform(rng, n, OtherDeductionsMin, OtherDeductionsMax))

	RecomputeNetPay(b, t)
}

// RecomputeNetPay rebuilds the net pay column from the current deduction
// columns. Running it again without touching the deductions yields the
// same values, so callers may use it both for derivation and verification.
// Net pay is not clamped and can go negative for low-rate rows.
func RecomputeNetPay(b compute.Backend, t *Table) {
	deductions := b.SumN(
		t.FederalTax, t.StateTax, t.SocialSecurity, t.Medicare,
		t.HealthInsurance, t.Retirement, t.OtherDeductions,
	)
	t.NetPay = b.Round2(b.Sub(t.GrossWages, deductions))
}
