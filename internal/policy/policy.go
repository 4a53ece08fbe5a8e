package policy

import (
	"fleet-roi/internal/model"
)

// Machine resolves the effective fuel-saving percentage for a month.
//
// The rules form a small piecewise policy evaluated once per month, in
// increasing month order, with a carried high-water mark:
//  1. before the ramp-up month: no saving
//  2. after ramp-up but before the first cleaning cycle: a partial share
//  3. on a cleaning month (multiple of the frequency, at or past ramp-up):
//     saving resets to its peak share and becomes the new high-water mark
//  4. otherwise: the high-water mark decays linearly and is carried forward
//
// Branches 1 and 2 both exclude month == RampUpMonths on purpose: the
// original policy uses strict inequalities on both sides, so the ramp-up
// month itself falls through to branch 3 or 4. That asymmetry is preserved
// as-is rather than smoothed over.
type Machine struct {
	RampUpMonths            int
	CleaningFrequencyMonths int
	TotalSavingPct          float64

	// DeteriorationFrac, RampUpShare and PostCleaningShare are fractions
	// (0..1), already divided down from their percent-valued inputs.
	DeteriorationFrac float64
	RampUpShare       float64
	PostCleaningShare float64
}

// FromParams builds the policy machine for one simulation run.
// Params must already be validated: CleaningFrequencyMonths >= 1 is assumed.
func FromParams(p model.SimulationParameters) Machine {
	return Machine{
		RampUpMonths:            p.RampUpMonths,
		CleaningFrequencyMonths: p.CleaningFrequencyMonths,
		TotalSavingPct:          p.TotalSavingPct(),
		DeteriorationFrac:       p.MonthlyDeteriorationPct / 100,
		RampUpShare:             p.RampUpSavingSharePct / 100,
		PostCleaningShare:       p.PostCleaningSavingSharePct / 100,
	}
}

// Step is the outcome of evaluating one month.
type Step struct {
	// SavingPct is the effective saving for the month, in percent of the
	// month's fuel cost.
	SavingPct float64

	// LastSavingPct is the updated high-water mark the caller must carry
	// into the next month. Branches 1 and 2 leave it untouched.
	LastSavingPct float64

	Phase model.Phase
}

// Evaluate resolves the saving for month m (1-based) given the carried
// high-water mark. It must be called in increasing month order.
func (mc Machine) Evaluate(m int, lastSavingPct float64) Step {
	switch {
	case m < mc.RampUpMonths:
		return Step{SavingPct: 0, LastSavingPct: lastSavingPct, Phase: model.PhasePreRamp}

	case m > mc.RampUpMonths && m < mc.CleaningFrequencyMonths:
		return Step{
			SavingPct:     mc.TotalSavingPct * mc.RampUpShare,
			LastSavingPct: lastSavingPct,
			Phase:         model.PhaseRampUp,
		}

	case m%mc.CleaningFrequencyMonths == 0 && m >= mc.RampUpMonths:
		pct := mc.TotalSavingPct * mc.PostCleaningShare
		return Step{SavingPct: pct, LastSavingPct: pct, Phase: model.PhaseCleaning}

	default:
		decayed := lastSavingPct - mc.DeteriorationFrac*100
		if decayed < 0 {
			decayed = 0
		}
		return Step{SavingPct: decayed, LastSavingPct: decayed, Phase: model.PhaseDeterioration}
	}
}
