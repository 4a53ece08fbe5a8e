package policy

import (
	"math"
	"testing"

	"fleet-roi/internal/model"
)

func testMachine() Machine {
	return Machine{
		RampUpMonths:            6,
		CleaningFrequencyMonths: 9,
		TotalSavingPct:          3.7,
		DeteriorationFrac:       0.001,
		RampUpShare:             0.6,
		PostCleaningShare:       1.0,
	}
}

func TestPreRampMonths(t *testing.T) {
	m := testMachine()
	for month := 1; month < m.RampUpMonths; month++ {
		step := m.Evaluate(month, 0)
		if step.SavingPct != 0 {
			t.Errorf("month %d: saving = %v, want 0", month, step.SavingPct)
		}
		if step.Phase != model.PhasePreRamp {
			t.Errorf("month %d: phase = %s, want %s", month, step.Phase, model.PhasePreRamp)
		}
	}
}

func TestRampPeriod(t *testing.T) {
	m := testMachine()
	want := 3.7 * 0.6
	for month := 7; month < 9; month++ {
		step := m.Evaluate(month, 0)
		if math.Abs(step.SavingPct-want) > 1e-9 {
			t.Errorf("month %d: saving = %v, want %v", month, step.SavingPct, want)
		}
		if step.Phase != model.PhaseRampUp {
			t.Errorf("month %d: phase = %s, want %s", month, step.Phase, model.PhaseRampUp)
		}
		if step.LastSavingPct != 0 {
			t.Errorf("month %d: ramp period must not touch the high-water mark", month)
		}
	}
}

func TestCleaningMonthResetsHighWaterMark(t *testing.T) {
	m := testMachine()
	step := m.Evaluate(9, 1.5)
	if step.SavingPct != 3.7 {
		t.Errorf("cleaning month saving = %v, want 3.7", step.SavingPct)
	}
	if step.LastSavingPct != 3.7 {
		t.Errorf("cleaning month must reset the high-water mark, got %v", step.LastSavingPct)
	}
	if step.Phase != model.PhaseCleaning {
		t.Errorf("phase = %s, want %s", step.Phase, model.PhaseCleaning)
	}
}

func TestDeteriorationDecaysLinearly(t *testing.T) {
	m := testMachine()
	step := m.Evaluate(10, 3.7)
	if math.Abs(step.SavingPct-3.6) > 1e-9 {
		t.Errorf("saving = %v, want 3.6", step.SavingPct)
	}
	if math.Abs(step.LastSavingPct-3.6) > 1e-9 {
		t.Errorf("high-water mark = %v, want 3.6", step.LastSavingPct)
	}
	if step.Phase != model.PhaseDeterioration {
		t.Errorf("phase = %s, want %s", step.Phase, model.PhaseDeterioration)
	}
}

func TestDeteriorationFloorsAtZero(t *testing.T) {
	m := testMachine()
	step := m.Evaluate(10, 0.05)
	if step.SavingPct != 0 {
		t.Errorf("saving = %v, want 0 (decay never goes negative)", step.SavingPct)
	}
	next := m.Evaluate(11, step.LastSavingPct)
	if next.SavingPct != 0 {
		t.Errorf("saving stayed negative after floor: %v", next.SavingPct)
	}
}

// The ramp-up month itself matches neither the pre-ramp branch (strict <)
// nor the ramp branch (strict >). It falls through to cleaning when the
// ramp-up month is a multiple of the frequency, otherwise to deterioration.
// This mirrors the original policy exactly and must not be "fixed".
func TestRampUpMonthFallsThrough(t *testing.T) {
	m := testMachine() // ramp 6, frequency 9: 6 is not a cleaning month
	step := m.Evaluate(6, 0)
	if step.Phase != model.PhaseDeterioration {
		t.Errorf("month 6 phase = %s, want %s", step.Phase, model.PhaseDeterioration)
	}
	if step.SavingPct != 0 {
		t.Errorf("month 6 saving = %v, want 0 (decayed from empty mark)", step.SavingPct)
	}

	m.CleaningFrequencyMonths = 3 // now 6 is a cleaning month
	step = m.Evaluate(6, 0)
	if step.Phase != model.PhaseCleaning {
		t.Errorf("month 6 phase = %s, want %s", step.Phase, model.PhaseCleaning)
	}
	if step.SavingPct != 3.7 {
		t.Errorf("month 6 saving = %v, want 3.7", step.SavingPct)
	}
}

func TestSavingAlwaysBounded(t *testing.T) {
	m := testMachine()
	last := 0.0
	for month := 1; month <= 60; month++ {
		step := m.Evaluate(month, last)
		if step.SavingPct < 0 || step.SavingPct > m.TotalSavingPct {
			t.Errorf("month %d: saving %v outside [0, %v]", month, step.SavingPct, m.TotalSavingPct)
		}
		last = step.LastSavingPct
	}
}

func TestFromParams(t *testing.T) {
	p := model.SimulationParameters{
		SavingHullPct:              2.0,
		SavingVoyagePct:            1.0,
		SavingEmissionPct:          0.5,
		SavingScorecardPct:         0.2,
		RampUpMonths:               6,
		CleaningFrequencyMonths:    9,
		MonthlyDeteriorationPct:    0.1,
		RampUpSavingSharePct:       60,
		PostCleaningSavingSharePct: 100,
	}
	m := FromParams(p)
	if math.Abs(m.TotalSavingPct-3.7) > 1e-9 {
		t.Errorf("total saving = %v, want 3.7", m.TotalSavingPct)
	}
	if math.Abs(m.DeteriorationFrac-0.001) > 1e-12 {
		t.Errorf("deterioration frac = %v, want 0.001", m.DeteriorationFrac)
	}
	if math.Abs(m.RampUpShare-0.6) > 1e-12 {
		t.Errorf("ramp share = %v, want 0.6", m.RampUpShare)
	}
	if m.PostCleaningShare != 1.0 {
		t.Errorf("cleaning share = %v, want 1.0", m.PostCleaningShare)
	}
}
