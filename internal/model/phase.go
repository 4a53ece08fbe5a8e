package model

// Phase is a human-friendly label for the savings regime a month fell into.
// Keep these values stable; they are intended for CSV and JSON output.
type Phase string

const (
	PhasePreRamp       Phase = "PRE_RAMP"
	PhaseRampUp        Phase = "RAMP_UP"
	PhaseCleaning      Phase = "CLEANING"
	PhaseDeterioration Phase = "DETERIORATION"
)
