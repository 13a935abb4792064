package layout

// Layout is a device-side display mode. The device reports layout
// changes as an index into All, whose order is fixed by firmware.
type Layout int

const (
	Session Layout = iota
	Fader
	Chord
	Custom
	Note
	Scale
	SequencerSettings
	SequencerSteps
	SequencerVelocity
	SequencerPatternSettings
	SequencerProbability
	SequencerMutation
	SequencerMicroStep
	SequencerProjects
	SequencerPatterns
	SequencerTempo
	SequencerSwing
	Programmer
	Settings
	CustomSettings
)

// All lists every layout in firmware report order.
var All = []Layout{
	Session, Fader, Chord, Custom, Note, Scale, SequencerSettings,
	SequencerSteps, SequencerVelocity, SequencerPatternSettings, SequencerProbability, SequencerMutation,
	SequencerMicroStep, SequencerProjects, SequencerPatterns, SequencerTempo, SequencerSwing,
	Programmer, Settings, CustomSettings,
}

var names = map[Layout]string{
	Session:                  "Session",
	Fader:                    "Fader",
	Chord:                    "Chord",
	Custom:                   "Custom",
	Note:                     "Note",
	Scale:                    "Scale",
	SequencerSettings:        "SequencerSettings",
	SequencerSteps:           "SequencerSteps",
	SequencerVelocity:        "SequencerVelocity",
	SequencerPatternSettings: "SequencerPatternSettings",
	SequencerProbability:     "SequencerProbability",
	SequencerMutation:        "SequencerMutation",
	SequencerMicroStep:       "SequencerMicroStep",
	SequencerProjects:        "SequencerProjects",
	SequencerPatterns:        "SequencerPatterns",
	SequencerTempo:           "SequencerTempo",
	SequencerSwing:           "SequencerSwing",
	Programmer:               "Programmer",
	Settings:                 "Settings",
	CustomSettings:           "CustomSettings",
}

func (l Layout) String() string {
	if n, ok := names[l]; ok {
		return n
	}
	return "Unknown"
}

// FromIndex resolves a device-reported layout index. An out-of-range
// index is invalid and reports ok=false; callers ignore it.
func FromIndex(idx int) (Layout, bool) {
	if idx < 0 || idx >= len(All) {
		return Session, false
	}
	return All[idx], true
}
