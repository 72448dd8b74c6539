// Package bioeffect classifies peak induced electric fields against
// nerve-stimulation thresholds for MRI gradient exposure.
//
// The thresholds follow the simplified band model used for head-scale
// exposure estimates: fields below 0.1 V/m have no observable effect,
// fields up to 1 V/m subtly modulate neural activity, and fields up to
// 10 V/m stimulate peripheral nerves, first as tingling and above
// 5.8 V/m as pain. The model makes no claim above 10 V/m.
package bioeffect

// Band edges in V/m. Each band includes its upper edge:
// [0.1, 1] neuromodulation, (1, 5.8] tingling, (5.8, 10] painful.
const (
	// NeuromodulationThreshold is the smallest field with an observable effect.
	NeuromodulationThreshold = 0.1
	// TinglingThreshold marks the onset of peripheral nerve stimulation.
	TinglingThreshold = 1.0
	// PainThreshold separates perceptible from painful stimulation.
	PainThreshold = 5.8
	// ModelLimit is the upper bound of the band model's validity.
	ModelLimit = 10.0
)

// Level identifies a bioeffect band.
type Level int

const (
	LevelNone Level = iota
	LevelNeuromodulation
	LevelTingling
	LevelPainful
	LevelUnclassified
)

// String returns the human-readable band label.
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "None"
	case LevelNeuromodulation:
		return "Subtle Neuromodulation"
	case LevelTingling:
		return "Peripheral Nerve Stimulation - tingling"
	case LevelPainful:
		return "Peripheral Nerve Stimulation - painful"
	case LevelUnclassified:
		return "Unclassified"
	default:
		return "Unknown"
	}
}

// NerveStimulation reports whether the level falls in the peripheral
// nerve stimulation range (1, 10] V/m.
func (l Level) NerveStimulation() bool {
	return l == LevelTingling || l == LevelPainful
}

// Band pairs a classification level with the inclusive upper edge of
// its E-field range in V/m.
type Band struct {
	Upper float64
	Level Level
}

// bands orders the classified ranges above NeuromodulationThreshold by
// their inclusive upper edges. Classify walks it in order.
var bands = []Band{
	{TinglingThreshold, LevelNeuromodulation},
	{PainThreshold, LevelTingling},
	{ModelLimit, LevelPainful},
}

// Bands returns the classification bands from lowest to highest edge.
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands)

	return out
}

// Classify maps a peak induced E-field in V/m onto its bioeffect band:
//
//	[0.1, 1]   Subtle Neuromodulation
//	(1, 5.8]   Peripheral Nerve Stimulation - tingling
//	(5.8, 10]  Peripheral Nerve Stimulation - painful
//
// Fields below 0.1 V/m classify as LevelNone; fields above 10 V/m are
// outside the model and classify as LevelUnclassified, as does NaN.
func Classify(eField float64) Level {
	if eField < NeuromodulationThreshold {
		return LevelNone
	}

	for _, b := range bands {
		if eField <= b.Upper {
			return b.Level
		}
	}

	return LevelUnclassified
}
