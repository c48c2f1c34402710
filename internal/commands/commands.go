// Package commands models the fixed set of telemetry command strings that
// the Huffman codebook is derived from, and loads sets from text files.
package commands

// Entry is one telemetry command: the shortened string that actually gets
// encoded and a free-form comment describing its full meaning.
type Entry struct {
	Short   string `json:"short"`
	Comment string `json:"comment,omitempty"`
}

// Set is an ordered collection of command entries.
type Set struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

// Len returns the number of commands in the set.
func (s *Set) Len() int { return len(s.Entries) }

// Strings projects the short command strings, in order, for codebook
// construction.
func (s *Set) Strings() []string {
	out := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		out[i] = e.Short
	}
	return out
}

// Builtin returns the built-in vehicle-control command set. The short forms
// are deliberately abbreviated so the encoded commands fit a small bit
// budget; the comment holds the full meaning.
func Builtin() *Set {
	return &Set{
		Name: "vehicle-control",
		Entries: []Entry{
			{"Pltog", "Power limit toggle"},
			{"Plstat", "Power limit status"},
			{"Plmode", "Power limit mode"},
			{"Pltarg", "Power limit target"},
			{"Plkwlm", "Power limit kW limit"},
			{"Plinit", "Power limit init"},
			{"Pltqcm", "Power limit torque command"},
			{"Plclmp", "Power limit clamp"},
			{"LcKp", "Launch control Kp"},
			{"lcKi", "Launch control Ki"},
			{"lcKd", "Launch control Kd"},
			{"lcpid", "Launch control PID"},
			{"lcSRT", "Launch control slip ratio target"},
			{"lcLcTog", "Launch control LC toggle"},
			{"lcCSR", "Launch control current slip ratio"},
			{"lcCVD", "Launch control current velocity difference"},
			{"lcTVD", "Launch control target velocity difference"},
			{"lcLTq", "Launch control LC torque command"},
			{"lcITq", "Launch control initial torque"},
			{"lck", "Launch control k"},
			{"lcMTq", "Launch control max torque"},
			{"lcPTq", "Launch control previous torque"},
			{"lcUF", "Launch control use filter"},
			{"lcmode", "Launch control mode"},
			{"lcSt", "Launch control state"},
			{"lcPh", "Launch control phase"},
			{"efTog", "Efficiency efficiency toggle"},
			{"efEBk", "Efficiency energy budget kWh (efEBk)"},
			{"efLpCt", "Efficiency lap counter"},
			{"efCOk", "Efficiency carry over energy kWh (efCOk)"},
			{"efTS_s", "Efficiency time eff in straights (s)"},
			{"efTC_s", "Efficiency time eff in corners (s)"},
			{"efESk", "Efficiency energy spent in corners kWh (efESk)"},
			{"efESs", "Efficiency energy spent in straights kWh (efESs)"},
			{"efLEk", "Efficiency lap energy spent kWh (efLEk)"},
			{"efTLk", "Efficiency total lap distance km (efTLk)"},
			{"efFLp", "Efficiency finished lap"},
			{"rgRgTog", "Regen regen toggle"},
			{"rgMd", "Regen mode"},
			{"rgApTq", "Regen APPS torque"},
			{"rgBTN", "Regen BPS torque Nm"},
			{"rgRTq", "Regen regen torque command"},
			{"rgTLD", "Regen torque limit D Nm"},
			{"rgTZPD", "Regen torque at zero pedal D Nm"},
			{"rgPBM", "Regen percent BPS for max regen"},
			{"rgPAC", "Regen percent APPS for coasting"},
			{"rgPdMu", "Regen pad mu"},
			{"rgTk", "Regen tick"},
		},
	}
}
