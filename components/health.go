package components

import "github.com/yohamta/donburi"

// HealthData keeps 0 <= Current <= Max.
type HealthData struct {
	Current int
	Max     int
}

// Alive reports whether health is above zero.
func (h *HealthData) Alive() bool {
	return h.Current > 0
}

// Ratio returns Current/Max in [0,1].
func (h *HealthData) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

var Health = donburi.NewComponentType[HealthData]()
