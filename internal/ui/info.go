package ui

// HUDInfo is the per-frame state the HUD prints.
type HUDInfo struct {
	Current string
	Next    string
	Blend   float64
	Speed   float64
	Shape   int64
	Paused  bool
}
