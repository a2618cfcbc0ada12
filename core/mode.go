package core

// Mode holds the two phase flags; both flip together and never revert
type Mode struct {
	Fusion    bool
	Inference bool
}

// Phase names the current mode for display
func (m Mode) Phase() string {
	if m.Fusion {
		return "fusion"
	}
	return "chaos"
}
