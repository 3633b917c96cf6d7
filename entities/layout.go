package entities

// PanelLayout is the ordered assignment of dashboard panels to the two
// columns. Every known panel id appears in exactly one column, once.
type PanelLayout struct {
	Left  []string `json:"left"`
	Right []string `json:"right"`
}
