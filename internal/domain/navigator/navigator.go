package navigator

// Panel identifies one of the three fixed views.
type Panel int

const (
	PanelLeft Panel = iota
	PanelChat
	PanelRight
)

// PanelCount is the number of panels.
const PanelCount = 3

func (p Panel) String() string {
	switch p {
	case PanelLeft:
		return "Left"
	case PanelChat:
		return "Chat"
	case PanelRight:
		return "Right"
	}
	return "Unknown"
}

// Navigator tracks which panel is visible. Out of range indexes are clamped.
type Navigator struct {
	index int
}

// New starts on the chat panel.
func New() *Navigator {
	return &Navigator{index: int(PanelChat)}
}

// SwitchTo activates panel index, clamped to the valid range.
func (n *Navigator) SwitchTo(index int) int {
	n.index = clamp(index)
	return n.index
}

// Active returns the visible panel index.
func (n *Navigator) Active() int {
	return n.index
}

// ActivePanel returns the visible panel.
func (n *Navigator) ActivePanel() Panel {
	return Panel(n.index)
}

// Offset is the horizontal viewport shift in percent of the viewport width.
func (n *Navigator) Offset() int {
	return n.index * 100
}

func (n *Navigator) Next() int {
	return n.SwitchTo(n.index + 1)
}

func (n *Navigator) Prev() int {
	return n.SwitchTo(n.index - 1)
}

func clamp(index int) int {
	if index < 0 {
		return 0
	}
	if index >= PanelCount {
		return PanelCount - 1
	}
	return index
}
