package chatapp

import "jan-chat/internal/domain/history"

// Alert is one user-facing notice.
type Alert struct {
	Level history.Level
	Text  string
}

// Alerts collects notices until the UI drains them.
type Alerts struct {
	items []Alert
}

var _ history.Notifier = (*Alerts)(nil)

func (n *Alerts) Alert(level history.Level, text string) {
	n.items = append(n.items, Alert{Level: level, Text: text})
}

// Merge appends the notices of other.
func (n *Alerts) Merge(other *Alerts) {
	if other != nil {
		n.items = append(n.items, other.items...)
	}
}

// Drain returns the pending notices and clears them.
func (n *Alerts) Drain() []Alert {
	out := n.items
	n.items = nil
	return out
}
