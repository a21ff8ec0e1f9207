package particles

// Gate is the Visible/Hidden state of the field's container.
type Gate struct {
	visible bool
}

func (g *Gate) Visible() bool { return g.visible }

// Set moves the gate to v and reports whether that was a transition.
func (g *Gate) Set(v bool) bool {
	if g.visible == v {
		return false
	}
	g.visible = v
	return true
}
