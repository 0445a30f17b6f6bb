package render

// HandleList owns rendered overlays until they are removed. Removing the
// overlays through Renderer.RemoveAll empties the list, after which the
// handles it held must not be used again.
type HandleList struct {
	items []Handle
}

func (l *HandleList) Add(h Handle) {
	l.items = append(l.items, h)
}

func (l *HandleList) Len() int {
	return len(l.items)
}

func (l *HandleList) take() []Handle {
	items := l.items
	l.items = nil

	return items
}
