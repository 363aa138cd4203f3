package svg

// ClipStack manages hierarchical clip regions with save/restore
// operations. Entries are stored in device space: callers pass the
// current transform with each clip operation and the stack applies it
// up front. Only intersect-style clipping is supported.
//
// A stack with no entries is "wide open" (no clipping in effect).
type ClipStack struct {
	entries []clipEntry
	saves   []int
	bounds  Rect
	base    Rect
}

// clipEntry represents a single clip operation in the stack.
type clipEntry struct {
	path       *Path
	rect       Rect
	isRect     bool
	prevBounds Rect
}

// NewClipStack creates a new clip stack with the given bounds.
// The bounds represent the maximum clipping area (typically the device size).
func NewClipStack(bounds Rect) *ClipStack {
	return &ClipStack{
		entries: make([]clipEntry, 0, 8),
		saves:   make([]int, 0, 8),
		bounds:  bounds,
		base:    bounds,
	}
}

// Save marks the current stack depth. A later Restore pops every clip
// pushed since the matching Save.
func (cs *ClipStack) Save() {
	cs.saves = append(cs.saves, len(cs.entries))
}

// Restore pops all clips pushed since the matching Save.
// Without a matching Save this is a no-op.
func (cs *ClipStack) Restore() {
	if len(cs.saves) == 0 {
		return
	}
	depth := cs.saves[len(cs.saves)-1]
	cs.saves = cs.saves[:len(cs.saves)-1]
	for len(cs.entries) > depth {
		last := cs.entries[len(cs.entries)-1]
		cs.bounds = last.prevBounds
		cs.entries = cs.entries[:len(cs.entries)-1]
	}
}

// ClipRect intersects the clip with a rectangle under the transform m.
// Axis-preserving transforms keep the entry rectangular; anything else
// pushes the transformed outline as a path clip.
func (cs *ClipStack) ClipRect(r Rect, m Matrix) {
	if m.IsScaleOnly() {
		dev := r.TransformBounds(m)
		cs.entries = append(cs.entries, clipEntry{
			rect:       dev,
			isRect:     true,
			prevBounds: cs.bounds,
		})
		cs.bounds = cs.bounds.Intersect(dev)
		return
	}
	cs.ClipPath(r.Path(), m)
}

// ClipPath intersects the clip with a path under the transform m.
// The path's fill rule is carried into the clip definition.
func (cs *ClipStack) ClipPath(p *Path, m Matrix) {
	dev := p
	if !m.IsIdentity() {
		dev = p.Transform(m)
	}
	cs.entries = append(cs.entries, clipEntry{
		path:       dev,
		prevBounds: cs.bounds,
	})
	cs.bounds = cs.bounds.Intersect(dev.Bounds())
}

// IsWideOpen returns true if no clipping is in effect.
func (cs *ClipStack) IsWideOpen() bool {
	return len(cs.entries) == 0
}

// Bounds returns the current effective clip bounds: the intersection of
// the base bounds with every pushed entry's bounds.
func (cs *ClipStack) Bounds() Rect {
	return cs.bounds
}

// Depth returns the current number of clip entries.
func (cs *ClipStack) Depth() int {
	return len(cs.entries)
}

// Reset clears all clip entries and restores the given base bounds.
func (cs *ClipStack) Reset(bounds Rect) {
	cs.entries = cs.entries[:0]
	cs.saves = cs.saves[:0]
	cs.bounds = bounds
	cs.base = bounds
}

// Reduce collapses the stack to a single path and fill rule, in device
// space. Rect-only stacks reduce exactly to their intersection. When path
// entries are present the most recent path is returned as-is; other
// entries contribute only through the accumulated bounds, which reduce
// to an empty path when they are empty. Combining clips by boolean
// intersection is not performed.
//
// Reduce must not be called on a wide-open stack.
func (cs *ClipStack) Reduce() (*Path, FillRule) {
	if cs.IsWideOpen() {
		panic("svg: Reduce called on a wide-open clip stack")
	}

	var lastPath *Path
	rect := cs.base
	for i := range cs.entries {
		e := &cs.entries[i]
		if e.isRect {
			rect = rect.Intersect(e.rect)
		} else {
			lastPath = e.path
		}
	}

	if lastPath == nil {
		if rect.IsEmpty() {
			return NewPath(), FillRuleNonZero
		}
		return rect.Path(), FillRuleNonZero
	}

	pathCount := 0
	for i := range cs.entries {
		if !cs.entries[i].isRect {
			pathCount++
		}
	}
	if pathCount > 1 {
		Logger().Debug("clip reduction approximated", "pathClips", pathCount)
	}
	if cs.bounds.IsEmpty() {
		return NewPath(), lastPath.FillRule
	}
	return lastPath, lastPath.FillRule
}
