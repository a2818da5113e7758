package timeline

// Selection is an ordered set of selected clip IDs plus one designated
// primary ID for single-target operations. The zero value is an empty
// selection.
type Selection struct {
	IDs     []ID
	Primary ID
}

// Contains reports whether id is selected.
func (s Selection) Contains(id ID) bool {
	for _, v := range s.IDs {
		if v == id {
			return true
		}
	}
	return false
}

// IsOnly reports whether id is the sole selected clip.
func (s Selection) IsOnly(id ID) bool {
	return len(s.IDs) == 1 && s.IDs[0] == id
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool {
	return len(s.IDs) == 0
}

// Clone returns a deep copy.
func (s Selection) Clone() Selection {
	out := Selection{Primary: s.Primary}
	if len(s.IDs) > 0 {
		out.IDs = append([]ID(nil), s.IDs...)
	}
	return out
}

// Only returns a selection containing just id.
func Only(id ID) Selection {
	return Selection{IDs: []ID{id}, Primary: id}
}

// Add returns a selection with id appended (and made primary) if not
// already present.
func (s Selection) Add(id ID) Selection {
	if s.Contains(id) {
		out := s.Clone()
		out.Primary = id
		return out
	}
	out := s.Clone()
	out.IDs = append(out.IDs, id)
	out.Primary = id
	return out
}

// Remove returns a selection without id. If id was primary, the first
// remaining ID becomes primary.
func (s Selection) Remove(id ID) Selection {
	out := Selection{}
	for _, v := range s.IDs {
		if v != id {
			out.IDs = append(out.IDs, v)
		}
	}
	out.Primary = s.Primary
	if s.Primary == id {
		out.Primary = ""
		if len(out.IDs) > 0 {
			out.Primary = out.IDs[0]
		}
	}
	return out
}

// Toggle flips membership of id.
func (s Selection) Toggle(id ID) Selection {
	if s.Contains(id) {
		return s.Remove(id)
	}
	return s.Add(id)
}

// CombineMode says how a marquee result merges into an existing selection.
type CombineMode uint8

const (
	// CombineReplace discards the previous selection.
	CombineReplace CombineMode = iota
	// CombineAdd unions the hits into the previous selection.
	CombineAdd
	// CombineSubtract removes the hits from the previous selection.
	CombineSubtract
	// CombineToggle flips membership of each hit.
	CombineToggle
)

// String returns a string representation of the mode.
func (m CombineMode) String() string {
	switch m {
	case CombineReplace:
		return "replace"
	case CombineAdd:
		return "add"
	case CombineSubtract:
		return "subtract"
	case CombineToggle:
		return "toggle"
	default:
		return "unknown"
	}
}

// Combine merges hit IDs into s according to mode. The resulting primary is
// the previous primary if still selected, else the first hit, else none.
func (s Selection) Combine(hits []ID, mode CombineMode) Selection {
	out := Selection{}
	switch mode {
	case CombineReplace:
		out.IDs = append(out.IDs, hits...)
	case CombineAdd:
		out.IDs = append(out.IDs, s.IDs...)
		for _, h := range hits {
			if !out.Contains(h) {
				out.IDs = append(out.IDs, h)
			}
		}
	case CombineSubtract:
		hitSet := Selection{IDs: hits}
		for _, v := range s.IDs {
			if !hitSet.Contains(v) {
				out.IDs = append(out.IDs, v)
			}
		}
	case CombineToggle:
		hitSet := Selection{IDs: hits}
		for _, v := range s.IDs {
			if !hitSet.Contains(v) {
				out.IDs = append(out.IDs, v)
			}
		}
		for _, h := range hits {
			if !s.Contains(h) {
				out.IDs = append(out.IDs, h)
			}
		}
	}

	if s.Primary != "" && out.Contains(s.Primary) {
		out.Primary = s.Primary
	} else if len(out.IDs) > 0 {
		out.Primary = out.IDs[0]
	}
	return out
}
