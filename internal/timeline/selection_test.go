package timeline

import "testing"

func TestSelectionContains(t *testing.T) {
	s := Selection{IDs: []ID{"a", "b"}, Primary: "a"}
	if !s.Contains("a") || !s.Contains("b") {
		t.Error("expected members to be contained")
	}
	if s.Contains("c") {
		t.Error("non-member reported as contained")
	}
}

func TestSelectionIsOnly(t *testing.T) {
	if !Only("a").IsOnly("a") {
		t.Error("Only(a) should be only a")
	}
	if Only("a").IsOnly("b") {
		t.Error("Only(a) should not be only b")
	}
	s := Selection{IDs: []ID{"a", "b"}, Primary: "a"}
	if s.IsOnly("a") {
		t.Error("multi-selection should not be only")
	}
}

func TestSelectionEmpty(t *testing.T) {
	if !(Selection{}).Empty() {
		t.Error("zero value should be empty")
	}
	if Only("a").Empty() {
		t.Error("non-empty selection reported empty")
	}
}

func TestSelectionCloneIsDeep(t *testing.T) {
	s := Selection{IDs: []ID{"a", "b"}, Primary: "a"}
	c := s.Clone()
	c.IDs[0] = "z"
	if s.IDs[0] != "a" {
		t.Error("mutating the clone changed the original")
	}
}

func TestSelectionAdd(t *testing.T) {
	s := Only("a").Add("b")
	if len(s.IDs) != 2 || s.Primary != "b" {
		t.Errorf("Add(b) = %+v, want {a b} primary b", s)
	}
	// Adding an existing member just re-primaries it.
	s = s.Add("a")
	if len(s.IDs) != 2 || s.Primary != "a" {
		t.Errorf("Add(existing) = %+v, want {a b} primary a", s)
	}
}

func TestSelectionRemove(t *testing.T) {
	s := Selection{IDs: []ID{"a", "b", "c"}, Primary: "b"}

	got := s.Remove("c")
	if len(got.IDs) != 2 || got.Primary != "b" {
		t.Errorf("removing non-primary = %+v", got)
	}

	got = s.Remove("b")
	if len(got.IDs) != 2 || got.Primary != "a" {
		t.Errorf("removing primary should promote first remaining, got %+v", got)
	}

	got = Only("a").Remove("a")
	if !got.Empty() || got.Primary != "" {
		t.Errorf("removing last member = %+v, want empty", got)
	}
}

func TestSelectionToggle(t *testing.T) {
	s := Only("a")
	s = s.Toggle("b")
	if !s.Contains("b") || s.Primary != "b" {
		t.Errorf("toggle-in = %+v", s)
	}
	s = s.Toggle("b")
	if s.Contains("b") {
		t.Errorf("toggle-out = %+v", s)
	}
}

func TestCombineModeString(t *testing.T) {
	tests := []struct {
		mode CombineMode
		want string
	}{
		{CombineReplace, "replace"},
		{CombineAdd, "add"},
		{CombineSubtract, "subtract"},
		{CombineToggle, "toggle"},
		{CombineMode(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("CombineMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestCombine(t *testing.T) {
	prev := Selection{IDs: []ID{"a", "b"}, Primary: "b"}

	tests := []struct {
		name        string
		hits        []ID
		mode        CombineMode
		wantIDs     []ID
		wantPrimary ID
	}{
		{"replace", []ID{"c", "d"}, CombineReplace, []ID{"c", "d"}, "c"},
		{"replace keeps surviving primary", []ID{"b", "c"}, CombineReplace, []ID{"b", "c"}, "b"},
		{"add", []ID{"b", "c"}, CombineAdd, []ID{"a", "b", "c"}, "b"},
		{"subtract", []ID{"b"}, CombineSubtract, []ID{"a"}, "a"},
		{"subtract to empty", []ID{"a", "b"}, CombineSubtract, nil, ""},
		{"toggle", []ID{"b", "c"}, CombineToggle, []ID{"a", "c"}, "a"},
		{"replace with no hits", nil, CombineReplace, nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := prev.Combine(tt.hits, tt.mode)
			if len(got.IDs) != len(tt.wantIDs) {
				t.Fatalf("IDs = %v, want %v", got.IDs, tt.wantIDs)
			}
			for i := range tt.wantIDs {
				if got.IDs[i] != tt.wantIDs[i] {
					t.Errorf("IDs = %v, want %v", got.IDs, tt.wantIDs)
					break
				}
			}
			if got.Primary != tt.wantPrimary {
				t.Errorf("Primary = %q, want %q", got.Primary, tt.wantPrimary)
			}
		})
	}
}

func TestClipEnd(t *testing.T) {
	c := Clip{Start: 1000, Duration: 500}
	if c.End() != 1500 {
		t.Errorf("End() = %v, want 1500", c.End())
	}
}

func TestClipContains(t *testing.T) {
	c := Clip{Start: 1000, Duration: 500}
	if !c.Contains(1000) || !c.Contains(1499) {
		t.Error("interior points should be contained")
	}
	// The end is exclusive so adjacent clips never both claim a time.
	if c.Contains(1500) {
		t.Error("end time should be exclusive")
	}
	if c.Contains(999) {
		t.Error("point before start should not be contained")
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := map[ID]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("empty ID")
		}
		if seen[id] {
			t.Fatalf("duplicate ID %q", id)
		}
		seen[id] = true
	}
}
