// Package session loads and saves timeline documents: the YAML files the
// demo binary uses to seed and persist the editor state. Unknown fields
// are ignored and invalid numeric values are clamped on load, matching
// the store's own defensive attitude.
package session

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/clipforge/clipline/internal/state"
	"github.com/clipforge/clipline/internal/timeline"
	"github.com/clipforge/clipline/internal/timeline/coords"
)

// Document is the on-disk timeline format.
type Document struct {
	Name     string     `yaml:"name,omitempty"`
	Zoom     float64    `yaml:"zoom"`
	Playhead float64    `yaml:"playhead"`
	Tracks   []TrackDoc `yaml:"tracks"`
}

// TrackDoc is one track and its clips.
type TrackDoc struct {
	Name   string    `yaml:"name,omitempty"`
	Hidden bool      `yaml:"hidden,omitempty"`
	Clips  []ClipDoc `yaml:"clips"`
}

// ClipDoc is one placed clip. Times are in milliseconds.
type ClipDoc struct {
	Name     string  `yaml:"name,omitempty"`
	Start    float64 `yaml:"start"`
	Duration float64 `yaml:"duration"`
	Trim     float64 `yaml:"trim,omitempty"`
	Color    string  `yaml:"color,omitempty"`
	Speed    float64 `yaml:"speed,omitempty"`
	Reversed bool    `yaml:"reversed,omitempty"`
}

// Load reads a timeline document and builds the editor state it
// describes.
func Load(path string) (state.EditorState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return state.EditorState{}, fmt.Errorf("session: read %s: %w", path, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return state.EditorState{}, fmt.Errorf("session: parse %s: %w", path, err)
	}
	return doc.State(), nil
}

// State builds editor state from the document, generating IDs and
// clamping numeric fields.
func (doc Document) State() state.EditorState {
	st := state.EditorState{
		Playhead: max(doc.Playhead, 0),
		Zoom:     coords.ClampZoom(doc.Zoom),
	}
	for i, td := range doc.Tracks {
		track := timeline.Track{
			ID:      timeline.NewID(),
			Name:    td.Name,
			Index:   i,
			Visible: !td.Hidden,
		}
		st.Tracks = append(st.Tracks, track)
		for _, cd := range td.Clips {
			st.Clips = append(st.Clips, timeline.Clip{
				ID:        timeline.NewID(),
				TrackID:   track.ID,
				Start:     max(cd.Start, 0),
				Duration:  max(cd.Duration, timeline.MinClipDuration),
				TrimStart: max(cd.Trim, 0),
				Name:      cd.Name,
				Color:     cd.Color,
				Speed:     cd.Speed,
				Reversed:  cd.Reversed,
			})
		}
	}
	return st
}

// Save writes the editor state as a timeline document.
func Save(path string, st state.EditorState) error {
	doc := Document{
		Zoom:     st.Zoom,
		Playhead: st.Playhead,
	}
	for _, t := range st.Tracks {
		td := TrackDoc{Name: t.Name, Hidden: !t.Visible}
		for _, c := range st.TrackClips(t.ID) {
			td.Clips = append(td.Clips, ClipDoc{
				Name:     c.Name,
				Start:    c.Start,
				Duration: c.Duration,
				Trim:     c.TrimStart,
				Color:    c.Color,
				Speed:    c.Speed,
				Reversed: c.Reversed,
			})
		}
		doc.Tracks = append(doc.Tracks, td)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("session: write %s: %w", path, err)
	}
	return nil
}
