// Package timeline defines the domain model the interaction engine reads:
// tracks, clips, and the selection set. The engine never owns this data;
// the state store does. Types here are plain values so the store can hand
// out copies without aliasing concerns.
package timeline
