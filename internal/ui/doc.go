// Package ui renders the emergency card with Bubble Tea.
//
// Core pieces:
//   - View: A screen or component with its own model, update, view (Elm-style)
//   - Picker: Collapsible single-select dropdown with an animated reveal region
//   - ForceCloser: Capability a host keeps to dismiss the picker from outside
//   - CardView: Host surface that fetches the options and routes presses
//   - AppModel: Root model with the global keys and help line
package ui
