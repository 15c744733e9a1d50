package ui

import "emergencycard/internal/option"

// OptionsLoadedMsg is sent when the option fetch completes, successfully or not.
// An empty Result means the picker keeps its options absent.
type OptionsLoadedMsg struct {
	Result option.Result
}
