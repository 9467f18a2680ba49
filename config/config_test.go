package config

import "testing"

func TestUITextsByDevice(t *testing.T) {
	tests := []struct {
		compact             bool
		wantStart, wantHint string
	}{
		{false, UI.StartPrompt, UI.ControlsHint},
		{true, UI.StartPromptTouch, UI.ControlsHintTouch},
	}
	for _, tt := range tests {
		if got := UI.StartText(tt.compact); got != tt.wantStart {
			t.Errorf("StartText(%v) = %q, want %q", tt.compact, got, tt.wantStart)
		}
		if got := UI.ControlsText(tt.compact); got != tt.wantHint {
			t.Errorf("ControlsText(%v) = %q, want %q", tt.compact, got, tt.wantHint)
		}
	}
}
