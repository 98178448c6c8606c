package constants

import "testing"

func TestVirtualButtonGetName(t *testing.T) {
	tests := []struct {
		button VirtualButton
		want   string
	}{
		{VirtualButtonA, "A"},
		{VirtualButtonB, "B"},
		{VirtualButtonStart, "Start"},
		{VirtualButtonPower, "Power"},
		{VirtualButton(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.button.GetName(); got != tt.want {
			t.Errorf("GetName(%d) = %q, want %q", int(tt.button), got, tt.want)
		}
	}
}
