package orders

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{"processing to completed", StatusProcessing, StatusCompleted, true},
		{"processing to returned", StatusProcessing, StatusReturned, true},
		{"processing to processing", StatusProcessing, StatusProcessing, false},
		{"completed is terminal", StatusCompleted, StatusReturned, false},
		{"returned is terminal", StatusReturned, StatusCompleted, false},
		{"completed cannot reopen", StatusCompleted, StatusProcessing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusProcessing, StatusCompleted, StatusReturned} {
		if !s.Valid() {
			t.Errorf("%v should be valid", s)
		}
	}
	if Status("Pending").Valid() {
		t.Error("Pending should not be valid")
	}
}
