package environment

import "testing"

func TestGetEnvironment(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected Environment
		local    bool
	}{
		{name: "unset", value: "", expected: Production, local: false},
		{name: "local", value: "local", expected: Local, local: true},
		{name: "staging", value: "staging", expected: Environment("staging"), local: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENVIRONMENT", tt.value)

			if got := GetEnvironment(); got != tt.expected {
				t.Errorf("expected environment %s, got %s", tt.expected, got)
			}
			if got := IsLocal(); got != tt.local {
				t.Errorf("expected IsLocal %v, got %v", tt.local, got)
			}
		})
	}
}
