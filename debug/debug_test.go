package debug

import "testing"

func TestBoolEnv(t *testing.T) {
	tests := map[string]bool{
		"":      false,
		"1":     true,
		"true":  true,
		"false": false,
		"yes":   false,
	}
	for val, want := range tests {
		t.Setenv("J5_DEBUG_TEST", val)
		if got := boolEnv("J5_DEBUG_TEST"); got != want {
			t.Errorf("%q: got %t, want %t", val, got, want)
		}
	}
}

func TestToggles(t *testing.T) {
	saved := *d
	defer func() { *d = saved }()
	*d = debug{Parse: true, Patch: true}
	if !Parse() || Map() || !Patch() || Eval() {
		t.Errorf("toggles do not follow their settings: %+v", *d)
	}
}
