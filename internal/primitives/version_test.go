package primitives

import "testing"

func TestVersion(t *testing.T) {
	var v Version
	seen := v.Load()
	if v.Changed(seen) {
		t.Fatal("fresh version reports change")
	}
	if got := v.Bump(); got != 1 {
		t.Errorf("Bump = %d, want 1", got)
	}
	if !v.Changed(seen) {
		t.Error("Changed = false after Bump")
	}
	if v.Changed(v.Load()) {
		t.Error("Changed = true for current value")
	}
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint([]int{1, 2})
	if len(a) != 16 {
		t.Errorf("len(Fingerprint) = %d, want 16", len(a))
	}
	if a != Fingerprint([]int{1, 2}) {
		t.Error("Fingerprint not deterministic")
	}
	if a == Fingerprint([]int{2, 1}) {
		t.Error("Fingerprint ignores order")
	}
	if got := Fingerprint(make(chan int)); got != "unencodable-chan int" {
		t.Errorf("Fingerprint(chan) = %q", got)
	}
}
