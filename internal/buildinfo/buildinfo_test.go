package buildinfo

import "testing"

func TestString_IncludesStampedValues(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	defer func() { Version, Commit, Date = oldV, oldC, oldD }()

	Version, Commit, Date = "v1.2.0", "abc123", "2026-01-02"

	want := "projectile v1.2.0 (commit=abc123, date=2026-01-02)"
	if got := String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
