package config

import "testing"

func TestVersionDefaults(t *testing.T) {
	if v := GetVersion(); v != "dev" {
		t.Errorf("expected default version dev, got %s", v)
	}
	if b := GetBuild(); b != "unknown" {
		t.Errorf("expected default build unknown, got %s", b)
	}
	if gc := GetGitCommit(); gc != "unknown" {
		t.Errorf("expected default git commit unknown, got %s", gc)
	}
}

func TestGetFullVersion_DefaultFormat(t *testing.T) {
	fv := GetFullVersion()
	expected := "dev (build: unknown, commit: unknown)"
	if fv != expected {
		t.Errorf("expected full version %q, got %q", expected, fv)
	}
}

func TestGetFullVersion_LdflagsValues(t *testing.T) {
	origVersion, origBuild, origCommit := Version, Build, GitCommit
	defer func() {
		Version, Build, GitCommit = origVersion, origBuild, origCommit
	}()

	Version = "1.4.2"
	Build = "2026-08-21T10:00:00Z"
	GitCommit = "abc1234"

	fv := GetFullVersion()
	expected := "1.4.2 (build: 2026-08-21T10:00:00Z, commit: abc1234)"
	if fv != expected {
		t.Errorf("expected full version %q, got %q", expected, fv)
	}
}
