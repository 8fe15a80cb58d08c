package version

import "testing"

func TestGetVersion(t *testing.T) {
	// The version (by default "dev") must never be empty
	v := GetVersion()
	if v == "" {
		t.Error("GetVersion() should not return empty string")
	}

	// Should return the current Version value
	if v != Version {
		t.Errorf("GetVersion() = %q, want %q", v, Version)
	}
}

func TestGetVersion_Modified(t *testing.T) {
	// Save original and restore after test
	original := Version
	defer func() { Version = original }()

	// Test with modified version
	Version = "v1.2.3"
	v := GetVersion()
	if v != "v1.2.3" {
		t.Errorf("GetVersion() = %q, want v1.2.3", v)
	}
}

