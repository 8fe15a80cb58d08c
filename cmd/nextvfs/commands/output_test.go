package commands

import (
	"encoding/json"
	"testing"
)

func TestJSONResponse_Success(t *testing.T) {
	resp := JSONResponse{
		Success: true,
		Data:    RouteOutput{Pattern: "/about", File: "/app/about/page.tsx", Kind: "page"},
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var decoded JSONResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if !decoded.Success {
		t.Error("expected Success to be true")
	}
	if decoded.Error != "" {
		t.Error("expected Error to be empty for a success response")
	}
}

func TestJSONResponse_Error(t *testing.T) {
	resp := JSONResponse{Success: false, Error: "config not found"}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var decoded JSONResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if decoded.Success {
		t.Error("expected Success to be false")
	}
	if decoded.Error != "config not found" {
		t.Errorf("expected Error to round-trip, got %q", decoded.Error)
	}
}
