package commands

import (
	"encoding/json"
	"fmt"
	"os"
)

// jsonOutput is the global --json flag.
var jsonOutput bool

// JSONResponse is the standard response wrapper for JSON output.
type JSONResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RouteOutput is one route entry in "nextvfs routes" JSON output.
type RouteOutput struct {
	Pattern string `json:"pattern"`
	File    string `json:"file"`
	Kind    string `json:"kind"`
}

// RoutesOutput is the JSON shape of "nextvfs routes".
type RoutesOutput struct {
	Router string        `json:"router"`
	Routes []RouteOutput `json:"routes"`
	Total  int           `json:"total"`
}

// ConfigOutput is the JSON shape of "nextvfs config <key>".
type ConfigOutput struct {
	Key       string `json:"key"`
	Value     string `json:"value,omitempty"`
	Found     bool   `json:"found"`
	ConfigPath string `json:"config_path,omitempty"`
}

// TailwindOutput is the JSON shape of "nextvfs tailwind".
type TailwindOutput struct {
	Success bool   `json:"success"`
	Script  string `json:"script,omitempty"`
	Error   string `json:"error,omitempty"`
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
	}
}

func printSuccess(data any) {
	printJSON(JSONResponse{Success: true, Data: data})
}

func printJSONError(err error) {
	printJSON(JSONResponse{Success: false, Error: err.Error()})
}
