package nextconfig

import "testing"

func TestParseNextConfigValue(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		key     string
		typed   bool
		want    string
		wantOk  bool
	}{
		{
			name:   "plain string literal",
			source: `module.exports = { assetPrefix: "/cdn" };`,
			key:    "assetPrefix",
			want:   "/cdn",
			wantOk: true,
		},
		{
			name:   "typed source with variable indirection",
			source: `const P = "/static"; const config: NextConfig = { assetPrefix: P }; export default config;`,
			key:    "assetPrefix",
			typed:  true,
			want:   "/static",
			wantOk: true,
		},
		{
			name:   "defineConfig call wrapper",
			source: `export default defineConfig({ basePath: "/docs" });`,
			key:    "basePath",
			want:   "/docs",
			wantOk: true,
		},
		{
			name:   "zero-interpolation template literal",
			source: "export default { assetPrefix: `/static` };",
			key:    "assetPrefix",
			want:   "/static",
			wantOk: true,
		},
		{
			name:   "dynamic value is unresolvable",
			source: `export default { assetPrefix: process.env.CDN_URL };`,
			key:    "assetPrefix",
			wantOk: false,
		},
		{
			name:   "missing key",
			source: `export default { basePath: "/docs" };`,
			key:    "assetPrefix",
			wantOk: false,
		},
		{
			name:   "template literal with interpolation is unresolvable",
			source: "export default { assetPrefix: `${base}/static` };",
			key:    "assetPrefix",
			wantOk: false,
		},
		{
			name:   "typed import stripped, regex fallback on broken object",
			source: `import type { NextConfig } from "next"; export default { assetPrefix: "/cdn"`,
			key:    "assetPrefix",
			typed:  true,
			want:   "/cdn",
			wantOk: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNextConfigValue(tt.source, tt.key, tt.typed)
			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v (value %q)", ok, tt.wantOk, got)
			}
			if ok && got != tt.want {
				t.Errorf("value = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStage1Stripping(t *testing.T) {
	source := `import type { NextConfig } from "next";
import { helper } from "./helper";
const base = "/x" satisfies string;
const config: NextConfig = { assetPrefix: base } as const;
export default config;`

	got, ok := ParseNextConfigValue(source, "assetPrefix", true)
	if !ok {
		t.Fatal("expected a resolvable value")
	}
	if got != "/x" {
		t.Errorf("got %q, want /x", got)
	}
}
