package manifest

import (
	"strings"
	"testing"

	"github.com/firefly-engineering/firefly-forage/packages/forage-build/internal/folder"
)

func TestParsePackageJSON(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStart   string
		wantMain    string
		wantInstall bool
	}{
		{
			name: "empty object",
			body: `{}`,
		},
		{
			name:      "start script",
			body:      `{"scripts":{"start":"node index.js"}}`,
			wantStart: "node index.js",
		},
		{
			name:     "main only",
			body:     `{"name":"x","main":"lib/entry.js"}`,
			wantMain: "lib/entry.js",
		},
		{
			name:        "empty install script is still present",
			body:        `{"scripts":{"install":""}}`,
			wantInstall: true,
		},
		{
			name: "empty start is absent",
			body: `{"scripts":{"start":""},"main":""}`,
		},
		{
			name:        "unrelated fields ignored",
			body:        `{"dependencies":{"express":"^4"},"scripts":{"test":"jest","install":"node-gyp rebuild"}}`,
			wantInstall: true,
		},
		{
			name:        "null install script is still present",
			body:        `{"scripts":{"install":null}}`,
			wantInstall: true,
		},
		{
			name:        "non-string install script is still present",
			body:        `{"scripts":{"install":5}}`,
			wantInstall: true,
		},
		{
			name:      "non-string main is absent",
			body:      `{"scripts":{"start":"node a.js"},"main":5}`,
			wantStart: "node a.js",
		},
		{
			name:     "non-object scripts is absent",
			body:     `{"scripts":"echo","main":"x.js"}`,
			wantMain: "x.js",
		},
		{
			name:        "non-string start is absent",
			body:        `{"scripts":{"start":["node","a.js"],"install":"x"},"main":null}`,
			wantInstall: true,
		},
		{
			name: "null scripts",
			body: `{"scripts":null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg, err := ParsePackageJSON([]byte(tt.body))
			if err != nil {
				t.Fatalf("ParsePackageJSON() error: %v", err)
			}

			start, ok := pkg.StartScript()
			if start != tt.wantStart || ok != (tt.wantStart != "") {
				t.Errorf("StartScript() = %q, %v, want %q", start, ok, tt.wantStart)
			}
			main, ok := pkg.MainEntry()
			if main != tt.wantMain || ok != (tt.wantMain != "") {
				t.Errorf("MainEntry() = %q, %v, want %q", main, ok, tt.wantMain)
			}
			if got := pkg.HasInstallScript(); got != tt.wantInstall {
				t.Errorf("HasInstallScript() = %v, want %v", got, tt.wantInstall)
			}
		})
	}
}

func TestParsePackageJSON_Malformed(t *testing.T) {
	for _, body := range []string{``, `{`, `[]`, `"main"`, `{"main":"a.js",}`} {
		if _, err := ParsePackageJSON([]byte(body)); err == nil {
			t.Errorf("ParsePackageJSON(%q) should fail", body)
		}
	}
}

func TestLoadPackageJSON(t *testing.T) {
	f := folder.NewMockFolder("/src/app")
	f.AddFile(PackageJSONFile, []byte(`{"main":"server.js"}`))

	pkg, err := LoadPackageJSON(f)
	if err != nil {
		t.Fatalf("LoadPackageJSON() error: %v", err)
	}
	if main, _ := pkg.MainEntry(); main != "server.js" {
		t.Errorf("MainEntry() = %q, want server.js", main)
	}

	_, err = LoadPackageJSON(folder.NewMockFolder("/src/empty"))
	if err == nil {
		t.Fatal("LoadPackageJSON() should fail without package.json")
	}
	if want := "failed to parse /src/empty/package.json"; !strings.HasPrefix(err.Error(), want) {
		t.Errorf("error = %q, want prefix %q", err.Error(), want)
	}
}
