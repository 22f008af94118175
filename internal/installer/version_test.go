package installer

import (
	"context"
	"errors"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		output  string
		want    string
		wantErr bool
	}{
		{output: "10.2.4\n", want: "10.2.4"},
		{output: "v1.22.19", want: "1.22.19"},
		{output: "pnpm 8.15.1\nsome footer", want: "8.15.1"},
		{output: "1.0.25+a8ff7be64\n", want: "1.0.25+a8ff7be64"},
		{output: "not a version", wantErr: true},
		{output: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			v, err := ParseVersion(tt.output)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVersion(%q) error = %v, wantErr %v", tt.output, err, tt.wantErr)
			}
			if !tt.wantErr && v.String() != tt.want {
				t.Errorf("ParseVersion(%q) = %s, want %s", tt.output, v, tt.want)
			}
		})
	}
}

// stubVersionOutput replaces the --version runner for the duration of a test.
func stubVersionOutput(t *testing.T, out string, err error) {
	t.Helper()
	orig := versionOutput
	versionOutput = func(context.Context, string) (string, error) { return out, err }
	t.Cleanup(func() { versionOutput = orig })
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		name       string
		output     string
		constraint string
		wantOK     bool
	}{
		{"satisfied", "10.2.4", ">=7.0.0", true},
		{"too old", "6.14.18", ">=7.0.0", false},
		{"range", "8.15.1", ">=8.0.0, <9.0.0", true},
		{"caret", "1.22.19", "^1.22.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubVersionOutput(t, tt.output, nil)
			v, ok, err := CheckVersion(context.Background(), "npm", tt.constraint)
			if err != nil {
				t.Fatalf("CheckVersion error: %v", err)
			}
			if ok != tt.wantOK {
				t.Errorf("CheckVersion(%s, %q) ok = %v, want %v", v, tt.constraint, ok, tt.wantOK)
			}
		})
	}
}

func TestCheckVersion_BadConstraint(t *testing.T) {
	stubVersionOutput(t, "10.0.0", nil)
	if _, _, err := CheckVersion(context.Background(), "npm", "not a constraint!"); err == nil {
		t.Fatal("expected error for bad constraint, got nil")
	}
}

func TestDetectVersion_RunnerError(t *testing.T) {
	runErr := errors.New("exec failed")
	stubVersionOutput(t, "", runErr)
	if _, err := DetectVersion(context.Background(), "npm"); !errors.Is(err, runErr) {
		t.Fatalf("expected runner error, got %v", err)
	}
}

func TestMinVersion(t *testing.T) {
	if got := MinVersion("npm"); got != ">=7.0.0" {
		t.Errorf("MinVersion(npm) = %q", got)
	}
	if got := MinVersion("make"); got != "" {
		t.Errorf("MinVersion(make) = %q, want empty", got)
	}
}
