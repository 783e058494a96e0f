package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-svg2png/internal/yamlutil"
)

type testConfig struct {
	Source string `yaml:"source"`
	Width  int    `yaml:"width"`
	Strict bool   `yaml:"strict"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Strict YAML decoding
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		data       []byte
		dest       any
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "valid YAML",
			data: []byte("source: logo.svg\nwidth: 880\nstrict: true"),
			dest: &testConfig{},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("width: 1"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:       "unknown field rejected",
			data:       []byte("source: logo.svg\ncolour: red"),
			dest:       &testConfig{},
			wantErrMsg: "yamlutil:",
		},
		{
			name:       "invalid syntax",
			data:       []byte("source: [unclosed"),
			dest:       &testConfig{},
			wantErrMsg: "yamlutil:",
		},
		{
			name:       "type mismatch",
			data:       []byte("width: wide"),
			dest:       &testConfig{},
			wantErrMsg: "yamlutil:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
			case tt.wantErrMsg != "":
				if err == nil || !strings.Contains(err.Error(), tt.wantErrMsg) {
					t.Errorf("error = %v, want containing %q", err, tt.wantErrMsg)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				cfg := tt.dest.(*testConfig)
				if cfg.Source != "logo.svg" || cfg.Width != 880 || !cfg.Strict {
					t.Errorf("decoded %+v", cfg)
				}
			}
		})
	}
}

func TestUnmarshalStrict_InputTooLarge(t *testing.T) {
	t.Parallel()

	data := []byte("source: " + strings.Repeat("a", yamlutil.MaxInputSize))

	err := yamlutil.UnmarshalStrict(data, &testConfig{})
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("error = %v, want ErrInputTooLarge", err)
	}
}
