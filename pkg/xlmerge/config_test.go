package xlmerge

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeConfig(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Options
		wantErr  bool
	}{
		{
			name:     "empty file keeps defaults",
			input:    "",
			expected: DefaultOptions(),
		},
		{
			name: "all keys",
			input: `summary_sheet: Totals
key_prefix: "Acct "
link_cell: B2
skip_missing_summary: true
`,
			expected: Options{
				SummarySheet:       "Totals",
				KeyPrefix:          "Acct ",
				LinkCell:           "B2",
				SkipMissingSummary: true,
			},
		},
		{
			name:  "empty prefix is allowed",
			input: `key_prefix: ""`,
			expected: Options{
				SummarySheet: DefaultSummarySheet,
				LinkCell:     DefaultLinkCell,
			},
		},
		{
			name:    "unknown key",
			input:   "summary: Totals\n",
			wantErr: true,
		},
		{
			name:    "invalid link cell",
			input:   "link_cell: nowhere\n",
			wantErr: true,
		},
		{
			name:    "empty summary sheet",
			input:   `summary_sheet: ""`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeConfig(strings.NewReader(tt.input), DefaultOptions())
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected an error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeConfig failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "xlmerge.yaml")
	if err := os.WriteFile(path, []byte("summary_sheet: Overview\n"), 0644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadConfig(path, DefaultOptions())
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if opts.SummarySheet != "Overview" || opts.KeyPrefix != DefaultKeyPrefix {
		t.Errorf("got %+v", opts)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml"), DefaultOptions()); err == nil {
		t.Error("expected an error for a missing config file")
	}
}
