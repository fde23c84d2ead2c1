package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		in      string
		want    assignment
		wantErr bool
	}{
		{in: "Motor Skills#0=3", want: assignment{Domain: "Motor Skills", Index: 0, Raw: "3"}},
		{in: " Motor Skills # 2 = 4", want: assignment{Domain: "Motor Skills", Index: 2, Raw: " 4"}},
		{in: "Motor Skills#1=", want: assignment{Domain: "Motor Skills", Index: 1, Raw: ""}},
		{in: "Motor Skills#1=abc", want: assignment{Domain: "Motor Skills", Index: 1, Raw: "abc"}},
		{in: "A#B#1=2", want: assignment{Domain: "A#B", Index: 1, Raw: "2"}},
		{in: "Motor Skills#0", wantErr: true},
		{in: "Motor Skills=3", wantErr: true},
		{in: "#0=3", wantErr: true},
		{in: "Motor Skills#x=3", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseAssignment(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("SPROUT_CONFIG", "")
	// Persistent flag values outlive a single Execute.
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestScoreCommand_JSON(t *testing.T) {
	out, errOut, err := execute(t, "score",
		"--set", "Motor Skills#0=3",
		"--set", "Motor Skills#1=4",
		"--set", "Motor Skills#2=abc",
		"--json",
	)
	require.NoError(t, err)
	assert.Contains(t, errOut, "counted as 0")

	var doc struct {
		AssessmentID string `json:"assessment_id"`
		TotalScore   int    `json:"total_score"`
		MaxScore     int    `json:"max_score"`
		Answered     int    `json:"answered"`
		Domains      []struct {
			Name    string `json:"name"`
			Score   int    `json:"score"`
			Percent int    `json:"percent"`
		} `json:"domains"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.NotEmpty(t, doc.AssessmentID)
	assert.Equal(t, 7, doc.TotalScore)
	assert.Equal(t, 60, doc.MaxScore)
	require.Len(t, doc.Domains, 5)
	assert.Equal(t, "Motor Skills", doc.Domains[2].Name)
	assert.Equal(t, 58, doc.Domains[2].Percent)
}

func TestChecklistCommand_CustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checklist.json")
	raw := `{"version":"v1.0.0","domains":[{"name":"Play","items":["Stacks blocks","Rolls a ball"]}]}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	out, _, err := execute(t, "checklist", "--checklist", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Stacks blocks")
	assert.Contains(t, out, "2 items, max score 8")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sprout")
}

func TestLogLevelFlagOverridesEnv(t *testing.T) {
	t.Setenv("SPROUT_LOG_LEVEL", "loud")

	out, _, err := execute(t, "checklist", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "15 items, max score 60")
}

func TestInvalidLogLevelWithoutOverride(t *testing.T) {
	t.Setenv("SPROUT_LOG_LEVEL", "loud")

	_, _, err := execute(t, "checklist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}

func TestChecklistCommand_TruncatesNonASCIILabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checklist.json")
	raw := `{"version":"v1.0.0","domains":[{"name":"Jeu","items":["` + strings.Repeat("é", 60) + `"]}]}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	out, _, err := execute(t, "checklist", "--checklist", path)
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(out))
	assert.Contains(t, out, strings.Repeat("é", 45)+"...")
	assert.NotContains(t, out, strings.Repeat("é", 46))
}
