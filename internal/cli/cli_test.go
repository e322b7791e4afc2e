package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arkapriyo/closestpair/pkg/closest"
	cperrors "github.com/arkapriyo/closestpair/pkg/errors"
	"github.com/arkapriyo/closestpair/pkg/geom"
	pointio "github.com/arkapriyo/closestpair/pkg/io"
	"github.com/arkapriyo/closestpair/pkg/pipeline"
)

// runCLI executes the root command with args and returns what it wrote to
// stdout and stderr. The user config directory points at an empty temp dir.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out, errOut syncBuffer
	c := New(&errOut, LogInfo)
	c.Out = &out

	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func writePointsFile(t *testing.T, points []geom.Point) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "points.json")
	if err := pointio.ExportPoints(points, path); err != nil {
		t.Fatalf("ExportPoints: %v", err)
	}
	return path
}

func decodeReport(t *testing.T, out string) pipeline.Report {
	t.Helper()
	var rep pipeline.Report
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("report is not valid JSON: %v\n%s", err, out)
	}
	return rep
}

func TestCompareJSON(t *testing.T) {
	out, _, err := runCLI(t, "compare", "--json", "--seed", "7", "-n", "300")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}

	rep := decodeReport(t, out)
	if rep.Count != 300 {
		t.Errorf("count = %d, want 300", rep.Count)
	}
	if rep.BruteForce == nil {
		t.Fatal("brute force should run by default")
	}
	if !rep.Agree {
		t.Errorf("solvers disagree: %v vs %v", rep.DivideAndConquer.Distance, rep.BruteForce.Distance)
	}
	if rep.Source != "generated:clustered" {
		t.Errorf("source = %q", rep.Source)
	}
}

func TestCompareText(t *testing.T) {
	out, _, err := runCLI(t, "compare", "-n", "100", "-d", "uniform", "--strict")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	for _, want := range []string{"Divide and Conquer", "Brute Force", "solvers agree"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q:\n%s", want, out)
		}
	}
}

func TestCompareSkipBrute(t *testing.T) {
	out, _, err := runCLI(t, "compare", "-n", "100", "--skip-brute")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if strings.Contains(out, "Brute Force") {
		t.Errorf("brute force should be skipped:\n%s", out)
	}
	if !strings.Contains(out, "not verified") {
		t.Errorf("output should say the result is unverified:\n%s", out)
	}
}

func TestCompareInputFile(t *testing.T) {
	path := writePointsFile(t, []geom.Point{geom.Pt(0, 0), geom.Pt(3, 4), geom.Pt(0, 0.0000001)})

	out, _, err := runCLI(t, "compare", "--input", path, "--json")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	rep := decodeReport(t, out)
	if rep.Source != path {
		t.Errorf("source = %q, want %q", rep.Source, path)
	}
	want := geom.Pair{A: geom.Pt(0, 0), B: geom.Pt(0, 0.0000001)}
	if got := rep.DivideAndConquer.Pair.Canonical(); got != want {
		t.Errorf("pair = %v, want %v", got, want)
	}
}

func TestCompareInvalidDistribution(t *testing.T) {
	_, _, err := runCLI(t, "compare", "-d", "spiral")
	if !cperrors.IsInvalid(err) {
		t.Errorf("expected an invalid-input error, got %v", err)
	}
}

func TestConfigFileAndFlagOverride(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfg, []byte("[generate]\ncount = 20\nseed = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCLI(t, "--config", cfg, "compare", "--json")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if rep := decodeReport(t, out); rep.Count != 20 || rep.Seed != 3 {
		t.Errorf("config not applied: count=%d seed=%d", rep.Count, rep.Seed)
	}

	out, _, err = runCLI(t, "--config", cfg, "compare", "--json", "-n", "30")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if rep := decodeReport(t, out); rep.Count != 30 || rep.Seed != 3 {
		t.Errorf("flag should override only count: count=%d seed=%d", rep.Count, rep.Seed)
	}
}

func TestBadConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfg, []byte("[generate]\ncolor = \"red\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, err := runCLI(t, "--config", cfg, "compare")
	if !cperrors.Is(err, cperrors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestGenerateThenSolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.json")
	_, errOut, err := runCLI(t, "generate", "-n", "200", "--seed", "11", "-o", path)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(errOut, "Generated") {
		t.Errorf("generate should confirm on stderr, got %q", errOut)
	}

	points, err := pointio.ImportPoints(path)
	if err != nil {
		t.Fatalf("ImportPoints: %v", err)
	}
	want, err := closest.BruteForce(points)
	if err != nil {
		t.Fatal(err)
	}

	for _, algo := range []string{"dc", "brute"} {
		out, _, err := runCLI(t, "solve", path, "--algo", algo, "--json")
		if err != nil {
			t.Fatalf("solve --algo %s: %v", algo, err)
		}
		var run pipeline.Run
		if err := json.Unmarshal([]byte(out), &run); err != nil {
			t.Fatalf("solve output is not JSON: %v", err)
		}
		if run.SquaredDistance != want.SquaredDistance {
			t.Errorf("%s: squared distance = %v, want %v", algo, run.SquaredDistance, want.SquaredDistance)
		}
	}
}

func TestGenerateStdout(t *testing.T) {
	out, _, err := runCLI(t, "generate", "-n", "12", "-d", "uniform")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	points, err := pointio.ReadPoints(strings.NewReader(out))
	if err != nil {
		t.Fatalf("ReadPoints: %v", err)
	}
	if len(points) != 12 {
		t.Errorf("got %d points, want 12", len(points))
	}
}

func TestSolveErrors(t *testing.T) {
	path := writePointsFile(t, []geom.Point{geom.Pt(0, 0), geom.Pt(1, 1)})

	tests := []struct {
		name string
		args []string
		code cperrors.Code
	}{
		{"unknown algorithm", []string{"solve", path, "--algo", "quantum"}, cperrors.ErrCodeInvalidAlgorithm},
		{"missing file", []string{"solve", filepath.Join(t.TempDir(), "nope.json")}, cperrors.ErrCodeFileNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.args...)
			if got := cperrors.GetCode(err); got != tt.code {
				t.Errorf("code = %q, want %q (err: %v)", got, tt.code, err)
			}
		})
	}
}

func TestSolveTooFewPoints(t *testing.T) {
	path := writePointsFile(t, []geom.Point{geom.Pt(1, 1)})
	_, _, err := runCLI(t, "solve", path)
	if !cperrors.Is(err, cperrors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestBenchJSON(t *testing.T) {
	out, _, err := runCLI(t, "bench", "--sizes", "100,200,400", "--brute-limit", "200", "--json")
	if err != nil {
		t.Fatalf("bench: %v", err)
	}

	var rows []pipeline.BenchRow
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("bench output is not JSON: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0].BruteForce == nil || rows[1].BruteForce == nil {
		t.Error("brute force should run up to the limit")
	}
	if rows[2].BruteForce != nil {
		t.Error("brute force should be skipped above the limit")
	}
	if rows[0].Growth != 0 || rows[1].Growth <= 0 {
		t.Errorf("growth = %v, %v", rows[0].Growth, rows[1].Growth)
	}
}

func TestBenchTable(t *testing.T) {
	out, _, err := runCLI(t, "bench", "--sizes", "50,100")
	if err != nil {
		t.Fatalf("bench: %v", err)
	}
	for _, want := range []string{"D&C time", "brute cmp", "growth", "100"} {
		if !strings.Contains(out, want) {
			t.Errorf("table should contain %q:\n%s", want, out)
		}
	}
}

func TestCompletion(t *testing.T) {
	out, _, err := runCLI(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(out, "closestpair") {
		t.Error("bash completion should mention the program name")
	}
}
