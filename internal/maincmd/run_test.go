package maincmd_test

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/mna/lox/internal/filetest"
	"github.com/mna/lox/internal/maincmd"
	"github.com/mna/mainer"
)

var testUpdateRunTests = flag.Bool("test.update-run-tests", false, "If set, replace expected end-to-end test results with actual results.")

// TestRunSourceScenarios runs the end-to-end scenarios against the full
// scan-parse-resolve-evaluate pipeline, checking both stdout and stderr
// against golden files.
func TestRunSourceScenarios(t *testing.T) {
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")

	for _, fi := range filetest.SourceFiles(t, srcDir, ".lox") {
		t.Run(fi.Name(), func(t *testing.T) {
			b, err := os.ReadFile(filepath.Join(srcDir, fi.Name()))
			if err != nil {
				t.Fatal(err)
			}

			var buf, ebuf bytes.Buffer
			stdio := mainer.Stdio{Stdout: &buf, Stderr: &ebuf}

			// error is ignored, it is reflected in ebuf's diagnostic output.
			_ = maincmd.RunSource(stdio, b)

			filetest.DiffOutput(t, fi, buf.String(), resultDir, testUpdateRunTests)
			filetest.DiffErrors(t, fi, ebuf.String(), resultDir, testUpdateRunTests)
		})
	}
}
