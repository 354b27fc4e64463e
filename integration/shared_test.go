//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedTriagePath holds the path to a shared triage binary built once for all tests.
	sharedTriagePath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getTriageBinary returns the path to the triage binary, building it once if needed.
func getTriageBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "triage-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		triagePath := filepath.Join(tempDir, "triage")
		buildCmd := exec.Command("go", "build", "-o", triagePath, ".")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build triage: %v", err))
		}

		sharedTriagePath = triagePath
	})

	return sharedTriagePath
}

// runTriageCommand runs the triage binary with the given args from the project root.
func runTriageCommand(t *testing.T, args ...string) error {
	t.Helper()
	triagePath := getTriageBinary()
	cmd := exec.Command(triagePath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}

// writePredictionsCSV writes a small ranked predictions file and returns its path.
func writePredictionsCSV(t *testing.T) string {
	t.Helper()
	data := "report_id,true_assignee,candidates\n" +
		"r1,alice,alice|bob|carol\n" +
		"r2,bob,carol|bob|alice\n" +
		"r3,carol,alice|bob|dave\n"
	path := filepath.Join(t.TempDir(), "preds.csv")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write predictions file: %v", err)
	}
	return path
}
