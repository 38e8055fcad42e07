package config_test

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/emberhollow/proxy/internal/platform/config"
)

// Exitf calls os.Exit, so the assertion runs against a subprocess re-invoking
// this test binary.
func TestExitfExitsWithCode1(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		config.Exitf("boot: %s", "no listener")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitfExitsWithCode1$")
	cmd.Env = append(os.Environ(), "TEST_EXITF_SUBPROCESS=1")

	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(string(out), "boot: no listener") {
		t.Fatalf("expected stderr to contain %q, got %q", "boot: no listener", string(out))
	}
}
