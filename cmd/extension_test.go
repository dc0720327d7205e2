package cmd

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

func TestKnown(t *testing.T) {
	c := subcommands.NewCommander(flag.NewFlagSet("ffc", flag.ContinueOnError), "ffc")
	Register(c)
	if !Known(c, "report") {
		t.Error("report is not known")
	}
	if Known(c, "hello") {
		t.Error("hello is known")
	}
}

func TestExtensionMechanism(t *testing.T) {
	tempDir := t.TempDir()

	// ffc-hello prints the environment it received.
	helloCmdSource := fmt.Sprintf(`
package main

import (
	"fmt"
	"os"
)

func main() {
	for _, key := range []string{%q, %q, %q} {
		fmt.Printf("%%s=%%s\n", key, os.Getenv(key))
	}
	fmt.Println("args=", os.Args[1:])
}
`, EnvStoreDir, EnvCurrency, EnvLogLevel)

	helloCmdPath := filepath.Join(tempDir, "ffc-hello")
	srcFile := helloCmdPath + ".go"
	if err := os.WriteFile(srcFile, []byte(helloCmdSource), 0644); err != nil {
		t.Fatalf("Failed to write ffc-hello source: %v", err)
	}
	if out, err := exec.Command("go", "build", "-o", helloCmdPath, srcFile).CombinedOutput(); err != nil {
		t.Fatalf("Failed to compile ffc-hello: %v\n%s", err, out)
	}

	ffcBinaryPath := filepath.Join(tempDir, "ffc")
	if out, err := exec.Command("go", "build", "-o", ffcBinaryPath, "../ffc").CombinedOutput(); err != nil {
		t.Fatalf("Failed to compile ffc binary: %v\n%s", err, out)
	}

	expectedStore := filepath.Join(tempDir, "store")
	args := []string{
		"-store", expectedStore,
		"-currency", "XYZ",
		"-v",
		"hello", // the extension subcommand
		"world",
	}

	ffcCmd := exec.Command(ffcBinaryPath, args...)
	ffcCmd.Env = []string{
		"PATH=" + tempDir + string(os.PathListSeparator) + os.Getenv("PATH"),
		"HOME=" + tempDir,
	}
	var stdout, stderr bytes.Buffer
	ffcCmd.Stdout = &stdout
	ffcCmd.Stderr = &stderr

	if err := ffcCmd.Run(); err != nil {
		t.Fatalf("ffc command failed: %v\nStdout: %s\nStderr: %s", err, stdout.String(), stderr.String())
	}

	output := stdout.String()
	for _, want := range []string{
		EnvStoreDir + "=" + expectedStore,
		EnvCurrency + "=XYZ",
		EnvLogLevel + "=debug",
		"args= [world]",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, but got:\n%s", want, output)
		}
	}
}
