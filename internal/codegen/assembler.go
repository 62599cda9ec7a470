package codegen

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// BuildExecutable hands emitted assembly text to the system toolchain and
// produces a runnable binary. This is the backend's only exit: everything up
// to here is pure text generation.
func BuildExecutable(assembly string, outputPath string) error {
	tmpDir, err := os.MkdirTemp("", "slang-build-")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	asmPath := filepath.Join(tmpDir, "program.s")
	if err := os.WriteFile(asmPath, []byte(assembly), 0o644); err != nil {
		return fmt.Errorf("failed to write assembly: %v", err)
	}

	objPath := filepath.Join(tmpDir, "program.o")
	cmd := exec.Command("as", asmPath, "-o", objPath)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("assembler failed: %v\n%s", err, output)
	}

	// gcc links in the C runtime, which supplies _start and the input
	// helpers the emitted code calls. Fall back to ld for self-contained
	// programs when gcc is unavailable.
	cmd = exec.Command("gcc", objPath, "-o", outputPath)
	if _, err := cmd.CombinedOutput(); err != nil {
		cmd = exec.Command("ld", objPath, "-o", outputPath)
		if output, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("linker failed: %v\n%s", err, output)
		}
	}

	return nil
}
