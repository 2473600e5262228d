// Package service holds the pieces of the application that sit between
// the TUI and the outside world: the sum_dirac_dfcoef subprocess and
// fuzzy search over parsed tables.
package service

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
)

// DFCoefRunner wraps the external sum_dirac_dfcoef program, which
// condenses a raw DIRAC output file into the spinor table this viewer
// displays.
type DFCoefRunner struct {
	Command string
	Decimal int
}

// Run invokes sum_dirac_dfcoef on a raw DIRAC output and returns the
// path of the condensed table it wrote (<molecule>.out next to the
// input file).
func (r *DFCoefRunner) Run(ctx context.Context, inputPath, molecule string) (string, error) {
	if molecule == "" {
		return "", fmt.Errorf("dfcoef: molecule name is required")
	}
	cmd := r.Command
	if cmd == "" {
		cmd = "sum_dirac_dfcoef"
	}
	decimal := r.Decimal
	if decimal <= 0 {
		decimal = 3
	}

	dir := filepath.Dir(inputPath)
	c := exec.CommandContext(ctx, cmd,
		"-i", inputPath,
		"-m", molecule,
		"-d", strconv.Itoa(decimal),
		"-c",
	)
	c.Dir = dir

	var stderr bytes.Buffer
	c.Stderr = &stderr
	if err := c.Run(); err != nil {
		return "", fmt.Errorf("dfcoef: %s failed for %s: %w (stderr: %s)", cmd, inputPath, err, stderr.String())
	}
	return filepath.Join(dir, molecule+".out"), nil
}
