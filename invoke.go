package rmnk

import (
	"context"
	"os/exec"
	"path/filepath"
	"strconv"
)

// DefaultScript is the generator file looked up in GenDir when the
// configuration does not name one.
const DefaultScript = "rmnkGenerator.R"

func (c Config) generator() string {
	script := c.Script
	if script == "" {
		script = DefaultScript
	}
	return filepath.Join(c.GenDir, script)
}

// Command builds the generator command line for a tuple. The generator
// always receives six positional arguments, in order: rho, M, N, K, the
// instance index and the output file path. By default the generator
// script is run through the R interpreter; with Direct set it is
// executed as a program of its own.
func (c Config) Command(t Tuple) (prog string, args []string) {
	positional := []string{
		FormatRho(t.Rho),
		strconv.Itoa(t.M),
		strconv.Itoa(t.N),
		strconv.Itoa(t.K),
		strconv.Itoa(t.Inst),
		filepath.Join(c.OutDir, t.FileName()),
	}
	if c.Direct {
		return c.generator(), positional
	}
	args = append([]string{"--slave", "--no-restore", "--file=" + c.generator(), "--args"}, positional...)
	return "R", args
}

// Run executes one generator invocation synchronously and reports how
// it went. A non-zero exit code is not an error here: the Result
// carries the code and the combined output, and the caller decides
// whether to log, retry or ignore. Err is only set when the process
// could not be run at all.
func Run(ctx context.Context, prog string, args []string) Result {
	cmd := exec.CommandContext(ctx, prog, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return Result{ExitCode: exitErr.ExitCode(), Output: out}
		}
		return Result{ExitCode: -1, Output: out, Err: err}
	}
	return Result{ExitCode: 0, Output: out}
}
