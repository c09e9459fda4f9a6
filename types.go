package rmnk

import "time"

// Config holds everything a sweep needs: the parameter lists, the
// replicate count per combination and the generator/output locations.
type Config struct {
	// ListRho, ListM, ListN and ListK are swept in the given order.
	ListRho []float64
	ListM   []int
	ListN   []int
	ListK   []int

	// NbInst is the number of instances generated per (rho, M, N, K).
	NbInst int

	// GenDir is the directory where the generator can be found.
	GenDir string

	// OutDir is where the instance files land. Created if missing.
	OutDir string

	// Script is the generator file name inside GenDir.
	Script string

	// Direct invokes the generator itself instead of running it
	// through the R interpreter.
	Direct bool

	// Workers bounds the number of concurrent generator processes.
	// Anything below 2 means fully sequential execution.
	Workers int
}

// Tuple identifies a single instance to generate.
type Tuple struct {
	Rho  float64
	M    int
	N    int
	K    int
	Inst int
}

// Result is the outcome of one generator invocation. Err is set when
// the process could not be run at all (e.g. missing binary).
type Result struct {
	ExitCode int
	Output   []byte
	Err      error
}

// Failure records one failed invocation in a Report.
type Failure struct {
	Name     string `json:"name"`
	ExitCode int    `json:"exit_code"`
	Error    string `json:"error,omitempty"`
}

// Report summarizes a sweep run.
type Report struct {
	Started  time.Time `json:"started"`
	Finished time.Time `json:"finished"`

	System SysInfo `json:"system"`

	Launched  int       `json:"launched"`
	Succeeded int       `json:"succeeded"`
	Failed    int       `json:"failed"`
	Failures  []Failure `json:"failures,omitempty"`
}

// SysInfo saves the basic system information
type SysInfo struct {
	Platform string
	CPU      string
	RAM      string
}
