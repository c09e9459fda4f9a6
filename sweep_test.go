package rmnk

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// writeStub places a fake generator script in dir. The script receives
// the six positional arguments and touches the output path ($6).
func writeStub(t *testing.T, dir, body string) string {
	t.Helper()
	name := "stub-generator.sh"
	if err := os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"+body), 0755); err != nil {
		t.Fatal(err)
	}
	return name
}

func stubConfig(t *testing.T, body string) Config {
	t.Helper()
	dir := t.TempDir()
	return Config{
		ListRho: []float64{-0.7, 0.2},
		ListM:   []int{2, 3},
		ListN:   []int{4},
		ListK:   []int{2},
		NbInst:  2,
		GenDir:  dir,
		OutDir:  filepath.Join(dir, "instances"),
		Script:  writeStub(t, dir, body),
		Direct:  true,
	}
}

func TestSweepProducesAllInstances(t *testing.T) {
	cfg := stubConfig(t, ": > \"$6\"\n")

	rep, err := Sweep(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	// M=2 keeps both rhos, M=3 keeps only 0.2; two instances each
	if rep.Launched != 6 || rep.Succeeded != 6 || rep.Failed != 0 {
		t.Fatalf("report %d/%d/%d, want 6 launched, 6 succeeded, 0 failed", rep.Launched, rep.Succeeded, rep.Failed)
	}
	e := NewEnumerator(cfg)
	for tu, ok := e.Next(); ok; tu, ok = e.Next() {
		path := filepath.Join(cfg.OutDir, tu.FileName())
		if _, err := os.Stat(path); err != nil {
			t.Errorf("instance %s was not produced: %v", tu.FileName(), err)
		}
	}
}

func TestSweepParallelProducesAllInstances(t *testing.T) {
	cfg := stubConfig(t, ": > \"$6\"\n")
	cfg.Workers = 3

	rep, err := Sweep(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Launched != 6 || rep.Succeeded != 6 {
		t.Fatalf("report %d/%d, want 6 launched, 6 succeeded", rep.Launched, rep.Succeeded)
	}
	e := NewEnumerator(cfg)
	for tu, ok := e.Next(); ok; tu, ok = e.Next() {
		if _, err := os.Stat(filepath.Join(cfg.OutDir, tu.FileName())); err != nil {
			t.Errorf("instance %s was not produced: %v", tu.FileName(), err)
		}
	}
}

func TestSweepContinuesAfterFailure(t *testing.T) {
	// the generator rejects rho = 0.2 and produces everything else
	cfg := stubConfig(t, "case \"$1\" in 0.2) exit 7;; esac\n: > \"$6\"\n")

	rep, err := Sweep(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	// rho 0.2 appears for M=2 and M=3, two instances each
	if rep.Launched != 6 || rep.Succeeded != 2 || rep.Failed != 4 {
		t.Fatalf("report %d/%d/%d, want 6 launched, 2 succeeded, 4 failed", rep.Launched, rep.Succeeded, rep.Failed)
	}
	if len(rep.Failures) != 4 {
		t.Fatalf("got %d failure records, want 4", len(rep.Failures))
	}
	for _, f := range rep.Failures {
		if f.ExitCode != 7 {
			t.Errorf("failure %s has exit code %d, want 7", f.Name, f.ExitCode)
		}
		if _, err := os.Stat(filepath.Join(cfg.OutDir, f.Name)); !os.IsNotExist(err) {
			t.Errorf("failed instance %s left a file behind", f.Name)
		}
	}
}

func TestSweepMissingGenerator(t *testing.T) {
	cfg := stubConfig(t, "")
	cfg.Script = "no-such-generator.sh"

	rep, err := Sweep(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Succeeded != 0 || rep.Failed != rep.Launched {
		t.Fatalf("report %d/%d/%d, want every invocation to fail", rep.Launched, rep.Succeeded, rep.Failed)
	}
	for _, f := range rep.Failures {
		if f.Error == "" {
			t.Errorf("failure %s carries no error", f.Name)
		}
	}
}

func TestSweepOutputDirFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	marker := filepath.Join(dir, "invoked")
	cfg := Config{
		ListRho: []float64{0.0},
		ListM:   []int{2},
		ListN:   []int{4},
		ListK:   []int{2},
		NbInst:  1,
		GenDir:  dir,
		OutDir:  filepath.Join(blocker, "instances"),
		Script:  writeStub(t, dir, ": > \""+marker+"\"\n"),
		Direct:  true,
	}

	if _, err := Sweep(context.Background(), cfg); err == nil {
		t.Fatal("expected an error when the instance directory cannot be created")
	}
	if _, err := os.Stat(marker); !os.IsNotExist(err) {
		t.Error("generator was invoked although the sweep aborted")
	}
}
