package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"git.solver4all.com/azaryc2s/rmnk"
)

var rhos rmnk.ArrayFloatFlags
var ms rmnk.ArrayIntFlags
var ns rmnk.ArrayIntFlags
var ks rmnk.ArrayIntFlags

// checker re-enumerates the instance files a sweep configuration is
// expected to produce and reports which of them are present in the
// instance directory. It only looks at file names, never at contents.
func main() {
	flag.Var(&rhos, "rho", "List of objective correlation coefficients")
	flag.Var(&ms, "m", "List of objective counts")
	flag.Var(&ns, "n", "List of variable counts")
	flag.Var(&ks, "k", "List of epistasis degrees")
	count := flag.Int("count", 30, "Number of instances per tuple of parameters")
	outDir := flag.String("out", "..", "Directory containing the instances")

	flag.Parse()

	if len(rhos) == 0 {
		rhos = rmnk.ArrayFloatFlags{-0.9, -0.7, -0.4, -0.2, 0.0, 0.2, 0.4, 0.7, 0.9}
	}
	if len(ms) == 0 {
		ms = rmnk.ArrayIntFlags{2, 3, 5}
	}
	if len(ns) == 0 {
		ns = rmnk.ArrayIntFlags{18, 32, 64, 128}
	}
	if len(ks) == 0 {
		ks = rmnk.ArrayIntFlags{2, 4, 6, 8, 10}
	}

	cfg := rmnk.Config{
		ListRho: rhos,
		ListM:   ms,
		ListN:   ns,
		ListK:   ks,
		NbInst:  *count,
	}

	expected := 0
	missing := 0
	fmt.Printf("Name,Present\n")
	e := rmnk.NewEnumerator(cfg)
	for t, ok := e.Next(); ok; t, ok = e.Next() {
		expected++
		name := t.FileName()
		_, err := os.Stat(filepath.Join(*outDir, name))
		present := err == nil
		if !present {
			missing++
		}
		fmt.Printf("%s,%t\n", name, present)
	}
	log.Printf("%d of %d expected instances missing in %s\n", missing, expected, *outDir)
	if missing > 0 {
		os.Exit(1)
	}
}
