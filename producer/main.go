package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"git.solver4all.com/azaryc2s/rmnk"
)

var rhos rmnk.ArrayFloatFlags
var ms rmnk.ArrayIntFlags
var ns rmnk.ArrayIntFlags
var ks rmnk.ArrayIntFlags

func main() {
	flag.Var(&rhos, "rho", "List of objective correlation coefficients")
	flag.Var(&ms, "m", "List of objective counts")
	flag.Var(&ns, "n", "List of variable counts")
	flag.Var(&ks, "k", "List of epistasis degrees")
	count := flag.Int("count", 30, "Number of instances per tuple of parameters")
	genDir := flag.String("gen", ".", "Directory where the generator can be found")
	outDir := flag.String("out", "..", "Directory to put the instances")
	script := flag.String("script", rmnk.DefaultScript, "Generator file name inside the generator directory")
	direct := flag.Bool("direct", false, "Run the generator directly instead of through the R interpreter")
	workers := flag.Int("workers", 1, "Number of concurrent generator processes")

	flag.Parse()

	// the default parameter lists; of course you can override them
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
		GenDir:  *genDir,
		OutDir:  *outDir,
		Script:  *script,
		Direct:  *direct,
		Workers: *workers,
	}

	rep, err := rmnk.Sweep(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}

	jsonRep, err := json.MarshalIndent(rep, "", "\t")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(jsonRep))

	if rep.Failed > 0 {
		os.Exit(1)
	}
}
