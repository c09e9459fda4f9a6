package rmnk

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"time"
)

// Sweep enumerates all surviving tuples for the configuration and runs
// the generator once per tuple. Producing many large instances can take
// hours. The output directory is created up front and a failure there
// aborts the whole sweep; a failing generator invocation does not — it
// is logged, recorded in the report and the sweep moves on.
func Sweep(ctx context.Context, cfg Config) (*Report, error) {
	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("creating instance directory %s: %w", cfg.OutDir, err)
	}

	rep := &Report{Started: time.Now(), System: CollectSysInfo()}
	log.Printf("Producing instances on %s (%s, %s RAM)\n", rep.System.Platform, rep.System.CPU, rep.System.RAM)

	if cfg.Workers > 1 {
		sweepParallel(ctx, cfg, rep)
	} else {
		e := NewEnumerator(cfg)
		for t, ok := e.Next(); ok; t, ok = e.Next() {
			if ctx.Err() != nil {
				break
			}
			generate(ctx, cfg, t, rep, nil)
		}
	}

	rep.Finished = time.Now()
	log.Printf("Produced %d of %d instances (%d failed) in %s\n", rep.Succeeded, rep.Launched, rep.Failed, rep.Finished.Sub(rep.Started))
	return rep, nil
}

// sweepParallel runs the same enumeration with a bounded pool of
// workers. Tuples are independent of each other, so only the dispatch
// order changes, never the set of invocations or the file names.
func sweepParallel(ctx context.Context, cfg Config, rep *Report) {
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	jobs := make(chan Tuple)
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range jobs {
				generate(ctx, cfg, t, rep, &mu)
			}
		}()
	}
	e := NewEnumerator(cfg)
	for t, ok := e.Next(); ok; t, ok = e.Next() {
		if ctx.Err() != nil {
			break
		}
		jobs <- t
	}
	close(jobs)
	wg.Wait()
}

func generate(ctx context.Context, cfg Config, t Tuple, rep *Report, mu *sync.Mutex) {
	prog, args := cfg.Command(t)
	res := Run(ctx, prog, args)

	name := t.FileName()
	fail := Failure{Name: name, ExitCode: res.ExitCode}
	if res.Err != nil {
		fail.Error = res.Err.Error()
		log.Printf("At %s: %s\n", name, res.Err.Error())
	} else if res.ExitCode != 0 {
		log.Printf("At %s: generator exited with %d\n", name, res.ExitCode)
	}

	if mu != nil {
		mu.Lock()
		defer mu.Unlock()
	}
	rep.Launched++
	if res.Err == nil && res.ExitCode == 0 {
		rep.Succeeded++
		return
	}
	rep.Failed++
	rep.Failures = append(rep.Failures, fail)
}
