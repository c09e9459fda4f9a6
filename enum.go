package rmnk

// MinRho is the theoretical minimum correlation that is feasible for m
// objectives. Correlations at or below this bound are degenerate and
// must not be submitted to the generator. For m = 1 the bound is -Inf,
// so every correlation passes.
func MinRho(m int) float64 {
	return -1.0 / float64(m-1)
}

// Feasible reports whether rho can be realized for m objectives. The
// comparison is a strict > against MinRho with no tolerance: a rho
// exactly equal to the bound is rejected.
func Feasible(rho float64, m int) bool {
	return rho > MinRho(m)
}

// Enumerator walks all instance tuples for a configuration, lazily and
// in a fixed order: M (outer), then N, K, rho, and the instance index
// (inner). Combinations with K >= N are skipped entirely, and so is
// every (rho, M) pair where rho is not feasible.
type Enumerator struct {
	cfg Config

	im, in, ik, ir, inst int
}

func NewEnumerator(cfg Config) *Enumerator {
	return &Enumerator{cfg: cfg}
}

// Next returns the next surviving tuple, or false when the enumeration
// is exhausted.
func (e *Enumerator) Next() (Tuple, bool) {
	c := &e.cfg
	for e.im < len(c.ListM) {
		m := c.ListM[e.im]
		for e.in < len(c.ListN) {
			n := c.ListN[e.in]
			for e.ik < len(c.ListK) {
				k := c.ListK[e.ik]
				if k >= n {
					e.ik++
					continue
				}
				for e.ir < len(c.ListRho) {
					rho := c.ListRho[e.ir]
					if !Feasible(rho, m) {
						e.ir++
						continue
					}
					if e.inst < c.NbInst {
						t := Tuple{Rho: rho, M: m, N: n, K: k, Inst: e.inst}
						e.inst++
						return t, true
					}
					e.inst = 0
					e.ir++
				}
				e.ir = 0
				e.ik++
			}
			e.ik = 0
			e.in++
		}
		e.in = 0
		e.im++
	}
	return Tuple{}, false
}
