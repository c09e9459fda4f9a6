package rmnk

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatRho renders a correlation in its natural decimal form: the
// shortest representation that round-trips, with a forced decimal part
// for integral values so that 0.0 stays "0.0" and not "0".
func FormatRho(rho float64) string {
	s := strconv.FormatFloat(rho, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FileName derives the instance file name for a tuple. Distinct tuples
// map to distinct names since every field is rendered separately.
func (t Tuple) FileName() string {
	return fmt.Sprintf("rmnk_%s_%d_%d_%d_%d.dat", FormatRho(t.Rho), t.M, t.N, t.K, t.Inst)
}
