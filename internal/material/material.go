// Package material maps common structural material names to elastic
// moduli, for model files that name a material instead of giving E
// directly.
package material

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Elastic moduli in MPa.
const (
	ESteel    = 200000.0
	EAluminum = 69000.0
	ETimber   = 11000.0 // typical softwood, parallel to grain
)

var table = map[string]float64{
	"steel":    ESteel,
	"aluminum": EAluminum,
	"timber":   ETimber,
	// Normal-weight concrete, Ec = 4700·√f'c.
	"concrete-c21": ConcreteModulus(21),
	"concrete-c28": ConcreteModulus(28),
	"concrete-c35": ConcreteModulus(35),
}

// ConcreteModulus returns Ec = 4700·√f'c in MPa for normal-weight
// concrete of compressive strength fc (MPa).
func ConcreteModulus(fc float64) float64 {
	return 4700 * math.Sqrt(fc)
}

// Modulus resolves a material name (case-insensitive) to its elastic
// modulus in MPa.
func Modulus(name string) (float64, error) {
	e, ok := table[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown material %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return e, nil
}

// Names lists the known material names, sorted.
func Names() []string {
	names := make([]string, 0, len(table))
	for n := range table {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
