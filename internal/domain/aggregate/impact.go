package aggregate

import (
	"fmt"
	"math"
)

// Impact description constants: the melted arctic sea ice equivalence sizes
// the footprint in 18 m^2 billboards at 3 m^2 per ton.
const (
	squareMetersPerTon    = 3.0
	billboardSquareMeters = 18.0
)

// zeroImpact is shown before any survey has been completed.
const zeroImpact = "Complete surveys to calculate your carbon impact"

// Billboards returns the discrete billboard count for a total. Monotonic in
// totalTons; any positive total yields at least one billboard.
func Billboards(totalTons float64) int {
	if totalTons <= 0 {
		return 0
	}
	n := int(math.Ceil(totalTons * squareMetersPerTon / billboardSquareMeters))
	if n < 1 {
		n = 1
	}
	return n
}

// ImpactDescription derives the human-readable impact line from a total.
// It is a presentation derivative of the total, not a separate source of
// truth.
func ImpactDescription(totalTons float64) string {
	if totalTons <= 0 {
		return zeroImpact
	}

	billboards := Billboards(totalTons)
	unit := "billboards"
	if billboards == 1 {
		unit = "billboard"
	}
	return fmt.Sprintf("%.1f tons of CO2e would melt an area of arctic sea ice the size of %d %s",
		totalTons, billboards, unit)
}
