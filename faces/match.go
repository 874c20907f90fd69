package faces

import (
	"math"

	"github.com/Kagami/go-face"
)

// Distance is the Euclidean distance between two descriptors. Lower means
// more similar.
func Distance(a, b face.Descriptor) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Match returns the name of the closest enrolled person within tolerance.
// A single best match at a fixed tolerance - same policy as marking by eye:
// whoever looks most alike wins, ties and near-misses are not re-verified.
func (g *Gallery) Match(descriptor face.Descriptor, tolerance float64) (string, bool) {
	best := -1
	bestDistance := tolerance
	for i := range g.People {
		if d := Distance(g.People[i].Descriptor, descriptor); d <= bestDistance {
			best = i
			bestDistance = d
		}
	}
	if best < 0 {
		return "", false
	}
	return g.People[best].Name, true
}
