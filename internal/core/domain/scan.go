package domain

import "math/rand"

// demoScanPatterns are the raw samples a simulated scanner can produce.
// None of them match a seeded credential, so a simulated scan always fails
// authentication the way the original hardware-free demo does.
var demoScanPatterns = []string{
	"iris_pattern_123",
	"iris_pattern_456",
	"iris_pattern_789",
}

// SimulateIrisScan returns a random raw iris sample. There is no sensor in
// the demo; the sample is just a string picked client-side.
func SimulateIrisScan() string {
	return demoScanPatterns[rand.Intn(len(demoScanPatterns))]
}
