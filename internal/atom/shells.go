package atom

import (
	"strconv"
	"strings"
)

// shellCapacities holds the maximum electrons per shell, innermost first.
// The capacities sum to MaxAtomicNumber.
var shellCapacities = [...]int{2, 8, 18, 32, 32, 18, 8}

// ShellCount is the number of shells in the model.
const ShellCount = len(shellCapacities)

// Capacity returns the maximum electrons of shell i, or 0 if i is out of range.
func Capacity(i int) int {
	if i < 0 || i >= ShellCount {
		return 0
	}
	return shellCapacities[i]
}

// Capacities returns a copy of the shell capacity table.
func Capacities() []int {
	out := make([]int, ShellCount)
	copy(out, shellCapacities[:])
	return out
}

// Distribute splits n electrons over the shells, filling each shell up to
// its capacity before moving outward. Shells left empty are omitted, so
// Distribute(0) is empty. n is clamped to [0, MaxAtomicNumber].
func Distribute(n int) []int {
	remaining := max(0, min(n, MaxAtomicNumber))
	shells := make([]int, 0, ShellCount)
	for i := 0; i < ShellCount && remaining > 0; i++ {
		k := min(remaining, shellCapacities[i])
		shells = append(shells, k)
		remaining -= k
	}
	return shells
}

// Configuration formats the shell occupancy of n electrons as "2-8-1".
// Returns "-" when there are no electrons.
func Configuration(n int) string {
	shells := Distribute(n)
	if len(shells) == 0 {
		return "-"
	}
	parts := make([]string, len(shells))
	for i, k := range shells {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, "-")
}
