package pptx

import "fmt"

// idGen hands out element ids that are unique across a whole presentation
// even when source documents reuse ids between slides. It is used only from
// the sequential shape-tree walk, so it carries no lock.
type idGen struct {
	used map[string]bool
}

func newIDGen() *idGen {
	return &idGen{used: make(map[string]bool)}
}

// Claim returns the desired id if it is still free, otherwise the first
// free "_n"-suffixed variant. The returned id is marked used either way.
func (g *idGen) Claim(desired string) string {
	if desired == "" {
		desired = "el"
	}
	if !g.used[desired] {
		g.used[desired] = true
		return desired
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d", desired, i)
		if !g.used[candidate] {
			g.used[candidate] = true
			return candidate
		}
	}
}
