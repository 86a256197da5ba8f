package identity

// SetFallback replaces the random fallback source for tests.
func (a *Assigner) SetFallback(f func() int64) {
	a.fallback = f
}

var RandomFallback = randomFallback
