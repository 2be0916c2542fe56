package dynamics

// Material decides how a body responds to contact. Solid bodies bounce with
// their restitution; passthrough bodies detect contact but never exchange
// impulses.
type Material struct {
	Restitution float64
	Passthrough bool
}

// PerfectlyElastic is a solid material that keeps all relative speed.
var PerfectlyElastic = Solid(1)

func Solid(restitution float64) Material {
	return Material{Restitution: restitution}
}

func PassthroughMaterial() Material {
	return Material{Passthrough: true}
}

// CombinedRestitution is the restitution applied when two solid materials
// meet: the less bouncy one wins.
func CombinedRestitution(a, b Material) float64 {
	return min(a.Restitution, b.Restitution)
}
