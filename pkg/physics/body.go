package physics

// Star is the primary particle species. Position and velocity are in
// simulation-space units; Brightness and Opacity are visual attributes
// consumed by the presenter, not physical quantities.
//
// Brightness stays inside [BrightnessMin, BrightnessMax] after every
// update. Opacity is assigned once at creation and never written again.
type Star struct {
	Pos        Vec2
	Vel        Vec2
	Mass       float64
	Brightness float64
	Opacity    float64
}

// DarkMatter shares the kinematic shape of Star without visual state.
// It is an extension point: no force law couples it to Star yet, and the
// integrator never touches it.
type DarkMatter struct {
	Pos  Vec2
	Vel  Vec2
	Mass float64
}
