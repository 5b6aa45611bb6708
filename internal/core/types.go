package core

// Size describes a canvas in pixels.
type Size struct {
	W int
	H int
}
