package march

// config is the unexported, immutable-once-built set of knobs every March
// call reads. There is no package-level default instance and no global
// mutable state — every call builds its own config from defaultConfig plus
// whatever Options the caller supplies, per SPEC_FULL.md §10.2.
type config struct {
	interpolation       Interpolation
	stepSize            int
	resolveAmbiguous    bool
	denseRemapThreshold int
}

func defaultConfig() config {
	return config{
		interpolation:       Linear,
		stepSize:            1,
		resolveAmbiguous:    true,
		denseRemapThreshold: 1 << 20,
	}
}

// Option configures a single Tables.March call.
type Option func(*config)

// WithInterpolation selects how the crossing offset along each flagged edge
// is computed. Default: Linear.
func WithInterpolation(mode Interpolation) Option {
	return func(c *config) { c.interpolation = mode }
}

// WithStepSize subsamples the volume, taking every n-th sample along every
// axis before marching, the moral equivalent of NumPy's volume[::n]. n must
// be >= 1; n == 1 (the default) marches the full-resolution volume.
func WithStepSize(n int) Option {
	return func(c *config) { c.stepSize = n }
}

// WithResolveAmbiguous toggles the bound Tables' AmbiguityResolver, when it
// has one. Default: true. Has no effect on Tables with a nil resolver
// (triangles, cubes).
func WithResolveAmbiguous(enabled bool) Option {
	return func(c *config) { c.resolveAmbiguous = enabled }
}

// WithDenseRemapThreshold caps the edge-id span (max edge id seen) at which
// IndexRemapper switches from a dense scatter array to a sparse map. Default
// 1<<20. Exposed mainly for tests that want to force one remap strategy or
// the other without needing a volume large enough to trigger it naturally.
func WithDenseRemapThreshold(n int) Option {
	return func(c *config) { c.denseRemapThreshold = n }
}
