package loader

// LoaderBuilderOption is a functional option for configuring a Loader.
// Use the With* functions to create options.
type LoaderBuilderOption func(l *loader)

// WithMaxTextureSize sets the longest allowed texture side in pixels. Decoded
// images larger than this are downscaled with Catmull-Rom resampling. A value
// of 0 disables downscaling.
//
// Parameters:
//   - size: the longest allowed side in pixels
//
// Returns:
//   - LoaderBuilderOption: option function to apply
func WithMaxTextureSize(size int) LoaderBuilderOption {
	return func(l *loader) {
		l.maxTextureSize = size
	}
}

// WithDecodeWorkers sets the number of goroutines used for parallel texture
// decoding. Values below 1 are clamped to 1.
//
// Parameters:
//   - workers: the worker count
//
// Returns:
//   - LoaderBuilderOption: option function to apply
func WithDecodeWorkers(workers int) LoaderBuilderOption {
	return func(l *loader) {
		l.decodeWorkers = max(workers, 1)
	}
}
