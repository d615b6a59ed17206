package text

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	dpi float64
}

// defaultFaceConfig returns the default face configuration.
// 72 DPI makes one point equal to one pixel, so sizes are pixel sizes.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		dpi: 72,
	}
}

// WithDPI sets the resolution used to convert the face size to pixels.
func WithDPI(dpi float64) FaceOption {
	return func(c *faceConfig) {
		if dpi > 0 {
			c.dpi = dpi
		}
	}
}
