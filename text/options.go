package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	parserName string
}

func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName,
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype.
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

type faceConfig struct {
	hinting Hinting
	kerning bool
}

func defaultFaceConfig() faceConfig {
	return faceConfig{
		hinting: HintingNone,
		kerning: true,
	}
}

// WithHinting sets the hinting mode for the face.
func WithHinting(h Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}

// WithKerning enables or disables pair kerning in Face.Advance.
// Kerning is enabled by default.
func WithKerning(enabled bool) FaceOption {
	return func(c *faceConfig) {
		c.kerning = enabled
	}
}
