package text

import "golang.org/x/text/unicode/norm"

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	parserName string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName, // Default parser (ximage)
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype;
// "gotext" uses github.com/go-text/typesetting.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// RenderOption configures a Renderer.
type RenderOption func(*renderConfig)

// renderConfig holds configuration for Renderer.
type renderConfig struct {
	alphaMode AlphaMode

	normalize bool
	form      norm.Form
}

// defaultRenderConfig returns the default render configuration.
func defaultRenderConfig() renderConfig {
	return renderConfig{
		alphaMode: AlphaOpaque,
	}
}

// WithAlphaMode selects how coverage becomes output alpha.
// The default is AlphaOpaque.
func WithAlphaMode(m AlphaMode) RenderOption {
	return func(c *renderConfig) {
		c.alphaMode = m
	}
}

// WithNormalization normalizes text to the given Unicode form before
// iterating its characters. With norm.NFC a base letter followed by a
// combining mark becomes a single precomposed character where one exists.
func WithNormalization(form norm.Form) RenderOption {
	return func(c *renderConfig) {
		c.normalize = true
		c.form = form
	}
}
