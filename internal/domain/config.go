package domain

import (
	"fmt"
	"strings"
)

// Encoding names the character set resource files are decoded with.
type Encoding string

const (
	EncodingUTF8      Encoding = "utf-8"
	EncodingISO8859_1 Encoding = "iso-8859-1"
)

// ValidEncodings enumerates the supported resource file encodings.
var ValidEncodings = []Encoding{EncodingUTF8, EncodingISO8859_1}

// RunConfig holds the inputs of one verification run, loaded from
// .bundleverify.yaml and overridden by command-line flags.
type RunConfig struct {
	ReferenceFile   string   `yaml:"main_file"`
	ComparisonFiles []string `yaml:"locales"`
	Encoding        Encoding `yaml:"encoding,omitempty"`
}

// DefaultConfig returns an empty configuration decoding files as UTF-8.
func DefaultConfig() RunConfig {
	return RunConfig{Encoding: EncodingUTF8}
}

// NormalizedEncoding returns the lower-cased encoding, defaulting to UTF-8.
func (c RunConfig) NormalizedEncoding() Encoding {
	e := Encoding(strings.ToLower(strings.TrimSpace(string(c.Encoding))))
	switch e {
	case "":
		return EncodingUTF8
	case "utf8":
		return EncodingUTF8
	case "latin1", "iso8859-1", "iso_8859_1":
		return EncodingISO8859_1
	}
	return e
}

// Validate checks that a reference file and at least one comparison file
// are configured and that the encoding is known. It returns a *ConfigError.
func (c RunConfig) Validate() error {
	if strings.TrimSpace(c.ReferenceFile) == "" {
		return &ConfigError{Reason: "main locale file not set, please define your main locale file"}
	}
	if len(c.ComparisonFiles) == 0 {
		return &ConfigError{Reason: "there are no locales defined"}
	}
	for i, f := range c.ComparisonFiles {
		if strings.TrimSpace(f) == "" {
			return &ConfigError{Reason: fmt.Sprintf("locale #%d has an empty path", i+1)}
		}
	}

	enc := c.NormalizedEncoding()
	for _, v := range ValidEncodings {
		if enc == v {
			return nil
		}
	}
	return &ConfigError{Reason: fmt.Sprintf("unknown encoding %q (valid: utf-8, iso-8859-1)", c.Encoding)}
}

// WithOverrides overlays the non-zero fields of o on top of c.
// A non-empty comparison list replaces the configured one entirely.
func (c RunConfig) WithOverrides(o RunConfig) RunConfig {
	result := c
	if o.ReferenceFile != "" {
		result.ReferenceFile = o.ReferenceFile
	}
	if len(o.ComparisonFiles) > 0 {
		result.ComparisonFiles = append([]string(nil), o.ComparisonFiles...)
	}
	if o.Encoding != "" {
		result.Encoding = o.Encoding
	}
	return result
}
