package domain

// BundleLoader reads a resource file into a PropertyMap.
// Implementations return a *LoadError on failure.
type BundleLoader interface {
	Load(path string) (*PropertyMap, error)
}

// ConfigLoader reads project-level configuration from a directory.
type ConfigLoader interface {
	Load(dir string) (RunConfig, error)
}

// Reporter receives human-readable, line-oriented progress output.
type Reporter interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
	// Separator writes a horizontal rule between report sections.
	Separator()
	// Success writes an info-level line marking a passing run.
	Success(msg string)
}
