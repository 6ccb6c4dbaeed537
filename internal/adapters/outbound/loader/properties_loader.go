package loader

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/magiconair/properties"

	"github.com/abdidvp/bundleverify/internal/domain"
)

// PropertiesLoader implements domain.BundleLoader for Java-style
// .properties files: '#'/'!' comments, '=', ':' or whitespace separators,
// trailing-backslash continuation and \uXXXX escapes.
type PropertiesLoader struct {
	encoding properties.Encoding
	reporter domain.Reporter
	open     func(path string) (io.ReadCloser, error)
}

var _ domain.BundleLoader = (*PropertiesLoader)(nil)

// New creates a loader decoding files with enc.
func New(enc domain.Encoding) *PropertiesLoader {
	l := &PropertiesLoader{encoding: properties.UTF8, open: openFile}
	if enc == domain.EncodingISO8859_1 {
		l.encoding = properties.ISO_8859_1
	}
	return l
}

// WithReporter routes errors raised while closing files to r.
func (l *PropertiesLoader) WithReporter(r domain.Reporter) *PropertiesLoader {
	l.reporter = r
	return l
}

// Load reads path into an ordered PropertyMap. Any failure to open, read or
// parse the file is a *domain.LoadError. ${...} references are kept verbatim.
//
// The file is closed before Load returns. A close error is written to the
// reporter at error level and never returned.
func (l *PropertiesLoader) Load(path string) (*domain.PropertyMap, error) {
	f, err := l.open(path)
	if err != nil {
		return nil, &domain.LoadError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && l.reporter != nil {
			l.reporter.Error(fmt.Sprintf("closing %s: %v", path, cerr))
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &domain.LoadError{Path: path, Err: err}
	}

	pl := &properties.Loader{Encoding: l.encoding, DisableExpansion: true}
	p, err := pl.LoadBytes(dropDanglingBackslash(data))
	if err != nil {
		return nil, &domain.LoadError{Path: path, Err: fmt.Errorf("parsing: %w", err)}
	}

	m := domain.NewPropertyMap()
	for _, k := range p.Keys() {
		v, _ := p.Get(k)
		m.Set(k, v)
	}
	return m, nil
}

func openFile(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// dropDanglingBackslash removes a line continuation that has no following
// line, so a last line of a=x\ reads as "a=x".
func dropDanglingBackslash(data []byte) []byte {
	trimmed := bytes.TrimRight(data, "\r\n")
	n := 0
	for i := len(trimmed) - 1; i >= 0 && trimmed[i] == '\\'; i-- {
		n++
	}
	if n%2 == 0 {
		return data
	}
	return trimmed[:len(trimmed)-1]
}
