package loader

import "context"

// SourceKind discriminates the module source union.
type SourceKind int

const (
	// SourceNone is the zero Source; loading it fails without any I/O.
	SourceNone SourceKind = iota
	// SourceBytes loads from an in-memory binary.
	SourceBytes
	// SourcePath loads from a local file.
	SourcePath
	// SourceURL fetches the binary over HTTP.
	SourceURL
)

func (k SourceKind) String() string {
	switch k {
	case SourceBytes:
		return "bytes"
	case SourcePath:
		return "path"
	case SourceURL:
		return "url"
	default:
		return "none"
	}
}

// FetchFunc retrieves a module binary for a URL source. Substituted in tests
// and by callers with custom transport requirements.
type FetchFunc func(ctx context.Context, url string) ([]byte, error)

// Source identifies one module binary to load: exactly one of bytes, path, or
// URL, plus optional import overrides. Construct with FromBytes, FromPath, or
// FromURL; a Source is consumed by a single Load call and never persisted.
type Source struct {
	Kind    SourceKind
	Bytes   []byte
	Path    string
	URL     string
	Fetch   FetchFunc
	Imports ImportObject
}

// SourceOption customizes a Source.
type SourceOption func(*Source)

// WithImports merges the given imports over the default import object.
// Merging is per function name within each namespace, so overriding one
// import keeps its siblings.
func WithImports(imports ImportObject) SourceOption {
	return func(s *Source) {
		s.Imports = imports
	}
}

// WithFetch overrides the fetch function used for URL sources.
func WithFetch(fetch FetchFunc) SourceOption {
	return func(s *Source) {
		s.Fetch = fetch
	}
}

// FromBytes builds a Source backed by an in-memory module binary.
func FromBytes(data []byte, opts ...SourceOption) Source {
	s := Source{Kind: SourceBytes, Bytes: data}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// FromPath builds a Source backed by a local file.
func FromPath(path string, opts ...SourceOption) Source {
	s := Source{Kind: SourcePath, Path: path}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// FromURL builds a Source fetched over HTTP.
func FromURL(url string, opts ...SourceOption) Source {
	s := Source{Kind: SourceURL, URL: url}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
