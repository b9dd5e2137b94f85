package openapi

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// Source identifies where an OpenAPI document originates so callers can load
// from files, fs.FS entries, or URLs without leaking transport details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }
func (s fileSource) Kind() SourceKind { return SourceKindFile }

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }
func (s fsSource) Kind() SourceKind { return SourceKindFS }

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

type urlSource struct {
	raw string
}

func (s urlSource) Location() string { return s.raw }
func (s urlSource) Kind() SourceKind { return SourceKindURL }

// SourceFromURL parses the supplied URL string and returns a Source. It panics
// if the URL is invalid to surface configuration mistakes early.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("openapi: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("openapi: invalid URL %q: %v", raw, err))
	}
	return urlSource{raw: raw}
}

// SourceOptions configures how LoadSource resolves a Source.
type SourceOptions struct {
	// FileSystem backs SourceKindFS lookups. Required for fs sources.
	FileSystem fs.FS

	// HTTPClient fetches URL sources. Nil uses http.DefaultClient.
	HTTPClient *http.Client

	// RequestTimeout caps remote fetch durations when set.
	RequestTimeout time.Duration
}

// SourceOption mutates SourceOptions prior to loading.
type SourceOption func(*SourceOptions)

// WithFileSystem injects the fs.FS backing SourceFromFS lookups.
func WithFileSystem(files fs.FS) SourceOption {
	return func(opts *SourceOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote documents.
func WithHTTPClient(client *http.Client) SourceOption {
	return func(opts *SourceOptions) {
		opts.HTTPClient = client
	}
}

// WithRequestTimeout caps remote fetches.
func WithRequestTimeout(timeout time.Duration) SourceOption {
	return func(opts *SourceOptions) {
		opts.RequestTimeout = timeout
	}
}

// LoadSource resolves the source to raw bytes and parses the document.
func LoadSource(ctx context.Context, src Source, options ...SourceOption) (*Document, error) {
	cfg := SourceOptions{}
	for _, opt := range options {
		opt(&cfg)
	}

	raw, err := fetchSource(ctx, src, cfg)
	if err != nil {
		return nil, err
	}
	return Load(ctx, raw)
}

func fetchSource(ctx context.Context, src Source, cfg SourceOptions) ([]byte, error) {
	switch src.Kind() {
	case SourceKindFile:
		raw, err := os.ReadFile(src.Location())
		if err != nil {
			return nil, fmt.Errorf("openapi: read %s: %w", src.Location(), err)
		}
		return raw, nil
	case SourceKindFS:
		if cfg.FileSystem == nil {
			return nil, fmt.Errorf("openapi: fs source %s requires WithFileSystem", src.Location())
		}
		raw, err := fs.ReadFile(cfg.FileSystem, src.Location())
		if err != nil {
			return nil, fmt.Errorf("openapi: read %s: %w", src.Location(), err)
		}
		return raw, nil
	case SourceKindURL:
		return fetchURL(ctx, src.Location(), cfg)
	default:
		return nil, fmt.Errorf("openapi: unsupported source kind %q", src.Kind())
	}
}

func fetchURL(ctx context.Context, location string, cfg SourceOptions) ([]byte, error) {
	if cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.RequestTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("openapi: build request for %s: %w", location, err)
	}

	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openapi: fetch %s: %w", location, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openapi: fetch %s: unexpected status %s", location, resp.Status)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openapi: read response from %s: %w", location, err)
	}
	return raw, nil
}
