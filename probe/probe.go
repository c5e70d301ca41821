// Package probe checks for and fetches content files by relative path
package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by Fetch when the file does not exist.
var ErrNotFound = errors.New("probe: file not found")

// Prober answers whether a content file exists and returns its bytes.
// Paths are slash separated and relative, e.g. "songs/1.mp3".
type Prober interface {
	Exists(ctx context.Context, name string) bool
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// HTTPProber looks files up below BaseURL.
type HTTPProber struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPProber(baseURL string) *HTTPProber {
	return &HTTPProber{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Client:  http.DefaultClient,
	}
}

func (p *HTTPProber) url(name string) string {
	return p.BaseURL + "/" + strings.TrimPrefix(name, "/")
}

// Exists sends a HEAD request and falls back to GET when HEAD fails at
// the transport level. Any failure counts as missing.
func (p *HTTPProber) Exists(ctx context.Context, name string) bool {
	ok, err := p.check(ctx, http.MethodHead, name)
	if err != nil {
		ok, err = p.check(ctx, http.MethodGet, name)
	}
	return err == nil && ok
}

func (p *HTTPProber) check(ctx context.Context, method, name string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, method, p.url(name), nil)
	if err != nil {
		return false, err
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode >= 200 && resp.StatusCode < 300, nil
}

func (p *HTTPProber) Fetch(ctx context.Context, name string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url(name), nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to fetch %s: HTTP %d", name, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// DirProber looks files up below a local directory.
type DirProber struct {
	Root string
}

func NewDirProber(root string) *DirProber {
	return &DirProber{Root: root}
}

func (p *DirProber) resolve(name string) (string, error) {
	clean := path.Clean("/" + name)[1:]
	if clean == "" || !fs.ValidPath(clean) {
		return "", fmt.Errorf("invalid path %q", name)
	}
	return filepath.Join(p.Root, filepath.FromSlash(clean)), nil
}

func (p *DirProber) Exists(ctx context.Context, name string) bool {
	full, err := p.resolve(name)
	if err != nil {
		return false
	}
	fi, err := os.Stat(full)
	return err == nil && fi.Mode().IsRegular()
}

func (p *DirProber) Fetch(ctx context.Context, name string) ([]byte, error) {
	full, err := p.resolve(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return data, err
}
