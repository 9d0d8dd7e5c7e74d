package content

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"swmterm/internal/errors"
)

// maxIndexSize bounds how much of a remote index is read.
const maxIndexSize int64 = 32 << 20

// Source supplies the raw bytes of a content index.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	String() string
}

// FileSource reads the index from disk.
type FileSource struct {
	Path string
}

func (s FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, errors.NewIndexError("failed to read index", s.Path, err)
	}
	return data, nil
}

func (s FileSource) String() string { return s.Path }

// HTTPSource fetches the index from a URL. Bodies larger than MaxSize
// (default 32MiB) are rejected.
type HTTPSource struct {
	URL     string
	Client  *http.Client
	MaxSize int64
}

func (s HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, errors.NewIndexError("invalid index url", s.URL, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.NewIndexError("failed to fetch index", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewIndexError("failed to fetch index", s.URL, fmt.Errorf("unexpected status %s", resp.Status))
	}

	limit := s.MaxSize
	if limit <= 0 {
		limit = maxIndexSize
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, errors.NewIndexError("failed to read index body", s.URL, err)
	}
	if int64(len(data)) > limit {
		return nil, errors.NewIndexError(fmt.Sprintf("index too large (limit %d bytes)", limit), s.URL, nil)
	}
	return data, nil
}

func (s HTTPSource) String() string { return s.URL }

// SourceFor picks an HTTP source for http(s) URLs and a file source
// otherwise.
func SourceFor(location string) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return HTTPSource{URL: location}
	}
	return FileSource{Path: location}
}
