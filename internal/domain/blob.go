package domain

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Blob is an opaque handle to externally stored binary content (images,
// audio files). Query responses carry the handle, never the bytes.
type Blob struct {
	URL string `json:"url"`
}

// BlobFromURL wraps an already-stored blob reference
func BlobFromURL(url string) Blob {
	return Blob{URL: url}
}

// DirectURL returns the retrieval URL for the blob
func (b Blob) DirectURL() string {
	return b.URL
}

// IsZero reports whether the handle references nothing
func (b Blob) IsZero() bool {
	return b.URL == ""
}

// Fetch downloads the blob content
func (b Blob) Fetch(ctx context.Context, client *http.Client) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.URL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("blob fetch: unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
