package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/avasile/resx-cli/internal/domain"
	"github.com/avasile/resx-cli/internal/ports"
)

var _ ports.ItemAPI = (*Client)(nil)

func (c *Client) All(ctx context.Context) ([]domain.Item, error) {
	var wires []itemWire
	if err := c.doJSON(ctx, http.MethodGet, "/api/items/all", nil, nil, &wires); err != nil {
		return nil, err
	}
	return toItems(wires), nil
}

func (c *Client) Mine(ctx context.Context) ([]domain.Item, error) {
	var wires []itemWire
	if err := c.doJSON(ctx, http.MethodGet, "/api/items/my", nil, nil, &wires); err != nil {
		return nil, err
	}
	return toItems(wires), nil
}

func (c *Client) Filter(ctx context.Context, name, location string) ([]domain.Item, error) {
	query := url.Values{}
	if name != "" {
		query.Set("name", name)
	}
	if location != "" {
		query.Set("location", location)
	}

	var wires []itemWire
	if err := c.doJSON(ctx, http.MethodGet, "/api/items/filter", query, nil, &wires); err != nil {
		return nil, err
	}
	return toItems(wires), nil
}

// Add uploads a listing as multipart form data, images attached under the
// "images" field the way the backend expects them.
func (c *Client) Add(ctx context.Context, draft domain.ItemDraft) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"title":       draft.Title,
		"description": draft.Description,
		"location":    draft.Location,
	}
	for field, value := range fields {
		if err := writer.WriteField(field, value); err != nil {
			return fmt.Errorf("write form field %q: %w", field, err)
		}
	}

	for _, path := range draft.ImagePaths {
		if err := attachImage(writer, path); err != nil {
			return err
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/api/items/add", nil), &buf)
	if err != nil {
		return fmt.Errorf("create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(req, nil)
}

func attachImage(writer *multipart.Writer, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open image %q: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	part, err := writer.CreateFormFile("images", filepath.Base(path))
	if err != nil {
		return fmt.Errorf("create image part: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copy image %q: %w", path, err)
	}

	return nil
}

func (c *Client) Delete(ctx context.Context, id domain.ItemID) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/items/"+string(id), nil, nil, nil)
}
