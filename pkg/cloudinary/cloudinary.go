package cloudinary

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"brand-sell/pkg/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Client stores download-center files as Cloudinary assets. Keys are
// "<resource_type>:<public_id>" because destroying a non-image asset needs its type.
type Client struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewClient(cfg *config.Config) (*Client, error) {
	cld, err := cloudinary.NewFromURL(cfg.CloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary: %w", err)
	}
	return &Client{cld: cld, folder: cfg.CloudinaryFolder}, nil
}

func (c *Client) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, string, error) {
	publicID := strings.TrimSuffix(key, path.Ext(key))
	result, err := c.cld.Upload.Upload(ctx, body, uploader.UploadParams{
		PublicID:     publicID,
		Folder:       c.folder,
		ResourceType: resourceType(contentType),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload file to cloudinary: %w", err)
	}
	if result.Error.Message != "" {
		return "", "", fmt.Errorf("cloudinary rejected upload: %s", result.Error.Message)
	}

	return result.SecureURL, result.ResourceType + ":" + result.PublicID, nil
}

func (c *Client) Delete(ctx context.Context, key string) error {
	kind, publicID, ok := strings.Cut(key, ":")
	if !ok {
		kind, publicID = "image", key
	}
	if _, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID, ResourceType: kind}); err != nil {
		return fmt.Errorf("failed to delete file from cloudinary: %w", err)
	}
	return nil
}

func resourceType(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "image"
	case strings.HasPrefix(contentType, "video/"), strings.HasPrefix(contentType, "audio/"):
		return "video"
	default:
		return "raw"
	}
}
