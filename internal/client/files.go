package client

import (
	"context"
	"io"
	"net/http"

	"github.com/ari/talentbridge/internal/domain"
	"github.com/google/uuid"
)

// UploadFile uploads a file with its type discriminator
func (c *Client) UploadFile(ctx context.Context, fileName string, fileType domain.FileType, file io.Reader) (*domain.StoredFile, error) {
	if !fileType.IsValid() {
		return nil, wrapTransport(domain.ErrInvalidFileType)
	}
	form := newMultipartForm("file", fileName, file).
		set("type", fileType.String())
	var stored domain.StoredFile
	if err := c.doMultipart(ctx, "/files/upload", form, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// GetFile fetches a file's metadata
func (c *Client) GetFile(ctx context.Context, id uuid.UUID) (*domain.StoredFile, error) {
	var stored domain.StoredFile
	if err := c.do(ctx, http.MethodGet, "/files/"+id.String(), nil, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// DownloadFile fetches a file's raw contents
func (c *Client) DownloadFile(ctx context.Context, id uuid.UUID) ([]byte, error) {
	return c.doBinary(ctx, http.MethodGet, "/files/"+id.String()+"/download", nil)
}

// DeleteFile removes an uploaded file
func (c *Client) DeleteFile(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/files/"+id.String(), nil, nil)
}

// ListUserFiles fetches the metadata of every file the caller uploaded
func (c *Client) ListUserFiles(ctx context.Context) ([]domain.StoredFile, error) {
	var files []domain.StoredFile
	if err := c.do(ctx, http.MethodGet, "/files/user/files", nil, &files); err != nil {
		return nil, err
	}
	return files, nil
}
