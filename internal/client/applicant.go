package client

import (
	"context"
	"io"
	"net/http"

	"github.com/ari/talentbridge/internal/domain"
	"github.com/google/uuid"
)

// UploadResume uploads a resume file and returns its stored metadata
func (c *Client) UploadResume(ctx context.Context, fileName string, file io.Reader) (*domain.StoredFile, error) {
	form := newMultipartForm("file", fileName, file).
		set("type", domain.FileTypeResume.String())
	var stored domain.StoredFile
	if err := c.doMultipart(ctx, "/applicant/resumes/upload", form, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

type parseResumeRequest struct {
	FileID uuid.UUID `json:"fileId"`
}

// ParseResume asks the backend to extract structure from an uploaded resume
func (c *Client) ParseResume(ctx context.Context, fileID uuid.UUID) (*domain.ParsedResume, error) {
	var parsed domain.ParsedResume
	err := c.do(ctx, http.MethodPost, "/applicant/resumes/parse", parseResumeRequest{FileID: fileID}, &parsed)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// AnalyzeJob requests an assistant assessment of a posting against a resume
func (c *Client) AnalyzeJob(ctx context.Context, input domain.AnalyzeJobInput) (*domain.JobAnalysis, error) {
	var analysis domain.JobAnalysis
	if err := c.do(ctx, http.MethodPost, "/applicant/ai/analyze-job", input, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// GenerateResume requests an AI-tailored resume
func (c *Client) GenerateResume(ctx context.Context, input domain.GenerateInput) (*domain.GeneratedDocument, error) {
	var doc domain.GeneratedDocument
	if err := c.do(ctx, http.MethodPost, "/applicant/ai/generate-resume", input, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// GenerateCoverLetter requests an AI-written cover letter
func (c *Client) GenerateCoverLetter(ctx context.Context, input domain.GenerateInput) (*domain.GeneratedDocument, error) {
	var doc domain.GeneratedDocument
	if err := c.do(ctx, http.MethodPost, "/applicant/ai/generate-cover-letter", input, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

type exportResumeRequest struct {
	Content string `json:"content"`
}

// ExportResumePDF renders resume content to PDF and returns the raw bytes
func (c *Client) ExportResumePDF(ctx context.Context, content string) ([]byte, error) {
	return c.doBinary(ctx, http.MethodPost, "/applicant/export/resume", exportResumeRequest{Content: content})
}

// Apply submits an application to a posting
func (c *Client) Apply(ctx context.Context, input domain.ApplicationInput) (*domain.Application, error) {
	var app domain.Application
	if err := c.do(ctx, http.MethodPost, "/applicant/applications", input, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// ListApplications fetches the caller's submitted applications
func (c *Client) ListApplications(ctx context.Context) ([]domain.Application, error) {
	var apps []domain.Application
	if err := c.do(ctx, http.MethodGet, "/applicant/applications", nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}
