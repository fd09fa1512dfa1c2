package client

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// multipartForm collects the fields of a file-upload request
type multipartForm struct {
	fileField string
	fileName  string
	file      io.Reader
	fields    map[string]string
}

func newMultipartForm(fileField, fileName string, file io.Reader) *multipartForm {
	return &multipartForm{
		fileField: fileField,
		fileName:  fileName,
		file:      file,
		fields:    make(map[string]string),
	}
}

func (f *multipartForm) set(key, value string) *multipartForm {
	f.fields[key] = value
	return f
}

// encode renders the form body and returns it with its content type,
// boundary included.
func (f *multipartForm) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile(f.fileField, f.fileName)
	if err != nil {
		return nil, "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, f.file); err != nil {
		return nil, "", fmt.Errorf("copy file payload: %w", err)
	}
	for key, value := range f.fields {
		if err := w.WriteField(key, value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", key, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
