package client

import (
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultipartForm_Encode(t *testing.T) {
	form := newMultipartForm("file", "resume.pdf", strings.NewReader("payload bytes")).
		set("type", "resume")

	body, contentType, err := form.encode()
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)
	require.NotEmpty(t, params["boundary"])

	reader := multipart.NewReader(body, params["boundary"])
	parts := map[string]string{}
	var fileName string
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(part)
		require.NoError(t, err)
		parts[part.FormName()] = string(data)
		if part.FormName() == "file" {
			fileName = part.FileName()
		}
	}

	assert.Equal(t, "resume.pdf", fileName)
	assert.Equal(t, "payload bytes", parts["file"])
	assert.Equal(t, "resume", parts["type"])
}
