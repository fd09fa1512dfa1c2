package stubapi

import (
	"io"
	"net/http"
	"time"

	"github.com/ari/talentbridge/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (s *Server) handleUploadFile(w http.ResponseWriter, r *http.Request) {
	s.storeUpload(w, r, "")
}

// storeUpload reads a multipart upload. forcedType pins the discriminator
// (resume uploads); otherwise the "type" form field decides.
func (s *Server) storeUpload(w http.ResponseWriter, r *http.Request, forcedType domain.FileType) {
	user, _ := currentUser(r.Context())

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	fileType := forcedType
	if fileType == "" {
		fileType = domain.FileType(r.FormValue("type"))
	}
	if !fileType.IsValid() {
		respondError(w, http.StatusBadRequest, "Invalid file type")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	stored := &storedFile{
		meta: domain.StoredFile{
			ID:          uuid.New(),
			UserID:      user.ID,
			Name:        header.Filename,
			Type:        fileType,
			ContentType: contentType,
			Size:        int64(len(data)),
			CreatedAt:   time.Now(),
		},
		data: data,
	}
	s.store.saveFile(stored)
	respondData(w, http.StatusOK, stored.meta)
}

func (s *Server) fileForCaller(w http.ResponseWriter, r *http.Request) (*storedFile, bool) {
	user, _ := currentUser(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid file id")
		return nil, false
	}
	file, ok := s.store.file(id)
	if !ok {
		respondError(w, http.StatusNotFound, "File not found")
		return nil, false
	}
	if file.meta.UserID != user.ID && user.Role != domain.RoleAdmin {
		respondError(w, http.StatusForbidden, "File belongs to another user")
		return nil, false
	}
	return file, true
}

func (s *Server) handleGetFile(w http.ResponseWriter, r *http.Request) {
	file, ok := s.fileForCaller(w, r)
	if !ok {
		return
	}
	respondData(w, http.StatusOK, file.meta)
}

func (s *Server) handleDownloadFile(w http.ResponseWriter, r *http.Request) {
	file, ok := s.fileForCaller(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", file.meta.ContentType)
	w.WriteHeader(http.StatusOK)
	w.Write(file.data)
}

func (s *Server) handleDeleteFile(w http.ResponseWriter, r *http.Request) {
	file, ok := s.fileForCaller(w, r)
	if !ok {
		return
	}
	s.store.deleteFile(file.meta.ID)
	respondData(w, http.StatusOK, map[string]string{"message": "File deleted"})
}

func (s *Server) handleListUserFiles(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r.Context())
	respondData(w, http.StatusOK, s.store.filesForUser(user.ID))
}
