package stubapi

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ari/talentbridge/internal/domain"
	"github.com/google/uuid"
)

const maxUploadBytes = 10 << 20

func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	s.storeUpload(w, r, domain.FileTypeResume)
}

type parseResumeRequest struct {
	FileID uuid.UUID `json:"fileId"`
}

func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r.Context())

	var req parseResumeRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	file, ok := s.store.file(req.FileID)
	if !ok || file.meta.UserID != user.ID {
		respondError(w, http.StatusNotFound, "File not found")
		return
	}

	// Deterministic extraction; the production backend does real parsing.
	text := string(file.data)
	parsed := domain.ParsedResume{
		Name:   user.FullName(),
		Email:  user.Email,
		Skills: keywordSkills(text),
		Experience: []domain.ResumeExperience{
			{Company: "Extracted from " + file.meta.Name, Title: "See raw text"},
		},
		Education: []domain.ResumeEducation{},
		RawText:   text,
	}
	s.store.countResumeParsed()
	respondData(w, http.StatusOK, parsed)
}

// keywordSkills pulls recognizable skill tokens out of resume text
func keywordSkills(text string) []string {
	known := []string{"Go", "Python", "JavaScript", "SQL", "Kubernetes", "React"}
	lower := strings.ToLower(text)
	var skills []string
	for _, k := range known {
		if strings.Contains(lower, strings.ToLower(k)) {
			skills = append(skills, k)
		}
	}
	if skills == nil {
		skills = []string{}
	}
	return skills
}

func (s *Server) handleAnalyzeJob(w http.ResponseWriter, r *http.Request) {
	var input domain.AnalyzeJobInput
	if err := decodeBody(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if input.JobDescription == "" {
		respondError(w, http.StatusBadRequest, "Job description is required")
		return
	}

	// Scripted analysis keyed off overlap so dev flows look plausible.
	score := 50
	var strengths, gaps []string
	for _, skill := range keywordSkills(input.JobDescription) {
		if input.Resume != "" && strings.Contains(strings.ToLower(input.Resume), strings.ToLower(skill)) {
			score += 10
			strengths = append(strengths, skill+" experience matches the posting")
		} else {
			gaps = append(gaps, skill+" is requested but not evident")
		}
	}
	if score > 95 {
		score = 95
	}
	if strengths == nil {
		strengths = []string{}
	}
	if gaps == nil {
		gaps = []string{}
	}

	respondData(w, http.StatusOK, domain.JobAnalysis{
		MatchScore:      score,
		Summary:         fmt.Sprintf("Estimated match score %d based on skill overlap", score),
		Strengths:       strengths,
		Gaps:            gaps,
		Recommendations: []string{"Tailor the resume summary to the posting's top requirements"},
	})
}

func (s *Server) handleGenerateResume(w http.ResponseWriter, r *http.Request) {
	s.handleGenerate(w, r, "resume")
}

func (s *Server) handleGenerateCoverLetter(w http.ResponseWriter, r *http.Request) {
	s.handleGenerate(w, r, "cover letter")
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request, kind string) {
	user, _ := currentUser(r.Context())

	var input domain.GenerateInput
	if err := decodeBody(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if input.JobDescription == "" {
		respondError(w, http.StatusBadRequest, "Job description is required")
		return
	}

	tone := input.Tone
	if tone == "" {
		tone = "professional"
	}
	content := fmt.Sprintf("Generated %s for %s (%s tone)\n\nTargeting: %s\n",
		kind, user.FullName(), tone, firstLine(input.JobDescription))
	s.store.countDocGenerated()
	respondData(w, http.StatusOK, domain.GeneratedDocument{Content: content, Format: "markdown"})
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

type exportResumeRequest struct {
	Content string `json:"content"`
}

func (s *Server) handleExportResume(w http.ResponseWriter, r *http.Request) {
	var req exportResumeRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Content == "" {
		respondError(w, http.StatusBadRequest, "Content is required")
		return
	}

	// A minimal single-page PDF wrapping the content; enough for dev flows.
	pdf := fmt.Sprintf("%%PDF-1.4\n%% TalentBridge dev export\n%s\n%%%%EOF\n", req.Content)
	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, pdf)
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r.Context())

	var input domain.ApplicationInput
	if err := decodeBody(r, &input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if _, ok := s.store.job(input.JobID); !ok {
		respondError(w, http.StatusNotFound, "Job not found")
		return
	}

	now := time.Now()
	app := domain.Application{
		ID:          uuid.New(),
		JobID:       input.JobID,
		UserID:      user.ID,
		ResumeID:    input.ResumeID,
		CoverLetter: input.CoverLetter,
		Status:      "submitted",
		CreatedAt:   now,
	}
	s.store.saveApplication(app)

	// The application surfaces on the recruiter side as a pipeline entry.
	s.store.saveCandidate(domain.Candidate{
		ID:        uuid.New(),
		JobID:     input.JobID,
		UserID:    user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Status:    domain.CandidateStatusNew,
		AppliedAt: now,
		UpdatedAt: now,
	})

	respondData(w, http.StatusOK, app)
}

func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r.Context())
	respondData(w, http.StatusOK, s.store.applicationsForUser(user.ID))
}
