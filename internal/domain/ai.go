package domain

// JobAnalysis is the assistant's assessment of how well the applicant's
// resume fits a posting.
type JobAnalysis struct {
	MatchScore      int      `json:"matchScore"`
	Summary         string   `json:"summary"`
	Strengths       []string `json:"strengths"`
	Gaps            []string `json:"gaps"`
	Recommendations []string `json:"recommendations"`
}

// AnalyzeJobInput is the payload for requesting a job analysis
type AnalyzeJobInput struct {
	JobDescription string `json:"jobDescription"`
	Resume         string `json:"resume,omitempty"`
}

// GenerateInput is the payload for AI document generation
type GenerateInput struct {
	JobDescription string `json:"jobDescription"`
	Resume         string `json:"resume,omitempty"`
	Tone           string `json:"tone,omitempty"`
}

// GeneratedDocument is the output of resume or cover-letter generation
type GeneratedDocument struct {
	Content string `json:"content"`
	Format  string `json:"format"`
}

// ResumeExperience is one work entry extracted from an uploaded resume
type ResumeExperience struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
}

// ResumeEducation is one education entry extracted from an uploaded resume
type ResumeEducation struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree,omitempty"`
	Year        string `json:"year,omitempty"`
}

// ParsedResume is the structured result of backend resume parsing
type ParsedResume struct {
	Name       string             `json:"name"`
	Email      string             `json:"email"`
	Phone      string             `json:"phone,omitempty"`
	Skills     []string           `json:"skills"`
	Experience []ResumeExperience `json:"experience"`
	Education  []ResumeEducation  `json:"education"`
	RawText    string             `json:"rawText,omitempty"`
}
