// Package llm - types.go defines the structured artifacts produced from
// extracted content.
package llm

// ResumeProfile is the structured form of a candidate resume.
type ResumeProfile struct {
	ProfessionalSummary string   `json:"professional_summary"`
	Education           []string `json:"education"`
	Experience          []string `json:"experience"`
	TechnicalSkills     []string `json:"technical_skills"`
	Projects            []string `json:"projects,omitempty"`
	Certifications      []string `json:"certifications,omitempty"`
}

// JobProfile is the structured form of a job posting.
type JobProfile struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	SeniorityLevel   string   `json:"seniority_level"`
	Responsibilities []string `json:"responsibilities"`
	Requirements     []string `json:"requirements"`
	KeySkills        []string `json:"key_skills"`
}

// MatchReport is the result of comparing a resume against a posting.
type MatchReport struct {
	OverallMatchScore int      `json:"overall_match_score"`
	Strengths         []string `json:"strengths"`
	Weaknesses        []string `json:"weaknesses"`
	Summary           string   `json:"summary"`
}
