// Package llm - extractor.go provides generic LLM-based structured extraction.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
// It provides a reusable way to define what information to extract from text.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "Resume", "JobPosting")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "map[string]string"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Use \"Not specified\" for missing string fields and [] for missing lists.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// --- Predefined Schemas ---

// ResumeSchema returns the extraction schema for candidate resumes.
func ResumeSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "Resume",
		Description: `You are an expert resume parser. COPY TEXT VERBATIM - do not paraphrase, summarize, or reword.
Your task is to extract and categorize information from a raw resume.
IMPORTANT: Preserve the exact wording from the original text.
Goal: Extract the candidate's summary, education, experience, skills, projects, and certifications.
EXCLUDE: Page headers and footers, contact details, references sections.`,
		Fields: []SchemaField{
			{
				Name:        "professional_summary",
				Type:        "\"string\"",
				Description: "Summary or objective statement - copy verbatim, or write a one-sentence factual summary if absent",
				Required:    true,
			},
			{
				Name:        "education",
				Type:        "[\"string\"]",
				Description: "One entry per degree or program: institution, degree, dates - verbatim",
				Required:    true,
			},
			{
				Name:        "experience",
				Type:        "[\"string\"]",
				Description: "One entry per role: title, employer, dates, and accomplishments - verbatim",
				Required:    true,
			},
			{
				Name:        "technical_skills",
				Type:        "[\"string\"]",
				Description: "Individual technologies, languages, tools listed in the resume",
				Required:    true,
			},
			{
				Name:        "projects",
				Type:        "[\"string\"]",
				Description: "One entry per personal or professional project - verbatim",
				Required:    false,
			},
			{
				Name:        "certifications",
				Type:        "[\"string\"]",
				Description: "Certifications and licenses - verbatim",
				Required:    false,
			},
		},
	}
}

// JobPostingSchema returns the extraction schema for job postings.
func JobPostingSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "JobPosting",
		Description: `You are an expert job posting parser. COPY TEXT VERBATIM - do not paraphrase, summarize, or reword.
Your task is to extract and categorize information from a raw job posting.
IMPORTANT: Preserve the exact wording from the original text.
Goal: Extract the role identity, requirements, responsibilities, and the skills the employer asks for.
EXCLUDE: Application form fields, EEO statements, legal disclaimers, generic "About Company" boilerplate.`,
		Fields: []SchemaField{
			{
				Name:        "title",
				Type:        "\"string\"",
				Description: "Job title exactly as posted",
				Required:    true,
			},
			{
				Name:        "company",
				Type:        "\"string\"",
				Description: "Hiring company name",
				Required:    true,
			},
			{
				Name:        "location",
				Type:        "\"string\"",
				Description: "Location or remote arrangement",
				Required:    false,
			},
			{
				Name:        "seniority_level",
				Type:        "\"string\"",
				Description: "Seniority as stated or clearly implied (e.g. 'Senior', 'Staff', 'Entry level')",
				Required:    false,
			},
			{
				Name:        "responsibilities",
				Type:        "[\"string\"]",
				Description: "Job duties, day-to-day work - copy each responsibility verbatim",
				Required:    true,
			},
			{
				Name:        "requirements",
				Type:        "[\"string\"]",
				Description: "Technical requirements, qualifications, skills needed - copy each requirement verbatim",
				Required:    true,
			},
			{
				Name:        "key_skills",
				Type:        "[\"string\"]",
				Description: "Individual technologies and competencies named in the posting",
				Required:    true,
			},
		},
	}
}
