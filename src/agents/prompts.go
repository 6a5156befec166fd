package agents

import (
	"bytes"
	"text/template"

	"github.com/bytedance/sonic"
)

var promptFuncs = template.FuncMap{
	"json": func(v interface{}) (string, error) {
		b, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b), nil
	},
}

func mustPrompt(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(promptFuncs).Parse(text))
}

var screeningPrompt = mustPrompt("screening", `You are an experienced admissions officer screening the following student applications.

Each application includes:
- Student name
- Academic scores (marks_10, marks_12)
- List of submitted documents

Evaluate each application for academic performance, completeness of the form and presence of mandatory fields and documents.
Return a JSON list like:
[
  {
    "application_id": "...",
    "student_name": "...",
    "status": "eligible/ineligible",
    "reason": "..."
  }
]

Applications:
{{ json .Applications }}
`)

var documentPrompt = mustPrompt("documents", `You are verifying documents for student {{ .StudentName }}:
{{ json .Documents }}

Required:
- Identity Proof
- Transcripts
- Residence Proof
- Photo
- Income Certificate

Return:
{
  "application_id": "{{ .ApplicationID }}",
  "student_name": "{{ .StudentName }}",
  "documents_status": {{ json .Status }},
  "overall_status": "complete/incomplete/flagged",
  "comments": "..."
}
`)

var shortlistPrompt = mustPrompt("shortlist", `You are reviewing student applications for university admission.

Each application contains:
- Student Name
- Academic Scores
- Extracurricular Activities
- Special Notes (if any)

Decide whether application {{ .TargetID }} should be SHORTLISTED or REJECTED, comparing it with the rest of the cohort.
Criteria:
- High academic performance
- Relevant extracurriculars
- Compliance with policies

Output JSON format:
{
  "application_id": "{{ .TargetID }}",
  "student_name": "...",
  "status": "shortlisted/rejected",
  "reason": "..."
}

Application under review:
{{ json .Target }}

All applications:
{{ json .Applications }}
`)

var loanPrompt = mustPrompt("loans", `You are reviewing the following student loan requests for approval.
University's total loan budget available: {{ .RemainingBudget }}.

Each loan request contains:
- Student ID
- Amount requested
- Purpose
- Evaluation notes (if any)

Decide whether to APPROVE or REJECT each loan based on:
1. Need and justification
2. Requested amount vs. average tuition
3. Total available budget

Return a JSON list like:
[
  {
    "loan_id": "...",
    "status": "approved/rejected",
    "approved_amount": ...,
    "reason": "..."
  }
]

Loan Requests:
{{ json .Requests }}
`)

var counsellorPrompt = mustPrompt("counsellor", `Write a message for student {{ .StudentName }} (ID: {{ .StudentID }}).

Their current admission stage is: {{ .Stage }}.

Make the message:
- Friendly and supportive
- Clear about the current step in the process
- Include any actions the student needs to take
- Mention they can contact the counsellor if they have questions
`)

var chatPrompt = mustPrompt("chat", `You are the admissions office assistant of the university. Answer the applicant's question briefly and accurately.
If you do not know something, say so and suggest contacting the admissions office.

Current admission process status:
{{ json .Status }}
{{- if .Application }}

The question is about this application:
{{ json .Application }}
{{- end }}

Question:
{{ .Question }}
`)

func render(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
