package models

// AgentRole names one of the five domain agents.
type AgentRole string

const (
	RoleAdmissionOfficer  AgentRole = "admission_officer"
	RoleDocumentChecker   AgentRole = "document_checker"
	RoleShortlistingAgent AgentRole = "shortlisting_agent"
	RoleLoanOfficer       AgentRole = "loan_officer"
	RoleStudentCounsellor AgentRole = "student_counsellor"
)

// AgentRoles lists every role in registry order.
var AgentRoles = []AgentRole{
	RoleAdmissionOfficer,
	RoleDocumentChecker,
	RoleShortlistingAgent,
	RoleLoanOfficer,
	RoleStudentCounsellor,
}

var roleNames = map[AgentRole]string{
	RoleAdmissionOfficer:  "Admission Officer",
	RoleDocumentChecker:   "Document Checking Agent",
	RoleShortlistingAgent: "Application Shortlisting Agent",
	RoleLoanOfficer:       "Student Loan Officer",
	RoleStudentCounsellor: "Student Counsellor",
}

// DisplayName returns the human readable role title.
func (r AgentRole) DisplayName() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return string(r)
}

// Agent is the registry record of a system actor.
type Agent struct {
	ID            string    `bson:"id" json:"id" validate:"required"`
	Name          string    `bson:"name" json:"name" validate:"required"`
	Role          AgentRole `bson:"role" json:"role" validate:"required,oneof=admission_officer document_checker shortlisting_agent loan_officer student_counsellor"`
	Active        bool      `bson:"active" json:"active"`
	AssignedTasks []string  `bson:"assigned_tasks,omitempty" json:"assigned_tasks,omitempty"`
}
