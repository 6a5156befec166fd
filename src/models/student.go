package models

// Student is an applicant. Created on admission-form submission and never
// hard-deleted.
type Student struct {
	ID                   string   `bson:"id" json:"id" validate:"required"`
	Name                 string   `bson:"name" json:"name" validate:"required"`
	Email                string   `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	Phone                string   `bson:"phone,omitempty" json:"phone,omitempty"`
	Applications         []string `bson:"applications,omitempty" json:"applications,omitempty"`
	CommunicationHistory []string `bson:"communication_history,omitempty" json:"communication_history,omitempty"`
}

// AddApplication records an application id once.
func (s *Student) AddApplication(id string) {
	for _, existing := range s.Applications {
		if existing == id {
			return
		}
	}
	s.Applications = append(s.Applications, id)
}

// AddCommunication appends a communication log id.
func (s *Student) AddCommunication(logID string) {
	s.CommunicationHistory = append(s.CommunicationHistory, logID)
}
