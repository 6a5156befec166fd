package jobs

import (
	"fmt"

	"admission-backend/src/models"

	"github.com/bytedance/sonic"
	"github.com/hibiken/asynq"
)

const (
	TypeScreen          = "agent:screen"
	TypeShortlist       = "agent:shortlist"
	TypeVerifyDocuments = "agent:verify_documents"
	TypeEvaluateLoans   = "agent:evaluate_loans"
)

// ApplicationPayload names the application a run works on, if any.
type ApplicationPayload struct {
	ApplicationID string `json:"application_id,omitempty"`
}

// TaskType maps a request type such as "shortlist" to its task type.
func TaskType(kind string) (string, error) {
	switch kind {
	case "screen":
		return TypeScreen, nil
	case "shortlist":
		return TypeShortlist, nil
	case "verify_documents":
		return TypeVerifyDocuments, nil
	case "evaluate_loans":
		return TypeEvaluateLoans, nil
	}
	return "", fmt.Errorf("unknown task type %q", kind)
}

func NewAgentTask(req models.TaskRequest) (*asynq.Task, error) {
	typeName, err := TaskType(req.Type)
	if err != nil {
		return nil, err
	}
	payload, err := sonic.Marshal(ApplicationPayload{ApplicationID: req.ApplicationID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(typeName, payload), nil
}
