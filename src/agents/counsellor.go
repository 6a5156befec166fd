package agents

import (
	"context"
	"strings"
	"time"

	"admission-backend/src/mailer"
	"admission-backend/src/models"

	"github.com/google/uuid"
)

// StudentCounsellor writes stage updates to students and keeps a log of
// every message.
type StudentCounsellor struct {
	base
	mail mailer.Sender
	now  func() time.Time
}

// NewStudentCounsellor builds the counsellor. mail may be nil, in which case
// messages are only posted to the portal.
func NewStudentCounsellor(deps Deps, mail mailer.Sender) *StudentCounsellor {
	return &StudentCounsellor{
		base: base{Deps: deps, role: models.RoleStudentCounsellor},
		mail: mail,
		now:  time.Now,
	}
}

// Communicate generates a message about stage for the student, delivers it
// and records it in the communication log.
func (c *StudentCounsellor) Communicate(ctx context.Context, studentID, stage string) (res Result) {
	const op = "communicate"
	defer c.recoverInto(op, &res)

	stage = strings.TrimSpace(stage)
	if stage == "" {
		return ValidationFailed("admission stage is required")
	}
	l := c.begin(ctx, op)
	l = l.With().Str("student_id", studentID).Logger()

	student, err := c.Repos.Students.Get(ctx, studentID)
	if err != nil {
		return storeFailure(l, err, MsgStudentNotFound)
	}
	if strings.TrimSpace(student.Name) == "" {
		l.Warn().Msg("⚠️ student record has no name")
		return ValidationFailed("student " + studentID + " has no name")
	}

	prompt, err := render(counsellorPrompt, struct {
		StudentName, StudentID, Stage string
	}{student.Name, studentID, stage})
	if err != nil {
		return UpstreamUnavailable("render prompt: " + err.Error())
	}
	res = c.generate(ctx, l, prompt)
	if res.Failed() {
		return res
	}

	medium := models.MediumPortal
	if c.mail != nil && student.Email != "" {
		if err := c.sendEmail(student, stage, res.Text); err != nil {
			l.Warn().Err(err).Msg("⚠️ email delivery failed, message kept on the portal")
		} else {
			medium = models.MediumEmail
		}
	}

	entry := &models.CommunicationLog{
		ID:        uuid.NewString(),
		StudentID: studentID,
		Message:   res.Text,
		Stage:     stage,
		SentBy:    string(models.RoleStudentCounsellor),
		Timestamp: c.now().UTC(),
		Medium:    medium,
	}
	if err := c.Repos.Logs.Save(ctx, entry); err != nil {
		return storeFailure(l, err, "")
	}
	// Re-read so history entries appended during generation survive.
	student, err = c.Repos.Students.Get(ctx, studentID)
	if err != nil {
		return storeFailure(l, err, MsgStudentNotFound)
	}
	student.AddCommunication(entry.ID)
	if err := c.Repos.Students.Save(ctx, student); err != nil {
		return storeFailure(l, err, "")
	}

	res.Detail = "sent via " + string(medium)
	return res
}

func (c *StudentCounsellor) sendEmail(student *models.Student, stage, message string) error {
	html, err := mailer.RenderCounsellorEmail(mailer.CounsellorEmailData{
		StudentName: student.Name,
		Stage:       stage,
		Message:     message,
	})
	if err != nil {
		return err
	}
	return c.mail.Send(student.Email, mailer.CounsellorSubject(stage), html)
}
