package ws

import (
	"encoding/json"
	"time"

	"talentgate/internal/domain/application"
)

type ApplicationReceivedEvent struct {
	Type          string `json:"type"`
	ApplicationID string `json:"application_id"`
	JobPostingID  string `json:"job_posting_id"`
	ApplicantName string `json:"applicant_name"`
	Timestamp     string `json:"timestamp"`
}

// Notifier satisfies usecase.ApplicationNotifier. Broadcasts never block
// the submission path; a full buffer drops the event.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) ApplicationReceived(app application.Application, applicantName string) {
	if n == nil || n.hub == nil {
		return
	}

	evt := ApplicationReceivedEvent{
		Type:          "application_received",
		ApplicationID: app.ID.String(),
		JobPostingID:  app.JobPostingID.String(),
		ApplicantName: applicantName,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Broadcast(b)
}
