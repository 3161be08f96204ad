package usecase

import "talentgate/internal/domain/application"

// ApplicationNotifier pushes submission events to connected recruiter
// dashboards. Implementations must not block the request path.
type ApplicationNotifier interface {
	ApplicationReceived(app application.Application, applicantName string)
}
