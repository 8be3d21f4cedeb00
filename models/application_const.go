package models

import "github.com/pkg/errors"

type ApplicationStatus string

const (
	ApplicationStatusApplied      ApplicationStatus = "APPLIED"
	ApplicationStatusReviewing    ApplicationStatus = "REVIEWING"
	ApplicationStatusInterviewing ApplicationStatus = "INTERVIEWING"
	ApplicationStatusOffered      ApplicationStatus = "OFFERED"
	ApplicationStatusRejected     ApplicationStatus = "REJECTED"
	ApplicationStatusWithdrawn    ApplicationStatus = "WITHDRAWN"
)

var AllApplicationStatuses = []ApplicationStatus{
	ApplicationStatusApplied,
	ApplicationStatusReviewing,
	ApplicationStatusInterviewing,
	ApplicationStatusOffered,
	ApplicationStatusRejected,
	ApplicationStatusWithdrawn,
}

// applicationTransitions допустимые переходы, для терминальных статусов список пустой
var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusApplied:      {ApplicationStatusReviewing, ApplicationStatusRejected, ApplicationStatusWithdrawn},
	ApplicationStatusReviewing:    {ApplicationStatusInterviewing, ApplicationStatusRejected, ApplicationStatusWithdrawn},
	ApplicationStatusInterviewing: {ApplicationStatusOffered, ApplicationStatusRejected, ApplicationStatusWithdrawn},
	ApplicationStatusOffered:      {},
	ApplicationStatusRejected:     {},
	ApplicationStatusWithdrawn:    {},
}

var applicationStatusHumanName = map[ApplicationStatus]string{
	ApplicationStatusApplied:      "Applied",
	ApplicationStatusReviewing:    "Under review",
	ApplicationStatusInterviewing: "Interviewing",
	ApplicationStatusOffered:      "Offered",
	ApplicationStatusRejected:     "Rejected",
	ApplicationStatusWithdrawn:    "Withdrawn",
}

func (s ApplicationStatus) ToHuman() string {
	if human, exist := applicationStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ApplicationStatus) Validate() error {
	if _, exist := applicationTransitions[s]; !exist {
		return errors.Errorf("unknown application status: %v", s)
	}
	return nil
}

func (s ApplicationStatus) IsTerminal() bool {
	next, exist := applicationTransitions[s]
	return exist && len(next) == 0
}

func (s ApplicationStatus) CanChangeTo(newStatus ApplicationStatus) bool {
	for _, allowed := range applicationTransitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}
