package models

type UserRole string

const (
	RecruiterRole UserRole = "RECRUITER"
	CandidateRole UserRole = "CANDIDATE"
)

var roleHumanName = map[UserRole]string{
	RecruiterRole: "Recruiter",
	CandidateRole: "Candidate",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}

func (r UserRole) IsRecruiter() bool {
	return r == RecruiterRole
}
