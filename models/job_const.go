package models

import (
	"strings"

	"github.com/pkg/errors"
)

type JobType string

const (
	JobTypeFullTime JobType = "FULL_TIME"
	JobTypePartTime JobType = "PART_TIME"
	JobTypeContract JobType = "CONTRACT"
	JobTypeRemote   JobType = "REMOTE"
)

var AllJobTypes = []JobType{
	JobTypeFullTime,
	JobTypePartTime,
	JobTypeContract,
	JobTypeRemote,
}

var jobTypeHumanName = map[JobType]string{
	JobTypeFullTime: "Full-time",
	JobTypePartTime: "Part-time",
	JobTypeContract: "Contract",
	JobTypeRemote:   "Remote",
}

func (j JobType) ToHuman() string {
	if human, exist := jobTypeHumanName[j]; exist {
		return human
	}
	return string(j)
}

func (j JobType) Validate() error {
	if _, exist := jobTypeHumanName[j]; !exist {
		return errors.Errorf("unknown job type: %v", j)
	}
	return nil
}

// ParseJobType принимает как "FULL_TIME", так и "full-time" / "Full time"
func ParseJobType(value string) (JobType, error) {
	jobType := JobType(normalizeEnum(value))
	if err := jobType.Validate(); err != nil {
		return "", err
	}
	return jobType, nil
}

type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "ENTRY"
	ExperienceJunior    ExperienceLevel = "JUNIOR"
	ExperienceMid       ExperienceLevel = "MID"
	ExperienceSenior    ExperienceLevel = "SENIOR"
	ExperienceLead      ExperienceLevel = "LEAD"
	ExperienceExecutive ExperienceLevel = "EXECUTIVE"
)

var AllExperienceLevels = []ExperienceLevel{
	ExperienceEntry,
	ExperienceJunior,
	ExperienceMid,
	ExperienceSenior,
	ExperienceLead,
	ExperienceExecutive,
}

var experienceHumanName = map[ExperienceLevel]string{
	ExperienceEntry:     "Entry level",
	ExperienceJunior:    "Junior",
	ExperienceMid:       "Mid level",
	ExperienceSenior:    "Senior",
	ExperienceLead:      "Lead",
	ExperienceExecutive: "Executive",
}

func (e ExperienceLevel) ToHuman() string {
	if human, exist := experienceHumanName[e]; exist {
		return human
	}
	return string(e)
}

func (e ExperienceLevel) Validate() error {
	if _, exist := experienceHumanName[e]; !exist {
		return errors.Errorf("unknown experience level: %v", e)
	}
	return nil
}

func ParseExperienceLevel(value string) (ExperienceLevel, error) {
	level := ExperienceLevel(normalizeEnum(value))
	if err := level.Validate(); err != nil {
		return "", err
	}
	return level, nil
}

type EmploymentType string

const (
	EmploymentPermanent  EmploymentType = "PERMANENT"
	EmploymentTemporary  EmploymentType = "TEMPORARY"
	EmploymentInternship EmploymentType = "INTERNSHIP"
	EmploymentFreelance  EmploymentType = "FREELANCE"
)

var AllEmploymentTypes = []EmploymentType{
	EmploymentPermanent,
	EmploymentTemporary,
	EmploymentInternship,
	EmploymentFreelance,
}

var employmentHumanName = map[EmploymentType]string{
	EmploymentPermanent:  "Permanent",
	EmploymentTemporary:  "Temporary",
	EmploymentInternship: "Internship",
	EmploymentFreelance:  "Freelance",
}

func (e EmploymentType) ToHuman() string {
	if human, exist := employmentHumanName[e]; exist {
		return human
	}
	return string(e)
}

// Validate пустое значение допустимо, поле необязательное
func (e EmploymentType) Validate() error {
	if e == "" {
		return nil
	}
	if _, exist := employmentHumanName[e]; !exist {
		return errors.Errorf("unknown employment type: %v", e)
	}
	return nil
}

type JobSort string

const (
	JobSortDateDesc         JobSort = "date_desc"
	JobSortDateAsc          JobSort = "date_asc"
	JobSortTitleAsc         JobSort = "title_asc"
	JobSortTitleDesc        JobSort = "title_desc"
	JobSortApplicationsAsc  JobSort = "applications_asc"
	JobSortApplicationsDesc JobSort = "applications_desc"
)

var jobSortSet = map[JobSort]struct{}{
	JobSortDateDesc:         {},
	JobSortDateAsc:          {},
	JobSortTitleAsc:         {},
	JobSortTitleDesc:        {},
	JobSortApplicationsAsc:  {},
	JobSortApplicationsDesc: {},
}

func (s JobSort) Validate() error {
	if _, exist := jobSortSet[s]; !exist {
		return errors.Errorf("unknown sort key: %v", s)
	}
	return nil
}

func normalizeEnum(value string) string {
	value = strings.TrimSpace(value)
	value = strings.NewReplacer("-", "_", " ", "_").Replace(value)
	return strings.ToUpper(value)
}
