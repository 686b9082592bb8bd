package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEnum is returned when a string does not name a member of a closed
// enumeration.
var ErrInvalidEnum = errors.New("invalid enum value")

// enumSpec describes a closed enumeration backed by uint8. names[0] is the
// zero (unset) value and is never a valid member.
//
// Values travel over JSON in lower-case ("full_time") and are stored in the
// database in upper-case ("FULL_TIME"). Everything in between uses the typed
// constant.
type enumSpec[E ~uint8] struct {
	kind  string
	names []string
}

func (s enumSpec[E]) name(v E) string {
	if v == 0 || int(v) >= len(s.names) {
		return ""
	}
	return s.names[v]
}

func (s enumSpec[E]) parse(raw string) (E, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	for i := 1; i < len(s.names); i++ {
		if s.names[i] == key {
			return E(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %s %q", ErrInvalidEnum, s.kind, raw)
}

func (s enumSpec[E]) marshalJSON(v E) ([]byte, error) {
	n := s.name(v)
	if n == "" {
		return []byte("null"), nil
	}
	return json.Marshal(n)
}

func (s enumSpec[E]) unmarshalJSON(data []byte, v *E) error {
	if string(data) == "null" {
		*v = 0
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %s must be a string", ErrInvalidEnum, s.kind)
	}
	parsed, err := s.parse(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (s enumSpec[E]) value(v E) (driver.Value, error) {
	n := s.name(v)
	if n == "" {
		return nil, nil
	}
	return strings.ToUpper(n), nil
}

func (s enumSpec[E]) scan(src any, v *E) error {
	var raw string
	switch x := src.(type) {
	case nil:
		*v = 0
		return nil
	case string:
		raw = x
	case []byte:
		raw = string(x)
	default:
		return fmt.Errorf("%w: cannot scan %T into %s", ErrInvalidEnum, src, s.kind)
	}
	parsed, err := s.parse(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ===== Role =====

// Role is the account role of a user.
type Role uint8

const (
	RoleJobSeeker Role = iota + 1
	RoleEmployer
	RoleAdmin
)

var roleSpec = enumSpec[Role]{kind: "role", names: []string{"", "job_seeker", "employer", "admin"}}

// ParseRole parses a role name case-insensitively.
func ParseRole(s string) (Role, error) { return roleSpec.parse(s) }

func (r Role) String() string                { return roleSpec.name(r) }
func (r Role) IsValid() bool                 { return roleSpec.name(r) != "" }
func (r Role) MarshalJSON() ([]byte, error)  { return roleSpec.marshalJSON(r) }
func (r *Role) UnmarshalJSON(b []byte) error { return roleSpec.unmarshalJSON(b, r) }
func (r Role) Value() (driver.Value, error)  { return roleSpec.value(r) }
func (r *Role) Scan(src any) error           { return roleSpec.scan(src, r) }

// ===== MembershipRole =====

// MembershipRole is the role a user holds inside a company.
type MembershipRole uint8

const (
	MembershipAdmin MembershipRole = iota + 1
	MembershipRecruiter
	MembershipMember
)

var membershipRoleSpec = enumSpec[MembershipRole]{kind: "membership role", names: []string{"", "admin", "recruiter", "member"}}

// ParseMembershipRole parses a membership role name case-insensitively.
func ParseMembershipRole(s string) (MembershipRole, error) { return membershipRoleSpec.parse(s) }

func (r MembershipRole) String() string                { return membershipRoleSpec.name(r) }
func (r MembershipRole) IsValid() bool                 { return membershipRoleSpec.name(r) != "" }
func (r MembershipRole) MarshalJSON() ([]byte, error)  { return membershipRoleSpec.marshalJSON(r) }
func (r *MembershipRole) UnmarshalJSON(b []byte) error { return membershipRoleSpec.unmarshalJSON(b, r) }
func (r MembershipRole) Value() (driver.Value, error)  { return membershipRoleSpec.value(r) }
func (r *MembershipRole) Scan(src any) error           { return membershipRoleSpec.scan(src, r) }

// CanManageJobs reports whether the membership role may post and edit jobs.
func (r MembershipRole) CanManageJobs() bool {
	return r == MembershipAdmin || r == MembershipRecruiter
}

// ===== RemoteType =====

// RemoteType describes where the work happens.
type RemoteType uint8

const (
	RemoteOffice RemoteType = iota + 1
	RemoteRemote
	RemoteHybrid
)

var remoteTypeSpec = enumSpec[RemoteType]{kind: "remote type", names: []string{"", "office", "remote", "hybrid"}}

func ParseRemoteType(s string) (RemoteType, error) { return remoteTypeSpec.parse(s) }

func (t RemoteType) String() string                { return remoteTypeSpec.name(t) }
func (t RemoteType) IsValid() bool                 { return remoteTypeSpec.name(t) != "" }
func (t RemoteType) MarshalJSON() ([]byte, error)  { return remoteTypeSpec.marshalJSON(t) }
func (t *RemoteType) UnmarshalJSON(b []byte) error { return remoteTypeSpec.unmarshalJSON(b, t) }
func (t RemoteType) Value() (driver.Value, error)  { return remoteTypeSpec.value(t) }
func (t *RemoteType) Scan(src any) error           { return remoteTypeSpec.scan(src, t) }

// ===== EmploymentType =====

type EmploymentType uint8

const (
	EmploymentFullTime EmploymentType = iota + 1
	EmploymentPartTime
	EmploymentContract
	EmploymentInternship
)

var employmentTypeSpec = enumSpec[EmploymentType]{kind: "employment type", names: []string{"", "full_time", "part_time", "contract", "internship"}}

func ParseEmploymentType(s string) (EmploymentType, error) { return employmentTypeSpec.parse(s) }

func (t EmploymentType) String() string                { return employmentTypeSpec.name(t) }
func (t EmploymentType) IsValid() bool                 { return employmentTypeSpec.name(t) != "" }
func (t EmploymentType) MarshalJSON() ([]byte, error)  { return employmentTypeSpec.marshalJSON(t) }
func (t *EmploymentType) UnmarshalJSON(b []byte) error { return employmentTypeSpec.unmarshalJSON(b, t) }
func (t EmploymentType) Value() (driver.Value, error)  { return employmentTypeSpec.value(t) }
func (t *EmploymentType) Scan(src any) error           { return employmentTypeSpec.scan(src, t) }

// ===== ExperienceLevel =====

// ExperienceLevel is optional on a job; the zero value means unspecified and
// is stored as NULL.
type ExperienceLevel uint8

const (
	ExperienceEntry ExperienceLevel = iota + 1
	ExperienceMid
	ExperienceSenior
	ExperienceLead
	ExperienceExecutive
)

var experienceLevelSpec = enumSpec[ExperienceLevel]{kind: "experience level", names: []string{"", "entry", "mid", "senior", "lead", "executive"}}

func ParseExperienceLevel(s string) (ExperienceLevel, error) { return experienceLevelSpec.parse(s) }

func (l ExperienceLevel) String() string                { return experienceLevelSpec.name(l) }
func (l ExperienceLevel) IsValid() bool                 { return experienceLevelSpec.name(l) != "" }
func (l ExperienceLevel) MarshalJSON() ([]byte, error)  { return experienceLevelSpec.marshalJSON(l) }
func (l *ExperienceLevel) UnmarshalJSON(b []byte) error { return experienceLevelSpec.unmarshalJSON(b, l) }
func (l ExperienceLevel) Value() (driver.Value, error)  { return experienceLevelSpec.value(l) }
func (l *ExperienceLevel) Scan(src any) error           { return experienceLevelSpec.scan(src, l) }

// ===== SalaryType =====

type SalaryType uint8

const (
	SalaryYearly SalaryType = iota + 1
	SalaryMonthly
	SalaryWeekly
	SalaryHourly
)

var salaryTypeSpec = enumSpec[SalaryType]{kind: "salary type", names: []string{"", "yearly", "monthly", "weekly", "hourly"}}

func ParseSalaryType(s string) (SalaryType, error) { return salaryTypeSpec.parse(s) }

func (t SalaryType) String() string                { return salaryTypeSpec.name(t) }
func (t SalaryType) IsValid() bool                 { return salaryTypeSpec.name(t) != "" }
func (t SalaryType) MarshalJSON() ([]byte, error)  { return salaryTypeSpec.marshalJSON(t) }
func (t *SalaryType) UnmarshalJSON(b []byte) error { return salaryTypeSpec.unmarshalJSON(b, t) }
func (t SalaryType) Value() (driver.Value, error)  { return salaryTypeSpec.value(t) }
func (t *SalaryType) Scan(src any) error           { return salaryTypeSpec.scan(src, t) }

// ===== JobStatus =====

type JobStatus uint8

const (
	JobDraft JobStatus = iota + 1
	JobActive
	JobPaused
	JobClosed
	JobFilled
)

var jobStatusSpec = enumSpec[JobStatus]{kind: "job status", names: []string{"", "draft", "active", "paused", "closed", "filled"}}

func ParseJobStatus(s string) (JobStatus, error) { return jobStatusSpec.parse(s) }

func (s JobStatus) String() string                { return jobStatusSpec.name(s) }
func (s JobStatus) IsValid() bool                 { return jobStatusSpec.name(s) != "" }
func (s JobStatus) MarshalJSON() ([]byte, error)  { return jobStatusSpec.marshalJSON(s) }
func (s *JobStatus) UnmarshalJSON(b []byte) error { return jobStatusSpec.unmarshalJSON(b, s) }
func (s JobStatus) Value() (driver.Value, error)  { return jobStatusSpec.value(s) }
func (s *JobStatus) Scan(src any) error           { return jobStatusSpec.scan(src, s) }

// jobTransitions lists the statuses reachable from each status.
var jobTransitions = map[JobStatus][]JobStatus{
	JobDraft:  {JobActive},
	JobActive: {JobPaused, JobClosed, JobFilled},
	JobPaused: {JobActive, JobClosed, JobFilled},
}

// CanTransitionTo reports whether a job may move from s to next. Staying in
// the same status is always allowed. Closed and filled are terminal.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	if s == next {
		return true
	}
	if s.IsTerminal() {
		return false
	}
	for _, allowed := range jobTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s JobStatus) IsTerminal() bool {
	return s == JobClosed || s == JobFilled
}
