package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestJobStatus_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(JobPaused)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"paused"` {
		t.Errorf("expected \"paused\", got %s", data)
	}

	var s JobStatus
	if err := json.Unmarshal([]byte(`"FILLED"`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s != JobFilled {
		t.Errorf("expected JobFilled, got %v", s)
	}
}

func TestEnums_UnmarshalRejectsUnknown(t *testing.T) {
	t.Parallel()

	var rt RemoteType
	err := json.Unmarshal([]byte(`"moon"`), &rt)
	if !errors.Is(err, ErrInvalidEnum) {
		t.Errorf("expected ErrInvalidEnum, got %v", err)
	}

	var et EmploymentType
	if err := json.Unmarshal([]byte(`42`), &et); !errors.Is(err, ErrInvalidEnum) {
		t.Errorf("expected ErrInvalidEnum for non-string, got %v", err)
	}
}

func TestEnums_ZeroIsNull(t *testing.T) {
	t.Parallel()

	var level ExperienceLevel
	data, err := json.Marshal(level)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("expected null, got %s", data)
	}

	v, err := level.Value()
	if err != nil || v != nil {
		t.Errorf("expected nil driver value, got %v (%v)", v, err)
	}
	if level.IsValid() {
		t.Error("zero value must not be valid")
	}
}

func TestEnums_DatabaseRepresentation(t *testing.T) {
	t.Parallel()

	v, err := EmploymentFullTime.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v != "FULL_TIME" {
		t.Errorf("expected FULL_TIME, got %v", v)
	}

	var et EmploymentType
	if err := et.Scan([]byte("PART_TIME")); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if et != EmploymentPartTime {
		t.Errorf("expected EmploymentPartTime, got %v", et)
	}

	var role Role
	if err := role.Scan(nil); err != nil || role != 0 {
		t.Errorf("scan nil: got %v (%v)", role, err)
	}
	if err := role.Scan(12); !errors.Is(err, ErrInvalidEnum) {
		t.Errorf("expected ErrInvalidEnum scanning int, got %v", err)
	}
}

func TestParse_CaseInsensitive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Role
	}{
		{"employer", RoleEmployer},
		{" EMPLOYER ", RoleEmployer},
		{"Job_Seeker", RoleJobSeeker},
		{"admin", RoleAdmin},
	}
	for _, tt := range tests {
		got, err := ParseRole(tt.in)
		if err != nil {
			t.Errorf("ParseRole(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRole(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseRole(""); err == nil {
		t.Error("empty role should not parse")
	}
}

func TestJobStatus_Transitions(t *testing.T) {
	t.Parallel()

	allowed := map[JobStatus][]JobStatus{
		JobDraft:  {JobDraft, JobActive},
		JobActive: {JobActive, JobPaused, JobClosed, JobFilled},
		JobPaused: {JobPaused, JobActive, JobClosed, JobFilled},
		JobClosed: {JobClosed},
		JobFilled: {JobFilled},
	}
	all := []JobStatus{JobDraft, JobActive, JobPaused, JobClosed, JobFilled}

	for from, targets := range allowed {
		ok := make(map[JobStatus]bool, len(targets))
		for _, to := range targets {
			ok[to] = true
		}
		for _, to := range all {
			if got := from.CanTransitionTo(to); got != ok[to] {
				t.Errorf("%s -> %s: got %v, want %v", from, to, got, ok[to])
			}
		}
	}
}

func TestJobStatus_IsTerminal(t *testing.T) {
	t.Parallel()

	for _, s := range []JobStatus{JobClosed, JobFilled} {
		if !s.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []JobStatus{JobDraft, JobActive, JobPaused} {
		if s.IsTerminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}

func TestMembership_CanManageJobs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		m    CompanyMembership
		want bool
	}{
		{CompanyMembership{Role: MembershipAdmin, IsActive: true}, true},
		{CompanyMembership{Role: MembershipRecruiter, IsActive: true}, true},
		{CompanyMembership{Role: MembershipMember, IsActive: true}, false},
		{CompanyMembership{Role: MembershipAdmin, IsActive: false}, false},
	}
	for _, tt := range tests {
		if got := tt.m.CanManageJobs(); got != tt.want {
			t.Errorf("%s active=%v: got %v, want %v", tt.m.Role, tt.m.IsActive, got, tt.want)
		}
	}
}
