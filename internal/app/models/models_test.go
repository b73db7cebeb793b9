package models

import "testing"

func TestCanTransitionUserStatus(t *testing.T) {
	cases := []struct {
		from, to UserStatus
		want     bool
	}{
		{UserStatusPending, UserStatusApproved, true},
		{UserStatusPending, UserStatusRejected, true},
		{UserStatusPending, UserStatusInactive, true},
		{UserStatusApproved, UserStatusInactive, true},
		{UserStatusRejected, UserStatusInactive, true},
		{UserStatusApproved, UserStatusPending, false},
		{UserStatusApproved, UserStatusRejected, false},
		{UserStatusInactive, UserStatusApproved, false},
		{UserStatusApproved, UserStatusApproved, true}, // same status is a no-op
	}
	for _, c := range cases {
		if got := CanTransitionUserStatus(c.from, c.to); got != c.want {
			t.Errorf("CanTransitionUserStatus(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestCanTransitionApproval(t *testing.T) {
	cases := []struct {
		from, to ApprovalStatus
		want     bool
	}{
		{ApprovalPending, ApprovalApproved, true},
		{ApprovalPending, ApprovalRejected, true},
		{ApprovalApproved, ApprovalRejected, false},
		{ApprovalRejected, ApprovalApproved, false},
		{ApprovalApproved, ApprovalPending, false},
		{ApprovalApproved, ApprovalApproved, true},
	}
	for _, c := range cases {
		if got := CanTransitionApproval(c.from, c.to); got != c.want {
			t.Errorf("CanTransitionApproval(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestCanTransitionApplication(t *testing.T) {
	cases := []struct {
		from, to ApplicationStatus
		want     bool
	}{
		{ApplicationApplied, ApplicationShortlisted, true},
		{ApplicationApplied, ApplicationFinalSelected, true},
		{ApplicationApplied, ApplicationFinalRejected, true},
		{ApplicationShortlisted, ApplicationFinalSelected, true},
		{ApplicationShortlisted, ApplicationFinalRejected, true},
		{ApplicationShortlisted, ApplicationApplied, false},
		{ApplicationFinalSelected, ApplicationApplied, false},
		{ApplicationFinalSelected, ApplicationFinalRejected, false},
		{ApplicationFinalRejected, ApplicationFinalSelected, false},
		{ApplicationFinalSelected, ApplicationFinalSelected, true},
	}
	for _, c := range cases {
		if got := CanTransitionApplication(c.from, c.to); got != c.want {
			t.Errorf("CanTransitionApplication(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestEnumValidity(t *testing.T) {
	if !RoleAlumni.IsValid() || RoleType("WIZARD").IsValid() {
		t.Error("RoleType.IsValid wrong")
	}
	if !OpportunityMentorship.IsValid() || OpportunityType("INTERNSHIP").IsValid() {
		t.Error("OpportunityType.IsValid wrong")
	}
	if !RecommendationNotRecommended.IsValid() || Recommendation("MAYBE").IsValid() {
		t.Error("Recommendation.IsValid wrong")
	}
	if !SeverityError.IsValid() || Severity("SHOUTING").IsValid() {
		t.Error("Severity.IsValid wrong")
	}
}
