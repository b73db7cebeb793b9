package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "STUDENT"
	RoleAlumni  RoleType = "ALUMNI"
	RoleAdmin   RoleType = "ADMIN"
)

// IsValid reports whether the role is one of the known roles
func (r RoleType) IsValid() bool {
	switch r {
	case RoleStudent, RoleAlumni, RoleAdmin:
		return true
	}
	return false
}

// UserStatus defines the account lifecycle state
type UserStatus string

const (
	UserStatusPending  UserStatus = "PENDING"
	UserStatusApproved UserStatus = "APPROVED"
	UserStatusRejected UserStatus = "REJECTED"
	UserStatusInactive UserStatus = "INACTIVE"
)

// IsValid reports whether the status is one of the known statuses
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusPending, UserStatusApproved, UserStatusRejected, UserStatusInactive:
		return true
	}
	return false
}

// userStatusTransitions lists the allowed account status moves.
// Deactivation is allowed from any live state.
var userStatusTransitions = map[UserStatus][]UserStatus{
	UserStatusPending:  {UserStatusApproved, UserStatusRejected, UserStatusInactive},
	UserStatusApproved: {UserStatusInactive},
	UserStatusRejected: {UserStatusInactive},
	UserStatusInactive: {},
}

// CanTransitionUserStatus reports whether an account may move from one status to another.
// Same-status updates are treated as no-ops and allowed.
func CanTransitionUserStatus(from, to UserStatus) bool {
	if from == to {
		return true
	}
	for _, allowed := range userStatusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ApprovalStatus defines the moderation state of postings and events
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// IsValid reports whether the approval status is known
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

// CanTransitionApproval reports whether a posting may move between approval states.
// Approval decisions are terminal; same-status updates are no-ops.
func CanTransitionApproval(from, to ApprovalStatus) bool {
	if from == to {
		return true
	}
	return from == ApprovalPending && (to == ApprovalApproved || to == ApprovalRejected)
}

// OpportunityType distinguishes job postings from mentorship offers
type OpportunityType string

const (
	OpportunityJob        OpportunityType = "JOB"
	OpportunityMentorship OpportunityType = "MENTORSHIP"
)

// IsValid reports whether the opportunity type is known
func (t OpportunityType) IsValid() bool {
	return t == OpportunityJob || t == OpportunityMentorship
}

// Recommendation is the alumni screening verdict on an application
type Recommendation string

const (
	RecommendationNone           Recommendation = "NONE"
	RecommendationRecommended    Recommendation = "RECOMMENDED"
	RecommendationNotRecommended Recommendation = "NOT_RECOMMENDED"
)

// IsValid reports whether the recommendation value is known
func (r Recommendation) IsValid() bool {
	switch r {
	case RecommendationNone, RecommendationRecommended, RecommendationNotRecommended:
		return true
	}
	return false
}

// ApplicationStatus is the admin-controlled final decision state
type ApplicationStatus string

const (
	ApplicationApplied       ApplicationStatus = "APPLIED"
	ApplicationShortlisted   ApplicationStatus = "SHORTLISTED"
	ApplicationFinalSelected ApplicationStatus = "FINAL_SELECTED"
	ApplicationFinalRejected ApplicationStatus = "FINAL_REJECTED"
)

// IsValid reports whether the application status is known
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationApplied, ApplicationShortlisted, ApplicationFinalSelected, ApplicationFinalRejected:
		return true
	}
	return false
}

// applicationTransitions lists the forward-only decision moves.
// FINAL_SELECTED and FINAL_REJECTED are terminal.
var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationApplied:     {ApplicationShortlisted, ApplicationFinalSelected, ApplicationFinalRejected},
	ApplicationShortlisted: {ApplicationFinalSelected, ApplicationFinalRejected},
}

// CanTransitionApplication reports whether an application may move between
// decision states. Same-status updates are no-ops.
func CanTransitionApplication(from, to ApplicationStatus) bool {
	if from == to {
		return true
	}
	for _, allowed := range applicationTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Severity classifies a notification for display
type Severity string

const (
	SeverityInfo    Severity = "INFO"
	SeveritySuccess Severity = "SUCCESS"
	SeverityWarning Severity = "WARNING"
	SeverityError   Severity = "ERROR"
)

// IsValid reports whether the severity is known
func (s Severity) IsValid() bool {
	switch s {
	case SeverityInfo, SeveritySuccess, SeverityWarning, SeverityError:
		return true
	}
	return false
}
