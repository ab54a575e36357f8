package application

import "github.com/crypticbroker/platform-api/internal/domain/user"

// Relationship captures the facts about an actor the transition rules depend
// on: whether they own the project behind the application and whether they
// belong to the target organization. Callers resolve both from storage before
// asking any rule a question.
type Relationship struct {
	ProjectOwner bool
	OrgMember    bool
}

// reviewerStatuses are the transitions available to target-org members.
// Project owners may only submit; reviewers move an application through the
// review stages. The rules gate on role only, not on the current status, so a
// permitted actor may jump stages (matching the historical review behavior).
var reviewerStatuses = map[Status]bool{
	StatusReviewing:    true,
	StatusInterviewing: true,
	StatusAccepted:     true,
	StatusRejected:     true,
}

// CanTransition decides whether the actor may set the application to the
// requested status. Admins bypass the role gates entirely.
func CanTransition(actor user.Actor, rel Relationship, requested Status) bool {
	if actor.IsAdmin() {
		return true
	}
	if rel.ProjectOwner && requested != StatusSubmitted {
		return false
	}
	if rel.OrgMember && !reviewerStatuses[requested] {
		return false
	}
	return rel.ProjectOwner || rel.OrgMember
}

// CanView: project owner, target-org member, or admin.
func CanView(actor user.Actor, rel Relationship) bool {
	return actor.IsAdmin() || rel.ProjectOwner || rel.OrgMember
}

// CanDelete: project owner or admin, and only while the application is still
// a draft. The two failures are distinguishable via DeniedBecauseNotDraft.
func CanDelete(actor user.Actor, rel Relationship, current Status) bool {
	if !rel.ProjectOwner && !actor.IsAdmin() {
		return false
	}
	return current == StatusDraft
}

// DeniedBecauseNotDraft reports whether a delete was blocked only by the
// status, i.e. the actor itself was allowed.
func DeniedBecauseNotDraft(actor user.Actor, rel Relationship, current Status) bool {
	return (rel.ProjectOwner || actor.IsAdmin()) && current != StatusDraft
}
