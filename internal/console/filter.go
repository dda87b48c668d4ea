package console

import (
	"strings"

	"github.com/elynrose/gpt-cells-app-sub001/internal/models"
)

// The filters below are pure functions over a snapshot slice: they never
// mutate their input and never re-query the store. Empty filter arguments
// match everything.

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// FilterUsers matches the query against email and display name.
func FilterUsers(users []*models.User, query string) []*models.User {
	if query == "" {
		return users
	}
	out := make([]*models.User, 0, len(users))
	for _, u := range users {
		if containsFold(u.Email, query) || containsFold(u.DisplayName, query) {
			out = append(out, u)
		}
	}
	return out
}

// FilterProjects matches the query against name and description, and the
// status exactly when set.
func FilterProjects(projects []*models.Project, query string, status models.ProjectStatus) []*models.Project {
	if query == "" && status == "" {
		return projects
	}
	out := make([]*models.Project, 0, len(projects))
	for _, p := range projects {
		if status != "" && p.Status != status {
			continue
		}
		if query != "" && !containsFold(p.Name, query) && !containsFold(p.Description, query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterModels matches the query against name, id and original id, and the
// type and status exactly when set.
func FilterModels(entries []*models.Model, query string, modelType models.ModelType, status models.ModelStatus) []*models.Model {
	if query == "" && modelType == "" && status == "" {
		return entries
	}
	out := make([]*models.Model, 0, len(entries))
	for _, m := range entries {
		if modelType != "" && m.Type != modelType {
			continue
		}
		if status != "" && m.Status != status {
			continue
		}
		if query != "" && !containsFold(m.Name, query) && !containsFold(m.ID, query) && !containsFold(m.OriginalID, query) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// FilterPlans keeps only active plans when activeOnly is set.
func FilterPlans(plans []*models.Plan, activeOnly bool) []*models.Plan {
	if !activeOnly {
		return plans
	}
	out := make([]*models.Plan, 0, len(plans))
	for _, p := range plans {
		if p.Active {
			out = append(out, p)
		}
	}
	return out
}

// FilterPayments matches the status exactly when set and the query against
// user email and description.
func FilterPayments(payments []*models.Payment, status models.PaymentStatus, query string) []*models.Payment {
	if status == "" && query == "" {
		return payments
	}
	out := make([]*models.Payment, 0, len(payments))
	for _, p := range payments {
		if status != "" && p.Status != status {
			continue
		}
		if query != "" && !containsFold(p.UserEmail, query) && !containsFold(p.Description, query) {
			continue
		}
		out = append(out, p)
	}
	return out
}
