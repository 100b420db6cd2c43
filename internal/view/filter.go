// Package view maps cached collections through fixed per-entity selectors.
// Every function is pure: same input, same ordered output, no side effects.
package view

import "github.com/quillhaven/moderation-backend/internal/domain"

// Selector is a fixed per-entity filter choice.
type Selector string

const (
	SelectAll       Selector = "all"
	SelectActive    Selector = "active"
	SelectHidden    Selector = "hidden"
	SelectPending   Selector = "pending"
	SelectApproved  Selector = "approved"
	SelectRejected  Selector = "rejected"
	SelectAddressed Selector = "addressed"
)

func filter[T any](records []T, keep func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// Posts selects {all, active, hidden}; unknown selectors fall back to all.
func Posts(records []domain.Post, sel Selector) []domain.Post {
	switch sel {
	case SelectActive:
		return filter(records, func(r domain.Post) bool { return r.IsActive })
	case SelectHidden:
		return filter(records, func(r domain.Post) bool { return !r.IsActive })
	default:
		return filter(records, func(domain.Post) bool { return true })
	}
}

// Marginalia selects {all, active, hidden}.
func Marginalia(records []domain.Marginalia, sel Selector) []domain.Marginalia {
	switch sel {
	case SelectActive:
		return filter(records, func(r domain.Marginalia) bool { return r.IsActive })
	case SelectHidden:
		return filter(records, func(r domain.Marginalia) bool { return !r.IsActive })
	default:
		return filter(records, func(domain.Marginalia) bool { return true })
	}
}

// Postcards selects {all, active, hidden}.
func Postcards(records []domain.Postcard, sel Selector) []domain.Postcard {
	switch sel {
	case SelectActive:
		return filter(records, func(r domain.Postcard) bool { return r.IsActive })
	case SelectHidden:
		return filter(records, func(r domain.Postcard) bool { return !r.IsActive })
	default:
		return filter(records, func(domain.Postcard) bool { return true })
	}
}

// Discussions selects {all, active, hidden}.
func Discussions(records []domain.Discussion, sel Selector) []domain.Discussion {
	switch sel {
	case SelectActive:
		return filter(records, func(r domain.Discussion) bool { return r.IsActive })
	case SelectHidden:
		return filter(records, func(r domain.Discussion) bool { return !r.IsActive })
	default:
		return filter(records, func(domain.Discussion) bool { return true })
	}
}

// Submissions selects {all, pending, approved, rejected}.
func Submissions(records []domain.TextSubmission, sel Selector) []domain.TextSubmission {
	switch sel {
	case SelectPending:
		return filter(records, func(r domain.TextSubmission) bool { return r.Status == domain.SubmissionPending })
	case SelectApproved:
		return filter(records, func(r domain.TextSubmission) bool { return r.Status == domain.SubmissionApproved })
	case SelectRejected:
		return filter(records, func(r domain.TextSubmission) bool { return r.Status == domain.SubmissionRejected })
	default:
		return filter(records, func(domain.TextSubmission) bool { return true })
	}
}

// Contacts selects {all, pending, addressed}.
func Contacts(records []domain.ContactMessage, sel Selector) []domain.ContactMessage {
	switch sel {
	case SelectPending:
		return filter(records, func(r domain.ContactMessage) bool { return !r.IsAddressed })
	case SelectAddressed:
		return filter(records, func(r domain.ContactMessage) bool { return r.IsAddressed })
	default:
		return filter(records, func(domain.ContactMessage) bool { return true })
	}
}
