package action

// Report describes the outcome of one dispatched action. An action whose
// primary write succeeded but whose secondary steps failed (cascade deletes,
// prompt deactivation, text publish/unpublish) returns a report carrying
// warnings instead of an error; the committed state change is kept and no
// automatic retry happens.
type Report struct {
	Action   string   `json:"action"`
	Warnings []string `json:"warnings,omitempty"`
}

func newReport(action string) *Report {
	return &Report{Action: action}
}

func (r *Report) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
}
