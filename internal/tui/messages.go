package tui

import (
	"github.com/MKhiriev/fleet-tracker/models"
)

// NavigateTo switches the root router to another page. An optional Payload
// is delivered to the destination page right after the switch.
type NavigateTo struct {
	Page    string
	Payload interface{}
}

// LoginResult finishes the authentication flow on success.
type LoginResult struct {
	User models.User
	Err  error
}

type RegisterResult struct {
	User models.User
	Err  error
}

// RegisterSuccessNotice is shown on the menu page after registration.
type RegisterSuccessNotice struct {
	Email string
}

type reportsLoadedMsg struct {
	reports   []models.Report
	fromCache bool
	err       error
}

type transitionDoneMsg struct {
	action string
	report models.Report
	err    error
}

type reportCreatedMsg struct {
	report models.Report
	err    error
}
