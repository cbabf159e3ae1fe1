package controllers

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"interviewscheduler/internal/domain"
)

const (
	maxNameLength  = 200
	maxEmailLength = 200
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// phoneRegex matches 10 or 11 digits (area code plus number).
var phoneRegex = regexp.MustCompile(`^\d{10,11}$`)

// ContactRequest is the request body for creating or updating an employer or candidate.
type ContactRequest struct {
	Name  string  `json:"name" example:"Tech Solutions RH"`
	Email *string `json:"email" example:"rh@techsolutions.com"`
	Phone *string `json:"phone" example:"11987654321"`
}

// Validate implements Validator.
func (c ContactRequest) Validate() []string {
	var errs []string
	name := strings.TrimSpace(c.Name)
	if name == "" {
		errs = append(errs, "name is required")
	} else if utf8.RuneCountInString(name) > maxNameLength {
		errs = append(errs, fmt.Sprintf("name must be at most %d characters", maxNameLength))
	}
	if c.Email != nil {
		if e := strings.TrimSpace(*c.Email); e != "" {
			if len(e) > maxEmailLength {
				errs = append(errs, fmt.Sprintf("email must be at most %d characters", maxEmailLength))
			} else if !emailRegex.MatchString(e) {
				errs = append(errs, "email format is invalid")
			}
		}
	}
	if c.Phone != nil {
		if p := strings.TrimSpace(*c.Phone); p != "" && !phoneRegex.MatchString(p) {
			errs = append(errs, "phone must have 10 or 11 digits")
		}
	}
	return errs
}

func (c ContactRequest) contact() domain.Contact {
	return domain.Contact{Name: c.Name, Email: c.Email, Phone: c.Phone}
}
