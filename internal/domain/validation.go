package domain

// ValidationKind classifies a business-rule failure.
type ValidationKind string

const (
	KindInvalidEnumValue     ValidationKind = "invalid_enum_value"
	KindReferenceNotFound    ValidationKind = "reference_not_found"
	KindPastSchedule         ValidationKind = "past_schedule"
	KindDurationOutOfRange   ValidationKind = "duration_out_of_range"
	KindMissingRequiredField ValidationKind = "missing_required_field"
	KindInvalidLink          ValidationKind = "invalid_link"
	KindScheduleConflict     ValidationKind = "schedule_conflict"
	KindOutsideBusinessHours ValidationKind = "outside_business_hours"
)

// ValidationError is a recoverable business-rule failure reported to the caller.
// Match it with errors.As and branch on Kind.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func NewValidationError(kind ValidationKind, message string) *ValidationError {
	return &ValidationError{Kind: kind, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}
