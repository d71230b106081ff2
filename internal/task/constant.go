package task

// DefaultPageSize is the number of tasks shown per listing page.
const DefaultPageSize = 5

// MaxSnoozeMinutes bounds a single snooze (one year).
const MaxSnoozeMinutes = 525600
