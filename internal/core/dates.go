package core

import "time"

// InputDateLayout is the yyyy-mm-dd format the backend expects for entity
// date fields.
const InputDateLayout = "2006-01-02"

// FormatDate renders a backend date string for display. Unparseable or empty
// values come back empty rather than erroring; dates are presentation only.
func FormatDate(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse(InputDateLayout, s)
	if err != nil {
		// Some endpoints return full timestamps
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return ""
		}
	}
	return t.Format("Jan 2, 2006")
}

// CurrentDate returns today's date in the backend's input format.
func CurrentDate() string {
	return time.Now().Format(InputDateLayout)
}

// ValidInputDate reports whether s is a well-formed yyyy-mm-dd date.
func ValidInputDate(s string) bool {
	_, err := time.Parse(InputDateLayout, s)
	return err == nil
}
