package entities

import (
	"errors"
	"math"
	"strings"
	"time"
)

const (
	CivilDateLayout = "2006-01-02"

	// Due dates within this many days (inclusive) are flagged as expiring.
	ExpiringSoonDays = 5
)

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

type DueState string

const (
	DueStateActive       DueState = "ativo"
	DueStateExpiringSoon DueState = "vence_em_breve"
	DueStateExpired      DueState = "vencido"
)

// Severity drives the badge color in the panel.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
	SeverityInfo    Severity = "info"
	SeverityDefault Severity = "default"
)

type DueStatus struct {
	State    DueState `json:"state"`
	Label    string   `json:"label"`
	Severity Severity `json:"severity"`
	DaysLeft int      `json:"days_left"`
}

// CivilDate strips the clock from t, keeping the calendar day as seen in t's
// own location. The result is midnight UTC so day arithmetic is exact.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today is the civil date of now in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc != nil {
		now = now.In(loc)
	}
	return CivilDate(now)
}

// ParseCivilDate accepts YYYY-MM-DD or a full RFC 3339 timestamp.
func ParseCivilDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(CivilDateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return CivilDate(t), nil
	}
	return time.Time{}, ErrInvalidDate
}

func FormatCivilDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(CivilDateLayout)
}

// DaysUntil is ceil((due - today) / 24h) over civil dates.
func DaysUntil(due, today time.Time) int {
	diff := CivilDate(due).Sub(CivilDate(today))
	return int(math.Ceil(diff.Hours() / 24))
}

// ClassifyDueDate applies the 3-way split: negative days are expired, 0..5
// days are expiring soon, anything later is active.
func ClassifyDueDate(due, today time.Time) DueStatus {
	days := DaysUntil(due, today)
	switch {
	case days < 0:
		return DueStatus{State: DueStateExpired, Label: "Vencido", Severity: SeverityDanger, DaysLeft: days}
	case days <= ExpiringSoonDays:
		return DueStatus{State: DueStateExpiringSoon, Label: "Vence em breve", Severity: SeverityWarning, DaysLeft: days}
	default:
		return DueStatus{State: DueStateActive, Label: "Ativo", Severity: SeveritySuccess, DaysLeft: days}
	}
}

// AddMonths moves a due date forward by calendar months. Day overflow rolls
// into the following month (2024-01-31 + 1 month = 2024-03-02).
func AddMonths(due time.Time, months int) time.Time {
	return CivilDate(due).AddDate(0, months, 0)
}
