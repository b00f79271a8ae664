package alerts

import (
	"fmt"
	"math"
	"time"

	"github.com/Clawdbot7-epcnum/CarryVault/internal/model"
)

// Expiry thresholds in days. Fixed constants; jurisdictions do not get
// per-state windows.
const (
	// UrgentWindowDays marks a permit as urgent (high priority).
	UrgentWindowDays = 30

	// RenewalWindowDays marks a permit as expiring soon (medium priority).
	RenewalWindowDays = 90
)

// Priority ranks an alert for display.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)

// Alert is a single permit-expiry advisory.
type Alert struct {
	PermitID   int64    `json:"permitId"`
	PermitType string   `json:"permitType"`
	Priority   Priority `json:"priority"`
	Message    string   `json:"message"`
	DaysUntil  int      `json:"daysUntil"`
}

// DaysUntil returns the fractional number of calendar days between now and
// the expiration date. The second return is false when the date is empty
// or does not parse; such permits never alert.
func DaysUntil(expiration string, now time.Time) (float64, bool) {
	if expiration == "" {
		return 0, false
	}
	exp, err := time.Parse(model.DateFormat, expiration)
	if err != nil {
		return 0, false
	}
	return exp.Sub(now).Hours() / 24, true
}

// ForPermits produces the alert list for a permit snapshot.
//
// A permit within UrgentWindowDays is high priority; within
// RenewalWindowDays, medium. A permit that is already expired (negative
// days) is urgent, not dropped. Alerts are emitted in permit order.
func ForPermits(permits []model.Permit, now time.Time) []Alert {
	alerts := []Alert{}
	for _, p := range permits {
		days, ok := DaysUntil(p.ExpirationDate, now)
		if !ok || !expiringSoon(days) {
			continue
		}

		ceilDays := int(math.Ceil(days))
		alert := Alert{
			PermitID:   p.ID,
			PermitType: p.Type,
			DaysUntil:  ceilDays,
		}
		if days <= UrgentWindowDays {
			alert.Priority = PriorityHigh
			alert.Message = fmt.Sprintf("%s expiring in %d days", p.Type, ceilDays)
		} else {
			alert.Priority = PriorityMedium
			alert.Message = fmt.Sprintf("%s renewal reminder, expires in %d days", p.Type, ceilDays)
		}
		alerts = append(alerts, alert)
	}
	return alerts
}

// ExpiringSoonCount returns the dashboard badge count: the number of
// permits with daysUntil <= RenewalWindowDays. Kept consistent with
// ForPermits via the shared expiringSoon helper.
func ExpiringSoonCount(permits []model.Permit, now time.Time) int {
	count := 0
	for _, p := range permits {
		days, ok := DaysUntil(p.ExpirationDate, now)
		if ok && expiringSoon(days) {
			count++
		}
	}
	return count
}

// expiringSoon is the single definition of "expiring soon".
func expiringSoon(days float64) bool {
	return days <= RenewalWindowDays
}
