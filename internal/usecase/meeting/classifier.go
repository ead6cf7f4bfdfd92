package meeting

import (
	"strconv"
	"strings"
	"time"

	"github.com/ross7390/meeting-maestro/internal/domain/entities"
)

var completionTerms = []string{"completed", "done", "finished", "delivered", "submitted", "resolved"}

var inProgressTerms = []string{"working on", "in progress", "started", "began", "initiated", "ongoing"}

// ClassifyStatus derives an action item's status from its task text and due
// date. Deterministic and pure; called once at load time for items that do
// not already carry an explicit status.
//
// Keyword matches win over date escalation: a past due date upgrades Pending
// to In Progress but never downgrades Completed or overrides a keyword match.
func ClassifyStatus(item entities.ActionItem, now time.Time) entities.ActionItemStatus {
	status := entities.ActionItemStatusPending

	task := strings.ToLower(item.Task)
	if containsAny(task, completionTerms) {
		status = entities.ActionItemStatusCompleted
	} else if containsAny(task, inProgressTerms) {
		status = entities.ActionItemStatusInProgress
	}

	if status == entities.ActionItemStatusPending {
		if due, ok := parseDueDate(item.DueDate); ok {
			today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
			if due.Before(today) {
				status = entities.ActionItemStatusInProgress
			}
		}
	}

	return status
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

// parseDueDate accepts MM/DD/YYYY, without requiring zero padding. Free-text
// due dates fail the parse and are ignored by the classifier.
func parseDueDate(s string) (time.Time, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	month, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	day, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	year, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
}

// FormatDate renders a time as MM/DD/YYYY, the record's date format.
func FormatDate(t time.Time) string {
	return t.Format("01/02/2006")
}
