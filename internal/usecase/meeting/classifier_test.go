package meeting

import (
	"testing"
	"time"

	"github.com/ross7390/meeting-maestro/internal/domain/entities"
)

var classifierNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.Local)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name    string
		task    string
		dueDate string
		want    entities.ActionItemStatus
	}{
		{"completion keyword wins over past due date", "report delivered", "01/01/2025", entities.ActionItemStatusCompleted},
		{"completion keyword with future due date", "report delivered", "12/31/2025", entities.ActionItemStatusCompleted},
		{"completion keyword case-insensitive", "Report DONE and shipped", "", entities.ActionItemStatusCompleted},
		{"in-progress keyword with future due date", "ongoing review", "12/31/2025", entities.ActionItemStatusInProgress},
		{"in-progress keyword with past due date", "started drafting", "01/01/2025", entities.ActionItemStatusInProgress},
		{"no keyword, past due date escalates", "draft the roadmap", "01/01/2025", entities.ActionItemStatusInProgress},
		{"no keyword, future due date stays pending", "draft the roadmap", "12/31/2025", entities.ActionItemStatusPending},
		{"no keyword, due today stays pending", "draft the roadmap", "06/15/2025", entities.ActionItemStatusPending},
		{"no keyword, unpadded past date escalates", "draft the roadmap", "1/2/2025", entities.ActionItemStatusInProgress},
		{"free-text due date ignored", "draft the roadmap", "next Friday", entities.ActionItemStatusPending},
		{"empty due date ignored", "draft the roadmap", "", entities.ActionItemStatusPending},
		{"nonsense numeric date ignored", "draft the roadmap", "13/45/2025", entities.ActionItemStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := entities.ActionItem{Task: tt.task, DueDate: tt.dueDate}
			if got := ClassifyStatus(item, classifierNow); got != tt.want {
				t.Fatalf("ClassifyStatus(%q, %q) = %q, want %q", tt.task, tt.dueDate, got, tt.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)); got != "03/05/2025" {
		t.Fatalf("FormatDate = %q", got)
	}
}
