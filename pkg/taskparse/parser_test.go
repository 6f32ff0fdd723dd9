package taskparse_test

import (
	"strings"
	"testing"
	"time"

	"pomoflow/pkg/recurrence"
	"pomoflow/pkg/taskparse"
)

func TestNewParser(t *testing.T) {
	if _, err := taskparse.NewParser("America/Sao_Paulo"); err != nil {
		t.Fatalf("unexpected error for valid timezone: %v", err)
	}
	if _, err := taskparse.NewParser("Invalid/Zone"); err == nil {
		t.Fatal("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := taskparse.NewParser("UTC")
	// Wednesday, June 11 2025.
	now := time.Date(2025, 6, 11, 15, 30, 0, 0, time.UTC)

	t.Run("Full signal sentence", func(t *testing.T) {
		got := parser.Parse("Reunião urgente amanhã às 14h, 2 horas", now)

		if got.Priority != taskparse.PriorityHigh {
			t.Errorf("Priority = %q, want high", got.Priority)
		}
		if got.EstimatedMinutes == nil || *got.EstimatedMinutes != 120 {
			t.Errorf("EstimatedMinutes = %v, want 120", got.EstimatedMinutes)
		}
		want := time.Date(2025, 6, 12, 14, 0, 0, 0, time.UTC)
		if got.DueDate == nil || !got.DueDate.Equal(want) {
			t.Errorf("DueDate = %v, want %v", got.DueDate, want)
		}
		if got.Description != "Reunião urgente amanhã às 14h, 2 horas" {
			t.Errorf("Description = %q, want raw input", got.Description)
		}
		for _, forbidden := range []string{"urgente", "amanhã", "14h"} {
			if strings.Contains(strings.ToLower(got.Title), forbidden) {
				t.Errorf("Title %q still contains %q", got.Title, forbidden)
			}
		}
		if got.IsRecurring || got.RecurrencePattern != nil {
			t.Errorf("unexpected recurrence: %v %v", got.IsRecurring, got.RecurrencePattern)
		}
	})

	t.Run("Recurring task", func(t *testing.T) {
		got := parser.Parse("Exercício todo dia", now)

		if !got.IsRecurring {
			t.Fatal("IsRecurring = false, want true")
		}
		if got.RecurrencePattern == nil || *got.RecurrencePattern != recurrence.Daily {
			t.Errorf("RecurrencePattern = %v, want daily", got.RecurrencePattern)
		}
		if got.Title != "Exercício" {
			t.Errorf("Title = %q, want Exercício", got.Title)
		}
	})

	t.Run("Invalid date becomes nil not December", func(t *testing.T) {
		got := parser.Parse("Entregar projeto 31/11", now)
		if got.DueDate != nil {
			t.Errorf("DueDate = %v, want nil for 31/11", got.DueDate)
		}
		if got.Priority != taskparse.PriorityMedium {
			t.Errorf("Priority = %q, want medium", got.Priority)
		}
	})

	t.Run("Plain text yields defaults", func(t *testing.T) {
		got := parser.Parse("Comprar presente", now)

		if got.DueDate != nil {
			t.Errorf("DueDate = %v, want nil", got.DueDate)
		}
		if got.EstimatedMinutes != nil {
			t.Errorf("EstimatedMinutes = %v, want nil", got.EstimatedMinutes)
		}
		if got.Priority != taskparse.PriorityMedium {
			t.Errorf("Priority = %q, want medium", got.Priority)
		}
		if got.IsRecurring || got.RecurrencePattern != nil {
			t.Error("unexpected recurrence on plain text")
		}
		if got.Title != "Comprar presente" {
			t.Errorf("Title = %q, want Comprar presente", got.Title)
		}
	})

	t.Run("Pattern nil iff not recurring", func(t *testing.T) {
		for _, text := range []string{"Comprar pão", "Relatório mensal", "Standup dias úteis", "Ler toda semana"} {
			got := parser.Parse(text, now)
			if got.IsRecurring != (got.RecurrencePattern != nil) {
				t.Errorf("Parse(%q): IsRecurring=%v but RecurrencePattern=%v", text, got.IsRecurring, got.RecurrencePattern)
			}
		}
	})
}
