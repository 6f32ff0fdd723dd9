package taskparse_test

import (
	"testing"

	"pomoflow/pkg/taskparse"
)

func TestExtractPriority(t *testing.T) {
	tests := []struct {
		name string
		text string
		want taskparse.Priority
	}{
		{"Urgente", "Reunião urgente amanhã", taskparse.PriorityHigh},
		{"Importante", "Tarefa importante", taskparse.PriorityHigh},
		{"Crítico", "Projeto crítico", taskparse.PriorityHigh},
		{"Alta prioridade", "Entregar documento, alta prioridade", taskparse.PriorityHigh},
		{"Double exclamation", "Fazer isso logo!!", taskparse.PriorityHigh},
		{"Hoje is a priority cue", "Comprar pão hoje", taskparse.PriorityHigh},
		{"Agora", "Responder agora", taskparse.PriorityHigh},
		{"Baixa prioridade", "Organizar gaveta, baixa prioridade", taskparse.PriorityLow},
		{"Quando possível", "Ler livro quando possível", taskparse.PriorityLow},
		{"Sem pressa", "Arrumar quarto sem pressa", taskparse.PriorityLow},
		{"Eventualmente", "Eventualmente revisar código", taskparse.PriorityLow},
		{"Opcional", "Tarefa opcional", taskparse.PriorityLow},
		{"Default medium", "Fazer reunião amanhã", taskparse.PriorityMedium},
		{"High wins over low", "Urgente mas sem pressa", taskparse.PriorityHigh},
		{"Empty text", "", taskparse.PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := taskparse.ExtractPriority(tt.text); got != tt.want {
				t.Errorf("ExtractPriority(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractPriorityCaseInsensitive(t *testing.T) {
	if taskparse.ExtractPriority("URGENTE") != taskparse.ExtractPriority("urgente") {
		t.Error("priority extraction is case-sensitive")
	}
	if got := taskparse.ExtractPriority("URGENTE"); got != taskparse.PriorityHigh {
		t.Errorf("ExtractPriority(URGENTE) = %q, want high", got)
	}
}
