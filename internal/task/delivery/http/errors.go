package http

import (
	"pomoflow/internal/task"
	"pomoflow/pkg/calendar"
	pkgErrors "pomoflow/pkg/errors"
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrEmptyInput:
		return pkgErrors.NewHTTPError(400, "Texto da tarefa é obrigatório")
	case task.ErrTitleRequired:
		return pkgErrors.NewHTTPError(400, "Título da tarefa é obrigatório")
	case task.ErrInvalidDueDate:
		return pkgErrors.NewHTTPError(400, calendar.ErrMsgInvalidDate)
	case task.ErrInvalidPriority:
		return pkgErrors.NewHTTPError(400, "Prioridade inválida")
	case task.ErrInvalidRecurrence:
		return pkgErrors.NewHTTPError(400, "Padrão de recorrência inválido")
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(404, "Tarefa não encontrada")
	case task.ErrAlreadyCompleted:
		return pkgErrors.NewHTTPError(409, "Tarefa já concluída")
	default:
		return pkgErrors.NewHTTPError(500, "Erro interno")
	}
}
