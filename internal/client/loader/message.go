package loader

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/ejcdigital/internal/client/client"
)

// Message turns a fetch error into the text shown inline on a page.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if code, ok := client.StatusCode(err); ok {
		return fmt.Sprintf("Erro no servidor (%d)", code)
	}
	switch {
	case errors.Is(err, client.ErrConnection):
		return "Erro ao conectar com o servidor."
	case errors.Is(err, client.ErrDataFormat):
		return "Resposta do servidor em formato inválido."
	case errors.Is(err, client.ErrSchema):
		return "Resposta do servidor com estrutura inesperada."
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "A requisição foi interrompida."
	default:
		return "Erro ao carregar os dados."
	}
}
