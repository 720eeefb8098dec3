package repository

import (
	"fmt"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

// uniqueViolation é o código do Postgres para violação de chave única
const uniqueViolation = "23505"

// wrapDBError anexa o código do Postgres à mensagem quando disponível
func wrapDBError(err error, message string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return errors.Wrap(err, message)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
