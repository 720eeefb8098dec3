package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoMarkets       = errors.New("nenhum mercado cadastrado")
	ErrMarketNotFound  = errors.New("mercado não encontrado")
	ErrNoItems         = errors.New("compra sem itens válidos")
	ErrDuplicateMarket = errors.New("mercado já cadastrado nesta cidade")
)

// DocumentReadError indica que o documento enviado não pôde ser lido. Não se
// confunde com um PDF legível em que nenhum item foi encontrado.
type DocumentReadError struct {
	Err error
}

func (e *DocumentReadError) Error() string {
	if e.Err == nil {
		return "não foi possível ler o documento"
	}
	return fmt.Sprintf("não foi possível ler o documento: %v", e.Err)
}

func (e *DocumentReadError) Unwrap() error {
	return e.Err
}

// ValidationError aponta o campo (e, quando for o caso, o item) que violou uma
// regra de domínio. Index começa em 1; zero significa erro do cabeçalho.
type ValidationError struct {
	Field  string `json:"field"`
	Index  int    `json:"index,omitempty"`
	Value  any    `json:"value,omitempty"`
	Reason string `json:"reason"`
	Err    error  `json:"-"`
}

func NewValidationError(field string, value any, reason string) *ValidationError {
	return &ValidationError{
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// Wrap associa um erro sentinela para uso com errors.Is
func (e *ValidationError) Wrap(err error) *ValidationError {
	e.Err = err
	return e
}

// AtIndex devolve uma cópia do erro associada ao item informado
func (e *ValidationError) AtIndex(index int) *ValidationError {
	cp := *e
	cp.Index = index
	return &cp
}

func (e *ValidationError) Error() string {
	if e.Index > 0 {
		return fmt.Sprintf("item %d: campo %s inválido (%v): %s", e.Index, e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("campo %s inválido (%v): %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// PreconditionError indica que falta um pré-requisito para a operação
type PreconditionError struct {
	Requirement string
	Err         error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("pré-requisito não atendido: %s", e.Requirement)
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

// PersistenceError envolve uma falha de escrita ou leitura no repositório
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("erro de persistência em %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// InvalidRangeError é devolvido quando a data de início é posterior à de fim
type InvalidRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("a data de início (%s) deve ser menor ou igual à data de fim (%s)",
		e.Start.Format(time.DateOnly), e.End.Format(time.DateOnly))
}
