package domain

import (
	"fmt"
	"time"
)

// Market é um estabelecimento compartilhado entre os usuários. Não pertence a
// nenhuma compra; o cabeçalho apenas referencia o seu ID.
type Market struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	City         string    `json:"city"`
	Address      *string   `json:"address,omitempty"`
	Neighborhood *string   `json:"neighborhood,omitempty"`
	State        *string   `json:"state,omitempty"`
	ZipCode      *string   `json:"zip_code,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Label devolve o rótulo "Nome - Cidade" usado nas listas de seleção
func (m *Market) Label() string {
	return fmt.Sprintf("%s - %s", m.Name, m.City)
}

type CreateMarketRequest struct {
	Name         string  `json:"name"`
	City         string  `json:"city"`
	Address      *string `json:"address,omitempty"`
	Neighborhood *string `json:"neighborhood,omitempty"`
	State        *string `json:"state,omitempty"`
	ZipCode      *string `json:"zip_code,omitempty"`
}
