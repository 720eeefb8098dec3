package registering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gsproject/grocery-spending-api/internal/domain"
)

func TestDraft(t *testing.T) {
	draft := NewDraft()

	item, err := draft.AddManual("Banana Prata", dec("1.235"), "kg", dec("5.49"))
	require.NoError(t, err)
	assert.Equal(t, domain.ManualItemCode, item.Code)
	assert.Equal(t, "KG", item.Unit)
	assert.Equal(t, "6.78", item.TotalPrice.StringFixed(2))

	_, err = draft.AddManual("Detergente", dec("2"), "UN", dec("2.39"))
	require.NoError(t, err)

	draft.Add(ItemInput{Code: "789", Description: "Café", Quantity: dec("1"), Unit: "UN", UnitPrice: dec("18.90"), TotalPrice: decPtr("18.90")})

	assert.Equal(t, 3, draft.Len())
	assert.Equal(t, "30.46", draft.Total().StringFixed(2))

	assert.True(t, draft.RemoveLast())
	assert.Equal(t, 2, draft.Len())
	assert.Equal(t, "11.56", draft.Total().StringFixed(2))

	items := draft.Items()
	items[0].Description = "alterado"
	assert.Equal(t, "Banana Prata", draft.Items()[0].Description)

	draft.Reset()
	assert.Equal(t, 0, draft.Len())
	assert.False(t, draft.RemoveLast())
	assert.True(t, draft.Total().IsZero())
}

func TestDraft_AddManualValidation(t *testing.T) {
	tests := []struct {
		name        string
		description string
		quantity    string
		unit        string
		unitPrice   string
		field       string
	}{
		{name: "Unidade não suportada", description: "Arroz", quantity: "1", unit: "CX", unitPrice: "10", field: "unit"},
		{name: "Quantidade zero", description: "Arroz", quantity: "0", unit: "UN", unitPrice: "10", field: "quantity"},
		{name: "Preço zero", description: "Arroz", quantity: "1", unit: "UN", unitPrice: "0", field: "unit_price"},
		{name: "Sem descrição", description: " ", quantity: "1", unit: "UN", unitPrice: "10", field: "description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := NewDraft()

			_, err := draft.AddManual(tt.description, dec(tt.quantity), tt.unit, dec(tt.unitPrice))

			var validation *domain.ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.field, validation.Field)
			assert.Equal(t, 0, draft.Len())
		})
	}
}
