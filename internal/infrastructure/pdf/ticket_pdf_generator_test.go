package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "0,95", formatMoney("0.95"))
	assert.Equal(t, "25.000,50", formatMoney("25000.50"))
	assert.Equal(t, "1.000.000", formatMoney("1000000"))
	assert.Equal(t, "-1.200,00", formatMoney("-1200.00"))
}

func TestGenerateTicketPDF(t *testing.T) {
	ticket := &entity.Ticket{
		ID:       12,
		Date:     time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Discount: decimal.RequireFromString("5"),
		Location: &entity.Location{Address: "Calle Feria 1", City: "Sevilla", Supermarket: &entity.Supermarket{Name: "Mercadona"}},
		Products: []*entity.Product{{ID: 1, Name: "Leche", Price: decimal.RequireFromString("0.95")}},
	}

	b, err := NewTicketPDFGenerator().GenerateTicketPDF(context.Background(), ticket)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(b[:4]))
}

func TestGenerateTicketPDF_SinUbicacionNiProductos(t *testing.T) {
	b, err := NewTicketPDFGenerator().GenerateTicketPDF(context.Background(), &entity.Ticket{ID: 1})
	require.NoError(t, err)
	assert.NotEmpty(t, b)

	_, err = NewTicketPDFGenerator().GenerateTicketPDF(context.Background(), nil)
	assert.Error(t, err)
}
