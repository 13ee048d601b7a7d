package pdf

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/auraskin-api/internal/domain/entity"
)

func TestGenerateCatalogPDF(t *testing.T) {
	products := []entity.Product{
		{ID: 1, Name: "Hydrating Serum", Description: "Serum ringan", Price: decimal.NewFromInt(375000), Stock: 12, Rating: 4.8, Reviews: 120},
		{ID: 2, Name: "Nourish Cream", Description: strings.Repeat("krim ", 40), Price: decimal.NewFromInt(630000)},
	}

	out, err := NewCatalogPDFGenerator().GenerateCatalogPDF(context.Background(), "AuraSkin", time.Now(), products)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un PDF")
}

func TestGenerateCatalogPDF_CatalogoVacio(t *testing.T) {
	out, err := NewCatalogPDFGenerator().GenerateCatalogPDF(context.Background(), "AuraSkin", time.Now(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateCatalogPDF_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewCatalogPDFGenerator().GenerateCatalogPDF(ctx, "AuraSkin", time.Now(), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTruncateYRating(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "abcd...", truncate("abcdefghij", 7))
	assert.Equal(t, "-", formatRating(0, 0))
	assert.Equal(t, "4.8 (120)", formatRating(4.8, 120))
}
