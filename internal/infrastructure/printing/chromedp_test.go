package printing

import (
	"context"
	"testing"
	"time"

	"github.com/autenticco/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChromedpRenderer_Defaults(t *testing.T) {
	r := NewChromedpRenderer(config.PrintingConfig{}, nil)
	defer r.Close()

	assert.Equal(t, defaultChromeTimeout, r.timeout)
	assert.NotNil(t, r.logger)
	assert.NotNil(t, r.allocCtx)

	r2 := NewChromedpRenderer(config.PrintingConfig{Timeout: 5 * time.Second, NoSandbox: true}, nil)
	defer r2.Close()
	assert.Equal(t, 5*time.Second, r2.timeout)
}

func TestBuildPrintParams(t *testing.T) {
	t.Run("A4 portrait", func(t *testing.T) {
		params := buildPrintParams(&RenderRequest{HTML: "<html>test</html>"})

		// A4 is 210mm x 297mm
		assert.InDelta(t, mmToInches(210), params.paperWidth, 0.01)
		assert.InDelta(t, mmToInches(297), params.paperHeight, 0.01)
		assert.InDelta(t, mmToInches(12), params.margin, 0.01)
		assert.False(t, params.landscape)
	})

	t.Run("landscape", func(t *testing.T) {
		params := buildPrintParams(&RenderRequest{HTML: "<html>test</html>", Landscape: true})
		assert.True(t, params.landscape)
	})
}

func TestBuildCompleteHTML(t *testing.T) {
	t.Run("full document is returned as-is", func(t *testing.T) {
		doc := "<!DOCTYPE html><html><head></head><body>test</body></html>"
		assert.Equal(t, doc, buildCompleteHTML(&RenderRequest{HTML: doc}))

		doc = "<html><head></head><body>test</body></html>"
		assert.Equal(t, doc, buildCompleteHTML(&RenderRequest{HTML: doc}))
	})

	t.Run("fragment is wrapped", func(t *testing.T) {
		result := buildCompleteHTML(&RenderRequest{
			HTML:  "<div>Olá</div>",
			Title: "Orçamento & Proposta",
		})

		assert.Contains(t, result, "<!DOCTYPE html>")
		assert.Contains(t, result, `<html lang="pt-BR">`)
		assert.Contains(t, result, `<meta charset="UTF-8">`)
		assert.Contains(t, result, "<title>Orçamento &amp; Proposta</title>")
		assert.Contains(t, result, "<body><div>Olá</div></body></html>")
	})
}

func TestMmToInches(t *testing.T) {
	tests := []struct {
		mm       float64
		expected float64
	}{
		{0, 0},
		{25.4, 1.0},
		{210, 8.2677},  // A4 width
		{297, 11.6929}, // A4 height
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, mmToInches(tt.mm), 0.001)
	}
}

func TestChromedpRenderer_RejectsEmptyInput(t *testing.T) {
	r := NewChromedpRenderer(config.PrintingConfig{}, nil)
	defer r.Close()

	_, err := r.Render(context.Background(), nil)
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeInvalidHTML, renderErr.Code)

	_, err = r.Render(context.Background(), &RenderRequest{HTML: "   "})
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeInvalidHTML, renderErr.Code)
}

func TestChromedpRenderer_Close(t *testing.T) {
	// Close must not panic without an allocator
	r := &ChromedpRenderer{}
	assert.NoError(t, r.Close())
}
