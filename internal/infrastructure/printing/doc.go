// Package printing turns the dealership's print documents into HTML and PDF.
//
// This package contains:
// - TemplateEngine, which renders the embedded checklist and quote templates
// - PDFRenderer interface for rendering HTML to PDF
// - ChromedpRenderer implementation driving headless Chrome
//
// Example usage:
//
//	engine, err := NewTemplateEngine()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	html, err := engine.Render(TemplateQuote, data)
//
//	renderer := NewChromedpRenderer(cfg.Printing, logger)
//	defer renderer.Close()
//	result, err := renderer.Render(ctx, &RenderRequest{HTML: html, Title: "Orçamento"})
package printing
