package core

import (
	"github.com/go-canopy/canopy/pkg/lifecycle"
	"github.com/go-canopy/canopy/pkg/state"
)

// SchemaValidator validates a value against a named schema. Form widgets
// consult it before committing user input.
type SchemaValidator interface {
	Validate(schema string, v state.Value) error
}

// ChartRenderer draws a chart described by spec onto a surface.
type ChartRenderer interface {
	RenderChart(surface lifecycle.Surface, spec state.Value) error
}

// RichTextProvider upgrades a surface into a rich text editor and returns
// a disposer that tears the editor down.
type RichTextProvider interface {
	Attach(surface lifecycle.Surface) (func(), error)
}

// Capabilities bundles the optional third-party integrations. Providers are
// resolved once at App construction; a nil field yields the no-op variant,
// so call sites never probe for presence.
type Capabilities struct {
	Validator SchemaValidator
	Charts    ChartRenderer
	RichText  RichTextProvider
}

// resolved fills nil providers with no-op implementations.
func (c Capabilities) resolved() Capabilities {
	if c.Validator == nil {
		c.Validator = noopValidator{}
	}
	if c.Charts == nil {
		c.Charts = noopCharts{}
	}
	if c.RichText == nil {
		c.RichText = noopRichText{}
	}
	return c
}

type noopValidator struct{}

func (noopValidator) Validate(string, state.Value) error { return nil }

type noopCharts struct{}

func (noopCharts) RenderChart(lifecycle.Surface, state.Value) error { return nil }

type noopRichText struct{}

func (noopRichText) Attach(lifecycle.Surface) (func(), error) { return func() {}, nil }
