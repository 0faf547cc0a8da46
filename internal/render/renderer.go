package render

import "eca/internal/rule"

// Renderer consumes one generation at a time, in generation order.
type Renderer interface {
	Render(gen int, cells []rule.State, palette Palette) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(gen int, cells []rule.State, palette Palette) error

// Render calls f.
func (f RendererFunc) Render(gen int, cells []rule.State, palette Palette) error {
	return f(gen, cells, palette)
}

// Multi fans each generation out to every renderer in order and stops at the
// first error.
func Multi(rs ...Renderer) Renderer {
	return RendererFunc(func(gen int, cells []rule.State, palette Palette) error {
		for _, r := range rs {
			if r == nil {
				continue
			}
			if err := r.Render(gen, cells, palette); err != nil {
				return err
			}
		}
		return nil
	})
}

// Discard drops every generation.
var Discard Renderer = RendererFunc(func(int, []rule.State, Palette) error { return nil })
