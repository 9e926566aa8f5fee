package domain

import (
	"encoding/json"
	"fmt"
)

// Catalog es un mapa de practicas que conserva el orden de insercion.
// El orden define el desempate estable del ranking. No se modifica despues de construido.
type Catalog struct {
	order []string
	byID  map[string]Practice
}

// NewCatalog valida y agrega las practicas en el orden recibido.
func NewCatalog(practices ...Practice) (*Catalog, error) {
	c := &Catalog{
		order: make([]string, 0, len(practices)),
		byID:  make(map[string]Practice, len(practices)),
	}
	for _, p := range practices {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.byID[p.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePractice, p.ID)
		}
		c.order = append(c.order, p.ID)
		c.byID[p.ID] = p
	}
	return c, nil
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

func (c *Catalog) Get(id string) (Practice, bool) {
	if c == nil {
		return Practice{}, false
	}
	p, ok := c.byID[id]
	return p, ok
}

// IDs devuelve una copia de los identificadores en orden de catalogo.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Practices devuelve las practicas en orden de catalogo.
func (c *Catalog) Practices() []Practice {
	if c == nil {
		return nil
	}
	out := make([]Practice, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// MarshalJSON serializa el catalogo como lista ordenada.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	practices := c.Practices()
	if practices == nil {
		practices = []Practice{}
	}
	return json.Marshal(practices)
}
