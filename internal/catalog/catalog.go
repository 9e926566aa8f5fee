package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"practice-recommender/internal/domain"
)

//go:embed practices.yaml
var defaultCatalogYAML []byte

// catalogFile es el formato en disco: una lista ordenada de practicas.
type catalogFile struct {
	Practices []domain.Practice `yaml:"practices"`
}

// Default devuelve el catalogo incluido en el binario.
func Default() (*domain.Catalog, error) {
	return Parse(defaultCatalogYAML)
}

// LoadFile lee un catalogo YAML desde disco.
func LoadFile(path string) (*domain.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodifica YAML y construye el catalogo respetando el orden del archivo.
func Parse(data []byte) (*domain.Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	return domain.NewCatalog(f.Practices...)
}
