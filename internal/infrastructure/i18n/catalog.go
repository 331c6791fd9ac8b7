package i18n

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/Kishanjee7/finhealth/internal/domain/valueobject"
)

//go:embed locales/*.toml
var locales embed.FS

// Catalog implements port.LabelCatalog from TOML files, one per language,
// each holding [namespace] tables of key = "label" pairs.
type Catalog struct {
	labels   map[string]map[string]string
	fallback string
}

// Load reads the embedded catalogs. English is the fallback language.
func Load() (*Catalog, error) {
	files, err := locales.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}

	c := &Catalog{
		labels:   make(map[string]map[string]string, len(files)),
		fallback: valueobject.LanguageEnglish.String(),
	}
	for _, f := range files {
		lang := strings.TrimSuffix(f.Name(), path.Ext(f.Name()))
		data, err := locales.ReadFile(path.Join("locales", f.Name()))
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", lang, err)
		}
		labels, err := parse(data)
		if err != nil {
			return nil, fmt.Errorf("locale %s: %w", lang, err)
		}
		c.labels[lang] = labels
	}

	if _, ok := c.labels[c.fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %q is missing", c.fallback)
	}
	return c, nil
}

func parse(data []byte) (map[string]string, error) {
	var doc map[string]map[string]string
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	out := make(map[string]string)
	for namespace, entries := range doc {
		for key, label := range entries {
			out[namespace+"."+key] = label
		}
	}
	return out, nil
}

// Label returns the label for key in lang, then in English, then the key.
func (c *Catalog) Label(lang valueobject.Language, key string) string {
	if v, ok := c.labels[lang.String()][key]; ok {
		return v
	}
	if v, ok := c.labels[c.fallback][key]; ok {
		return v
	}
	return key
}

// Languages lists the loaded catalog codes.
func (c *Catalog) Languages() []string {
	out := make([]string, 0, len(c.labels))
	for lang := range c.labels {
		out = append(out, lang)
	}
	return out
}
