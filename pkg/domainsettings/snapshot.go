package domainsettings

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/langdomain/pkg/domainrouter"
)

// Domain is one language -> domain URL entry.
type Domain struct {
	Language string `yaml:"language" json:"language" bson:"language"`
	URL      string `yaml:"url" json:"url" bson:"url"`
}

// Domains is an ordered list of language domains.
//
// In YAML it may be written either as a sequence of {language, url} entries
// or as a mapping from language to URL; the mapping keeps document order.
type Domains []Domain

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Domains) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var list []Domain
		if err := node.Decode(&list); err != nil {
			return err
		}
		*d = list
		return nil

	case yaml.MappingNode:
		list := make([]Domain, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
				return fmt.Errorf("%w: line %d: expected language: url", ErrMalformedDomainMap, key.Line)
			}
			list = append(list, Domain{Language: key.Value, URL: value.Value})
		}
		*d = list
		return nil

	default:
		return fmt.Errorf("%w: line %d: expected a list or a mapping", ErrMalformedDomainMap, node.Line)
	}
}

// Snapshot is the administrator-managed configuration a Router is built from.
type Snapshot struct {
	HomeURL         string  `yaml:"home_url" json:"home_url" bson:"home_url"`
	DefaultLanguage string  `yaml:"default_language" json:"default_language" bson:"default_language"`
	Domains         Domains `yaml:"domains" json:"domains" bson:"domains"`
}

// URL returns the domain configured for lang, or "".
func (s Snapshot) URL(lang string) string {
	for _, d := range s.Domains {
		if d.Language == lang {
			return d.URL
		}
	}
	return ""
}

// RouterConfig converts the snapshot into a domainrouter.Config.
func (s Snapshot) RouterConfig() domainrouter.Config {
	domains := make([]domainrouter.Domain, len(s.Domains))
	for i, d := range s.Domains {
		domains[i] = domainrouter.Domain{Language: d.Language, URL: d.URL}
	}
	return domainrouter.Config{
		HomeURL:         s.HomeURL,
		DefaultLanguage: s.DefaultLanguage,
		Domains:         domains,
	}
}

// Build validates s and constructs a Router from it.
func Build(s Snapshot, opts ...domainrouter.Option) (*domainrouter.Router, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}
	return domainrouter.New(s.RouterConfig(), opts...), nil
}
