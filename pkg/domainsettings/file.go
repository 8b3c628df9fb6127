package domainsettings

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileStore reads settings from a YAML document:
//
//	home_url: https://example.com
//	default_language: en
//	domains:
//	  en: https://example.com
//	  fr: https://example.fr
//
// The file is read on every Load, so edits are picked up by a Reloader.
type FileStore struct {
	Path string
}

// NewFileStore returns a FileStore reading path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load implements Store.
func (s *FileStore) Load(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Snapshot{}, errors.Join(ErrSettingsNotFound, err)
		}
		return Snapshot{}, errors.Join(ErrFailedToReadFile, err)
	}

	return ParseYAML(data)
}

// ParseYAML decodes a settings document.
func ParseYAML(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, errors.Join(ErrFailedToParseFile, err)
	}
	return snap, nil
}

// MarshalYAML encodes s as a settings document with domains as an ordered mapping.
func MarshalYAML(s Snapshot) ([]byte, error) {
	domains := &yaml.Node{Kind: yaml.MappingNode}
	for _, d := range s.Domains {
		domains.Content = append(domains.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: d.Language},
			&yaml.Node{Kind: yaml.ScalarNode, Value: d.URL},
		)
	}

	doc := &yaml.Node{Kind: yaml.MappingNode}
	doc.Content = append(doc.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "home_url"},
		&yaml.Node{Kind: yaml.ScalarNode, Value: s.HomeURL},
		&yaml.Node{Kind: yaml.ScalarNode, Value: "default_language"},
		&yaml.Node{Kind: yaml.ScalarNode, Value: s.DefaultLanguage},
		&yaml.Node{Kind: yaml.ScalarNode, Value: "domains"},
		domains,
	)

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	return out, nil
}
