package extension

import (
	"sort"

	"gopkg.in/yaml.v3"
)

// manifestEntry is the YAML shape of a single registry record.
type manifestEntry struct {
	Target  string `yaml:"target"`
	Name    string `yaml:"name"`
	Kind    Kind   `yaml:"kind"`
	Version string `yaml:"version,omitempty"`
	Bound   bool   `yaml:"bound,omitempty"`
}

// Manifest renders the contents of the store as YAML, sorted by target then
// name. It is meant for interactive inspection of what has been attached so
// far in a session.
func Manifest(s ExtensionStore) (string, error) {
	records, err := s.Fetch()
	if err != nil {
		return "", err
	}

	entries := make([]manifestEntry, 0, len(records))
	for _, record := range records {
		entry := manifestEntry{
			Target: record.Target.String(),
			Name:   record.Name,
			Kind:   record.Kind,
			Bound:  record.Bound,
		}
		if record.Version != nil {
			entry.Version = record.Version.String()
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Target != entries[j].Target {
			return entries[i].Target < entries[j].Target
		}

		return entries[i].Name < entries[j].Name
	})

	out, err := yaml.Marshal(entries)
	if err != nil {
		return "", err
	}

	return string(out), nil
}
