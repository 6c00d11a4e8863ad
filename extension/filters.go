package extension

import (
	"github.com/Masterminds/semver/v3"
)

// The following functions are a default set of filters that can be used with the Filter
// method of the ExtensionStore interface. These filters are composable and can be combined
// to create more complex filters. For example, to list the property extensions of a single
// target type:
//	```
//		records := store.Filter(
//			ExtensionsByTarget(extension.TargetOf[tables.Frame]()),
//			ExtensionsByKind(extension.KindProperty),
//		)
//	```
// Any user can create their own custom filters by implementing the FilterFunc type.

// All the filters below are used to filter Extension records in the ExtensionStore.
// They all implement the FilterFunc type.
var _ FilterFunc[ExtensionKey, Extension] = ExtensionsByTarget(Target{})
var _ FilterFunc[ExtensionKey, Extension] = ExtensionsByName("")
var _ FilterFunc[ExtensionKey, Extension] = ExtensionsByKind(Kind(""))
var _ FilterFunc[ExtensionKey, Extension] = ExtensionsByVersion(nil)

// extensionFilter returns a filter that includes records for which the predicate returns true.
// This is a generalized filter function that can be used to create custom filters.
func extensionFilter(predicate func(record Extension) bool) FilterFunc[ExtensionKey, Extension] {
	return func(records []Extension) []Extension {
		filtered := make([]Extension, 0, len(records))
		for _, record := range records {
			if predicate(record) {
				filtered = append(filtered, record)
			}
		}

		return filtered
	}
}

// ExtensionsByTarget returns a filter that only includes records attached to the provided target.
func ExtensionsByTarget(target Target) FilterFunc[ExtensionKey, Extension] {
	return extensionFilter(func(record Extension) bool {
		return record.Target.Equals(target)
	})
}

// ExtensionsByName returns a filter that only includes records with the provided attribute name.
func ExtensionsByName(name string) FilterFunc[ExtensionKey, Extension] {
	return extensionFilter(func(record Extension) bool {
		return record.Name == name
	})
}

// ExtensionsByKind returns a filter that only includes records of the provided kind.
func ExtensionsByKind(kind Kind) FilterFunc[ExtensionKey, Extension] {
	return extensionFilter(func(record Extension) bool {
		return record.Kind == kind
	})
}

// ExtensionsByVersion returns a filter that only includes records with the provided version.
// Records without a version stamp never match.
func ExtensionsByVersion(version *semver.Version) FilterFunc[ExtensionKey, Extension] {
	return extensionFilter(func(record Extension) bool {
		return record.Version != nil && record.Version.Equal(version)
	})
}
