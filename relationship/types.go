// Package relationship models the metadata for declared relationship fields
// on resource types: cardinality, navigation path, link-visibility policy
// and the late-bound accessor/mutator contract used by (de)serialization.
package relationship

import "fmt"

// Kind is the cardinality of a relationship. The variant set is closed:
// variant-specific behavior lives behind the Kind switch rather than
// open-ended subclassing.
type Kind int

const (
	// ToOne points at a single target resource.
	ToOne Kind = iota
	// ToMany points at a collection of target resources.
	ToMany
	// ToManyThrough points at a collection of target resources reached
	// through an intermediate join entity.
	ToManyThrough
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case ToOne:
		return "to_one"
	case ToMany:
		return "to_many"
	case ToManyThrough:
		return "to_many_through"
	default:
		return "unknown"
	}
}

// LinkVisibility controls which links a serialized relationship exposes.
type LinkVisibility int

const (
	// LinksUnconfigured defers to the enclosing document's defaults.
	LinksUnconfigured LinkVisibility = iota
	// LinksNone suppresses all relationship links.
	LinksNone
	// LinksSelf exposes only the relationship's self link.
	LinksSelf
	// LinksRelated exposes only the related-data link.
	LinksRelated
	// LinksAll exposes both self and related links.
	LinksAll

	// LinksPaging is reserved for collection documents and is not a valid
	// relationship policy. Assigning it to a descriptor fails with
	// ErrPagingLinks.
	LinksPaging
)

// String returns the string representation of the visibility policy.
func (v LinkVisibility) String() string {
	switch v {
	case LinksUnconfigured:
		return "unconfigured"
	case LinksNone:
		return "none"
	case LinksSelf:
		return "self"
	case LinksRelated:
		return "related"
	case LinksAll:
		return "all"
	case LinksPaging:
		return "paging"
	default:
		return "unknown"
	}
}

// ParseLinkVisibility converts a string to a LinkVisibility. The paging
// value parses successfully; rejecting it is the descriptor's job, so that
// the attempted assignment fails loudly rather than the parse.
func ParseLinkVisibility(s string) (LinkVisibility, error) {
	switch s {
	case "unconfigured":
		return LinksUnconfigured, nil
	case "none":
		return LinksNone, nil
	case "self":
		return LinksSelf, nil
	case "related":
		return LinksRelated, nil
	case "all":
		return LinksAll, nil
	case "paging":
		return LinksPaging, nil
	default:
		return 0, fmt.Errorf("unknown link visibility: %s", s)
	}
}
