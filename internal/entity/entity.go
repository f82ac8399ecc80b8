package entity

import "sort"

// Categories assigned to extracted entities. ORG is the canonical
// organization label; taggers that report ORGANIZATION are normalized
// before entities reach this package.
const (
	CategoryPerson = "PERSON"
	CategoryOrg    = "ORG"
)

// Entity is a named entity extracted from a call-for-papers page
type Entity struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// Partition splits entities into person names and organization
// affiliations. Entities with any other category are dropped. Both lists
// are sorted lexicographically ascending; duplicates are preserved.
func Partition(entities []Entity) (names, affiliations []string) {
	names = make([]string, 0)
	affiliations = make([]string, 0)

	for _, ent := range entities {
		switch ent.Category {
		case CategoryPerson:
			names = append(names, ent.Text)
		case CategoryOrg:
			affiliations = append(affiliations, ent.Text)
		}
	}

	sort.Strings(names)
	sort.Strings(affiliations)

	return names, affiliations
}
