package cache

import (
	"encoding/json"
	"fmt"
)

// Family names one entity's cache-key family. Invalidation always
// operates on whole families.
type Family string

const (
	FamilySteps      Family = "steps"
	FamilySections   Family = "sections"
	FamilyAttributes Family = "attributes"
	FamilyValues     Family = "values"
	FamilyResumes    Family = "resumes"
	FamilyVacancies  Family = "vacancies"
	FamilyUsers      Family = "users"
)

// Kind is the second level of the key taxonomy.
type Kind string

const (
	// KindList keys paginated reads by the complete filter object.
	KindList Kind = "list"
	// KindAll keys unpaginated scope reads (e.g. all sections of one
	// step for the reorder dialog), kept apart from the list family to
	// avoid invalidation cross-talk with paginated keys.
	KindAll Kind = "all"
	// KindDetail keys single-entity reads by id, with an optional
	// scope suffix when one id can be fetched under different
	// projections.
	KindDetail Kind = "detail"
)

// Key identifies one cache entry: [family, kind, param].
type Key struct {
	Family Family
	Kind   Kind
	Param  string
}

func (k Key) String() string {
	return string(k.Family) + "/" + string(k.Kind) + "/" + k.Param
}

// canonical encodes a parameter object deterministically. Marshaling a
// struct emits fields in declaration order, so two deeply-equal filter
// objects always produce the same key and two different ones never
// collide.
func canonical(param interface{}) string {
	data, err := json.Marshal(param)
	if err != nil {
		// Filter objects are plain structs; this cannot fail for them.
		return fmt.Sprintf("!%v", param)
	}
	return string(data)
}

// ListKey builds the key for a paginated read with the complete filter.
func ListKey(f Family, filter interface{}) Key {
	return Key{Family: f, Kind: KindList, Param: canonical(filter)}
}

// AllKey builds the key for an unpaginated read of one scope.
func AllKey(f Family, scope interface{}) Key {
	return Key{Family: f, Kind: KindAll, Param: canonical(scope)}
}

// DetailKey builds the key for a single-entity read.
func DetailKey(f Family, id int) Key {
	return Key{Family: f, Kind: KindDetail, Param: canonical(id)}
}

// ScopedDetailKey builds a detail key with a secondary scope suffix.
func ScopedDetailKey(f Family, id int, scope interface{}) Key {
	return Key{Family: f, Kind: KindDetail, Param: canonical(id) + ":" + canonical(scope)}
}
