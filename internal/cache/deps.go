package cache

// writeDeps declares, per family, which families a write invalidates.
// Cross-entity coupling is kept here as a reviewable table instead of an
// implicit convention: a section carries its step's name, a step row
// shows attribute counts, values hang off attributes.
var writeDeps = map[Family][]Family{
	FamilySteps:      {FamilySteps, FamilySections, FamilyAttributes},
	FamilySections:   {FamilySections, FamilySteps},
	FamilyAttributes: {FamilyAttributes, FamilySteps},
	FamilyValues:     {FamilyValues, FamilyAttributes},
	FamilyResumes:    {FamilyResumes},
	FamilyVacancies:  {FamilyVacancies},
	FamilyUsers:      {FamilyUsers},
}

// WriteInvalidates returns the families a successful write to f must
// invalidate. The family itself is always included.
func WriteInvalidates(f Family) []Family {
	deps, ok := writeDeps[f]
	if !ok {
		return []Family{f}
	}
	out := make([]Family, len(deps))
	copy(out, deps)
	return out
}
