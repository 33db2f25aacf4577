// File: skills.go
// Role: Job/vehicle skill-set matching, backed by hashicorp/go-set for the
// set-algebra the Skills feature needs (all_of/one_of/none_of).
package core

import "github.com/hashicorp/go-set/v3"

// Skills is a job's skill requirement: AllOf must all be present in the
// vehicle's skill set, OneOf requires at least one match (if non-empty), and
// NoneOf must all be absent.
type Skills struct {
	AllOf  []string
	OneOf  []string
	NoneOf []string
}

// VehicleSkills is the set of skills a vehicle provides.
type VehicleSkills struct {
	set *set.Set[string]
}

// NewVehicleSkills builds a VehicleSkills from a slice of skill names.
func NewVehicleSkills(skills ...string) VehicleSkills {
	return VehicleSkills{set: set.From(skills)}
}

// Has reports whether the vehicle provides skill.
func (v VehicleSkills) Has(skill string) bool {
	if v.set == nil {
		return false
	}

	return v.set.Contains(skill)
}

// Satisfies reports whether the vehicle's skill set satisfies the job's Skills
// requirement per §4.4 Skills feature contract.
func (v VehicleSkills) Satisfies(req Skills) bool {
	for _, s := range req.AllOf {
		if !v.Has(s) {
			return false
		}
	}
	if len(req.OneOf) > 0 {
		matched := false
		for _, s := range req.OneOf {
			if v.Has(s) {
				matched = true

				break
			}
		}
		if !matched {
			return false
		}
	}
	for _, s := range req.NoneOf {
		if v.Has(s) {
			return false
		}
	}

	return true
}
