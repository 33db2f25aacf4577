package core

// Unassignment reason codes (§7 "Codes are stable and documented"). Each
// built-in feature in package feature reports its own code via these
// constants so a writer (out of scope) can map them to human strings.
const (
	ReasonCapacity = iota + 1
	ReasonTimeWindow
	ReasonSkill
	ReasonUnreachable
	ReasonMaxDistance
	ReasonMaxDuration
	ReasonBreak
	ReasonLocking
	ReasonArea
	ReasonTourSize
	ReasonTourOrder
	ReasonGroup
	ReasonCompatibility
	ReasonReloadResource
	ReasonRecharge
)

// ReasonDescriptions maps stable codes to human-readable strings, the table a
// writer (out of scope) consults to render UnassignedReason.
var ReasonDescriptions = map[int]string{
	ReasonCapacity:        "capacity exceeded",
	ReasonTimeWindow:      "time window violated",
	ReasonSkill:           "vehicle skills do not satisfy job requirement",
	ReasonUnreachable:     "location unreachable in transport matrix",
	ReasonMaxDistance:     "route max distance exceeded",
	ReasonMaxDuration:     "route max duration exceeded",
	ReasonBreak:           "break could not be scheduled",
	ReasonLocking:         "job is locked to a different route",
	ReasonArea:            "location outside vehicle's allowed area",
	ReasonTourSize:        "route activity count exceeded",
	ReasonTourOrder:       "tour order violated",
	ReasonGroup:           "group already served on this route",
	ReasonCompatibility:   "incompatible with job already on this route",
	ReasonReloadResource:  "shared reload resource exhausted",
	ReasonRecharge:        "recharge could not be scheduled",
}
