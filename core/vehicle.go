// File: vehicle.go
// Role: Vehicle definition and per-shift Actor materialization.
package core

// VehicleCosts is the per-unit cost structure used by distance/duration/cost
// objectives (§4.4 "Minimize distance/duration/cost").
type VehicleCosts struct {
	Fixed           float64
	PerDistance     float64
	PerDrivingTime  float64
	PerWaitingTime  float64
	PerServiceTime  float64
}

// ShiftDetail describes one shift a Vehicle may run: where it starts/ends (open
// routes omit End), and the shift's own time window.
type ShiftDetail struct {
	Start      Location
	StartTimes TimeSpan
	// End and HasEnd together model open routes: HasEnd==false means the route
	// never returns, matching spec.md §3 "open routes have no end".
	End    Location
	HasEnd bool
	EndTimes TimeSpan
}

// Vehicle is a vehicle type/profile definition; it is materialized into one
// Actor per shift it is allowed to run (possibly several, for multi-trip
// fleets).
type Vehicle struct {
	Profile Profile
	Costs   VehicleCosts
	Dimens  Dimens
	Details []ShiftDetail
	Skills  VehicleSkills
	Capacity Load
}

// VehicleID returns the vehicle identifier stored in Dimens.
func (v *Vehicle) VehicleID() string {
	id, _ := v.Dimens.GetString(DimenVehicleID)

	return id
}

// TypeID returns the vehicle-type identifier stored in Dimens, falling back to
// VehicleID when absent (single-vehicle-per-type fleets).
func (v *Vehicle) TypeID() string {
	if id, ok := v.Dimens.GetString(DimenVehicleTypeID); ok {
		return id
	}

	return v.VehicleID()
}

// MaterializeActors returns one Actor per ShiftDetail, per §3 "A vehicle is
// materialized per shift".
func (v *Vehicle) MaterializeActors() []*Actor {
	actors := make([]*Actor, len(v.Details))
	for i, d := range v.Details {
		actors[i] = &Actor{
			Vehicle:    v,
			ShiftIndex: i,
			Shift:      d,
		}
	}

	return actors
}
