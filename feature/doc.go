// Package feature implements the built-in goal.Feature set (§4.4): capacity,
// time windows, minimization objectveis, skills, breaks, reload/recharge,
// groups, compatibility, tour order/size, locking and area. Every VRP variant
// is just a different subset and ordering of these constructors fed into
// goal.NewContext; none of them know about each other.
//
// Each constructor takes a *core.StateKeyRegistry so it can register its own
// state keys without a package-level singleton, mirroring how package goal's
// Context never assumes a fixed feature set.
package feature
