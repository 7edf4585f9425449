// Package cost prices single moves of a bot on a grid.
//
// A step into a neighbouring cell costs
//
//	BaseStep
//	+ RotationCost(last, next)             // 0, 1 or 2 quarter turns
//	+ BatteryDrain                          // if Ruleset.Battery
//	+ LaserCharge + LaserFire               // if Ruleset.Laser and the destination is a Block
//
// All functions are pure. Orientation of a step follows the grid axes:
// (r, c+1) is East, (r, c-1) West, (r+1, c) South, (r-1, c) North.
package cost
