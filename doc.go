// Package gridbot plans a bot's route to the cheapest treasure on a
// rectangular game map.
//
// Moving costs one unit per step plus one per quarter turn. Battery games
// drain one more unit per step, and laser games may blast through a Block
// for three more (two to charge, one to fire). Cells held by other bots are
// never entered.
//
// The work is split into small packages:
//
//	grid/      cells, kinds, orientations, positions and cost labels
//	cost/      rotation and step prices under a Ruleset
//	labeling/  uniform-cost search that labels every reachable cell
//	resolver/  walks the labels back from the goal to an explicit route
//	snapshot/  decodes and validates the server's map document
//	solve/     one call from a Scene to a Result, and batches of them
//
// Quick start:
//
//	s, err := snapshot.Load("map.json")
//	if err != nil { ... }
//	scene, err := s.Build()
//	if err != nil { ... }
//	res, err := solve.Solve(scene)
//	if err != nil { ... }
//	fmt.Println(res.Path, res.Cost)
//
// All packages are pure Go, allocation-light and free of global state: a
// Scene can be solved from many goroutines at once.
package gridbot
