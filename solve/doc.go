// Package solve runs one full planning pass: label a copy of the map from the
// searching bot, pick the cheapest reachable treasure and resolve the route
// to it.
//
// The input grid is never modified. Each call labels its own clone, so a
// single Scene may be solved from any number of goroutines at once.
package solve
