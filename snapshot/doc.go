// Package snapshot decodes the game server's map document and turns it into a
// ready-to-solve Scene.
//
// The document is JSON as served by the game, or YAML for hand-written
// scenarios; both share one schema:
//
//	map:                 # rows, top to bottom
//	  - - {field: 0}
//	    - {field: 2, orientation: 1, your_bot: true}
//	game_info:
//	  map_height: 1
//	  map_width: 2
//	  battery_game: false
//	  laser_game: true
//
// field carries the cell kind code (grid.Kind), orientation the facing of an
// occupying bot (grid.Orientation) and your_bot marks the searching bot.
// map[i][j] is row i, column j of the grid, and orientation codes are read
// in that frame: 0 North (row-1), 1 East (col+1), 2 South (row+1),
// 3 West (col-1).
//
// Validate rejects anything the labeling engine could not work with;
// Build validates and converts.
package snapshot
