// Package gamedata holds the embedded scene and villager definitions and
// turns them into the stores the game runs on.
package gamedata

import "embed"

// dataFS holds scenes.json and npcs.json.
//
//go:embed *.json
var dataFS embed.FS
