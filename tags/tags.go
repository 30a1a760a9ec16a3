package tags

import "github.com/yohamta/donburi"

var (
	Dot     = donburi.NewTag().SetName("Dot")
	Player  = donburi.NewTag().SetName("Player")
	Wall    = donburi.NewTag().SetName("Wall")
	Tile    = donburi.NewTag().SetName("Tile")
	Stretch = donburi.NewTag().SetName("Stretch")
)

// Collision world tags
const (
	ResolvWall = "wall"
	ResolvDot  = "dot"
	ResolvTile = "tile"
)
