package assets

import (
	"embed"
	"fmt"
	"image"
	"image/color"

	"github.com/automoto/blitkit/config"
	"github.com/disintegration/imaging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// Tile is one cell of a tile level.
type Tile struct {
	X, Y, Width, Height float64
	Type                uint32 // Tileset-local ID, indexes the sheet
	Wall                bool
}

// TileLevel is a loaded TMX level with its rendered tile sheet.
type TileLevel struct {
	Name       string
	Width      int
	Height     int
	TileWidth  int
	TileHeight int
	Tiles      []Tile
	Spawn      image.Point
	Sheet      *Surface
	columns    int
}

// TileSource returns the sheet sub-image for t.
func (l *TileLevel) TileSource(t Tile) *ebiten.Image {
	col := int(t.Type) % l.columns
	row := int(t.Type) / l.columns
	r := image.Rect(col*l.TileWidth, row*l.TileHeight, (col+1)*l.TileWidth, (row+1)*l.TileHeight)
	return l.Sheet.Image.SubImage(r).(*ebiten.Image)
}

// Deallocate releases the tile sheet.
func (l *TileLevel) Deallocate() {
	if l.Sheet != nil {
		l.Sheet.Deallocate()
	}
}

// LoadTileLevel reads a TMX level from the embedded levels directory. The
// first tile layer supplies the grid; tileset tiles flagged with the wall
// property become obstacles.
func LoadTileLevel(levelPath string) (*TileLevel, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", levelPath, err)
	}
	if len(levelMap.Layers) == 0 || len(levelMap.Tilesets) == 0 {
		return nil, fmt.Errorf("level %s: no tile layer or tileset", levelPath)
	}

	tileset := levelMap.Tilesets[0]
	columns := tileset.Columns
	if columns <= 0 {
		columns = 1
	}

	level := &TileLevel{
		Name:       levelPath,
		Width:      levelMap.Width * levelMap.TileWidth,
		Height:     levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
		Tiles:      make([]Tile, 0, levelMap.Width*levelMap.Height),
		columns:    columns,
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	layer := levelMap.Layers[0]
	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				continue
			}

			var wall bool
			if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
				wall = tilesetTile.Properties.GetBool(config.Tiles.WallProp)
			}

			level.Tiles = append(level.Tiles, Tile{
				X:      float64(x) * tileW,
				Y:      float64(y) * tileH,
				Width:  tileW,
				Height: tileH,
				Type:   tile.ID,
				Wall:   wall,
			})
		}
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != "spawn" {
			continue
		}
		for _, o := range og.Objects {
			level.Spawn = image.Pt(int(o.X), int(o.Y))
		}
	}

	rows := (tileset.TileCount + columns - 1) / columns
	level.Sheet = NewSurface(tileSheet(levelMap.TileWidth, levelMap.TileHeight, columns, rows), 0)
	return level, nil
}

// MustLoadTileLevel is LoadTileLevel for levels that ship with the binary.
func MustLoadTileLevel(levelPath string) *TileLevel {
	level, err := LoadTileLevel(levelPath)
	if err != nil {
		panic(err)
	}
	return level
}

// Tile colours: three floors, then nine wall pieces sharing one shade with
// the border drawn on the sides they face.
var floorColors = []color.NRGBA{
	{R: 200, G: 60, B: 60, A: 255},
	{R: 60, G: 180, B: 80, A: 255},
	{R: 60, G: 90, B: 200, A: 255},
}

var (
	wallFill   = color.NRGBA{R: 120, G: 110, B: 90, A: 255}
	wallBorder = color.NRGBA{R: 60, G: 50, B: 40, A: 255}
)

// wallEdges lists, per wall tile, which sides carry a border: top, right,
// bottom, left.
var wallEdges = map[int][4]bool{
	3:  {},
	4:  {true, false, false, false},
	5:  {true, true, false, false},
	6:  {false, true, false, false},
	7:  {false, true, true, false},
	8:  {false, false, true, false},
	9:  {false, false, true, true},
	10: {false, false, false, true},
	11: {true, false, false, true},
}

func tileSheet(tileW, tileH, columns, rows int) image.Image {
	sheet := imaging.New(tileW*columns, tileH*rows, color.Transparent)
	for id := 0; id < columns*rows; id++ {
		var tile *image.NRGBA
		if id < len(floorColors) {
			tile = imaging.New(tileW, tileH, floorColors[id])
		} else {
			tile = wallTile(tileW, tileH, wallEdges[id])
		}
		sheet = imaging.Paste(sheet, tile, image.Pt(id%columns*tileW, id/columns*tileH))
	}
	return sheet
}

func wallTile(w, h int, edges [4]bool) *image.NRGBA {
	const border = 6
	tile := imaging.New(w, h, wallFill)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (edges[0] && y < border) || (edges[1] && x >= w-border) ||
				(edges[2] && y >= h-border) || (edges[3] && x < border) {
				tile.SetNRGBA(x, y, wallBorder)
			}
		}
	}
	return tile
}
