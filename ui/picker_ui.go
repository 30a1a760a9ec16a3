package ui

import (
	"bytes"
	"image/color"
	"log"

	cfg "github.com/automoto/blitkit/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const pickerColumns = 2

// PickerUI lists the demos as buttons. Clicking one, or pressing select on
// the keyboard highlight, calls OnSelect.
type PickerUI struct {
	UI *ebitenui.UI

	OnSelect func(scene cfg.SceneID)

	scenes   []cfg.SceneID
	buttons  []*widget.Button
	selected int

	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewPickerUI(scenes []cfg.SceneID, onSelect func(scene cfg.SceneID)) *PickerUI {
	ui := &PickerUI{
		OnSelect: onSelect,
		scenes:   scenes,
	}
	ui.loadFonts()
	ui.buildUI()
	ui.refreshLabels()
	return ui
}

func (ui *PickerUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 24}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 11}
}

func (ui *PickerUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.C.Title, &ui.titleFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(ui.buildButtonGrid())

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("Arrows + Enter or click to open a demo. Esc returns here.", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	contentContainer.AddChild(ui.statusLabel)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *PickerUI) buildButtonGrid() *widget.Container {
	grid := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	var row *widget.Container
	for i, scene := range ui.scenes {
		if i%pickerColumns == 0 {
			row = widget.NewContainer(
				widget.ContainerOpts.Layout(widget.NewRowLayout(
					widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
					widget.RowLayoutOpts.Spacing(6),
				)),
			)
			grid.AddChild(row)
		}

		btn := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 28)),
			widget.ButtonOpts.Image(ui.buttonImage()),
			widget.ButtonOpts.Text(cfg.SceneTitles[scene], &ui.normalFace, &widget.ButtonTextColor{
				Idle:    cfg.White,
				Hover:   color.RGBA{200, 220, 255, 255},
				Pressed: color.RGBA{150, 170, 200, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				ui.selected = i
				ui.choose()
			}),
		)
		ui.buttons = append(ui.buttons, btn)
		row.AddChild(btn)
	}

	return grid
}

func (ui *PickerUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

// Move shifts the keyboard highlight by dx columns and dy rows, wrapping
// around the list.
func (ui *PickerUI) Move(dx, dy int) {
	if len(ui.scenes) == 0 {
		return
	}
	n := len(ui.scenes)
	ui.selected = ((ui.selected+dx+dy*pickerColumns)%n + n) % n
	ui.refreshLabels()
}

// Select opens the highlighted demo.
func (ui *PickerUI) Select() {
	if len(ui.scenes) == 0 {
		return
	}
	ui.choose()
}

func (ui *PickerUI) choose() {
	if ui.OnSelect != nil {
		ui.OnSelect(ui.scenes[ui.selected])
	}
}

func (ui *PickerUI) refreshLabels() {
	for i, btn := range ui.buttons {
		label := cfg.SceneTitles[ui.scenes[i]]
		if i == ui.selected {
			label = "> " + label + " <"
		}
		btn.Text().Label = label
	}
}

func (ui *PickerUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *PickerUI) Update() {
	ui.UI.Update()
}
