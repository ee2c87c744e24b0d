package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/kinetic/components"
	"github.com/automoto/kinetic/movement"
	"github.com/automoto/kinetic/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// PauseUI is the pause overlay with the ability gates and the scene actions.
type PauseUI struct {
	UI         *ebitenui.UI
	Controller *movement.Controller
	Settings   *components.SettingsData
	LevelName  string

	// Callbacks
	OnResume  func()
	OnRespawn func()

	abilityButtons []*widget.Button
	debugButton    *widget.Button
	statusLabel    *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	initialized bool
}

// NewPauseUI builds the overlay for ctrl. Callbacks may be nil.
func NewPauseUI(ctrl *movement.Controller, settings *components.SettingsData, levelName string, onResume, onRespawn func()) *PauseUI {
	pui := &PauseUI{
		Controller: ctrl,
		Settings:   settings,
		LevelName:  levelName,
		OnResume:   onResume,
		OnRespawn:  onRespawn,
	}

	pui.loadFonts()
	pui.buildUI()

	return pui
}

func (pui *PauseUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	pui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
	pui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	pui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (pui *PauseUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 160})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 240})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("PAUSED", &pui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	levelLabel := widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("Level: %s", pui.LevelName), &pui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 255, 255},
		}),
	)
	contentContainer.AddChild(levelLabel)

	contentContainer.AddChild(pui.buildAbilitiesContainer())
	contentContainer.AddChild(pui.buildButtonsContainer())

	pui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &pui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	)
	contentContainer.AddChild(pui.statusLabel)

	rootContainer.AddChild(contentContainer)

	pui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (pui *PauseUI) buildAbilitiesContainer() *widget.Container {
	padding := widget.Insets{Top: 4, Bottom: 4, Left: 6, Right: 6}
	container := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 40, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(3),
		)),
	)

	container.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("ABILITIES", &pui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 255, 255},
		}),
	))

	pui.abilityButtons = make([]*widget.Button, len(systems.AbilityToggles))
	for i, toggle := range systems.AbilityToggles {
		row := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			)),
		)

		row.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(toggle.Name, &pui.normalFace, &widget.LabelColor{
				Idle: color.RGBA{255, 255, 255, 255},
			}),
		))

		t := toggle // Capture for closure
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(50, 18)),
			widget.ButtonOpts.Image(pui.buttonImage()),
			widget.ButtonOpts.Text(onOff(t.Get(pui.Controller)), &pui.smallFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{200, 200, 200, 255},
				Hover:   color.RGBA{255, 255, 255, 255},
				Pressed: color.RGBA{150, 150, 150, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				t.Flip(pui.Controller)
				systems.SaveAbilities(pui.Controller.Abilities())
				pui.UpdateUI()
			}),
		)
		pui.abilityButtons[i] = button
		row.AddChild(button)

		container.AddChild(row)
	}

	return container
}

func (pui *PauseUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	pui.debugButton = pui.textButton("Debug", func() {
		pui.Settings.Debug = !pui.Settings.Debug
		pui.UpdateUI()
	})
	container.AddChild(pui.debugButton)

	container.AddChild(pui.textButton("Respawn", func() {
		if pui.OnRespawn != nil {
			pui.OnRespawn()
		}
		if pui.OnResume != nil {
			pui.OnResume()
		}
	}))

	container.AddChild(pui.textButton("Resume", func() {
		if pui.OnResume != nil {
			pui.OnResume()
		}
	}))

	return container
}

func (pui *PauseUI) textButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(70, 22)),
		widget.ButtonOpts.Image(pui.buttonImage()),
		widget.ButtonOpts.Text(label, &pui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (pui *PauseUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI refreshes the button labels from the controller.
func (pui *PauseUI) UpdateUI() {
	for i, toggle := range systems.AbilityToggles {
		if pui.abilityButtons[i] == nil {
			continue
		}
		if textWidget := pui.abilityButtons[i].Text(); textWidget != nil {
			textWidget.Label = onOff(toggle.Get(pui.Controller))
		}
	}

	if textWidget := pui.debugButton.Text(); textWidget != nil {
		textWidget.Label = "Debug " + onOff(pui.Settings.Debug)
	}

	a := pui.Controller.Abilities()
	pui.statusLabel.Label = fmt.Sprintf("F1-F5 toggle abilities  (%d of %d unlocked)", countUnlocked(a.DoubleJump, a.WallJump, a.Sprint, a.Dash, a.Slide), len(systems.AbilityToggles))
}

// Update calls the UI's Update method
func (pui *PauseUI) Update() {
	pui.UI.Update()
	// Widgets are validated after the first update
	if !pui.initialized {
		pui.initialized = true
		pui.UpdateUI()
	}
}

func onOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}

func countUnlocked(gates ...bool) int {
	n := 0
	for _, on := range gates {
		if on {
			n++
		}
	}
	return n
}
