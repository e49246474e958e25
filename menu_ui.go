package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/motionrush/engine"
)

// clipboardReady is cleared by main when clipboard.Init fails; the game-over
// screen then skips the copy button.
var clipboardReady = true

var (
	panelBg  = imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	buttonBg = imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	white    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func uiFace() *ebtext.Face {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	return &face
}

func uiTitle(face *ebtext.Face, s string) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(s, face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

func uiButton(face *ebtext.Face, label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: buttonBg, Pressed: buttonBg}),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// uiPanel wraps children in a centered dark panel, anchored to the screen.
func uiPanel(children ...widget.PreferredSizeLocateableWidget) *ebitenui.UI {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelBg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(baseWidth/2, baseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	for _, c := range children {
		panel.AddChild(c)
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

// NewMenuUI builds the mode-select menu shown on startup.
func NewMenuUI(g *Game) *ebitenui.UI {
	face := uiFace()
	return uiPanel(
		uiTitle(face, "motionrush"),
		uiTitle(face, "lean left and right to steer, raise both arms to jump"),
		uiButton(face, "Play Dash", func() { g.startGame(engine.ModeDash) }),
		uiButton(face, "Play River", func() { g.startGame(engine.ModeRiver) }),
	)
}

// NewPauseUI builds a simple centered pause menu.
func NewPauseUI(g *Game) *ebitenui.UI {
	face := uiFace()
	return uiPanel(
		uiTitle(face, "Paused"),
		uiButton(face, "Resume", func() { g.scene = scenePlaying }),
		uiButton(face, "Restart", func() { g.startGame(g.mode) }),
		uiButton(face, "Quit to Menu", func() { g.scene = sceneMenu }),
	)
}

// NewGameOverUI builds the results screen. It is rebuilt per run since the
// labels carry the final score.
func NewGameOverUI(g *Game) *ebitenui.UI {
	face := uiFace()

	children := []widget.PreferredSizeLocateableWidget{
		uiTitle(face, "Game Over"),
		uiTitle(face, fmt.Sprintf("Score: %d   Level: %d", g.eng.Score(), g.eng.Level())),
	}
	if g.newBest {
		children = append(children, uiTitle(face, "New best!"))
	} else {
		children = append(children, uiTitle(face, fmt.Sprintf("Best: %d", g.best)))
	}
	children = append(children,
		uiButton(face, "Play Again", func() { g.startGame(g.mode) }),
	)
	if clipboardReady {
		children = append(children, uiButton(face, "Copy Result", func() {
			clipboard.Write(clipboard.FmtText, []byte(g.resultSummary()))
			log.Printf("ui: result copied to clipboard")
		}))
	}
	children = append(children,
		uiButton(face, "Menu", func() { g.scene = sceneMenu }),
	)

	return uiPanel(children...)
}
