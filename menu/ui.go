package menu

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/jamstarter/common"
	"github.com/milk9111/jamstarter/theme"
	"golang.org/x/image/font/basicfont"
)

// newUI lays out m as a centered panel: a heading and one button per item.
// Colors come from the palette so a theme reload restyles the menu.
func newUI(c *Controller, m Menu) *ebitenui.UI {
	p := c.palette
	buttons := p.Button()

	surface := p.MustColor(theme.Surface)
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: surface.R, G: surface.G, B: surface.B, A: 0xe0})

	btnImg := &widget.ButtonImage{
		Idle:     imageui.NewNineSliceColor(buttons.Idle),
		Hover:    imageui.NewNineSliceColor(buttons.Hover),
		Pressed:  imageui.NewNineSliceColor(buttons.Pressed),
		Disabled: imageui.NewNineSliceColor(buttons.Disabled),
	}

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

	textColor := p.MustColor(theme.Text)
	btnTextColor := &widget.ButtonTextColor{
		Idle:     textColor,
		Hover:    textColor,
		Pressed:  p.MustColor(theme.Accent),
		Disabled: color.Gray{Y: 128},
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/3, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(c.Heading(m), &face, p.MustColor(theme.Primary)),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	))

	for _, item := range c.Items(m) {
		do := item.Do
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(btnImg),
			widget.ButtonOpts.Text(item.Label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(common.BaseWidth/4, 24),
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter, Stretch: true}),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				do()
			}),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
