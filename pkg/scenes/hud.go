package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/decker502/plasmaraid/pkg/world"
)

// WaveBannerFrames 波次横幅显示的帧数
const WaveBannerFrames = 80

var (
	darkGrey  = color.RGBA{R: 95, G: 87, B: 79, A: 255}
	lightGrey = color.RGBA{R: 194, G: 195, B: 199, A: 255}
	white     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	lightBlue = color.RGBA{R: 41, G: 173, B: 255, A: 255}
	darkGreen = color.RGBA{R: 0, G: 135, B: 81, A: 255}
	red       = color.RGBA{R: 255, G: 0, B: 77, A: 255}
)

// blinkColors 闪烁文字的颜色循环：长时间暗灰，然后短暂变亮
var blinkColors = []color.RGBA{
	darkGrey, darkGrey, darkGrey, darkGrey, darkGrey, darkGrey,
	darkGrey, darkGrey, darkGrey, darkGrey, darkGrey, darkGrey,
	lightGrey, lightGrey, white, white, lightGrey, lightGrey,
}

// Blinker 逐帧循环 blinkColors
type Blinker struct {
	index int
}

// Step 前进一帧
func (b *Blinker) Step() {
	b.index = (b.index + 1) % len(blinkColors)
}

// Color 当前颜色
func (b *Blinker) Color() color.RGBA {
	return blinkColors[b.index]
}

// WaveBanner 新波次开始时闪烁的 "wave N" 提示
type WaveBanner struct {
	wave    int
	age     int
	visible bool
	blinker Blinker
}

// Show 显示第 wave 波的横幅，重新计时
func (b *WaveBanner) Show(wave int) {
	b.wave = wave
	b.age = 0
	b.visible = true
	b.blinker = Blinker{}
}

// Update 前进一帧，超过 WaveBannerFrames 后隐藏
func (b *WaveBanner) Update() {
	if !b.visible {
		return
	}
	b.blinker.Step()
	b.age++
	if b.age > WaveBannerFrames {
		b.visible = false
	}
}

// Visible 是否正在显示
func (b *WaveBanner) Visible() bool {
	return b.visible
}

// Text 横幅文字
func (b *WaveBanner) Text() string {
	return fmt.Sprintf("wave %d", b.wave)
}

// Color 当前闪烁颜色
func (b *WaveBanner) Color() color.RGBA {
	return b.blinker.Color()
}

// ScoreText 分数显示文字
func ScoreText(score int) string {
	return fmt.Sprintf("score:%d", score)
}

// HUD 绘制分数、生命和波次横幅
type HUD struct {
	face  text.Face
	scale float64
}

// NewHUD 创建 HUD，使用内置位图字体
func NewHUD(scale float64) *HUD {
	return &HUD{
		face:  text.NewGoXFace(basicfont.Face7x13),
		scale: scale,
	}
}

// Face 返回 HUD 使用的字体
func (h *HUD) Face() text.Face {
	return h.face
}

// Draw 绘制 HUD
func (h *HUD) Draw(screen *ebiten.Image, snap world.Snapshot, spriteSize int, banner *WaveBanner) {
	h.drawLives(screen, snap.Lives, snap.TotalLives, spriteSize)

	w := float64(screen.Bounds().Dx())
	drawCentered(screen, h.face, ScoreText(snap.Score), w/2, 9*h.scale, lightBlue)

	if banner != nil && banner.Visible() {
		drawCentered(screen, h.face, banner.Text(), w/2, 32*h.scale, banner.Color())
	}
}

// drawLives 左上角一排生命图标，已损失的为空框
func (h *HUD) drawLives(screen *ebiten.Image, lives, total, spriteSize int) {
	size := float32(float64(spriteSize-2) * h.scale)
	for i := range total {
		x := float32(float64(2+i*(spriteSize+1)) * h.scale)
		y := float32(2 * h.scale)
		if i < lives {
			vector.DrawFilledRect(screen, x, y, size, size, red, false)
		} else {
			vector.StrokeRect(screen, x, y, size, size, 1, darkGrey, false)
		}
	}
}

// drawCentered 以 (cx, y) 为上边中点绘制文字
func drawCentered(screen *ebiten.Image, face text.Face, s string, cx, y float64, c color.Color) {
	width, _ := text.Measure(s, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx-width/2, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
