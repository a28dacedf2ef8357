package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/decker502/plasmaraid/pkg/world"
)

// startKeys 开始/继续游戏的按键
var startKeys = []ebiten.Key{ebiten.KeyZ, ebiten.KeySpace, ebiten.KeyEnter}

// TitleLine 标题画面中的一行文字（逻辑坐标 y）
type TitleLine struct {
	Text  string
	Y     float64
	Color color.RGBA
}

// TitleScene 开始画面，也用作游戏结束和胜利画面
type TitleScene struct {
	sm      *SceneManager
	result  *Result
	scale   float64
	keys    KeyState
	face    text.Face
	blinker Blinker
}

// NewTitleScene 创建标题场景
// result 为 nil 时显示开始画面，否则显示结局
func NewTitleScene(sm *SceneManager, scale float64, result *Result) *TitleScene {
	return &TitleScene{
		sm:     sm,
		result: result,
		scale:  scale,
		keys:   ebitenKeys{},
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// Result 返回结局，开始画面为 nil
func (s *TitleScene) Result() *Result {
	return s.result
}

// Lines 返回要显示的静态文字
func (s *TitleScene) Lines() []TitleLine {
	if s.result == nil {
		return []TitleLine{
			{Text: "plasma raid", Y: 32, Color: lightBlue},
			{Text: "top-down arcade shooter", Y: 44, Color: lightGrey},
			{Text: "arrows/wasd move, z fires", Y: 56, Color: darkGrey},
		}
	}

	lines := make([]TitleLine, 0, 3)
	switch s.result.Outcome {
	case world.OutcomeWon:
		lines = append(lines, TitleLine{Text: "you win", Y: 40, Color: darkGreen})
	default:
		lines = append(lines, TitleLine{Text: "game over", Y: 40, Color: red})
	}
	lines = append(lines, TitleLine{Text: ScoreText(s.result.Score), Y: 56, Color: lightBlue})
	return lines
}

// Prompt 闪烁的按键提示
func (s *TitleScene) Prompt() string {
	if s.result == nil {
		return "press z to start"
	}
	return "press z to continue"
}

// Update 闪烁提示，按下开始键时开始新的一局
func (s *TitleScene) Update(deltaTime float64) {
	s.step(s.keys)
}

func (s *TitleScene) step(keys KeyState) {
	s.blinker.Step()
	for _, k := range startKeys {
		if keys.JustPressed(k) {
			s.sm.Load(ScenePlay)
			return
		}
	}
}

// Draw 绘制标题画面
func (s *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	w := float64(screen.Bounds().Dx())
	for _, l := range s.Lines() {
		drawCentered(screen, s.face, l.Text, w/2, l.Y*s.scale, l.Color)
	}
	drawCentered(screen, s.face, s.Prompt(), w/2, 96*s.scale, s.blinker.Color())
}
