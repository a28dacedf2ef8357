package scenes

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/plasmaraid/pkg/types"
)

// fakeKeys 一帧的按键状态；held 为 nil 时按下的键视为按住
type fakeKeys struct {
	pressed  map[ebiten.Key]bool
	released map[ebiten.Key]bool
	held     map[ebiten.Key]bool
}

func (f fakeKeys) JustPressed(k ebiten.Key) bool  { return f.pressed[k] }
func (f fakeKeys) JustReleased(k ebiten.Key) bool { return f.released[k] }
func (f fakeKeys) Pressed(k ebiten.Key) bool {
	if f.held == nil {
		return f.pressed[k]
	}
	return f.held[k]
}

type recordingControls struct {
	direction types.Direction
	firing    bool
	starts    int
}

func (r *recordingControls) SetDirection(d types.Direction) { r.direction = d }
func (r *recordingControls) ClearDirectionIfMatches(d types.Direction) {
	if r.direction == d {
		r.direction = types.DirectionNone
	}
}
func (r *recordingControls) StartFiring() { r.firing = true; r.starts++ }
func (r *recordingControls) EndFiring()   { r.firing = false }

func TestDirectionForKey(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want types.Direction
		ok   bool
	}{
		{ebiten.KeyArrowLeft, types.DirectionLeft, true},
		{ebiten.KeyD, types.DirectionRight, true},
		{ebiten.KeyW, types.DirectionUp, true},
		{ebiten.KeyArrowDown, types.DirectionDown, true},
		{ebiten.KeyZ, types.DirectionNone, false},
	}
	for _, tt := range tests {
		got, ok := DirectionForKey(tt.key)
		if got != tt.want || ok != tt.ok {
			t.Errorf("DirectionForKey(%v) = %v, %v; want %v, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTranslateInput(t *testing.T) {
	c := &recordingControls{}

	TranslateInput(fakeKeys{pressed: map[ebiten.Key]bool{ebiten.KeyArrowLeft: true, ebiten.KeyZ: true}}, c)
	if c.direction != types.DirectionLeft || !c.firing {
		t.Fatalf("after pressing left+fire: %+v", c)
	}

	// 按住左键时按下上键，再松开左键，方向保持向上
	TranslateInput(fakeKeys{pressed: map[ebiten.Key]bool{ebiten.KeyArrowUp: true}}, c)
	TranslateInput(fakeKeys{released: map[ebiten.Key]bool{ebiten.KeyArrowLeft: true}}, c)
	if c.direction != types.DirectionUp {
		t.Errorf("releasing a stale key changed direction to %v", c.direction)
	}

	// 同一帧松开旧键、按下新键
	TranslateInput(fakeKeys{
		pressed:  map[ebiten.Key]bool{ebiten.KeyArrowRight: true},
		released: map[ebiten.Key]bool{ebiten.KeyArrowUp: true, ebiten.KeyZ: true},
	}, c)
	if c.direction != types.DirectionRight {
		t.Errorf("direction = %v, want right", c.direction)
	}
	if c.firing {
		t.Error("fire release ignored")
	}

	TranslateInput(fakeKeys{pressed: map[ebiten.Key]bool{ebiten.KeySpace: true}}, c)
	if !c.firing || c.starts != 2 {
		t.Errorf("space did not start firing: %+v", c)
	}
}

func TestTranslateInputFireKeysHeldTogether(t *testing.T) {
	c := &recordingControls{}

	// 按住 Z
	TranslateInput(fakeKeys{pressed: map[ebiten.Key]bool{ebiten.KeyZ: true}}, c)
	// Z 仍按住时点按空格
	TranslateInput(fakeKeys{
		pressed: map[ebiten.Key]bool{ebiten.KeySpace: true},
		held:    map[ebiten.Key]bool{ebiten.KeyZ: true, ebiten.KeySpace: true},
	}, c)
	TranslateInput(fakeKeys{
		released: map[ebiten.Key]bool{ebiten.KeySpace: true},
		held:     map[ebiten.Key]bool{ebiten.KeyZ: true},
	}, c)
	if !c.firing {
		t.Fatal("releasing space stopped firing while z is still held")
	}

	TranslateInput(fakeKeys{
		released: map[ebiten.Key]bool{ebiten.KeyZ: true},
		held:     map[ebiten.Key]bool{},
	}, c)
	if c.firing {
		t.Error("releasing the last fire key did not stop firing")
	}
}

func TestTranslateInputSameFrameDirectionsAreOrdered(t *testing.T) {
	keys := fakeKeys{pressed: map[ebiten.Key]bool{
		ebiten.KeyArrowLeft: true,
		ebiten.KeyArrowUp:   true,
		ebiten.KeyD:         true,
	}}
	for i := 0; i < 50; i++ {
		c := &recordingControls{}
		TranslateInput(keys, c)
		// 固定顺序中最后按下的是 D
		if c.direction != types.DirectionRight {
			t.Fatalf("run %d: direction = %v, want right", i, c.direction)
		}
	}
}
