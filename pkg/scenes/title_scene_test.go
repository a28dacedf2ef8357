package scenes

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/plasmaraid/pkg/world"
)

func TestTitleSceneLines(t *testing.T) {
	tests := []struct {
		name      string
		result    *Result
		wantFirst string
		prompt    string
	}{
		{"start", nil, "plasma raid", "press z to start"},
		{"game over", &Result{Outcome: world.OutcomeGameOver, Score: 12}, "game over", "press z to continue"},
		{"win", &Result{Outcome: world.OutcomeWon, Score: 40}, "you win", "press z to continue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewTitleScene(NewSceneManager(), 4, tt.result)
			lines := s.Lines()
			if lines[0].Text != tt.wantFirst {
				t.Errorf("first line = %q, want %q", lines[0].Text, tt.wantFirst)
			}
			if s.Prompt() != tt.prompt {
				t.Errorf("Prompt() = %q, want %q", s.Prompt(), tt.prompt)
			}
			if tt.result != nil && lines[1].Text != ScoreText(tt.result.Score) {
				t.Errorf("score line = %q", lines[1].Text)
			}
		})
	}
}

func TestTitleSceneStartsGame(t *testing.T) {
	sm := NewSceneManager()
	var loaded []string
	sm.SetSceneFactory(func(name string) Scene {
		loaded = append(loaded, name)
		return &MockScene{}
	})

	s := NewTitleScene(sm, 4, nil)
	sm.SwitchTo(s)

	s.step(noKeys)
	if len(loaded) != 0 {
		t.Fatalf("scene loaded without a key press: %v", loaded)
	}

	s.step(fakeKeys{pressed: map[ebiten.Key]bool{ebiten.KeyEnter: true}})
	if len(loaded) != 1 || loaded[0] != ScenePlay {
		t.Errorf("loaded = %v, want [play]", loaded)
	}
	if _, ok := sm.GetCurrentScene().(*MockScene); !ok {
		t.Errorf("current scene = %T", sm.GetCurrentScene())
	}
}
