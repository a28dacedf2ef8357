package events

import (
	"strings"
	"testing"

	"github.com/decker502/plasmaraid/pkg/components"
	"github.com/decker502/plasmaraid/pkg/types"
)

func TestCountAndFilter(t *testing.T) {
	evs := []Event{
		NewWave{Ordinal: 1, EnemyCount: 12},
		ProjectileEnemyCollision{EnemyID: 3, ProjectileID: 20},
		ProjectileEnemyCollision{EnemyID: 3, ProjectileID: 21, Destroyed: true},
		PlayerEnemyCollision{EnemyID: 4},
	}

	if got := Count[ProjectileEnemyCollision](evs); got != 2 {
		t.Errorf("Count[ProjectileEnemyCollision] = %d, want 2", got)
	}
	if got := Count[GameOver](evs); got != 0 {
		t.Errorf("Count[GameOver] = %d, want 0", got)
	}

	hits := Filter[ProjectileEnemyCollision](evs)
	if len(hits) != 2 || hits[0].ProjectileID != 20 || !hits[1].Destroyed {
		t.Errorf("Filter[ProjectileEnemyCollision] = %+v", hits)
	}
	if waves := Filter[NewWave](evs); len(waves) != 1 || waves[0].Ordinal != 1 {
		t.Errorf("Filter[NewWave] = %+v", waves)
	}
}

func TestEventStrings(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{ProjectileEnemyCollision{EnemyID: 1, EnemyType: types.EnemyTough, Position: components.C(4, 5), Destroyed: true}, "destroyed=true"},
		{PlayerEnemyCollision{EnemyID: 9}, "enemy=9"},
		{NewWave{Ordinal: 3}, "wave 3"},
		{GameOver{Score: 17}, "score=17"},
		{Win{Ordinal: 4, Score: 50}, "wave 4"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); !strings.Contains(got, tt.want) {
			t.Errorf("%T.String() = %q, want it to contain %q", tt.ev, got, tt.want)
		}
	}
}
