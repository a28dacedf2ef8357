package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	sfx "github.com/decker502/plasmaraid/internal/audio"
	"github.com/decker502/plasmaraid/pkg/events"
)

// SoundPlayer 根据模拟事件播放合成音效
type SoundPlayer struct {
	ctx   *audio.Context
	bank  *sfx.Bank
	muted bool
}

// NewSoundPlayer 创建音效播放器
//
// ctx 为 nil 时播放器静音（无头运行或测试）。
func NewSoundPlayer(ctx *audio.Context, muted bool) *SoundPlayer {
	p := &SoundPlayer{ctx: ctx, muted: muted || ctx == nil}
	if !p.muted {
		p.bank = sfx.NewBank(ctx.SampleRate())
		log.Printf("[SoundPlayer] Synthesized %d sound effects at %d Hz", len(sfx.Presets), ctx.SampleRate())
	}
	return p
}

// Muted 是否静音
func (p *SoundPlayer) Muted() bool {
	return p.muted
}

// Play 播放单个音效
func (p *SoundPlayer) Play(s sfx.Sound) {
	if p.muted {
		return
	}
	pcm := p.bank.PCM(s)
	if pcm == nil {
		return
	}
	p.ctx.NewPlayerFromBytes(pcm).Play()
}

// PlayAll 依次播放
func (p *SoundPlayer) PlayAll(sounds []sfx.Sound) {
	for _, s := range sounds {
		p.Play(s)
	}
}

// SoundsFor 将一帧的事件翻译为音效列表
//
// fired 表示本帧玩家射出了子弹（子弹生成不产生事件）。
// 同一帧内相同的音效只播放一次。
func SoundsFor(evs []events.Event, fired bool) []sfx.Sound {
	var sounds []sfx.Sound
	seen := make(map[sfx.Sound]bool)
	add := func(s sfx.Sound) {
		if !seen[s] {
			seen[s] = true
			sounds = append(sounds, s)
		}
	}

	if fired {
		add(sfx.SoundLaser)
	}
	for _, ev := range evs {
		switch e := ev.(type) {
		case events.ProjectileEnemyCollision:
			if e.Destroyed {
				add(sfx.SoundExplosion)
			} else {
				add(sfx.SoundEnemyHit)
			}
		case events.PlayerEnemyCollision:
			add(sfx.SoundCollision)
		case events.NewWave:
			add(sfx.SoundWave)
		}
	}
	return sounds
}
