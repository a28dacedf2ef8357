// Package audio 合成游戏音效
//
// 没有音频资源文件，所有音效都是运行时用 beep 流合成、再排空为 PCM 的短片段。
package audio

// Sound 音效名称
type Sound int

const (
	SoundLaser     Sound = iota // 开火
	SoundEnemyHit               // 敌人被命中（未摧毁）
	SoundExplosion              // 敌人被摧毁
	SoundCollision              // 玩家被撞
	SoundWave                   // 新一波
)

// Presets 每个音效的合成参数
var Presets = map[Sound]Tone{
	SoundLaser:     {Waveform: WaveSquare, StartFreq: 1400, EndFreq: 300, Duration: 0.08, Volume: 0.3},
	SoundEnemyHit:  {Waveform: WaveSquare, StartFreq: 600, EndFreq: 500, Duration: 0.05, Volume: 0.35},
	SoundExplosion: {Waveform: WaveNoise, StartFreq: 3000, EndFreq: 200, Duration: 0.35, Volume: 0.5},
	SoundCollision: {Waveform: WaveNoise, StartFreq: 900, EndFreq: 60, Duration: 0.5, Volume: 0.6},
	SoundWave:      {Waveform: WaveTriangle, StartFreq: 440, EndFreq: 880, Duration: 0.25, Volume: 0.4},
}

// Bank 预先合成好的音效
type Bank struct {
	sampleRate int
	pcm        map[Sound][]byte
}

// NewBank 合成所有预设音效
func NewBank(sampleRate int) *Bank {
	b := &Bank{sampleRate: sampleRate, pcm: make(map[Sound][]byte, len(Presets))}
	for s, tone := range Presets {
		b.pcm[s] = Synthesize(tone, sampleRate, int64(s)+1)
	}
	return b
}

// PCM 返回音效的 PCM 数据，未知音效返回 nil
func (b *Bank) PCM(s Sound) []byte {
	return b.pcm[s]
}

// SampleRate 返回采样率
func (b *Bank) SampleRate() int {
	return b.sampleRate
}
