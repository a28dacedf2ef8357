package audio

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Waveform 振荡器波形
type Waveform int

const (
	WaveSquare Waveform = iota
	WaveTriangle
	WaveNoise
)

// Tone 一段带音高滑动与线性衰减的短音效
type Tone struct {
	Waveform  Waveform
	StartFreq float64 // 起始频率（Hz）
	EndFreq   float64 // 结束频率（Hz），线性滑动
	Duration  float64 // 时长（秒）
	Volume    float64 // 0-1
}

// headroom 混音余量，避免多个音效叠加时削波
const headroom = 0.5

// oscillator 频率从 StartFreq 线性滑到 EndFreq 的振荡器
type oscillator struct {
	tone  Tone
	rate  beep.SampleRate
	total int
	pos   int
	phase float64
	noise float64
	rng   *rand.Rand
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := 0.0
		if o.total > 0 {
			progress = float64(o.pos) / float64(o.total)
		}
		freq := o.tone.StartFreq + (o.tone.EndFreq-o.tone.StartFreq)*progress

		prev := o.phase
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)

		var v float64
		switch o.tone.Waveform {
		case WaveTriangle:
			v = 4*math.Abs(o.phase-0.5) - 1
		case WaveNoise:
			// 每个周期换一次采样值，频率决定噪声的"粗糙度"
			if o.phase < prev || o.pos == 0 {
				o.noise = o.rng.Float64()*2 - 1
			}
			v = o.noise
		default:
			if o.phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		}
		samples[i][0] = v
		samples[i][1] = v
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay 在 total 个采样内从 1 线性衰减到 0
type decay struct {
	streamer beep.Streamer
	total    int
	pos      int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		k := 0.0
		if d.pos < d.total {
			k = 1 - float64(d.pos)/float64(d.total)
		}
		samples[i][0] *= k
		samples[i][1] *= k
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// Streamer 将 Tone 构造为有限长度的 beep 流
//
// 参数:
//   - t: 音效参数
//   - sampleRate: 采样率（与 audio.Context 一致）
//   - seed: 噪声波形的随机种子，同一种子产出相同数据
func Streamer(t Tone, sampleRate beep.SampleRate, seed int64) beep.Streamer {
	n := sampleRate.N(time.Duration(t.Duration * float64(time.Second)))
	if n < 0 {
		n = 0
	}
	osc := &oscillator{tone: t, rate: sampleRate, total: n, rng: rand.New(rand.NewSource(seed))}
	shaped := &decay{streamer: osc, total: n}

	vol := math.Max(0, math.Min(1, t.Volume)) * headroom
	var s beep.Streamer
	if vol <= 0 {
		s = &effects.Volume{Streamer: shaped, Base: 2, Volume: 0, Silent: true}
	} else {
		s = &effects.Volume{Streamer: shaped, Base: 2, Volume: math.Log2(vol), Silent: false}
	}
	return beep.Take(n, s)
}

// Render 把流排空为 16-bit signed little-endian 立体声 PCM
// 输出格式即 ebiten audio.Context.NewPlayerFromBytes 所需格式
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			var frame [4]byte
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(buf[i][0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(buf[i][1])))
			out = append(out, frame[:]...)
		}
		if !ok || n == 0 {
			return out
		}
	}
}

// Synthesize 合成 Tone 并返回完整 PCM 数据
func Synthesize(t Tone, sampleRate int, seed int64) []byte {
	return Render(Streamer(t, beep.SampleRate(sampleRate), seed))
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
