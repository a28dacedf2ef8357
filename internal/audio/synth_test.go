package audio

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/gopxl/beep"
)

func TestSynthesizeLength(t *testing.T) {
	data := Synthesize(Tone{Waveform: WaveSquare, StartFreq: 440, EndFreq: 440, Duration: 0.5, Volume: 1}, 48000, 1)
	if got, want := len(data), 24000*4; got != want {
		t.Errorf("len(PCM) = %d, want %d", got, want)
	}
}

func TestStreamerStopsAfterDuration(t *testing.T) {
	sr := beep.SampleRate(8000)
	s := Streamer(Tone{Waveform: WaveTriangle, StartFreq: 200, EndFreq: 400, Duration: 0.1, Volume: 1}, sr, 1)
	buf := make([][2]float64, 300)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if want := sr.N(100_000_000); total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
	if err := s.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
}

func TestSynthesizeDecays(t *testing.T) {
	for _, wf := range []Waveform{WaveSquare, WaveTriangle, WaveNoise} {
		data := Synthesize(Tone{Waveform: wf, StartFreq: 300, EndFreq: 300, Duration: 0.2, Volume: 1}, 8000, 7)
		n := len(data) / 4
		peak := func(from, to int) int {
			m := 0
			for i := from; i < to; i++ {
				v := int(int16(binary.LittleEndian.Uint16(data[i*4:])))
				if v < 0 {
					v = -v
				}
				m = max(m, v)
			}
			return m
		}
		if head, tail := peak(0, n/4), peak(3*n/4, n); tail >= head {
			t.Errorf("waveform %d does not decay: head peak %d, tail peak %d", wf, head, tail)
		}
	}
}

func TestSynthesizeVolumeScales(t *testing.T) {
	peak := func(vol float64) int {
		data := Synthesize(Tone{Waveform: WaveSquare, StartFreq: 100, EndFreq: 100, Duration: 0.05, Volume: vol}, 8000, 1)
		m := 0
		for i := 0; i+1 < len(data); i += 4 {
			v := int(int16(binary.LittleEndian.Uint16(data[i:])))
			if v < 0 {
				v = -v
			}
			m = max(m, v)
		}
		return m
	}
	loud, quiet := peak(1), peak(0.25)
	if quiet >= loud {
		t.Errorf("volume 0.25 peak %d not below volume 1 peak %d", quiet, loud)
	}
	if silent := peak(0); silent != 0 {
		t.Errorf("volume 0 peak = %d, want 0", silent)
	}
}

func TestSynthesizeStereoAndDeterministic(t *testing.T) {
	tone := Presets[SoundExplosion]
	a := Synthesize(tone, 22050, 3)
	b := Synthesize(tone, 22050, 3)
	if !bytes.Equal(a, b) {
		t.Fatal("same seed produced different PCM")
	}
	for i := 0; i+3 < len(a); i += 4 {
		if a[i] != a[i+2] || a[i+1] != a[i+3] {
			t.Fatalf("left and right channels differ at frame %d", i/4)
		}
	}
}

func TestBankHasEveryPreset(t *testing.T) {
	b := NewBank(22050)
	for s := range Presets {
		if len(b.PCM(s)) == 0 {
			t.Errorf("sound %d has no PCM", s)
		}
	}
	if b.PCM(Sound(99)) != nil {
		t.Error("unknown sound returned data")
	}
}
