// This file is part of mkc64tap.
//
// mkc64tap is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mkc64tap is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mkc64tap.  If not, see <https://www.gnu.org/licenses/>.

// Package wavexport renders the loader pulse sequence as audio, suitable for
// playing into a real datasette port adapter. Note that audio data is
// buffered in memory in its entirety and written to disk in Finalize().
//
// Each pulse becomes one period of a square wave: low for the first half of
// the pulse, high for the second. The rendering is an offline transformation
// of the discrete pulse sequence; there is no realtime signal path.
package wavexport

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/reidrac/mkc64tap/curated"
	"github.com/reidrac/mkc64tap/logger"
)

// InvalidPulse is returned when a pulse length cannot be rendered. To be
// used with curated.Is().
const InvalidPulse = "wavexport: invalid pulse length (%d cycles)"

// the C64 PAL system clock. pulse lengths are measured in periods of this
// clock.
const clockFreq = 985248

const (
	sampleRate = 44100
	bitDepth   = 16

	// well below full scale. datasette adapters don't need a hot signal and
	// clipping after resampling is worse than a quiet wave
	amplitude = 0x6000
)

// Writer implements the kernal.PulseWriter interface, rendering pulses to
// PCM samples.
type Writer struct {
	filename string
	data     []int

	// fractional samples carried over from the previous pulse so that
	// rounding error doesn't accumulate over a long tape
	carry float64
}

// NewWriter is the preferred method of initialisation for the Writer type.
func NewWriter(filename string) *Writer {
	return &Writer{
		filename: filename,
		data:     make([]int, 0, sampleRate),
	}
}

// WritePulse implements the kernal.PulseWriter interface.
func (w *Writer) WritePulse(cycles int) error {
	if cycles < 1 {
		return curated.Errorf(InvalidPulse, cycles)
	}

	d := float64(cycles)*sampleRate/clockFreq + w.carry
	n := int(d)
	w.carry = d - float64(n)

	half := n / 2
	for i := 0; i < half; i++ {
		w.data = append(w.data, -amplitude)
	}
	for i := half; i < n; i++ {
		w.data = append(w.data, amplitude)
	}

	return nil
}

// Finalize writes the buffered samples to the WAV file. Nothing is written
// to disk before this.
func (w *Writer) Finalize() (rerr error) {
	f, err := os.Create(w.filename)
	if err != nil {
		return curated.Errorf("wavexport: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavexport: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           w.data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavexport: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavexport: %v", err)
	}

	logger.Logf("wavexport", "%s: %d samples (%.02fs)", w.filename,
		len(w.data), float64(len(w.data))/sampleRate)

	return nil
}
