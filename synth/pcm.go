package synth

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/gopxl/beep"
)

const bytesPerFrame = 8 // two float32 channels

// PCMReader encodes a beep stream as interleaved little-endian float32
// stereo frames, the layout accepted by ebiten's NewPlayerF32.
type PCMReader struct {
	streamer beep.Streamer
	buf      [][2]float64
	done     bool
}

// NewPCMReader wraps s.
func NewPCMReader(s beep.Streamer) *PCMReader {
	return &PCMReader{streamer: s}
}

func (r *PCMReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, io.EOF
	}
	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, io.ErrShortBuffer
	}
	if cap(r.buf) < frames {
		r.buf = make([][2]float64, frames)
	}
	buf := r.buf[:frames]

	n, ok := r.streamer.Stream(buf)
	for i := 0; i < n; i++ {
		off := i * bytesPerFrame
		binary.LittleEndian.PutUint32(p[off:], math.Float32bits(float32(buf[i][0])))
		binary.LittleEndian.PutUint32(p[off+4:], math.Float32bits(float32(buf[i][1])))
	}
	if !ok || n < frames {
		r.done = true
		if n == 0 {
			if err := r.streamer.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
	}
	return n * bytesPerFrame, nil
}
