package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// ReplayInput represents input state during replay
type ReplayInput struct {
	Forward     bool
	Backward    bool
	StrafeLeft  bool
	StrafeRight bool
	TurnLeft    bool
	TurnRight   bool
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (ReplayInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return ReplayInput{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return ReplayInput{
		Forward:     fi.Fw,
		Backward:    fi.Bk,
		StrafeLeft:  fi.SL,
		StrafeRight: fi.SR,
		TurnLeft:    fi.TL,
		TurnRight:   fi.TR,
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (idle camera)
func CreateTestReplayData(frames int) ReplayData {
	data := ReplayData{
		Version:   "1.0",
		Map:       "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i}
	}

	return data
}
