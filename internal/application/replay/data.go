package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	Fw bool `json:"fw,omitempty"` // Forward
	Bk bool `json:"bk,omitempty"` // Backward
	SL bool `json:"sl,omitempty"` // StrafeLeft
	SR bool `json:"sr,omitempty"` // StrafeRight
	TL bool `json:"tl,omitempty"` // TurnLeft
	TR bool `json:"tr,omitempty"` // TurnRight
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Map       string       `json:"map"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
