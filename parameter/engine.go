package parameter

import "time"

// Loop timing
const (
	// FrameUpdateInterval is the terminal front-end frame interval (~60 FPS)
	// Display-driven front-ends ignore it and follow the refresh callback
	FrameUpdateInterval = 16 * time.Millisecond

	// SpawnInterval is the wall-clock period between pulse spawns, independent of frame rate
	SpawnInterval = 200 * time.Millisecond

	// FusionThreshold is the tick count after which chaos ends; flips on tick FusionThreshold+1
	FusionThreshold = 300

	// LoopCommandQueue is the buffered capacity of the loop's cross-goroutine command channel
	LoopCommandQueue = 16
)
