package scmap

import (
	"fmt"
	"time"
)

// logCategory classifies a BuildLog message, mirroring the teacher's
// rcLogCategory / RC_LOG_* constants.
type logCategory int

const (
	logProgress logCategory = 1 + iota
	logWarning
	logError
)

// TimerLabel identifies one stage of map construction for accumulated-time
// reporting, the same role the teacher's rcTimerLabel plays for the
// recast build pipeline, generalized to this pipeline's five stages.
type TimerLabel int

const (
	TimerPass1 TimerLabel = iota
	TimerPass2
	TimerGroundPathfinder
	TimerPass3
	TimerChokeGroup
	maxTimers
)

const maxLogMessages = 1000

// BuildLog collects progress/warning/error messages and per-pass timings
// produced while constructing a Map. It is the generalization of the
// teacher's BuildContext (buildcontext.go): same message-pool design, same
// start/stop/accumulate timer API, retargeted at this pipeline's five
// passes instead of recast's voxelization stages.
//
// A nil *BuildLog is valid everywhere a *BuildLog is accepted; all methods
// are no-ops on a nil receiver, so callers that don't care about
// diagnostics can pass nil to NewMap.
type BuildLog struct {
	startTime [maxTimers]time.Time
	accTime   [maxTimers]time.Duration

	messages []string
}

// NewBuildLog returns an empty BuildLog ready to record a map construction.
func NewBuildLog() *BuildLog {
	return &BuildLog{messages: make([]string, 0, 64)}
}

func (l *BuildLog) log(category logCategory, format string, args ...interface{}) {
	if l == nil || len(l.messages) >= maxLogMessages {
		return
	}
	msg := fmt.Sprintf(format, args...)
	switch category {
	case logProgress:
		msg = "PROG " + msg
	case logWarning:
		msg = "WARN " + msg
	case logError:
		msg = "ERR " + msg
	}
	l.messages = append(l.messages, msg)
}

// Progressf records an informational progress message.
func (l *BuildLog) Progressf(format string, args ...interface{}) { l.log(logProgress, format, args...) }

// Warningf records a warning about a degenerate but recoverable input.
func (l *BuildLog) Warningf(format string, args ...interface{}) { l.log(logWarning, format, args...) }

// Messages returns every message recorded so far, in emission order.
func (l *BuildLog) Messages() []string {
	if l == nil {
		return nil
	}
	return l.messages
}

// StartTimer begins timing the named stage.
func (l *BuildLog) StartTimer(label TimerLabel) {
	if l == nil {
		return
	}
	l.startTime[label] = time.Now()
}

// StopTimer accumulates the elapsed time for the named stage since the last
// StartTimer call.
func (l *BuildLog) StopTimer(label TimerLabel) {
	if l == nil {
		return
	}
	l.accTime[label] += time.Since(l.startTime[label])
}

// AccumulatedTime returns the total time spent in the named stage.
func (l *BuildLog) AccumulatedTime(label TimerLabel) time.Duration {
	if l == nil {
		return 0
	}
	return l.accTime[label]
}

// DumpLog prints a header followed by every recorded message, mirroring
// the teacher's BuildContext.dumpLog.
func (l *BuildLog) DumpLog(format string, args ...interface{}) {
	if l == nil {
		return
	}
	fmt.Printf(format+"\n", args...)
	for _, msg := range l.messages {
		fmt.Println(msg)
	}
}
