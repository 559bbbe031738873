package flappy

// Listener receives notifications from the Machine. Calls happen
// synchronously inside Start and Update; implementations must not block and
// must not call back into the Machine.
type Listener interface {
	// ScoreChanged is called with the new score after every increment and
	// with 0 when a round starts.
	ScoreChanged(score int)

	// GameOver is called once when a round ends.
	GameOver(finalScore int)

	// RestartReady is called after GameOver, when Start will be accepted.
	RestartReady()
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnScoreChanged func(score int)
	OnGameOver     func(finalScore int)
	OnRestartReady func()
}

// ScoreChanged implements Listener.
func (f ListenerFuncs) ScoreChanged(score int) {
	if f.OnScoreChanged != nil {
		f.OnScoreChanged(score)
	}
}

// GameOver implements Listener.
func (f ListenerFuncs) GameOver(finalScore int) {
	if f.OnGameOver != nil {
		f.OnGameOver(finalScore)
	}
}

// RestartReady implements Listener.
func (f ListenerFuncs) RestartReady() {
	if f.OnRestartReady != nil {
		f.OnRestartReady()
	}
}
