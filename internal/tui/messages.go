package tui

// openErrMsg reports a failed browser launch.
type openErrMsg struct {
	url string
	err error
}
