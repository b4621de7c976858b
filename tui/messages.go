package tui

import "github.com/young1lin/tablo/internal/grid/records"

// DataLoadedMsg replaces the records shown by the viewer.
type DataLoadedMsg struct {
	Source string
	Data   records.Table
}

// ErrorMsg is sent when an error occurs
type ErrorMsg struct {
	Err error
}

// WatcherStartedMsg is sent when the file watcher starts
type WatcherStartedMsg struct{}

// WatcherFailedMsg is sent when the file watcher fails
type WatcherFailedMsg struct {
	Err error
}
