package main

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"sync"
)

const activityLimit = 200

// activityFeed copies log output to dst and keeps the most recent lines for
// display in the window.
type activityFeed struct {
	dst      io.Writer
	onChange func(text string)

	mu    sync.Mutex
	lines []string
}

func newActivityFeed(dst io.Writer, onChange func(text string)) *activityFeed {
	if dst == nil {
		dst = io.Discard
	}
	return &activityFeed{dst: dst, onChange: onChange}
}

func (f *activityFeed) Write(p []byte) (int, error) {
	f.record(p)
	return f.dst.Write(p)
}

func (f *activityFeed) record(p []byte) {
	if len(p) == 0 {
		return
	}

	f.mu.Lock()
	sc := bufio.NewScanner(bytes.NewReader(p))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		f.lines = append(f.lines, line)
	}
	if over := len(f.lines) - activityLimit; over > 0 {
		f.lines = append([]string(nil), f.lines[over:]...)
	}
	text := strings.Join(f.lines, "\n")
	f.mu.Unlock()

	if f.onChange != nil {
		f.onChange(text)
	}
}

func (f *activityFeed) Text() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return strings.Join(f.lines, "\n")
}
