package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestActivityFeed(t *testing.T) {
	var dst bytes.Buffer
	var last string
	feed := newActivityFeed(&dst, func(text string) { last = text })

	fmt.Fprintln(feed, "[OK] image saved to /tmp/out/a.jpg")
	fmt.Fprint(feed, "[ERROR] failed to save b\n\n[WARN] Saved 1 images, 1 failed\n")

	if !strings.Contains(dst.String(), "failed to save b") {
		t.Fatalf("expected passthrough to dst, got %q", dst.String())
	}
	want := "[OK] image saved to /tmp/out/a.jpg\n[ERROR] failed to save b\n[WARN] Saved 1 images, 1 failed"
	if last != want || feed.Text() != want {
		t.Fatalf("unexpected feed text %q", last)
	}
}

func TestActivityFeedKeepsRecentLines(t *testing.T) {
	feed := newActivityFeed(nil, nil)
	for i := 0; i < activityLimit+25; i++ {
		fmt.Fprintf(feed, "line %d\n", i)
	}

	lines := strings.Split(feed.Text(), "\n")
	if len(lines) != activityLimit {
		t.Fatalf("expected %d lines, got %d", activityLimit, len(lines))
	}
	if lines[0] != "line 25" {
		t.Fatalf("expected oldest kept line to be line 25, got %q", lines[0])
	}
}
