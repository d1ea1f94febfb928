package notify

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFeedNewestFirst(t *testing.T) {
	feed := NewFeed(10, nil)

	feed.Notify(SeveritySuccess, "first")
	feed.Notify(SeverityWarning, "second")

	entries := feed.Recent()
	require.Len(t, entries, 2)
	require.Equal(t, "second", entries[0].Message)
	require.Equal(t, SeverityWarning, entries[0].Severity)
	require.Equal(t, "first", entries[1].Message)
}

func TestFeedIsBounded(t *testing.T) {
	feed := NewFeed(3, nil)

	for i := 0; i < 5; i++ {
		feed.Notify(SeverityInfo, fmt.Sprintf("msg %d", i))
	}

	entries := feed.Recent()
	require.Len(t, entries, 3)
	require.Equal(t, "msg 4", entries[0].Message)
	require.Equal(t, "msg 2", entries[2].Message)
}
