package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patri/internal/domain"
)

func collectEvents(t *testing.T, input string) []domain.Event {
	t.Helper()
	var got []domain.Event
	reader := NewReader(strings.NewReader(input), &bytes.Buffer{}, 7, func(ev domain.Event) error {
		got = append(got, ev)
		return nil
	})
	require.NoError(t, reader.Run(context.Background()))
	return got
}

func TestReader_ParsesGrammar(t *testing.T) {
	input := strings.Join([]string{
		"pdf 2024-001",
		"photo g1",
		"photo",
		"voice window was forced",
		"loc 38.72 -9.14",
		"tap fp_yes:b1",
		"/finish",
		"the neighbor heard nothing",
	}, "\n")

	got := collectEvents(t, input)
	require.Len(t, got, 8)

	assert.Equal(t, domain.EventDocument, got[0].Kind)
	assert.Equal(t, domain.FileRef("pdf:2024-001"), got[0].File)

	assert.Equal(t, domain.EventPhoto, got[1].Kind)
	assert.Equal(t, "g1", got[1].GroupID)
	assert.True(t, strings.HasPrefix(string(got[1].File), "photo:"))

	assert.Equal(t, domain.EventPhoto, got[2].Kind)
	assert.Empty(t, got[2].GroupID)

	assert.Equal(t, domain.EventVoice, got[3].Kind)
	assert.Equal(t, domain.FileRef("voice:window was forced"), got[3].File)

	assert.Equal(t, domain.EventLocation, got[4].Kind)
	assert.InDelta(t, 38.72, got[4].Latitude, 0.001)
	assert.InDelta(t, -9.14, got[4].Longitude, 0.001)

	assert.Equal(t, domain.EventCallback, got[5].Kind)
	assert.Equal(t, "fp_yes:b1", got[5].Callback)

	assert.Equal(t, domain.EventText, got[6].Kind)
	assert.Equal(t, "/finish", got[6].Text)

	assert.Equal(t, domain.EventText, got[7].Kind)
	assert.Equal(t, "the neighbor heard nothing", got[7].Text)

	for _, ev := range got {
		assert.Equal(t, int64(7), ev.UserID)
	}
}

func TestReader_BadInputIsReportedNotPublished(t *testing.T) {
	var out bytes.Buffer
	var got []domain.Event
	reader := NewReader(strings.NewReader("loc one two\n"), &out, 1, func(ev domain.Event) error {
		got = append(got, ev)
		return nil
	})

	require.NoError(t, reader.Run(context.Background()))

	assert.Empty(t, got)
	assert.Contains(t, out.String(), "bad latitude")
}

func TestReader_SkipsBlankLines(t *testing.T) {
	got := collectEvents(t, "\n\n  \nhello\n")
	require.Len(t, got, 1)
	assert.Equal(t, "hello", got[0].Text)
}
