package logging

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{in: "debug", want: LevelDebug},
		{in: "INFO", want: LevelInfo},
		{in: "", want: LevelInfo},
		{in: "warning", want: LevelWarn},
		{in: "error", want: LevelError},
		{in: "loud", want: LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInitForCLI_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	Debug("Test", "hidden %d", 1)
	Info("Test", "shown %d", 2)
	Error("Test", errors.New("boom"), "failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown 2")
	assert.Contains(t, out, "subsystem=Test")
	assert.Contains(t, out, "error=boom")
}

func TestInitForTUI_DeliversEntries(t *testing.T) {
	ch := InitForTUI(LevelInfo)
	defer CloseTUIChannel()

	Debug("Screen", "below the threshold")
	Warn("Screen", "block %q missing", "footer")

	select {
	case entry := <-ch:
		assert.Equal(t, LevelWarn, entry.Level)
		assert.Equal(t, "Screen", entry.Subsystem)
		assert.Equal(t, `block "footer" missing`, entry.Message)
	case <-time.After(time.Second):
		t.Fatal("no log entry delivered")
	}

	select {
	case entry := <-ch:
		t.Fatalf("unexpected entry %v", entry)
	default:
	}
}

func TestInitForTUI_DropsWhenFull(t *testing.T) {
	InitForTUI(LevelDebug)
	defer CloseTUIChannel()

	before := Dropped()
	for i := 0; i < tuiChannelBufferSize+5; i++ {
		Info("Flood", "entry %d", i)
	}
	assert.Equal(t, int64(5), Dropped()-before)
}

func TestCloseTUIChannel(t *testing.T) {
	ch := InitForTUI(LevelInfo)
	CloseTUIChannel()

	_, ok := <-ch
	assert.False(t, ok)
	require.NotPanics(t, func() { Info("Test", "after close") })
	CloseTUIChannel()
}

func TestLogEntryString(t *testing.T) {
	entry := LogEntry{
		Timestamp: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
		Level:     LevelError,
		Subsystem: "Config",
		Message:   "bad file",
		Err:       errors.New("permission denied"),
	}
	assert.Equal(t, "09:30:00 [ERROR] Config: bad file: permission denied", entry.String())
}
