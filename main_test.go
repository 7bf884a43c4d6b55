package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakhansingh/portfolio/internal/chatbot"
	"github.com/lakhansingh/portfolio/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAskCommand(t *testing.T) {
	out, err := execute(t, "ask", "--topic", "how", "can", "I", "contact", "him")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "[contact] "), "got %q", out)
	assert.Contains(t, out, "lakhan.rajputaipm@gmail.com")
}

func TestAskCommandRequiresQuestion(t *testing.T) {
	_, err := execute(t, "ask")
	assert.Error(t, err)
}

func TestChatLoop(t *testing.T) {
	in := strings.NewReader("hello\n\nwhat certifications does he hold\nexit\nnever reached\n")
	var out bytes.Buffer

	require.NoError(t, chatLoop(in, &out, chatbot.New(), true))

	text := out.String()
	assert.Contains(t, text, "[greetings] ")
	assert.Contains(t, text, "[certifications] ")
	assert.NotContains(t, text, "never reached")
	assert.Equal(t, 2, strings.Count(text, "["))
}

func TestChatLoopLongLine(t *testing.T) {
	long := strings.Repeat("list his skills ", 100*1024/16)
	in := strings.NewReader(long + "\nexit\n")
	var out bytes.Buffer

	require.NoError(t, chatLoop(in, &out, chatbot.New(), true))
	assert.Contains(t, out.String(), "[skills] ")
}

func TestStatsCommand(t *testing.T) {
	t.Setenv("PORTFOLIO_DATA_DIR", t.TempDir())

	out, err := execute(t, "stats")
	require.NoError(t, err)

	var stats storage.Stats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Zero(t, stats.TotalVisitors)
	assert.Zero(t, stats.TotalChats)
}
