package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lakhansingh/portfolio/internal/chatbot"
	"github.com/lakhansingh/portfolio/internal/config"
	"github.com/lakhansingh/portfolio/internal/storage"
)

// --- ask ---

var askCmd = &cobra.Command{
	Use:   "ask <question...>",
	Short: "Answer one question the way the site chatbot would",
	Long: `Answer one question the way the site chatbot would.

Examples:
  portfolio ask what are his skills
  portfolio ask --topic "tell me about the shopping assistant"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		showTopic, _ := cmd.Flags().GetBool("topic")
		answer := chatbot.New().Answer(strings.Join(args, " "))
		printAnswer(cmd.OutOrStdout(), answer, showTopic)
		return nil
	},
}

func init() {
	askCmd.Flags().Bool("topic", false, "print the matched topic before the reply")
	chatCmd.Flags().Bool("topic", false, "print the matched topic before each reply")
}

// --- chat ---

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the FAQ bot on the terminal (Ctrl-D or \"exit\" to quit)",
	RunE: func(cmd *cobra.Command, args []string) error {
		showTopic, _ := cmd.Flags().GetBool("topic")
		return chatLoop(cmd.InOrStdin(), cmd.OutOrStdout(), chatbot.New(), showTopic)
	},
}

// maxChatLineBytes bounds one line typed into the chat REPL.
const maxChatLineBytes = 1 << 20

func chatLoop(in io.Reader, out io.Writer, bot *chatbot.Responder, showTopic bool) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxChatLineBytes)
	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			fmt.Fprint(out, "> ")
			continue
		case "exit", "quit":
			return nil
		}
		printAnswer(out, bot.Answer(line), showTopic)
		fmt.Fprint(out, "> ")
	}
	return scanner.Err()
}

func printAnswer(out io.Writer, answer chatbot.Answer, showTopic bool) {
	if showTopic {
		fmt.Fprintf(out, "[%s] ", answer.Topic)
	}
	fmt.Fprintln(out, answer.Text)
}

// --- stats ---

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print visitor, chat and contact statistics as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		store, err := storage.Open(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("opening storage: %w", err)
		}
		defer store.Close()

		stats, err := store.Stats(cmd.Context(), time.Now())
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	},
}
