package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-coach/internal/coach"
)

var chatCommand = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive career coach session",
	Long: `Opens a conversational session with the career coach. When a profile is
provided the coach opens with a personalized welcome message. Type your
questions at the prompt; use /clear to reset the conversation and /quit
to exit.`,
	RunE: runChatCmd,
}

var (
	chatConfigPath string
	chatProfile    string
)

func init() {
	chatCommand.Flags().StringVar(&chatConfigPath, "config", "", "Path to config.json file")
	chatCommand.Flags().StringVarP(&chatProfile, "profile", "p", "", "Path to career profile JSON file")
	rootCmd.AddCommand(chatCommand)
}

func runChatCmd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, chatConfigPath)
	if err != nil {
		return err
	}
	defer a.close()

	session := coach.NewSession(a.llm, a.log)

	if chatProfile != "" {
		profile, err := loadCareerProfile(chatProfile)
		if err != nil {
			return err
		}
		welcome, err := session.SetProfile(ctx, profile)
		if err != nil {
			return err
		}
		fmt.Printf("Coach: %s\n\n", welcome.Content)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		switch text {
		case "/quit", "/exit":
			return nil
		case "/clear":
			session.ClearHistory()
			fmt.Println("Conversation cleared.")
			continue
		}

		reply, err := session.SendMessage(ctx, text)
		if err != nil {
			return err
		}
		fmt.Printf("\nCoach: %s\n\n", reply.Content)
	}

	return scanner.Err()
}
