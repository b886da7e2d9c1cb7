package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/labstack/gommon/color"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

const prompt = "> "

// runPrompt reads statements one line at a time until EOF. Interactive
// sessions get line editing and history; piped input runs without the
// prompt machinery. Errors never end the session.
func runPrompt(run func(source string) int, historyFile string) {
	if !isInteractive() {
		pipedLoop(run)
		return
	}
	interactiveLoop(run, historyFile)
}

func interactiveLoop(run func(source string) int, historyFile string) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(historyFile); err == nil {
				line.WriteHistory(f)
				f.Close()
			} else {
				logrus.WithError(err).Debug("history not saved")
			}
		}()
	}

	fmt.Println(color.Green("rslox"), "(Ctrl-D to exit)")
	for {
		input, err := line.Prompt(prompt)
		if err != nil {
			switch {
			case errors.Is(err, liner.ErrPromptAborted):
				fmt.Println()
				continue
			case errors.Is(err, io.EOF):
				fmt.Println()
				return
			default:
				logrus.WithError(err).Error("reading input")
				return
			}
		}
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		run(input)
	}
}

func pipedLoop(run func(source string) int) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		input := scanner.Text()
		if input == "" {
			continue
		}
		run(input)
	}
	if err := scanner.Err(); err != nil {
		logrus.Fatal(err)
	}
}

func isInteractive() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".rslox_history"
	}
	return filepath.Join(home, ".rslox_history")
}
