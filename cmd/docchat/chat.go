package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fwojciec/docchat"
)

// Run executes the chat command: load the documentation site, then answer
// questions from stdin until EOF or an exit command.
func (c *ChatCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Loading documentation from %s ...\n", c.URL)

	progress := func(count, total int, title string) {
		fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", count, total, title)
	}
	if err := deps.Pipeline.Load(deps.Ctx, c.URL, progress); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docchat.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Ready. Ask a question, or type \"exit\" to quit.")

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, "> ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if question == "exit" || question == "quit" {
			break
		}

		for fragment, err := range deps.Pipeline.Ask(deps.Ctx, question) {
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", docchat.ErrorMessage(err))
				break
			}
			fmt.Fprint(deps.Stdout, fragment)
		}
		fmt.Fprintln(deps.Stdout)
	}

	return scanner.Err()
}
