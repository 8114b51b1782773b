// Package shell implements the interactive session for a single BDI agent.
package shell

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Harshitk-cp/bdi/internal/domain"
	"github.com/Harshitk-cp/bdi/internal/service"
)

const rule = "--------------------------------------------------"

// Seed gives a fresh agent the starting beliefs and desires of the task
// management persona.
func Seed(a *service.Agent) {
	a.AddBelief("current_time", "09:00", 0.9)
	a.AddBelief("energy_level", "high", 0.8)
	a.AddDesire("complete_project", 1, nil)
	a.AddDesire("take_break", 2, nil)
}

// Shell reads commands line by line and drives one agent.
type Shell struct {
	agent  *service.Agent
	input  *bufio.Scanner
	output io.Writer
}

func New(agent *service.Agent, input io.Reader, output io.Writer) *Shell {
	return &Shell{
		agent:  agent,
		input:  bufio.NewScanner(input),
		output: output,
	}
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.output, format, args...)
}

func (s *Shell) println(args ...any) {
	fmt.Fprintln(s.output, args...)
}

// Run prints the banner and processes input until quit, EOF or ctx is done.
// A pending read does not hold up cancellation.
func (s *Shell) Run(ctx context.Context) error {
	s.printBanner()
	s.printState()

	if ctx.Err() != nil {
		s.println("\nSession interrupted. Goodbye!")
		return nil
	}

	stop := make(chan struct{})
	defer close(stop)
	lines, readErr := s.readLines(stop)

	for {
		s.printf("\nYou: ")

		select {
		case <-ctx.Done():
			s.println("\nSession interrupted. Goodbye!")
			return nil

		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("input error: %w", err)
				}
				s.println("\nGoodbye! Session ended.")
				return nil
			}
			if done := s.handle(ctx, line); done {
				return nil
			}
		}
	}
}

// readLines scans input in its own goroutine. lines is closed at EOF or on a
// read error, after which readErr yields the scanner error (nil at EOF).
func (s *Shell) readLines(stop <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		for s.input.Scan() {
			select {
			case lines <- s.input.Text():
			case <-stop:
				return
			}
		}
		readErr <- s.input.Err()
	}()

	return lines, readErr
}

// handle processes one line and reports whether the session should end.
func (s *Shell) handle(ctx context.Context, line string) bool {
	cmd := parseCommand(line)

	switch cmd.kind {
	case cmdQuit:
		s.println("Goodbye! Session ended.")
		return true

	case cmdEmpty:

	case cmdHelp:
		s.printCommands()

	case cmdShowState:
		s.printState()

	case cmdAddBelief:
		if cmd.usage != "" {
			s.println("Format: " + cmd.usage)
			break
		}
		s.agent.AddBelief(cmd.key, cmd.value, cmd.confidence)
		s.printf("Added belief: %s = %s (confidence: %s)\n", cmd.key, cmd.value, formatFloat(cmd.confidence))

	case cmdAddDesire:
		if cmd.usage != "" {
			s.println("Format: " + cmd.usage)
			break
		}
		s.agent.AddDesire(cmd.goal, cmd.priority, nil)
		s.printf("Added desire: %s (priority: %d)\n", cmd.goal, cmd.priority)

	case cmdPerceive:
		s.println("\nProcessing...")
		summary, err := s.agent.Cycle(ctx, cmd.perception)
		if summary != nil {
			s.printSummary(summary)
		}
		if err != nil {
			s.printf("Error: %v\nPlease try again.\n", err)
		}
	}

	return false
}

func (s *Shell) printBanner() {
	s.println("BDI Agent Interactive Session")
	s.printf("Welcome! I'm %s, your BDI agent. I can help you manage tasks and make decisions.\n", s.agent.Name())
	s.printCommands()
	s.println(rule)
}

func (s *Shell) printCommands() {
	s.println("\nCommands:")
	s.println("  - Just type a message to interact with me")
	s.println("  - 'add belief <key> <value> [confidence]' - Add a new belief")
	s.println("  - 'add desire <goal> [priority]' - Add a new desire")
	s.println("  - 'show state' - Display current agent state")
	s.println("  - 'help' - Show this list")
	s.println("  - 'quit' or 'exit' - End the session")
}

func (s *Shell) printState() {
	st := s.agent.State()
	beliefs := st.Beliefs()
	desires := st.Desires()
	intentions := st.Intentions()

	s.println("\n" + strings.Repeat("=", 50))
	s.println("CURRENT AGENT STATE")
	s.println(strings.Repeat("=", 50))
	s.printf("Agent: %s\n", s.agent.Name())
	s.printf("Beliefs: %d\n", len(beliefs))
	for _, b := range beliefs {
		s.printf("  - %s: %s (confidence: %s)\n", b.Key, formatValue(b.Value), formatFloat(b.Confidence))
	}
	s.printf("Desires: %d\n", len(desires))
	for _, d := range desires {
		s.printf("  - %s (priority: %d)\n", d.Goal, d.Priority)
	}
	s.printf("Active Intentions: %d\n", len(intentions))
	for _, in := range intentions {
		s.printf("  - %s (params: %s)\n", in.Action, formatValue(in.Parameters))
	}
	s.println(strings.Repeat("=", 50))
}

func (s *Shell) printSummary(summary *service.CycleSummary) {
	s.println("\nAgent Response:")
	s.printf("   Intentions formed: %d\n", summary.IntentionsFormed)
	s.printf("   Actions executed: %d\n", len(summary.ActionsExecuted))
	for _, action := range summary.ActionsExecuted {
		s.printf("     - %s\n", action)
	}
	s.printf("   Current beliefs: %d\n", len(summary.CurrentBeliefs))
	s.printf("   Active desires: %d\n", summary.ActiveDesires)
}

type commandKind int

const (
	cmdEmpty commandKind = iota
	cmdQuit
	cmdHelp
	cmdShowState
	cmdAddBelief
	cmdAddDesire
	cmdPerceive
)

type command struct {
	kind commandKind

	key        string
	value      string
	confidence float64

	goal     string
	priority int

	perception string

	// usage is set when an add command is missing arguments.
	usage string
}

// parseCommand classifies one line of input. Keywords are case-insensitive;
// anything unrecognized is a perception for the agent.
func parseCommand(line string) command {
	line = strings.TrimSpace(line)
	fields := strings.Fields(line)
	lower := strings.ToLower(line)

	switch {
	case line == "":
		return command{kind: cmdEmpty}
	case lower == "quit" || lower == "exit":
		return command{kind: cmdQuit}
	case lower == "help":
		return command{kind: cmdHelp}
	case lower == "show state":
		return command{kind: cmdShowState}
	case isAdd(fields, "belief"):
		return parseAddBelief(fields)
	case isAdd(fields, "desire"):
		return parseAddDesire(fields)
	default:
		return command{kind: cmdPerceive, perception: line}
	}
}

func isAdd(fields []string, what string) bool {
	return len(fields) >= 2 && strings.EqualFold(fields[0], "add") && strings.EqualFold(fields[1], what)
}

// parseAddBelief handles "add belief <key> <value...> [confidence]". A
// trailing token that parses as a float is the confidence when the value has
// at least one other word.
func parseAddBelief(fields []string) command {
	cmd := command{kind: cmdAddBelief}
	if len(fields) < 4 {
		cmd.usage = "add belief <key> <value> [confidence]"
		return cmd
	}

	cmd.key = fields[2]
	rest := fields[3:]
	cmd.confidence = domain.DefaultConfidence
	if len(rest) > 1 {
		if c, err := strconv.ParseFloat(rest[len(rest)-1], 64); err == nil {
			cmd.confidence = c
			rest = rest[:len(rest)-1]
		}
	}
	cmd.value = strings.Join(rest, " ")
	return cmd
}

// parseAddDesire handles "add desire <goal> [priority]". An unparseable
// priority falls back to the default.
func parseAddDesire(fields []string) command {
	cmd := command{kind: cmdAddDesire}
	if len(fields) < 3 {
		cmd.usage = "add desire <goal> [priority]"
		return cmd
	}

	cmd.goal = fields[2]
	cmd.priority = domain.DefaultPriority
	if len(fields) > 3 {
		if p, err := strconv.Atoi(strings.Join(fields[3:], " ")); err == nil {
			cmd.priority = p
		}
	}
	return cmd
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		if t == nil {
			t = map[string]any{}
		}
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(b)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}
