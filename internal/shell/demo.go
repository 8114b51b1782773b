package shell

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Harshitk-cp/bdi/internal/service"
)

// TaskPrompt is the system prompt of the task management persona.
const TaskPrompt = "You are a helpful task management agent. You want to be efficient and helpful."

// Scenarios are the scripted perceptions replayed by RunDemo.
var Scenarios = []string{
	"User says: I need to finish my presentation by 2 PM",
	"User says: I'm feeling tired and need a break",
	"User says: I have a meeting in 30 minutes",
	"User says: The project deadline changed to tomorrow",
}

// RunDemo feeds each scenario through one cycle and prints the summary as
// indented JSON. It stops at the first action execution error.
func RunDemo(ctx context.Context, agent *service.Agent, scenarios []string, out io.Writer) error {
	for i, scenario := range scenarios {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintf(out, "\n%s SCENARIO %d %s\n", strings.Repeat("=", 20), i+1, strings.Repeat("=", 20))
		fmt.Fprintf(out, "Input: %s\n", scenario)

		summary, err := agent.Cycle(ctx, scenario)
		if err != nil {
			return fmt.Errorf("scenario %d: %w", i+1, err)
		}

		b, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("scenario %d: encode summary: %w", i+1, err)
		}
		fmt.Fprintln(out, "Result:")
		fmt.Fprintln(out, string(b))
		fmt.Fprintln(out, rule)
	}
	return nil
}
