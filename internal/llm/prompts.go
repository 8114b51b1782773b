package llm

import "fmt"

const defaultSystemPrompt = "You are %s, a BDI agent. Reason about beliefs, desires, and intentions."

const reasoningPrompt = `%s

%s

NEW PERCEPTION: %s

Based on your current beliefs, desires, and any new perception, decide what intentions/actions to take.
Consider:
1. Which desires are most important given current beliefs?
2. What actions would help achieve these desires?
3. Should any current intentions be modified or cancelled?

Respond ONLY with a JSON object, no markdown fences, containing:
- "belief_updates": [{"key": "string", "value": "any", "confidence": 0.0-1.0}]
- "new_intentions": [{"action": "string", "parameters": {}, "deadline": unix_timestamp_or_null}]
- "reasoning": "explanation of your decision process"

Only include belief updates if perceptions change your understanding.
`

// DefaultSystemPrompt is the system prompt used for an agent that was not given one.
func DefaultSystemPrompt(name string) string {
	return fmt.Sprintf(defaultSystemPrompt, name)
}

// BuildReasoningPrompt renders the reasoning prompt for one cycle. context is
// the agent's rendered state and perception the new observation; the output
// depends on nothing else.
func BuildReasoningPrompt(systemPrompt, context, perception string) string {
	return fmt.Sprintf(reasoningPrompt, systemPrompt, context, perception)
}
