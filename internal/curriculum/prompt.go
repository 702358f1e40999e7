package curriculum

import (
	"fmt"
	"strings"
)

func buildModulesPrompt(topic string) string {
	var b strings.Builder

	b.WriteString("You are an expert curriculum designer and educator. Your task is to break down a broad topic into an organized list of study modules that progressively build understanding.\n")
	b.WriteString(fmt.Sprintf("Topic: \"%s\"\n", topic))

	b.WriteString(fmt.Sprintf(`
Requirements:
- Create between %d and %d module titles.
- Each module should focus on one key subtopic or skill needed to master the overall topic.
- Titles should be concise, engaging, and clear (5-10 words each).
- Order them in a logical learning sequence (beginner -> advanced).
- Include a one-sentence description for each module explaining what it covers.
- Number the modules 1, 2, 3, ... in order.
`, MinModules, MaxModules))

	b.WriteString(`
The output must follow the following JSON format. The output MUST be valid JSON (use escape characters like '\n' for newlines between paragraphs, etc). You should not include any extraneous text or symbols. Example output format:
[
	{
		"module_number": 1,
		"module_title": "Introduction to ...",
		"description": "..."
	},
	...
]`)

	return b.String()
}
