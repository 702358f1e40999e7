package slides

import (
	"fmt"
	"strings"
)

func buildSlidesPrompt(input DeckInput, excerptChars int) string {
	var b strings.Builder

	b.WriteString("You are an expert at creating educational slide presentations.\n\n")
	b.WriteString(fmt.Sprintf("Lecture Title: \"%s\"\n", input.LectureTitle))
	b.WriteString(fmt.Sprintf("Course Topic: \"%s\"\n", input.CourseTopic))
	b.WriteString(fmt.Sprintf("Lecture Content: \"%s...\"\n", excerpt(input.LectureText, excerptChars)))

	b.WriteString(`
Task:
Convert this lecture into 5-7 presentation slides. Each slide should have:
- A clear, concise title (5-8 words)
- 2-3 bullet points, about 1-2 sentences each, that capture key concepts and explain the main ideas of the lecture. Users should be able to understand the same concepts as the lecture after following the slides.
- A search query for finding relevant images (2-4 keywords)

IMPORTANT: Return ONLY valid JSON. Do not wrap in markdown code blocks. Do not include backticks or any other formatting.

The output must be valid JSON format:
{
	"slides": [
		{
			"slide_number": 1,
			"title": "Introduction to Topic",
			"bullets": [
				"First key point",
				"Second key point",
				"Third key point"
			],
			"search_query": "topic keyword concept"
		},
		...
	]
}`)

	return b.String()
}

// excerpt returns the first n characters of s, never splitting a rune.
func excerpt(s string, n int) string {
	if n <= 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
