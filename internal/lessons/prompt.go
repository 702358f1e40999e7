package lessons

import (
	"fmt"
	"strings"
)

func buildLecturePrompt(input LectureInput) string {
	var b strings.Builder

	b.WriteString("You are an expert teacher creating comprehensive educational content for an online learning platform.\n\n")
	b.WriteString(fmt.Sprintf("Module Topic: \"%s\"\n", input.ModuleTitle))
	b.WriteString(fmt.Sprintf("Main Course Topic: \"%s\"\n", input.CourseTopic))

	b.WriteString(`
Task:
1. Write a detailed, engaging, and well-structured lecture that thoroughly explains this module's concept.
2. The lecture should be 800-1200 words and include:
   - A clear introduction that hooks the reader
   - Multiple sections with detailed explanations
   - Real-world examples and practical applications
   - Analogies to make complex concepts accessible
   - Progressive building of knowledge from basics to more advanced concepts
3. Use clear paragraph breaks (\n\n) between major sections
4. Assume the reader is motivated but has limited prior knowledge
5. End with a challenging quiz (4-5 questions) that tests deep understanding of key concepts

The output must follow the following JSON format. The output MUST be valid JSON (use escape characters like '\n' for newlines between paragraphs). You should not include any extraneous text or symbols. For the quiz options, you must start each option with a letter (e.g. "A.", "B.", etc). Each question has exactly four options, A through D, and "correct_answer" is the letter alone. Example output format:
{
	"lecture_title": "string",
	"lecture_text": "multi-paragraph explanation with \n\n between paragraphs",
	"quiz": [
		{
			"question_number": 1,
			"question_text": "string",
			"options": ["A. First option", "B. Second option", "C. Third option", "D. Fourth option"],
			"correct_answer": "A",
			"explanation": "Detailed explanation of why this answer is correct and why others are incorrect."
		},
		...
	]
}`)

	return b.String()
}
