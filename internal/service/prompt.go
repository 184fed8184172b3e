package service

import "fmt"

const generateProblemPrompt = `You are a Singapore Primary 5 math teacher.
Create ONE real-world math word problem that a Primary 5 student can solve without a calculator.

Return ONLY JSON (no backticks/markdown, no extra text) with EXACT fields:
{
  "problem_text": string,
  "correct_answer": number
}

Constraints:
- Numbers suitable for P5 pen-and-paper.
- If money appears, use Singapore dollars.
- Do NOT include solution steps or hints inside "problem_text".
- "correct_answer" must be correct and numeric.`

func buildHintPrompt(problemText string) string {
	return fmt.Sprintf(`You are a kind Singapore Primary 5 math tutor.
Give ONE short, constructive hint for the student to solve the problem.
Do NOT reveal the final numeric answer.

Problem: "%s"

Rules:
- 1-2 sentences only.
- Nudge the method (operation/strategy), do not compute the answer.
Return only plain text.`, problemText)
}

func buildFeedbackPrompt(problemText string, correctAnswer, userAnswer float64, isCorrect bool) string {
	return fmt.Sprintf(`You are a kind Singapore Primary 5 math tutor.
Give personalized feedback (2-4 sentences) based on:
- Problem: "%s"
- Correct answer: %v
- Student answer: %v
- Correct? %t

Rules:
- Encourage and be specific.
- If wrong, point likely misconception and suggest a hint to fix.
- If right, praise and suggest a short extension challenge.
Return ONLY plain text.`, problemText, correctAnswer, userAnswer, isCorrect)
}
