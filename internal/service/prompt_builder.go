package service

import (
	"fmt"

	"github.com/ieltsmaster/writing-api/internal/model"
)

// System prompts for the two completion calls. The examiner persona keeps the
// model's tone and register close to official material.
const (
	questionSystemPrompt = "You are an IELTS examiner creating authentic IELTS writing questions. " +
		"Generate realistic, varied questions that match official IELTS standards."

	scoringSystemPrompt = `You are an experienced IELTS examiner. Evaluate the writing based on the four IELTS criteria:
1. Task Achievement/Response (0-9)
2. Coherence and Cohesion (0-9)
3. Lexical Resource (0-9)
4. Grammatical Range and Accuracy (0-9)

Provide scores and detailed feedback. Be fair but thorough in your assessment.`
)

// BuildQuestionPrompt returns the instruction text asking the completion
// service for a new question of the given category. The model is told to
// answer in the tagged PROMPT:/INSTRUCTIONS: format the parser expects.
func BuildQuestionPrompt(testType, taskType string) string {
	if testType == model.TestTypeAcademic {
		if taskType == model.TaskTypeTask1 {
			return `Generate an IELTS Academic Writing Task 1 question. This should describe visual information (a graph, table, chart, or diagram).

Provide:
1. A clear description of what visual data the candidate should describe
2. Instructions that match official IELTS format

Format your response as:
PROMPT: [description of the visual]
INSTRUCTIONS: [the official-style instructions]`
		}
		return `Generate an IELTS Academic Writing Task 2 essay question on a relevant contemporary topic.

Provide:
1. A clear essay question that presents a point of view, argument, or problem
2. Instructions that match official IELTS format

Format your response as:
PROMPT: [the essay question]
INSTRUCTIONS: [the official-style instructions]`
	}

	if taskType == model.TaskTypeTask1 {
		return `Generate an IELTS General Training Writing Task 1 letter question.

Provide:
1. A scenario requiring the candidate to write a letter (formal, semi-formal, or informal)
2. Instructions that match official IELTS format including bullet points of what to include

Format your response as:
PROMPT: [the letter scenario]
INSTRUCTIONS: [the official-style instructions with bullet points]`
	}
	return `Generate an IELTS General Training Writing Task 2 essay question on a topic of general interest.

Provide:
1. A clear essay question
2. Instructions that match official IELTS format

Format your response as:
PROMPT: [the essay question]
INSTRUCTIONS: [the official-style instructions]`
}

// BuildScoringPrompt returns the instruction text asking the completion
// service to band a candidate's response to question. The model is told to
// answer in the tagged criterion format the score parser expects.
func BuildScoringPrompt(question *model.Question, content string) string {
	return fmt.Sprintf(`
QUESTION (%s - %s):
%s

INSTRUCTIONS:
%s

CANDIDATE'S RESPONSE:
%s

Please evaluate this IELTS writing response and provide:

1. Task Achievement/Response (0-9): [score]
   - How well does it address the task?
   - Are all parts covered?
   - Is the position clear?

2. Coherence and Cohesion (0-9): [score]
   - How well organized is it?
   - Are ideas logically sequenced?
   - Are cohesive devices used effectively?

3. Lexical Resource (0-9): [score]
   - Range of vocabulary?
   - Accuracy of word choice?
   - Appropriate register?

4. Grammatical Range and Accuracy (0-9): [score]
   - Variety of structures?
   - Accuracy of grammar?
   - Punctuation?

FEEDBACK:
Provide specific, constructive feedback on how to improve in each area.

Format your response as:
TASK_ACHIEVEMENT: [score]
COHERENCE_COHESION: [score]
LEXICAL_RESOURCE: [score]
GRAMMATICAL_RANGE: [score]
FEEDBACK: [detailed feedback]
`, question.TestType, question.TaskType, question.Prompt, question.Instructions, content)
}
