package service

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ieltsmaster/writing-api/internal/model"
)

// GeneratedQuestion is the parsed question text pair from a completion.
type GeneratedQuestion struct {
	Prompt       string
	Instructions string
}

// ScoreSet holds the four criterion bands plus feedback as parsed from a
// completion (or produced by the mock scorer). Aggregation into an overall
// band happens separately.
type ScoreSet struct {
	TaskAchievement   float64
	CoherenceCohesion float64
	LexicalResource   float64
	GrammaticalRange  float64
	Feedback          string
}

const (
	defaultCriterionScore = 5.0
	defaultFeedback       = "No detailed feedback available."
)

// Question markers are case sensitive; the completion is explicitly asked for
// uppercase tags and real completions follow that closely.
var (
	questionPromptRe       = regexp.MustCompile(`(?s)PROMPT:\s*(.+?)(?:INSTRUCTIONS:|$)`)
	questionInstructionsRe = regexp.MustCompile(`(?s)INSTRUCTIONS:\s*(.+)$`)

	taskAchievementRe   = regexp.MustCompile(`(?i)TASK_ACHIEVEMENT:\s*(\d+(?:\.\d+)?)`)
	coherenceCohesionRe = regexp.MustCompile(`(?i)COHERENCE_COHESION:\s*(\d+(?:\.\d+)?)`)
	lexicalResourceRe   = regexp.MustCompile(`(?i)LEXICAL_RESOURCE:\s*(\d+(?:\.\d+)?)`)
	grammaticalRangeRe  = regexp.MustCompile(`(?i)GRAMMATICAL_RANGE:\s*(\d+(?:\.\d+)?)`)
	feedbackRe          = regexp.MustCompile(`(?is)FEEDBACK:\s*(.+)$`)
)

// ParseQuestionResponse extracts the prompt/instructions pair from raw
// completion text. It never fails: when PROMPT: is absent the whole text
// becomes the prompt as-is, and when INSTRUCTIONS: is absent the category's
// default instruction string is substituted. Only matched sections are
// trimmed.
func ParseQuestionResponse(content, testType, taskType string) GeneratedQuestion {
	q := GeneratedQuestion{
		Prompt:       content,
		Instructions: DefaultInstructions(testType, taskType),
	}
	if m := questionPromptRe.FindStringSubmatch(content); m != nil {
		q.Prompt = strings.TrimSpace(m[1])
	}
	if m := questionInstructionsRe.FindStringSubmatch(content); m != nil {
		q.Instructions = strings.TrimSpace(m[1])
	}
	return q
}

// DefaultInstructions returns the canned official-style instruction text for
// a category, used when the completion omits an INSTRUCTIONS: section.
func DefaultInstructions(testType, taskType string) string {
	if testType == model.TestTypeAcademic {
		if taskType == model.TaskTypeTask1 {
			return "Summarise the information by selecting and reporting the main features, and make comparisons where relevant. Write at least 150 words."
		}
		return "Give reasons for your answer and include any relevant examples from your own knowledge or experience. Write at least 250 words."
	}
	if taskType == model.TaskTypeTask1 {
		return "Write at least 150 words. You do NOT need to write any addresses. Begin your letter as follows: Dear..."
	}
	return "Give reasons for your answer and include any relevant examples from your own knowledge or experience. Write at least 250 words."
}

// ParseScores extracts the four criterion bands and feedback from raw
// completion text. Missing or malformed fields fall back to defaults; the
// caller always gets a fully populated ScoreSet.
func ParseScores(content string) ScoreSet {
	s := ScoreSet{
		TaskAchievement:   extractScore(taskAchievementRe, content),
		CoherenceCohesion: extractScore(coherenceCohesionRe, content),
		LexicalResource:   extractScore(lexicalResourceRe, content),
		GrammaticalRange:  extractScore(grammaticalRangeRe, content),
		Feedback:          defaultFeedback,
	}
	if m := feedbackRe.FindStringSubmatch(content); m != nil {
		s.Feedback = strings.TrimSpace(m[1])
	}
	return s
}

func extractScore(re *regexp.Regexp, content string) float64 {
	m := re.FindStringSubmatch(content)
	if m == nil {
		return defaultCriterionScore
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return defaultCriterionScore
	}
	return v
}
