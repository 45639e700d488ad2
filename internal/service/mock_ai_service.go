package service

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/ieltsmaster/writing-api/internal/model"
)

// mockAIService implements both QuestionSource and ScoringService without
// touching any completion provider. Questions are static canned payloads;
// scores are randomized around a word-count-based baseline. Selected only by
// the USE_MOCK_AI flag, never by provider availability.
type mockAIService struct{}

func NewMockQuestionSource() QuestionSource {
	return &mockAIService{}
}

func NewMockScoringService() ScoringService {
	return &mockAIService{}
}

var mockQuestions = map[string]map[string]GeneratedQuestion{
	model.TestTypeAcademic: {
		model.TaskTypeTask1: {
			Prompt: "The bar chart shows the percentage of adults in different age groups who used the internet in the UK between 2000 and 2020. " +
				"Summarise the information by selecting and reporting the main features, and make comparisons where relevant.",
			Instructions: "Write at least 150 words.",
		},
		model.TaskTypeTask2: {
			Prompt: "Some people believe that university students should be required to attend classes. Others believe that going to classes " +
				"should be optional for students. Discuss both these views and give your own opinion.",
			Instructions: "Give reasons for your answer and include any relevant examples from your own knowledge or experience. Write at least 250 words.",
		},
	},
	model.TestTypeGeneral: {
		model.TaskTypeTask1: {
			Prompt: "You recently bought a product online, but when it arrived, it was damaged. Write a letter to the company. In your letter:\n" +
				"- Explain what the product was\n- Describe the damage\n- Say what you want the company to do about it",
			Instructions: "Write at least 150 words. You do NOT need to write any addresses. Begin your letter as follows: Dear Sir or Madam,",
		},
		model.TaskTypeTask2: {
			Prompt: "In many countries, people are now living longer than ever before. Some people say an ageing population creates problems for " +
				"governments. Other people think there are benefits if society has more elderly people. To what extent do the advantages of " +
				"having an ageing population outweigh the disadvantages?",
			Instructions: "Give reasons for your answer and include any relevant examples from your own knowledge or experience. Write at least 250 words.",
		},
	},
}

func (s *mockAIService) GenerateQuestion(ctx context.Context, testType, taskType string) (GeneratedQuestion, error) {
	return mockQuestions[testType][taskType], nil
}

func (s *mockAIService) ScoreSubmission(ctx context.Context, question *model.Question, content string, wordCount int) (ScoreSet, error) {
	return mockScores(wordCount), nil
}

// mockScores produces plausible criterion bands: a base of 6.5 (or 5.0 for
// short answers), one shared random offset in [-0.5, 1.0) per call, small
// fixed per-criterion biases, clamped to [4, 9] and quantized to 0.5.
func mockScores(wordCount int) ScoreSet {
	base := 5.0
	if wordCount >= 150 {
		base = 6.5
	}
	variance := rand.Float64()*1.5 - 0.5

	return ScoreSet{
		TaskAchievement:   RoundToHalf(clampBand(base + variance)),
		CoherenceCohesion: RoundToHalf(clampBand(base + variance + 0.5)),
		LexicalResource:   RoundToHalf(clampBand(base + variance - 0.5)),
		GrammaticalRange:  RoundToHalf(clampBand(base + variance)),
		Feedback:          mockFeedback(wordCount),
	}
}

func clampBand(v float64) float64 {
	if v < 4 {
		return 4
	}
	if v > 9 {
		return 9
	}
	return v
}

func mockFeedback(wordCount int) string {
	return fmt.Sprintf(`MOCK FEEDBACK (Development Mode):

Task Achievement: Your response addresses the task with %d words. Good attempt at covering the main points.

Coherence and Cohesion: The organization of ideas is generally clear. Consider using more linking words to improve flow.

Lexical Resource: You demonstrate a reasonable range of vocabulary. Try to use more varied and precise word choices.

Grammatical Range and Accuracy: Your grammar is generally accurate with some complexity. Focus on using a wider range of structures.

Overall: This is mock feedback for development/testing. Enable real AI scoring by setting USE_MOCK_AI=false and adding an API key.`, wordCount)
}
