package service

import (
	"github.com/google/uuid"
	"github.com/ieltsmaster/writing-api/internal/model"
	"gorm.io/gorm"
)

// In-memory repository fakes shared by the orchestration tests.

type fakeQuestionRepo struct {
	questions map[uuid.UUID]model.Question
	createErr error
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: make(map[uuid.UUID]model.Question)}
}

func (r *fakeQuestionRepo) Create(q *model.Question) error {
	if r.createErr != nil {
		return r.createErr
	}
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	r.questions[q.ID] = *q
	return nil
}

func (r *fakeQuestionRepo) FindByID(id uuid.UUID) (*model.Question, error) {
	q, ok := r.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &q, nil
}

type fakeSubmissionRepo struct {
	submissions map[uuid.UUID]model.Submission
	createErr   error
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{submissions: make(map[uuid.UUID]model.Submission)}
}

func (r *fakeSubmissionRepo) Create(s *model.Submission) error {
	if r.createErr != nil {
		return r.createErr
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.submissions[s.ID] = *s
	return nil
}

func (r *fakeSubmissionRepo) FindByIDForUser(id, userID uuid.UUID) (*model.Submission, error) {
	s, ok := r.submissions[id]
	if !ok || s.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (r *fakeSubmissionRepo) FindRecentByUser(userID uuid.UUID, limit int) ([]model.Submission, error) {
	var out []model.Submission
	for _, s := range r.submissions {
		if s.UserID == userID && len(out) < limit {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeScoreRepo struct {
	scores    map[uuid.UUID]model.Score // keyed by submission id
	createErr error
}

func newFakeScoreRepo() *fakeScoreRepo {
	return &fakeScoreRepo{scores: make(map[uuid.UUID]model.Score)}
}

func (r *fakeScoreRepo) Create(s *model.Score) error {
	if r.createErr != nil {
		return r.createErr
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.scores[s.SubmissionID] = *s
	return nil
}

func (r *fakeScoreRepo) FindBySubmissionID(submissionID uuid.UUID) (*model.Score, error) {
	s, ok := r.scores[submissionID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (r *fakeScoreRepo) FindBySubmissionIDs(submissionIDs []uuid.UUID) ([]model.Score, error) {
	var out []model.Score
	for _, id := range submissionIDs {
		if s, ok := r.scores[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}
