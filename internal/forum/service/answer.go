package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/forum/internal/forum/domain"
	"github.com/aussiebroadwan/forum/internal/forum/store"
	"github.com/aussiebroadwan/forum/pkg/idx"
	"github.com/aussiebroadwan/forum/pkg/slogx"
)

// AnswerService gates answer CRUD the same way QuestionService does.
type AnswerService struct {
	Store    store.Store
	Sessions *SessionService
}

// Create posts an answer to the question with external id questionUUID.
func (s *AnswerService) Create(ctx context.Context, token, questionUUID, content string) (domain.Answer, error) {
	sess, err := s.Sessions.ValidateSession(ctx, token, "post an answer")
	if err != nil {
		return domain.Answer{}, err
	}

	if strings.TrimSpace(content) == "" {
		return domain.Answer{}, InvalidRequest("answer is required")
	}

	q, err := s.Store.Questions().GetQuestionByUUID(ctx, questionUUID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Answer{}, with(ErrQuestionNotFound, "The question entered is invalid")
		}
		return domain.Answer{}, fmt.Errorf("lookup question: %w", err)
	}

	a, err := s.Store.Answers().CreateAnswer(ctx, domain.Answer{
		UUID:       idx.New().String(),
		Content:    content,
		QuestionID: q.ID,
		UserID:     sess.UserID,
		CreatedAt:  s.Sessions.now(),
	})
	if err != nil {
		return domain.Answer{}, fmt.Errorf("create answer: %w", err)
	}

	slogx.FromContext(ctx).Info("answer created",
		slog.String("answer_id", a.UUID),
		slog.String("question_id", q.UUID),
		slog.String("user_id", sess.User.UUID),
	)
	return a, nil
}

// ListByQuestion returns a question together with its answers, oldest
// first.
func (s *AnswerService) ListByQuestion(ctx context.Context, token, questionUUID string) (domain.Question, []domain.Answer, error) {
	if _, err := s.Sessions.ValidateSession(ctx, token, "get the answers"); err != nil {
		return domain.Question{}, nil, err
	}

	q, err := s.Store.Questions().GetQuestionByUUID(ctx, questionUUID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Question{}, nil, with(ErrQuestionNotFound, "The question with entered uuid whose details are to be seen does not exist")
		}
		return domain.Question{}, nil, fmt.Errorf("lookup question: %w", err)
	}

	answers, err := s.Store.Answers().ListAnswersByQuestion(ctx, q.ID)
	if err != nil {
		return domain.Question{}, nil, fmt.Errorf("list answers: %w", err)
	}
	return q, answers, nil
}

// Edit replaces the content of an answer owned by the session's user.
func (s *AnswerService) Edit(ctx context.Context, token, answerUUID, content string) (domain.Answer, error) {
	sess, err := s.Sessions.ValidateSession(ctx, token, "edit an answer")
	if err != nil {
		return domain.Answer{}, err
	}

	if strings.TrimSpace(content) == "" {
		return domain.Answer{}, InvalidRequest("content is required")
	}

	var a domain.Answer
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		a, err = loadAnswer(ctx, tx, answerUUID)
		if err != nil {
			return err
		}

		if err := AuthorizeOwnership(sess, a, ActionEdit); err != nil {
			return err
		}

		a.Content = content
		return tx.Answers().UpdateAnswerContent(ctx, a.ID, content)
	})
	if err != nil {
		return domain.Answer{}, s.report(ctx, sess, "edit", answerUUID, err)
	}

	return a, nil
}

// Delete removes an answer. Owner or admin only.
func (s *AnswerService) Delete(ctx context.Context, token, answerUUID string) (domain.Answer, error) {
	sess, err := s.Sessions.ValidateSession(ctx, token, "delete an answer")
	if err != nil {
		return domain.Answer{}, err
	}

	var a domain.Answer
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		a, err = loadAnswer(ctx, tx, answerUUID)
		if err != nil {
			return err
		}

		if err := AuthorizeOwnership(sess, a, ActionDelete); err != nil {
			return err
		}

		return tx.Answers().DeleteAnswer(ctx, a.ID)
	})
	if err != nil {
		return domain.Answer{}, s.report(ctx, sess, "delete", answerUUID, err)
	}

	return a, nil
}

func loadAnswer(ctx context.Context, st store.Store, answerUUID string) (domain.Answer, error) {
	a, err := st.Answers().GetAnswerByUUID(ctx, answerUUID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Answer{}, ErrAnswerNotFound
		}
		return domain.Answer{}, err
	}
	return a, nil
}

func (s *AnswerService) report(ctx context.Context, sess domain.Session, op, answerUUID string, err error) error {
	l := slogx.FromContext(ctx).With(
		slog.String("op", op),
		slog.String("answer_id", answerUUID),
		slog.String("user_id", sess.User.UUID),
	)

	if e, ok := AsError(err); ok {
		l.Warn("answer mutation rejected", slog.String("code", e.Code))
		return err
	}

	l.Error("answer mutation failed", slog.Any("err", err))
	return fmt.Errorf("%s answer: %w", op, err)
}
