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

// QuestionService gates question CRUD behind session validation and, for
// edit and delete, ownership.
type QuestionService struct {
	Store    store.Store
	Sessions *SessionService
}

func (s *QuestionService) Create(ctx context.Context, token, content string) (domain.Question, error) {
	sess, err := s.Sessions.ValidateSession(ctx, token, "post a question")
	if err != nil {
		return domain.Question{}, err
	}

	if strings.TrimSpace(content) == "" {
		return domain.Question{}, InvalidRequest("content is required")
	}

	q, err := s.Store.Questions().CreateQuestion(ctx, domain.Question{
		UUID:      idx.New().String(),
		Content:   content,
		UserID:    sess.UserID,
		CreatedAt: s.Sessions.now(),
	})
	if err != nil {
		return domain.Question{}, fmt.Errorf("create question: %w", err)
	}

	slogx.FromContext(ctx).Info("question created",
		slog.String("question_id", q.UUID),
		slog.String("user_id", sess.User.UUID),
	)
	return q, nil
}

func (s *QuestionService) List(ctx context.Context, token string) ([]domain.Question, error) {
	if _, err := s.Sessions.ValidateSession(ctx, token, "get all questions"); err != nil {
		return nil, err
	}
	return s.Store.Questions().ListQuestions(ctx)
}

// ListByUser returns the questions posted by the user with external id
// userUUID.
func (s *QuestionService) ListByUser(ctx context.Context, token, userUUID string) ([]domain.Question, error) {
	if _, err := s.Sessions.ValidateSession(ctx, token, "get all questions posted by a specific user"); err != nil {
		return nil, err
	}

	user, err := s.Store.Users().GetUserByUUID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, with(ErrUserNotFound, "User with entered uuid whose question details are to be seen does not exist")
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	return s.Store.Questions().ListQuestionsByUser(ctx, user.ID)
}

// Edit replaces the content of a question owned by the session's user.
func (s *QuestionService) Edit(ctx context.Context, token, questionUUID, content string) (domain.Question, error) {
	sess, err := s.Sessions.ValidateSession(ctx, token, "edit the question")
	if err != nil {
		return domain.Question{}, err
	}

	if strings.TrimSpace(content) == "" {
		return domain.Question{}, InvalidRequest("content is required")
	}

	var q domain.Question
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		q, err = loadQuestion(ctx, tx, questionUUID)
		if err != nil {
			return err
		}

		if err := AuthorizeOwnership(sess, q, ActionEdit); err != nil {
			return err
		}

		q.Content = content
		return tx.Questions().UpdateQuestionContent(ctx, q.ID, content)
	})
	if err != nil {
		return domain.Question{}, s.report(ctx, sess, "edit", questionUUID, err)
	}

	return q, nil
}

// Delete removes a question (and its answers). Owner or admin only.
func (s *QuestionService) Delete(ctx context.Context, token, questionUUID string) (domain.Question, error) {
	sess, err := s.Sessions.ValidateSession(ctx, token, "delete a question")
	if err != nil {
		return domain.Question{}, err
	}

	var q domain.Question
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		q, err = loadQuestion(ctx, tx, questionUUID)
		if err != nil {
			return err
		}

		if err := AuthorizeOwnership(sess, q, ActionDelete); err != nil {
			return err
		}

		return tx.Questions().DeleteQuestion(ctx, q.ID)
	})
	if err != nil {
		return domain.Question{}, s.report(ctx, sess, "delete", questionUUID, err)
	}

	return q, nil
}

func loadQuestion(ctx context.Context, st store.Store, questionUUID string) (domain.Question, error) {
	q, err := st.Questions().GetQuestionByUUID(ctx, questionUUID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Question{}, ErrQuestionNotFound
		}
		return domain.Question{}, err
	}
	return q, nil
}

// report logs a failed mutation and wraps store failures.
func (s *QuestionService) report(ctx context.Context, sess domain.Session, op, questionUUID string, err error) error {
	l := slogx.FromContext(ctx).With(
		slog.String("op", op),
		slog.String("question_id", questionUUID),
		slog.String("user_id", sess.User.UUID),
	)

	if e, ok := AsError(err); ok {
		l.Warn("question mutation rejected", slog.String("code", e.Code))
		return err
	}

	l.Error("question mutation failed", slog.Any("err", err))
	return fmt.Errorf("%s question: %w", op, err)
}
