package sqlstore

import (
	"context"

	"github.com/aussiebroadwan/forum/internal/forum/domain"
)

const questionColumns = `id, uuid, content, user_id, created_at`

type questionsRepo struct {
	q queries
}

func scanQuestion(row rowScanner) (domain.Question, error) {
	var q domain.Question
	if err := row.Scan(&q.ID, &q.UUID, &q.Content, &q.UserID, &q.CreatedAt); err != nil {
		return domain.Question{}, err
	}
	q.CreatedAt = q.CreatedAt.UTC()
	return q, nil
}

func (r *questionsRepo) CreateQuestion(ctx context.Context, q domain.Question) (domain.Question, error) {
	err := r.q.queryRow(ctx, `INSERT INTO questions (uuid, content, user_id, created_at)
VALUES (?, ?, ?, ?)
RETURNING id`,
		q.UUID, q.Content, q.UserID, q.CreatedAt.UTC(),
	).Scan(&q.ID)
	if err != nil {
		return domain.Question{}, r.q.mapWriteErr(err)
	}
	return q, nil
}

func (r *questionsRepo) GetQuestionByUUID(ctx context.Context, uuid string) (domain.Question, error) {
	q, err := scanQuestion(r.q.queryRow(ctx, `SELECT `+questionColumns+` FROM questions WHERE uuid = ?`, uuid))
	if err != nil {
		return domain.Question{}, mapNotFound(err)
	}
	return q, nil
}

func (r *questionsRepo) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	return r.list(ctx, `SELECT `+questionColumns+` FROM questions ORDER BY id`)
}

func (r *questionsRepo) ListQuestionsByUser(ctx context.Context, userID int64) ([]domain.Question, error) {
	return r.list(ctx, `SELECT `+questionColumns+` FROM questions WHERE user_id = ? ORDER BY id`, userID)
}

func (r *questionsRepo) list(ctx context.Context, query string, args ...any) ([]domain.Question, error) {
	rows, err := r.q.query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (r *questionsRepo) UpdateQuestionContent(ctx context.Context, id int64, content string) error {
	return requireAffected(r.q.exec(ctx, `UPDATE questions SET content = ? WHERE id = ?`, content, id))
}

func (r *questionsRepo) DeleteQuestion(ctx context.Context, id int64) error {
	return requireAffected(r.q.exec(ctx, `DELETE FROM questions WHERE id = ?`, id))
}
