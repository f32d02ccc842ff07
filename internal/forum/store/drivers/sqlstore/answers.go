package sqlstore

import (
	"context"

	"github.com/aussiebroadwan/forum/internal/forum/domain"
)

const answerColumns = `id, uuid, content, question_id, user_id, created_at`

type answersRepo struct {
	q queries
}

func scanAnswer(row rowScanner) (domain.Answer, error) {
	var a domain.Answer
	if err := row.Scan(&a.ID, &a.UUID, &a.Content, &a.QuestionID, &a.UserID, &a.CreatedAt); err != nil {
		return domain.Answer{}, err
	}
	a.CreatedAt = a.CreatedAt.UTC()
	return a, nil
}

func (r *answersRepo) CreateAnswer(ctx context.Context, a domain.Answer) (domain.Answer, error) {
	err := r.q.queryRow(ctx, `INSERT INTO answers (uuid, content, question_id, user_id, created_at)
VALUES (?, ?, ?, ?, ?)
RETURNING id`,
		a.UUID, a.Content, a.QuestionID, a.UserID, a.CreatedAt.UTC(),
	).Scan(&a.ID)
	if err != nil {
		return domain.Answer{}, r.q.mapWriteErr(err)
	}
	return a, nil
}

func (r *answersRepo) GetAnswerByUUID(ctx context.Context, uuid string) (domain.Answer, error) {
	a, err := scanAnswer(r.q.queryRow(ctx, `SELECT `+answerColumns+` FROM answers WHERE uuid = ?`, uuid))
	if err != nil {
		return domain.Answer{}, mapNotFound(err)
	}
	return a, nil
}

func (r *answersRepo) ListAnswersByQuestion(ctx context.Context, questionID int64) ([]domain.Answer, error) {
	rows, err := r.q.query(ctx, `SELECT `+answerColumns+` FROM answers WHERE question_id = ? ORDER BY id`, questionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Answer{}
	for rows.Next() {
		a, err := scanAnswer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *answersRepo) UpdateAnswerContent(ctx context.Context, id int64, content string) error {
	return requireAffected(r.q.exec(ctx, `UPDATE answers SET content = ? WHERE id = ?`, content, id))
}

func (r *answersRepo) DeleteAnswer(ctx context.Context, id int64) error {
	return requireAffected(r.q.exec(ctx, `DELETE FROM answers WHERE id = ?`, id))
}
