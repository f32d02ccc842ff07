package domain

import "time"

// ResourceKind names the kind of user-authored content.
type ResourceKind string

const (
	KindQuestion ResourceKind = "question"
	KindAnswer   ResourceKind = "answer"
)

// Resource is user-authored content whose owner is fixed at creation.
type Resource interface {
	Kind() ResourceKind
	OwnerID() int64
}

type Question struct {
	ID        int64
	UUID      string
	Content   string
	UserID    int64 // owner
	CreatedAt time.Time
}

func (q Question) Kind() ResourceKind { return KindQuestion }
func (q Question) OwnerID() int64     { return q.UserID }

type Answer struct {
	ID         int64
	UUID       string
	Content    string
	QuestionID int64
	UserID     int64 // owner
	CreatedAt  time.Time
}

func (a Answer) Kind() ResourceKind { return KindAnswer }
func (a Answer) OwnerID() int64     { return a.UserID }
