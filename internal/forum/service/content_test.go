package service_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/forum/internal/forum/service"
	"github.com/stretchr/testify/require"
)

// User A owns a question, B can't edit it, A can until A signs out.
func TestOwnershipScenario(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.signup(t, "alice")
	e.signup(t, "bob")
	aTok := e.signin(t, "alice")
	bTok := e.signin(t, "bob")

	q, err := e.questions.Create(ctx, aTok, "What is Go?")
	require.NoError(t, err)

	_, err = e.questions.Edit(ctx, bTok, q.UUID, "hijacked")
	require.ErrorIs(t, err, service.ErrNotOwner)

	edited, err := e.questions.Edit(ctx, aTok, q.UUID, "What is Go, really?")
	require.NoError(t, err)
	require.Equal(t, "What is Go, really?", edited.Content)

	stored, err := e.store.Questions().GetQuestionByUUID(ctx, q.UUID)
	require.NoError(t, err)
	require.Equal(t, "What is Go, really?", stored.Content)

	_, err = e.sessions.SignOut(ctx, aTok)
	require.NoError(t, err)

	_, err = e.questions.Edit(ctx, aTok, q.UUID, "again")
	require.ErrorIs(t, err, service.ErrSignedOut)
	se, _ := service.AsError(err)
	require.Equal(t, "User is signed out.Sign in first to edit the question", se.Message)
}

func TestQuestions(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	alice := e.signup(t, "alice")
	e.signup(t, "bob")
	e.admin(t, "root")
	aTok := e.signin(t, "alice")
	bTok := e.signin(t, "bob")
	rootTok := e.signin(t, "root")

	q1, err := e.questions.Create(ctx, aTok, "first?")
	require.NoError(t, err)
	_, err = e.questions.Create(ctx, bTok, "second?")
	require.NoError(t, err)

	t.Run("create requires a session", func(t *testing.T) {
		_, err := e.questions.Create(ctx, "nope", "x")
		require.ErrorIs(t, err, service.ErrNotSignedIn)
	})

	t.Run("create requires content", func(t *testing.T) {
		_, err := e.questions.Create(ctx, aTok, "  ")
		require.ErrorIs(t, err, service.ErrInvalidRequest)
	})

	t.Run("list", func(t *testing.T) {
		all, err := e.questions.List(ctx, bTok)
		require.NoError(t, err)
		require.Len(t, all, 2)

		mine, err := e.questions.ListByUser(ctx, bTok, alice.UUID)
		require.NoError(t, err)
		require.Len(t, mine, 1)
		require.Equal(t, q1.UUID, mine[0].UUID)

		_, err = e.questions.ListByUser(ctx, bTok, "missing")
		require.ErrorIs(t, err, service.ErrUserNotFound)
	})

	t.Run("edit unknown question", func(t *testing.T) {
		_, err := e.questions.Edit(ctx, aTok, "missing", "x")
		require.ErrorIs(t, err, service.ErrQuestionNotFound)
	})

	t.Run("authentication is checked before existence", func(t *testing.T) {
		_, err := e.questions.Edit(ctx, "nope", "missing", "x")
		require.ErrorIs(t, err, service.ErrNotSignedIn)
	})

	t.Run("admin cannot edit", func(t *testing.T) {
		_, err := e.questions.Edit(ctx, rootTok, q1.UUID, "x")
		require.ErrorIs(t, err, service.ErrNotOwner)
	})

	t.Run("delete by non owner", func(t *testing.T) {
		_, err := e.questions.Delete(ctx, bTok, q1.UUID)
		require.ErrorIs(t, err, service.ErrNotOwner)
	})

	t.Run("delete by admin", func(t *testing.T) {
		_, err := e.questions.Delete(ctx, rootTok, q1.UUID)
		require.NoError(t, err)

		_, err = e.questions.Delete(ctx, aTok, q1.UUID)
		require.ErrorIs(t, err, service.ErrQuestionNotFound)
	})
}

func TestAnswers(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.signup(t, "alice")
	e.signup(t, "bob")
	e.admin(t, "root")
	aTok := e.signin(t, "alice")
	bTok := e.signin(t, "bob")
	rootTok := e.signin(t, "root")

	q, err := e.questions.Create(ctx, aTok, "why?")
	require.NoError(t, err)

	a, err := e.answers.Create(ctx, bTok, q.UUID, "because")
	require.NoError(t, err)

	t.Run("answer to unknown question", func(t *testing.T) {
		_, err := e.answers.Create(ctx, bTok, "missing", "x")
		require.ErrorIs(t, err, service.ErrQuestionNotFound)
		se, _ := service.AsError(err)
		require.Equal(t, "The question entered is invalid", se.Message)
	})

	t.Run("list", func(t *testing.T) {
		parent, list, err := e.answers.ListByQuestion(ctx, aTok, q.UUID)
		require.NoError(t, err)
		require.Equal(t, q.UUID, parent.UUID)
		require.Len(t, list, 1)
		require.Equal(t, a.UUID, list[0].UUID)

		_, _, err = e.answers.ListByQuestion(ctx, aTok, "missing")
		require.ErrorIs(t, err, service.ErrQuestionNotFound)
	})

	t.Run("edit by question owner is still denied", func(t *testing.T) {
		_, err := e.answers.Edit(ctx, aTok, a.UUID, "nope")
		require.ErrorIs(t, err, service.ErrNotOwner)
		se, _ := service.AsError(err)
		require.Equal(t, "Only the answer owner can edit the answer", se.Message)
	})

	t.Run("edit by owner", func(t *testing.T) {
		got, err := e.answers.Edit(ctx, bTok, a.UUID, "because!")
		require.NoError(t, err)
		require.Equal(t, "because!", got.Content)
	})

	t.Run("edit unknown answer", func(t *testing.T) {
		_, err := e.answers.Edit(ctx, bTok, "missing", "x")
		require.ErrorIs(t, err, service.ErrAnswerNotFound)
	})

	t.Run("delete by non owner", func(t *testing.T) {
		_, err := e.answers.Delete(ctx, aTok, a.UUID)
		require.ErrorIs(t, err, service.ErrNotOwner)
		se, _ := service.AsError(err)
		require.Equal(t, "Only the answer owner or admin can delete the answer", se.Message)
	})

	t.Run("delete by admin", func(t *testing.T) {
		_, err := e.answers.Delete(ctx, rootTok, a.UUID)
		require.NoError(t, err)

		_, err = e.answers.Delete(ctx, bTok, a.UUID)
		require.ErrorIs(t, err, service.ErrAnswerNotFound)
	})

	t.Run("owner deletes own answer", func(t *testing.T) {
		b, err := e.answers.Create(ctx, bTok, q.UUID, "another")
		require.NoError(t, err)
		_, err = e.answers.Delete(ctx, bTok, b.UUID)
		require.NoError(t, err)
	})
}
