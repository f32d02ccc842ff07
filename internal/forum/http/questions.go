package http

import (
	"net/http"

	"github.com/aussiebroadwan/forum/internal/forum/domain"
	"github.com/aussiebroadwan/forum/internal/forum/service"
	"github.com/aussiebroadwan/forum/pkg/forumsdk"
	"github.com/aussiebroadwan/forum/pkg/httpx"
)

type QuestionHandler struct {
	QuestionService *service.QuestionService
}

// HandleCreate godoc
//
//	@Summary		Post a question
//	@Description	The signed in user becomes the owner.
//	@Tags			Questions
//	@Security		SessionToken
//	@Accept			json
//	@Produce		json
//	@Param			request	body		forumsdk.QuestionRequest	true	"Question"
//	@Success		201		{object}	forumsdk.StatusResponse		"id, status"
//	@Failure		400		{object}	forumsdk.ErrorResponse		"REQ-001"
//	@Failure		401		{object}	forumsdk.ErrorResponse		"ATHR-001, ATHR-002"
//	@Failure		500		{object}	forumsdk.ErrorResponse		"Internal server error"
//	@Router			/v1/question/create [post].
func (h *QuestionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req forumsdk.QuestionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	q, err := h.QuestionService.Create(r.Context(), sessionToken(r), req.Content)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, forumsdk.StatusResponse{
		ID:     q.UUID,
		Status: forumsdk.StatusQuestionCreated,
	})
}

// HandleList godoc
//
//	@Summary	List all questions
//	@Tags		Questions
//	@Security	SessionToken
//	@Produce	json
//	@Success	200	{array}		forumsdk.QuestionDetailsResponse
//	@Failure	401	{object}	forumsdk.ErrorResponse	"ATHR-001, ATHR-002"
//	@Failure	500	{object}	forumsdk.ErrorResponse	"Internal server error"
//	@Router		/v1/question/all [get].
func (h *QuestionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.QuestionService.List(r.Context(), sessionToken(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, questionDetails(list))
}

// HandleListByUser godoc
//
//	@Summary	List the questions of a user
//	@Tags		Questions
//	@Security	SessionToken
//	@Produce	json
//	@Param		userId	path		string	true	"User id"
//	@Success	200		{array}		forumsdk.QuestionDetailsResponse
//	@Failure	401		{object}	forumsdk.ErrorResponse	"ATHR-001, ATHR-002"
//	@Failure	404		{object}	forumsdk.ErrorResponse	"USR-001"
//	@Failure	500		{object}	forumsdk.ErrorResponse	"Internal server error"
//	@Router		/v1/question/all/{userId} [get].
func (h *QuestionHandler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	list, err := h.QuestionService.ListByUser(r.Context(), sessionToken(r), r.PathValue("userId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, questionDetails(list))
}

// HandleEdit godoc
//
//	@Summary		Edit a question
//	@Description	Only the question owner may edit. Admins get no exception.
//	@Tags			Questions
//	@Security		SessionToken
//	@Accept			json
//	@Produce		json
//	@Param			questionId	path		string							true	"Question id"
//	@Param			request		body		forumsdk.QuestionEditRequest	true	"New content"
//	@Success		200			{object}	forumsdk.StatusResponse			"id, status"
//	@Failure		400			{object}	forumsdk.ErrorResponse			"REQ-001"
//	@Failure		401			{object}	forumsdk.ErrorResponse			"ATHR-001, ATHR-002"
//	@Failure		403			{object}	forumsdk.ErrorResponse			"ATHR-003"
//	@Failure		404			{object}	forumsdk.ErrorResponse			"QUES-001"
//	@Failure		500			{object}	forumsdk.ErrorResponse			"Internal server error"
//	@Router			/v1/question/edit/{questionId} [put].
func (h *QuestionHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	var req forumsdk.QuestionEditRequest
	if !decodeBody(w, r, &req) {
		return
	}

	q, err := h.QuestionService.Edit(r.Context(), sessionToken(r), r.PathValue("questionId"), req.Content)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, forumsdk.StatusResponse{
		ID:     q.UUID,
		Status: forumsdk.StatusQuestionEdited,
	})
}

// HandleDelete godoc
//
//	@Summary		Delete a question
//	@Description	The question owner or an admin may delete. Its answers go with it.
//	@Tags			Questions
//	@Security		SessionToken
//	@Produce		json
//	@Param			questionId	path		string					true	"Question id"
//	@Success		200			{object}	forumsdk.StatusResponse	"id, status"
//	@Failure		401			{object}	forumsdk.ErrorResponse	"ATHR-001, ATHR-002"
//	@Failure		403			{object}	forumsdk.ErrorResponse	"ATHR-003"
//	@Failure		404			{object}	forumsdk.ErrorResponse	"QUES-001"
//	@Failure		500			{object}	forumsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/question/delete/{questionId} [delete].
func (h *QuestionHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	q, err := h.QuestionService.Delete(r.Context(), sessionToken(r), r.PathValue("questionId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, forumsdk.StatusResponse{
		ID:     q.UUID,
		Status: forumsdk.StatusQuestionDeleted,
	})
}

func questionDetails(list []domain.Question) []forumsdk.QuestionDetailsResponse {
	out := make([]forumsdk.QuestionDetailsResponse, 0, len(list))
	for _, q := range list {
		out = append(out, forumsdk.QuestionDetailsResponse{ID: q.UUID, Content: q.Content})
	}
	return out
}
