package http

import (
	"net/http"

	"github.com/aussiebroadwan/forum/internal/forum/service"
	"github.com/aussiebroadwan/forum/pkg/forumsdk"
	"github.com/aussiebroadwan/forum/pkg/httpx"
)

type AnswerHandler struct {
	AnswerService *service.AnswerService
}

// HandleCreate godoc
//
//	@Summary	Answer a question
//	@Tags		Answers
//	@Security	SessionToken
//	@Accept		json
//	@Produce	json
//	@Param		questionId	path		string					true	"Question id"
//	@Param		request		body		forumsdk.AnswerRequest	true	"Answer"
//	@Success	201			{object}	forumsdk.StatusResponse	"id, status"
//	@Failure	400			{object}	forumsdk.ErrorResponse	"REQ-001"
//	@Failure	401			{object}	forumsdk.ErrorResponse	"ATHR-001, ATHR-002"
//	@Failure	404			{object}	forumsdk.ErrorResponse	"QUES-001"
//	@Failure	500			{object}	forumsdk.ErrorResponse	"Internal server error"
//	@Router		/v1/question/{questionId}/answer/create [post].
func (h *AnswerHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req forumsdk.AnswerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	a, err := h.AnswerService.Create(r.Context(), sessionToken(r), r.PathValue("questionId"), req.Answer)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, forumsdk.StatusResponse{
		ID:     a.UUID,
		Status: forumsdk.StatusAnswerCreated,
	})
}

// HandleEdit godoc
//
//	@Summary		Edit an answer
//	@Description	Only the answer owner may edit.
//	@Tags			Answers
//	@Security		SessionToken
//	@Accept			json
//	@Produce		json
//	@Param			answerId	path		string						true	"Answer id"
//	@Param			request		body		forumsdk.AnswerEditRequest	true	"New content"
//	@Success		200			{object}	forumsdk.StatusResponse		"id, status"
//	@Failure		400			{object}	forumsdk.ErrorResponse		"REQ-001"
//	@Failure		401			{object}	forumsdk.ErrorResponse		"ATHR-001, ATHR-002"
//	@Failure		403			{object}	forumsdk.ErrorResponse		"ATHR-003"
//	@Failure		404			{object}	forumsdk.ErrorResponse		"ANS-001"
//	@Failure		500			{object}	forumsdk.ErrorResponse		"Internal server error"
//	@Router			/v1/answer/edit/{answerId} [put].
func (h *AnswerHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	var req forumsdk.AnswerEditRequest
	if !decodeBody(w, r, &req) {
		return
	}

	a, err := h.AnswerService.Edit(r.Context(), sessionToken(r), r.PathValue("answerId"), req.Content)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, forumsdk.StatusResponse{
		ID:     a.UUID,
		Status: forumsdk.StatusAnswerEdited,
	})
}

// HandleDelete godoc
//
//	@Summary		Delete an answer
//	@Description	The answer owner or an admin may delete.
//	@Tags			Answers
//	@Security		SessionToken
//	@Produce		json
//	@Param			answerId	path		string					true	"Answer id"
//	@Success		200			{object}	forumsdk.StatusResponse	"id, status"
//	@Failure		401			{object}	forumsdk.ErrorResponse	"ATHR-001, ATHR-002"
//	@Failure		403			{object}	forumsdk.ErrorResponse	"ATHR-003"
//	@Failure		404			{object}	forumsdk.ErrorResponse	"ANS-001"
//	@Failure		500			{object}	forumsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/answer/delete/{answerId} [delete].
func (h *AnswerHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	a, err := h.AnswerService.Delete(r.Context(), sessionToken(r), r.PathValue("answerId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, forumsdk.StatusResponse{
		ID:     a.UUID,
		Status: forumsdk.StatusAnswerDeleted,
	})
}

// HandleList godoc
//
//	@Summary	List the answers to a question
//	@Tags		Answers
//	@Security	SessionToken
//	@Produce	json
//	@Param		questionId	path		string	true	"Question id"
//	@Success	200			{array}		forumsdk.AnswerDetailsResponse
//	@Failure	401			{object}	forumsdk.ErrorResponse	"ATHR-001, ATHR-002"
//	@Failure	404			{object}	forumsdk.ErrorResponse	"QUES-001"
//	@Failure	500			{object}	forumsdk.ErrorResponse	"Internal server error"
//	@Router		/v1/answer/all/{questionId} [get].
func (h *AnswerHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q, answers, err := h.AnswerService.ListByQuestion(r.Context(), sessionToken(r), r.PathValue("questionId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]forumsdk.AnswerDetailsResponse, 0, len(answers))
	for _, a := range answers {
		out = append(out, forumsdk.AnswerDetailsResponse{
			ID:              a.UUID,
			QuestionContent: q.Content,
			AnswerContent:   a.Content,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
