package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/forum/internal/forum/service"
	"github.com/aussiebroadwan/forum/internal/forum/store"
	"github.com/aussiebroadwan/forum/pkg/httpx"
	"github.com/aussiebroadwan/forum/pkg/jwtx"
	"github.com/aussiebroadwan/forum/pkg/slogx"

	_ "github.com/aussiebroadwan/forum/api/forum" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       jwtx.Signer
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	SessionService  *service.SessionService
	UserService     *service.UserService
	QuestionService *service.QuestionService
	AnswerService   *service.AnswerService
}

func NewRouter(
	signer jwtx.Signer,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerQuestions()
	r.registerAnswers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Forum Service API
//	@version		0.1.0
//	@description	Question and answer forum. Every content endpoint requires a session token obtained from signin.
//	@description
//	@description				Errors are returned as {code, message} using the ATHR, SGR, USR, QUES and ANS codes.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/forum
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	SessionToken
//	@in							header
//	@name						authorization
//	@description				Session token returned by signin. "Bearer " prefix is optional.
//
//	@securityDefinitions.basic	BasicAuth
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerUsers() {
	h := &UserHandler{
		UserService:    r.UserService,
		SessionService: r.SessionService,
	}

	r.Mux.HandleFunc("POST /v1/user/signup", h.HandleSignup)
	r.Mux.HandleFunc("POST /v1/user/signin", h.HandleSignin)
	r.Mux.HandleFunc("POST /v1/user/signout", h.HandleSignout)
	r.Mux.HandleFunc("GET /v1/userprofile/{userId}", h.HandleProfile)
}

func (r *Router) registerQuestions() {
	h := &QuestionHandler{QuestionService: r.QuestionService}

	r.Mux.HandleFunc("POST /v1/question/create", h.HandleCreate)
	r.Mux.HandleFunc("GET /v1/question/all", h.HandleList)
	r.Mux.HandleFunc("GET /v1/question/all/{userId}", h.HandleListByUser)
	r.Mux.HandleFunc("PUT /v1/question/edit/{questionId}", h.HandleEdit)
	r.Mux.HandleFunc("DELETE /v1/question/delete/{questionId}", h.HandleDelete)
}

func (r *Router) registerAnswers() {
	h := &AnswerHandler{AnswerService: r.AnswerService}

	r.Mux.HandleFunc("POST /v1/question/{questionId}/answer/create", h.HandleCreate)
	r.Mux.HandleFunc("PUT /v1/answer/edit/{answerId}", h.HandleEdit)
	r.Mux.HandleFunc("DELETE /v1/answer/delete/{answerId}", h.HandleDelete)
	r.Mux.HandleFunc("GET /v1/answer/all/{questionId}", h.HandleList)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer))
}
