package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"interviewscheduler/internal/delivery/http/controllers"
)

// APIPrefix is the base path of every versioned route.
const APIPrefix = "/api/v1"

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Employers  *controllers.EmployerController
	Candidates *controllers.CandidateController
	Interviews *controllers.InterviewController
	Health     *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers) *http.ServeMux {
	mux := http.NewServeMux()
	handle := func(method, path string, h http.HandlerFunc) {
		mux.HandleFunc(method+" "+APIPrefix+path, h)
	}

	// Employers
	handle("GET", "/employers", c.Employers.List)
	handle("POST", "/employers", c.Employers.Create)
	handle("GET", "/employers/{id}", c.Employers.Get)
	handle("PUT", "/employers/{id}", c.Employers.Update)
	handle("DELETE", "/employers/{id}", c.Employers.Delete)

	// Candidates
	handle("GET", "/candidates", c.Candidates.List)
	handle("POST", "/candidates", c.Candidates.Create)
	handle("GET", "/candidates/{id}", c.Candidates.Get)
	handle("PUT", "/candidates/{id}", c.Candidates.Update)
	handle("DELETE", "/candidates/{id}", c.Candidates.Delete)

	// Interviews
	handle("GET", "/interviews", c.Interviews.List)
	handle("POST", "/interviews", c.Interviews.Create)
	handle("POST", "/interviews/simple", c.Interviews.CreateSimple)
	handle("GET", "/interviews/dashboard", c.Interviews.Dashboard)
	handle("GET", "/interviews/employer/{id}", c.Interviews.ListByEmployer)
	handle("GET", "/interviews/candidate/{id}", c.Interviews.ListByCandidate)
	handle("GET", "/interviews/status/{status}", c.Interviews.ListByStatus)
	handle("GET", "/interviews/type/{type}", c.Interviews.ListByType)
	handle("GET", "/interviews/agenda/{date}", c.Interviews.Agenda)
	handle("GET", "/interviews/edit/{id}", c.Interviews.Edit)
	handle("GET", "/interviews/{id}", c.Interviews.Get)
	handle("PUT", "/interviews/{id}", c.Interviews.Update)
	handle("DELETE", "/interviews/{id}", c.Interviews.Delete)

	// Operations
	handle("GET", "/health", c.Health.Check)
	handle("GET", "/guide", controllers.UsageGuide)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
