package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/fuzball1989/job-posting-portal/internal/model"
	"github.com/fuzball1989/job-posting-portal/internal/repository/memory"
	"github.com/fuzball1989/job-posting-portal/internal/service"
	"github.com/fuzball1989/job-posting-portal/internal/testing/fixtures"
	"github.com/fuzball1989/job-posting-portal/internal/testing/helpers"
)

// testServer is the full HTTP stack over an in-memory store.
type testServer struct {
	handler http.Handler
	store   *memory.Store
	fx      *fixtures.Factory
	jwt     *helpers.JWTHelper
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	store := memory.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	jwtHelper := helpers.NewJWTHelper(t)

	tokens := service.NewTokenService(service.TokenServiceConfig{
		JWT:      jwtHelper.Service(),
		Sessions: memory.NewSessionStore(),
	})
	auth := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:       store.Users(),
		MembershipRepo: store.Memberships(),
		TokenService:   tokens,
		BcryptCost:     bcrypt.MinCost,
	})
	policy := service.NewPolicy(service.PolicyConfig{
		UserRepo:       store.Users(),
		MembershipRepo: store.Memberships(),
		JobRepo:        store.Jobs(),
	})
	jobs := service.NewJobService(service.JobServiceConfig{
		JobRepo:      store.Jobs(),
		CategoryRepo: store.Categories(),
		Policy:       policy,
		Logger:       logger,
	})

	return &testServer{
		handler: NewRouter(RouterConfig{
			AuthService:     auth,
			JobService:      jobs,
			CategoryService: service.NewCategoryService(store.Categories()),
			HealthChecks:    map[string]Pinger{"store": store},
			Logger:          logger,
			AllowedOrigins:  []string{"*"},
		}),
		store: store,
		fx:    fixtures.New(fixtures.FromMemory(store)),
		jwt:   jwtHelper,
	}
}

func (s *testServer) token(user *model.User) string {
	return s.jwt.AccessToken(user)
}

func validJobBody(title string) map[string]any {
	return map[string]any{
		"title":          title,
		"description":    "Build and run the jobs platform.",
		"employmentType": "full_time",
		"remoteType":     "remote",
		"salaryMin":      90000,
		"salaryMax":      120000,
		"skillsRequired": []string{"Go", "PostgreSQL"},
	}
}

// jobView is the subset of the job JSON the tests look at.
type jobView struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Slug              string   `json:"slug"`
	Status            string   `json:"status"`
	RemoteType        string   `json:"remoteType"`
	EmploymentType    string   `json:"employmentType"`
	Currency          string   `json:"currency"`
	ViewsCount        int64    `json:"viewsCount"`
	ApplicationsCount int64    `json:"applicationsCount"`
	SkillsRequired    []string `json:"skillsRequired"`
	Company           *struct {
		Slug string `json:"slug"`
	} `json:"company"`
}

type pageView struct {
	Data       []jobView `json:"data"`
	Pagination struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		Total      int64 `json:"total"`
		TotalPages int   `json:"totalPages"`
		HasNext    bool  `json:"hasNext"`
		HasPrev    bool  `json:"hasPrev"`
	} `json:"pagination"`
}
