package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"skilltracker/dto"
	"skilltracker/repository"
	"skilltracker/testutil"
	"skilltracker/util"
)

const testAvatar = "https://media.test/default-avatar.png"

// fakeMailer records sends; notifications go out on a goroutine.
type fakeMailer struct {
	mu   sync.Mutex
	sent []string
}

func (m *fakeMailer) SendPortfolioPublished(to, _, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to+" "+url)
	return nil
}

func (m *fakeMailer) last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return ""
	}
	return m.sent[len(m.sent)-1]
}

func (m *fakeMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type env struct {
	media     *testutil.FakeMediaStore
	mailer    *fakeMailer
	auth      *AuthService
	certs     *CertificateService
	skills    *SkillService
	projects  *ProjectService
	portfolio *PortfolioService
	dashboard *DashboardService
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := testutil.NewTestDB(t)

	users := repository.NewUserRepository(db)
	certRepo := repository.NewCertificateRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	media := testutil.NewFakeMediaStore()
	mailer := &fakeMailer{}
	tokens := util.NewTokenIssuer("test-secret", time.Hour, "skilltracker")

	return &env{
		media:     media,
		mailer:    mailer,
		auth:      NewAuthService(users, media, tokens, testAvatar),
		certs:     NewCertificateService(certRepo, media),
		skills:    NewSkillService(skillRepo),
		projects:  NewProjectService(projectRepo, skillRepo),
		portfolio: NewPortfolioService(users, certRepo, skillRepo, projectRepo, mailer, "https://skilltracker.test/"),
		dashboard: NewDashboardService(repository.NewStatsRepository(db)),
	}
}

// register creates an account and returns its id.
func (e *env) register(t *testing.T, name, email string) uuid.UUID {
	t.Helper()
	res, err := e.auth.Register(context.Background(), &dto.RegisterRequest{Name: name, Email: email, Password: "password1"})
	require.NoError(t, err)
	id, err := e.auth.Authenticate(res.Token)
	require.NoError(t, err)
	return id
}

func ptr[T any](v T) *T {
	return &v
}
