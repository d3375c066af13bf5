package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	handler "github.com/worldquestion/api/internal/adapters/handler/http"
	repo "github.com/worldquestion/api/internal/adapters/repository/postgres"
	"github.com/worldquestion/api/internal/core/ports"
	"github.com/worldquestion/api/internal/core/services"
)

type TestApp struct {
	DB           *sql.DB
	Server       *httptest.Server
	Client       *http.Client
	RotationSvc  ports.RotationService
	ReconcileSvc ports.ReconcileService
	DBContainer  testcontainers.Container
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	dbName := "testdb"
	user := "user"
	password := "password"

	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func applyMigrations(db *sql.DB) error {
	dirPath := "../../internal/adapters/repository/postgres/migrations"

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}

		fullPath := filepath.Join(dirPath, entry.Name())
		content, err := os.ReadFile(fullPath)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		_, err = db.Exec(string(content))
		if err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

func setupTestApp(t *testing.T) *TestApp {
	ctx := context.Background()
	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)

	err = applyMigrations(db)
	require.NoError(t, err)

	questionRepo := repo.NewQuestionRepository(db)
	voteRepo := repo.NewVoteRepository(db)
	commentRepo := repo.NewCommentRepository(db)
	proposalRepo := repo.NewProposalRepository(db)
	rotator := repo.NewRotationRepository(db)
	tallyRepo := repo.NewTallyRepository(db)

	questionSvc := services.NewQuestionService(questionRepo, commentRepo)
	voteSvc := services.NewVoteService(questionRepo, voteRepo)
	commentSvc := services.NewCommentService(questionRepo, commentRepo)
	proposalSvc := services.NewProposalService(proposalRepo)
	rotationSvc := services.NewRotationService(rotator)
	reconcileSvc := services.NewReconcileService(tallyRepo)

	identity := handler.RemoteAddrResolver{}
	questionHandler := handler.NewQuestionHandler(questionSvc, voteSvc, commentSvc, identity)
	proposalHandler := handler.NewProposalHandler(proposalSvc, identity)
	rotationHandler := handler.NewRotationHandler(rotationSvc, "")

	router := handler.NewHandler(questionHandler, proposalHandler, rotationHandler, []string{"*"})

	server := httptest.NewServer(router)

	return &TestApp{
		DB:           db,
		Server:       server,
		Client:       server.Client(),
		RotationSvc:  rotationSvc,
		ReconcileSvc: reconcileSvc,
		DBContainer:  dbContainer,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// doJSON posts a body with the given identity via X-Real-IP, which the RealIP
// middleware turns into the request's remote address.
func (app *TestApp) doJSON(t *testing.T, method, path string, payload any, identity string) (*http.Response, apiResponse) {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, app.Server.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if identity != "" {
		req.Header.Set("X-Real-IP", identity)
	}

	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func (app *TestApp) createQuestion(t *testing.T, text string, active bool) string {
	t.Helper()

	var id string
	err := app.DB.QueryRow(`
		INSERT INTO questions (id, text, category, tags, active)
		VALUES (gen_random_uuid(), $1, 'society', '{}', $2)
		RETURNING id
	`, text, active).Scan(&id)
	require.NoError(t, err)
	return id
}
