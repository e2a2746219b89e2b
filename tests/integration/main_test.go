package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/JWDT/bug-tracker/config"
	"github.com/JWDT/bug-tracker/db"
	"github.com/JWDT/bug-tracker/internal/testutils"
	"github.com/JWDT/bug-tracker/middleware"
	"github.com/JWDT/bug-tracker/models"
	"github.com/JWDT/bug-tracker/response"
	"github.com/JWDT/bug-tracker/routes"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/lib/pq"
)

var (
	router *gin.Engine
	gormDB *gorm.DB
)

func TestMain(m *testing.M) {
	sqlDB, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	var err error
	gormDB, err = gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger: logger.New(
			log.New(io.Discard, "", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		log.Fatal(err)
	}

	config.LoadConfig()
	middleware.Init()
	db.InitWithGormDB(gormDB)
	db.CreateEnums(gormDB)
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal(err)
	}

	gin.SetMode(gin.TestMode)
	router = gin.New()
	routes.RegisterRoutes(router, gormDB)

	// setup
	registerUserForTests("Alice", "Smith", "alice@test.com", "123456")
	registerUserForTests("Bob", "Jones", "bob@test.com", "123456")
	registerUserForTests("Carol", "Diaz", "carol@test.com", "123456")

	code := m.Run()
	os.Exit(code)
}

// --- Helper functions ---
// doRequest marshals body to JSON (nil means parameters ride in the
// path) and asserts the response status when expectStatus is non-zero.
func doRequest(t *testing.T, method, path string, token string, body interface{}, expectStatus int) *httptest.ResponseRecorder {
	var req *http.Request

	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		reqBody, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if expectStatus != 0 {
		require.Equal(t, expectStatus, w.Code,
			fmt.Sprintf("expected %d, got %d, body=%s", expectStatus, w.Code, w.Body.String()))
	}

	return w
}

func registerUserForTests(firstName, lastName, email, password string) {
	w := httptest.NewRecorder()
	reqBody := fmt.Sprintf(
		`{"first_name":"%s","last_name":"%s","email":"%s","password":"%s"}`,
		firstName, lastName, email, password)
	req, _ := http.NewRequest("POST", "/register", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
}

func loginUser(t *testing.T, email, password string) string {
	reqBody := map[string]string{"email": email, "password": password}
	resp := doRequest(t, "POST", "/login", "", reqBody, http.StatusOK)

	var result response.TokenResponse
	err := json.Unmarshal(resp.Body.Bytes(), &result)
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	return result.Token
}

// setUserRole writes the role directly; role changes via the API need
// an admin, and the first admin has to come from somewhere.
func setUserRole(t *testing.T, email string, role models.UserRole) {
	err := gormDB.Model(&models.User{}).Where("email = ?", email).Update("role", role).Error
	require.NoError(t, err)
}

// assignUserToProject mirrors what PUT /projects/assign does, without
// needing an admin token in every test.
func assignUserToProject(t *testing.T, email string, projectID uint) {
	err := gormDB.Model(&models.User{}).Where("email = ?", email).Update("assigned_project_id", projectID).Error
	require.NoError(t, err)
}

func createProjectForTests(t *testing.T, name string) uint {
	project := models.Project{Name: name, Description: "integration fixture"}
	require.NoError(t, gormDB.Create(&project).Error)
	return project.ID
}
