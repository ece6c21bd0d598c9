package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Shubham0723/geocool-fcc-sub000/internal/config"
	"github.com/Shubham0723/geocool-fcc-sub000/internal/models"
	"github.com/Shubham0723/geocool-fcc-sub000/internal/utils"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.OTP{},
		&models.Vehicle{},
		&models.VehicleDocument{},
		&models.Operation{},
	))
	return db
}

func testConfig() config.Config {
	return config.Config{
		AppEnv:       "test",
		AuthSecret:   testSecret,
		SessionHours: 24,
		OtpMinutes:   10,
	}
}

func seedUser(t *testing.T, db *gorm.DB, email, phone, role string) models.User {
	t.Helper()
	user := models.User{Email: email, Phone: phone, Name: "Test " + role, Role: role, IsActive: true}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// sessionCookie mints a valid auth-token cookie for the identifier.
func sessionCookie(t *testing.T, identifier string) *http.Cookie {
	t.Helper()
	token, err := utils.GenerateSessionToken(identifier, testSecret, 24)
	require.NoError(t, err)
	return &http.Cookie{Name: utils.SessionCookieName, Value: token}
}

func doRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func noopLogger() *zap.Logger {
	return zap.NewNop()
}
