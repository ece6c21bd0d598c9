package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Shubham0723/geocool-fcc-sub000/internal/config"
	"github.com/Shubham0723/geocool-fcc-sub000/internal/email"
	"github.com/Shubham0723/geocool-fcc-sub000/internal/models"
	"github.com/Shubham0723/geocool-fcc-sub000/internal/otp"
	"github.com/Shubham0723/geocool-fcc-sub000/internal/utils"
	"github.com/Shubham0723/geocool-fcc-sub000/internal/whatsapp"
)

type AuthHandler struct {
	DB       *gorm.DB
	Cfg      config.Config
	OTP      *otp.Service
	WhatsApp *whatsapp.Client
	Log      *zap.Logger
}

type sendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type sendOTPWhatsAppRequest struct {
	Phone     string `json:"phone" binding:"required"`
	OnlyCheck bool   `json:"onlyCheck"`
}

type verifyOTPRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Code       string `json:"code" binding:"required,len=6"`
}

func NewAuthHandler(db *gorm.DB, cfg config.Config, svc *otp.Service, wa *whatsapp.Client, log *zap.Logger) *AuthHandler {
	return &AuthHandler{DB: db, Cfg: cfg, OTP: svc, WhatsApp: wa, Log: log}
}

// findActiveUser resolves an identifier to an account: email lookup when it
// contains "@", digit-only phone lookup otherwise.
func findActiveUser(db *gorm.DB, identifier string) (*models.User, error) {
	var user models.User
	var err error
	if strings.Contains(identifier, "@") {
		err = db.Where("email = ? AND is_active = ?", strings.ToLower(identifier), true).First(&user).Error
	} else {
		err = db.Where("phone = ? AND is_active = ?", utils.DigitsOnly(identifier), true).First(&user).Error
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req sendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Valid email is required"})
		return
	}

	identifier := utils.NormalizeIdentifier(req.Email)
	if _, err := findActiveUser(h.DB, identifier); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found. Please contact administrator."})
		return
	}

	code, err := h.OTP.Issue(identifier)
	if err != nil {
		h.Log.Error("otp issue failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not generate OTP"})
		return
	}

	smtpCfg := email.Config{
		Host:     h.Cfg.SmtpHost,
		Port:     h.Cfg.SmtpPort,
		Username: h.Cfg.SmtpUser,
		Password: h.Cfg.SmtpPass,
		From:     h.Cfg.SmtpFrom,
	}
	if err := email.SendOTP(smtpCfg, identifier, code); err != nil {
		h.Log.Error("smtp send failed", zap.String("email", identifier), zap.Error(err))
		if h.Cfg.IsProduction() {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to send OTP email"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "otp generated (dev mode)", "devOtp": code})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP sent successfully to " + identifier})
}

func (h *AuthHandler) SendOTPWhatsApp(c *gin.Context) {
	var req sendOTPWhatsAppRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "phone required"})
		return
	}

	phone := utils.DigitsOnly(req.Phone)
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid phone"})
		return
	}

	if _, err := findActiveUser(h.DB, phone); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	if req.OnlyCheck {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"exists": true}})
		return
	}

	code, err := h.OTP.Issue(phone)
	if err != nil {
		h.Log.Error("otp issue failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not send OTP"})
		return
	}

	// Delivery over WhatsApp is best effort: the code is stored either way,
	// so a provider outage must not fail the request.
	if err := h.WhatsApp.SendOTP(c.Request.Context(), phone, code); err != nil {
		h.Log.Warn("whatsapp send failed", zap.String("phone", phone), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{}})
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Identifier and code are required"})
		return
	}

	identifier := utils.NormalizeIdentifier(req.Identifier)
	if !h.OTP.Verify(identifier, req.Code) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid or expired OTP"})
		return
	}

	token, err := utils.GenerateSessionToken(identifier, h.Cfg.AuthSecret, h.Cfg.SessionHours)
	if err != nil {
		h.Log.Error("session token failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not create session"})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(utils.SessionCookieName, token, h.Cfg.SessionHours*3600, "/", "", h.Cfg.IsProduction(), true)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP verified successfully", "redirect": "/"})
}

func (h *AuthHandler) Check(c *gin.Context) {
	cookie, err := c.Cookie(utils.SessionCookieName)
	if err != nil || cookie == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "authenticated": false, "message": "Not authenticated"})
		return
	}

	if _, ok := utils.ParseSessionToken(cookie, h.Cfg.AuthSecret); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "authenticated": false, "message": "Not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "authenticated": true})
}

func (h *AuthHandler) Role(c *gin.Context) {
	cookie, err := c.Cookie(utils.SessionCookieName)
	if err != nil || cookie == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return
	}

	identifier, ok := utils.ParseSessionToken(cookie, h.Cfg.AuthSecret)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid auth token"})
		return
	}

	user, err := findActiveUser(h.DB, identifier)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	role := user.Role
	if role == "" {
		role = "user"
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "role": role})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(utils.SessionCookieName, "", -1, "/", "", h.Cfg.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}
