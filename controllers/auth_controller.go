package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pollsite/config"
	"pollsite/forms"
	"pollsite/middleware"
	"pollsite/models"
)

// AuthPage handles GET and POST /auth. The page carries both a registration
// and a login form; a POST picks its mode by which marker field is present
// in the body. Guests only — RequireGuest redirects logged-in users away.
func AuthPage(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		renderAuth(c, nil, nil)
		return
	}

	if _, ok := c.GetPostForm("register"); ok {
		registerUser(c)
		return
	}
	if _, ok := c.GetPostForm("login"); ok {
		loginUser(c)
		return
	}

	renderAuth(c, nil, nil)
}

func renderAuth(c *gin.Context, registerErrors, loginErrors map[string]string) {
	c.HTML(http.StatusOK, "auth.html", gin.H{
		"RegisterErrors": registerErrors,
		"LoginErrors":    loginErrors,
	})
}

func registerUser(c *gin.Context) {
	var form forms.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		renderAuth(c, map[string]string{"username": "Invalid submission."}, nil)
		return
	}

	errs := form.Validate()
	if len(errs) == 0 {
		var existing models.User
		if err := config.DB.Where("username = ?", form.Username).First(&existing).Error; err == nil {
			errs["username"] = "A user with that username already exists."
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusInternalServerError, "Failed to create user")
			return
		}
	}
	if len(errs) > 0 {
		renderAuth(c, errs, nil)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(form.Password1), bcrypt.DefaultCost)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		Username: form.Username,
		Email:    form.Email,
		Password: string(hashedPassword),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to create user")
		return
	}

	if err := middleware.IssueSession(c, user.ID); err != nil {
		c.String(http.StatusInternalServerError, "Failed to create session")
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func loginUser(c *gin.Context) {
	var form forms.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		renderAuth(c, nil, map[string]string{"username": "Invalid submission."})
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		renderAuth(c, nil, errs)
		return
	}

	var user models.User
	if err := config.DB.Where("username = ?", form.Username).First(&user).Error; err != nil {
		renderAuth(c, nil, map[string]string{
			"__all__": "Please enter a correct username and password.",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(form.Password)); err != nil {
		renderAuth(c, nil, map[string]string{
			"__all__": "Please enter a correct username and password.",
		})
		return
	}

	if err := middleware.IssueSession(c, user.ID); err != nil {
		c.String(http.StatusInternalServerError, "Failed to create session")
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// Logout handles POST /logout
func Logout(c *gin.Context) {
	middleware.ClearSession(c)
	c.Redirect(http.StatusSeeOther, "/")
}
