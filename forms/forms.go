// Package forms holds the submitted-field structs and their validators.
// Each form binds from the request body via gin's form tags and reports
// problems as a field->message map so handlers can re-render the page the
// submission came from.
package forms

import (
	"regexp"
	"strings"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type QuestionForm struct {
	QuestionText string `form:"question_text"`
}

func (f *QuestionForm) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(f.QuestionText) == "" {
		errs["question_text"] = "This field is required."
	}
	return errs
}

type ChoiceForm struct {
	ChoiceText string `form:"choice_text"`
}

func (f *ChoiceForm) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(f.ChoiceText) == "" {
		errs["choice_text"] = "This field is required."
	}
	return errs
}

type CommentForm struct {
	CommentText string `form:"comment_text"`
}

func (f *CommentForm) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(f.CommentText) == "" {
		errs["comment_text"] = "This field is required."
	}
	return errs
}

type RegisterForm struct {
	Username  string `form:"username"`
	Email     string `form:"email"`
	Password1 string `form:"password1"`
	Password2 string `form:"password2"`
}

func (f *RegisterForm) Validate() map[string]string {
	errs := make(map[string]string)

	username := strings.TrimSpace(f.Username)
	switch {
	case len(username) < 3:
		errs["username"] = "Username must be at least 3 characters."
	case len(username) > 50:
		errs["username"] = "Username must be at most 50 characters."
	case !usernamePattern.MatchString(username):
		errs["username"] = "Username may only contain letters, digits, underscore and dash."
	}

	email := strings.TrimSpace(f.Email)
	if email == "" {
		errs["email"] = "This field is required."
	} else if !strings.Contains(email, "@") || len(email) > 255 {
		errs["email"] = "Enter a valid email address."
	}

	if f.Password1 == "" {
		errs["password1"] = "This field is required."
	} else if f.Password1 != f.Password2 {
		errs["password2"] = "The two password fields didn't match."
	}

	return errs
}

type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (f *LoginForm) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(f.Username) == "" {
		errs["username"] = "This field is required."
	}
	if f.Password == "" {
		errs["password"] = "This field is required."
	}
	return errs
}
