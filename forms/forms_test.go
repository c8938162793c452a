package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionFormValidate(t *testing.T) {
	assert.Empty(t, (&QuestionForm{QuestionText: "What gives?"}).Validate())
	assert.Contains(t, (&QuestionForm{QuestionText: "  "}).Validate(), "question_text")
}

func TestChoiceFormValidate(t *testing.T) {
	assert.Empty(t, (&ChoiceForm{ChoiceText: "this one"}).Validate())
	assert.Contains(t, (&ChoiceForm{}).Validate(), "choice_text")
}

func TestCommentFormValidate(t *testing.T) {
	assert.Empty(t, (&CommentForm{CommentText: "well said"}).Validate())
	assert.Contains(t, (&CommentForm{CommentText: "\t\n"}).Validate(), "comment_text")
}

func TestRegisterFormValidate(t *testing.T) {
	valid := RegisterForm{
		Username:  "alice_01",
		Email:     "alice@example.com",
		Password1: "s3cret-pw",
		Password2: "s3cret-pw",
	}

	tests := []struct {
		name      string
		mutate    func(*RegisterForm)
		wantField string
	}{
		{"valid", func(f *RegisterForm) {}, ""},
		{"short username", func(f *RegisterForm) { f.Username = "al" }, "username"},
		{"long username", func(f *RegisterForm) { f.Username = string(make([]byte, 60)) }, "username"},
		{"bad characters", func(f *RegisterForm) { f.Username = "alice smith" }, "username"},
		{"empty email", func(f *RegisterForm) { f.Email = "" }, "email"},
		{"no at sign", func(f *RegisterForm) { f.Email = "alice.example.com" }, "email"},
		{"empty password", func(f *RegisterForm) { f.Password1 = ""; f.Password2 = "" }, "password1"},
		{"mismatch", func(f *RegisterForm) { f.Password2 = "other" }, "password2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)
			errs := form.Validate()
			if tt.wantField == "" {
				assert.Empty(t, errs)
			} else {
				assert.Contains(t, errs, tt.wantField)
			}
		})
	}
}

func TestLoginFormValidate(t *testing.T) {
	assert.Empty(t, (&LoginForm{Username: "alice", Password: "pw"}).Validate())
	assert.Contains(t, (&LoginForm{Password: "pw"}).Validate(), "username")
	assert.Contains(t, (&LoginForm{Username: "alice"}).Validate(), "password")
}
