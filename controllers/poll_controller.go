package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"pollsite/config"
	"pollsite/forms"
	"pollsite/middleware"
	"pollsite/models"
)

// latestQuestions returns the last five published questions, not including
// those set to be published in the future.
func latestQuestions() []models.Question {
	var questions []models.Question
	config.DB.Scopes(models.Published).Order("pub_date desc").Limit(5).Find(&questions)
	return questions
}

// publishedQuestion looks up a question by its path id, applying the same
// publish-date filter as the listing. Returns nil when the id is not
// numeric, unknown, or not yet published.
func publishedQuestion(c *gin.Context) *models.Question {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return nil
	}

	var question models.Question
	err = config.DB.Scopes(models.Published).
		Preload("Choices").
		Preload("Comments").
		First(&question, uint(id)).Error
	if err != nil {
		return nil
	}
	return &question
}

func renderDetail(c *gin.Context, status int, question *models.Question, extra gin.H) {
	data := gin.H{
		"User":     middleware.CurrentUser(c),
		"Question": question,
	}
	for key, value := range extra {
		data[key] = value
	}
	c.HTML(status, "detail.html", data)
}

// Index handles GET / with the question listing and creation form
func Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"User":      middleware.CurrentUser(c),
		"Questions": latestQuestions(),
	})
}

// CreateQuestion handles POST / for authenticated users
func CreateQuestion(c *gin.Context) {
	var form forms.QuestionForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "index.html", gin.H{
			"User":      middleware.CurrentUser(c),
			"Questions": latestQuestions(),
			"Errors":    gin.H{"question_text": "Invalid submission."},
		})
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		// Re-render the listing together with the field errors
		c.HTML(http.StatusOK, "index.html", gin.H{
			"User":      middleware.CurrentUser(c),
			"Questions": latestQuestions(),
			"Form":      form,
			"Errors":    errs,
		})
		return
	}

	question := models.Question{
		QuestionText: form.QuestionText,
		// pub_date is set at write time, never taken from the caller
		PubDate: time.Now(),
	}
	if err := config.DB.Create(&question).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to create question")
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// Detail handles GET /:id with the vote, choice and comment forms
func Detail(c *gin.Context) {
	question := publishedQuestion(c)
	if question == nil {
		c.String(http.StatusNotFound, "Question not found")
		return
	}
	renderDetail(c, http.StatusOK, question, nil)
}

// Results handles GET /:id/results. The publish-date filter applies here
// just as on the detail page.
func Results(c *gin.Context) {
	question := publishedQuestion(c)
	if question == nil {
		c.String(http.StatusNotFound, "Question not found")
		return
	}
	c.HTML(http.StatusOK, "results.html", gin.H{
		"User":     middleware.CurrentUser(c),
		"Question": question,
	})
}

// CreateChoice handles POST /:id, adding a choice to an existing question.
// The insert goes through gorm so the choice text is parameter-bound, never
// spliced into the statement.
func CreateChoice(c *gin.Context) {
	question := publishedQuestion(c)
	if question == nil {
		c.String(http.StatusNotFound, "Question not found")
		return
	}

	var form forms.ChoiceForm
	if err := c.ShouldBind(&form); err != nil {
		renderDetail(c, http.StatusBadRequest, question, gin.H{
			"ChoiceErrors": gin.H{"choice_text": "Invalid submission."},
		})
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		renderDetail(c, http.StatusOK, question, gin.H{
			"ChoiceForm":   form,
			"ChoiceErrors": errs,
		})
		return
	}

	choice := models.Choice{
		QuestionID: question.ID,
		ChoiceText: form.ChoiceText,
		Votes:      0,
	}
	if err := config.DB.Create(&choice).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to create choice")
		return
	}

	c.Redirect(http.StatusSeeOther, "/"+strconv.FormatUint(uint64(question.ID), 10))
}
