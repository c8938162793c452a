package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pollsite/config"
	"pollsite/forms"
	"pollsite/models"
)

// AddComment handles GET and POST /:id/add_comment. No publish filter is
// applied on this path; the question only has to exist.
func AddComment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Question not found")
		return
	}

	var question models.Question
	err = config.DB.Preload("Choices").Preload("Comments").First(&question, uint(id)).Error
	if err != nil {
		c.String(http.StatusNotFound, "Question not found")
		return
	}

	if c.Request.Method != http.MethodPost {
		renderDetail(c, http.StatusOK, &question, nil)
		return
	}

	var form forms.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		renderDetail(c, http.StatusBadRequest, &question, gin.H{
			"CommentErrors": gin.H{"comment_text": "Invalid submission."},
		})
		return
	}

	if errs := form.Validate(); len(errs) > 0 {
		renderDetail(c, http.StatusOK, &question, gin.H{
			"CommentForm":   form,
			"CommentErrors": errs,
		})
		return
	}

	comment := models.Comment{
		QuestionID:  question.ID,
		CommentText: form.CommentText,
	}
	if err := config.DB.Create(&comment).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to create comment")
		return
	}

	c.Redirect(http.StatusSeeOther, "/"+strconv.FormatUint(uint64(question.ID), 10))
}
