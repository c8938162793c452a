package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pollsite/config"
	"pollsite/models"
)

// CastVote handles POST /:id/vote.
//
// A missing or foreign choice id is a user-correctable mistake: the detail
// page is re-rendered with a message and nothing is written. On success the
// vote counter is incremented with a single SQL-level "votes + 1" so
// concurrent votes cannot lose updates, and the response is a redirect so a
// page reload cannot submit the vote twice.
func CastVote(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Question not found")
		return
	}

	var question models.Question
	if err := config.DB.Preload("Choices").First(&question, uint(id)).Error; err != nil {
		c.String(http.StatusNotFound, "Question not found")
		return
	}

	// Validate that the submitted choice belongs to this question
	var selected *models.Choice
	if choiceID, err := strconv.ParseUint(c.PostForm("choice"), 10, 64); err == nil {
		for i := range question.Choices {
			if question.Choices[i].ID == uint(choiceID) {
				selected = &question.Choices[i]
				break
			}
		}
	}

	if selected == nil {
		// Redisplay the question voting form.
		renderDetail(c, http.StatusOK, &question, gin.H{
			"ErrorMessage": "You didn't select a choice.",
		})
		return
	}

	err = config.DB.Model(&models.Choice{}).
		Where("id = ?", selected.ID).
		UpdateColumn("votes", gorm.Expr("votes + ?", 1)).Error
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	c.Redirect(http.StatusSeeOther, "/"+strconv.FormatUint(uint64(question.ID), 10)+"/results")
}
