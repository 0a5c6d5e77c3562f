package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/news-board-api/internal/models"
)

func TestValidateRecord(t *testing.T) {
	valid := &models.ArticleNDJSON{
		ArticleID: 1,
		Title:     "Living in the shadow of a great man",
		Topic:     "mitch",
		Author:    "butter_bridge",
		Body:      "I find this existence challenging",
	}
	assert.Empty(t, ValidateRecord(valid))

	missing := &models.ArticleNDJSON{ArticleID: 0, Topic: "mitch", Author: "butter_bridge", Body: "b"}
	errs := ValidateRecord(missing)
	require.Len(t, errs, 2)
	assert.Equal(t, "articleid", errs[0].Field)
	assert.Equal(t, "min", errs[0].Tag)
	assert.Equal(t, "title", errs[1].Field)
	assert.Equal(t, "required", errs[1].Tag)

	assert.Len(t, ValidateRecord(&models.User{Username: "lurker"}), 1)
	assert.Empty(t, ValidateRecord(&models.Topic{Slug: "paper"}))
}
