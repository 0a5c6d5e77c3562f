package mocks

import (
	"time"

	"github.com/news-board-api/internal/models"
)

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// NewFixtureStore returns a store loaded with a small, fixed board:
// three topics ("paper" has no articles), four users ("lurker" has written
// nothing), six articles and six comments (articles 2, 4 and 6 have none).
func NewFixtureStore() *MockStore {
	store := NewMockStore()

	for _, t := range []*models.Topic{
		{Slug: "mitch", Description: "The man, the Mitch, the legend"},
		{Slug: "cats", Description: "Not dogs"},
		{Slug: "paper", Description: "what books are made of"},
	} {
		store.Topics[t.Slug] = t
	}

	for _, u := range []*models.User{
		{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
		{Username: "icellusedkars", Name: "sam", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
		{Username: "rogersop", Name: "paul", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
		{Username: "lurker", Name: "do_nothing", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
	} {
		store.Users[u.Username] = u
	}

	for _, a := range []*models.Article{
		{ArticleID: 1, Title: "Living in the shadow of a great man", Topic: "mitch", Author: "butter_bridge", Body: "I find this existence challenging", CreatedAt: ts("2020-07-09T20:11:00Z"), Votes: 100},
		{ArticleID: 2, Title: "Sony Vaio; or, The Laptop", Topic: "mitch", Author: "icellusedkars", Body: "Call me Mitchell.", CreatedAt: ts("2020-10-16T05:03:00Z")},
		{ArticleID: 3, Title: "Eight pug gifs that remind me of mitch", Topic: "mitch", Author: "icellusedkars", Body: "some gifs", CreatedAt: ts("2020-11-03T09:12:00Z")},
		{ArticleID: 4, Title: "Student SUES Mitch!", Topic: "mitch", Author: "rogersop", Body: "We all love Mitch and his wonderful, unique typing style.", CreatedAt: ts("2020-05-06T01:14:00Z")},
		{ArticleID: 5, Title: "UNCOVERED: catspiracy to bring down democracy", Topic: "cats", Author: "rogersop", Body: "Bastet walks amongst us, and the cats are taking arms!", CreatedAt: ts("2020-08-03T13:14:00Z")},
		{ArticleID: 6, Title: "A", Topic: "mitch", Author: "icellusedkars", Body: "Delicious tin of cat food", CreatedAt: ts("2020-10-18T01:00:00Z")},
	} {
		store.Articles[a.ArticleID] = a
	}
	store.NextArticleID = 7

	for _, c := range []*models.Comment{
		{CommentID: 1, ArticleID: 1, Author: "butter_bridge", Votes: 16, Body: "Oh, I've got compassion running out of my nose, pal! I'm the Sultan of Sentiment!", CreatedAt: ts("2020-04-06T12:17:00Z")},
		{CommentID: 2, ArticleID: 1, Author: "butter_bridge", Votes: 14, Body: "The beautiful thing about treasure is that it exists. Got to find out what kind of sheets these are; not cotton, not rayon, silky.", CreatedAt: ts("2020-10-31T03:03:00Z")},
		{CommentID: 3, ArticleID: 1, Author: "icellusedkars", Votes: 100, Body: "Replacing the quiet elegance of the dark suit and tie with the casual indifference of these muted earth tones is a form of fashion suicide.", CreatedAt: ts("2020-03-01T01:13:00Z")},
		{CommentID: 4, ArticleID: 3, Author: "icellusedkars", Votes: 0, Body: "Ambidextrous marsupial", CreatedAt: ts("2020-09-19T23:10:00Z")},
		{CommentID: 5, ArticleID: 5, Author: "butter_bridge", Votes: 0, Body: "What do you see? I have no idea where this will lead us.", CreatedAt: ts("2020-06-09T05:00:00Z")},
		{CommentID: 6, ArticleID: 3, Author: "icellusedkars", Votes: -100, Body: "I hate streaming noses", CreatedAt: ts("2020-11-03T21:00:00Z")},
	} {
		store.Comments[c.CommentID] = c
	}
	store.NextCommentID = 7

	return store
}
