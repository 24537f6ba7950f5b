// Package view maps fetched board records to the view models the HTML
// templates render. The builders are pure: no I/O, no context — the same
// records produce the same page regardless of whether the remote store or the
// snapshot answered. Every page has an explicit empty or not-found state; an
// empty container is never rendered without a message.
package view

import (
	"fmt"

	"qaboard-backend-go/internal/core"
	"qaboard-backend-go/internal/models"
)

// Bilingual UI strings shared across pages.
const (
	NoDataNotice     = "No data · 暂无数据"
	NoSolutionNotice = "No solution yet · 暂无方案"
	NoResultsNotice  = "No results · 暂无结果"
	NotFoundNotice   = "Question not found · 未找到该问题"
	DemoBannerText   = "Demo Data · 演示模式 — 数据来自本地快照，写入操作已禁用"
	DemoActionNotice = "Demo mode · 演示模式下禁用此操作"
)

// Page carries what every template needs.
type Page struct {
	Title string
	Demo  bool
}

// CategoryCard is one tile of the home category grid.
type CategoryCard struct {
	Slug  string
	Title string
}

// QuestionCard is one entry of the home carousel.
type QuestionCard struct {
	ID          string
	TitleEn     string
	TitleZh     string
	Upvotes     int
	Category    string
	TopSolution string
}

// QuestionRow is one row of a category or search list.
type QuestionRow struct {
	ID      string
	TitleEn string
	TitleZh string
	Upvotes int
}

// SolutionRow is one solution on the question page.
type SolutionRow struct {
	ID        string
	ContentEn string
	ContentZh string
	Upvotes   int
}

// HomeView is the data of the home page.
type HomeView struct {
	Page
	Categories []CategoryCard
	Carousel   []QuestionCard
}

// CategoryView is the data of a category page.
type CategoryView struct {
	Page
	Slug string
	Rows []QuestionRow
}

// QuestionView is the data of a question page. Found is false when the ID is
// absent from the data source; the template then renders the not-found state.
type QuestionView struct {
	Page
	Found     bool
	ID        string
	TitleLine string
	Meta      string
	Upvotes   int
	Solutions []SolutionRow
}

// SearchView is the data of a search results page.
type SearchView struct {
	Page
	Query string
	Rows  []QuestionRow
}

// bilingual joins an English and an optional Chinese string the way the board
// displays titles throughout.
func bilingual(en, zh string) string {
	if zh == "" {
		return en
	}
	return en + " · " + zh
}

// fallbackText returns alt when s is empty.
func fallbackText(s, alt string) string {
	if s == "" {
		return alt
	}
	return s
}

// Home builds the home page view from the category grid and the carousel
// entries assembled by the board service.
func Home(demo bool, categories []*models.Category, carousel []core.TopQuestion) HomeView {
	v := HomeView{Page: Page{Title: "Home", Demo: demo}}
	for _, c := range categories {
		v.Categories = append(v.Categories, CategoryCard{
			Slug:  c.Slug,
			Title: bilingual(c.TitleEn, c.TitleZh),
		})
	}
	for _, entry := range carousel {
		q := entry.Question
		card := QuestionCard{
			ID:          q.ID,
			TitleEn:     q.TitleEn,
			TitleZh:     q.TitleZh,
			Upvotes:     q.UpvotesCount,
			Category:    q.Category,
			TopSolution: NoSolutionNotice,
		}
		if s := entry.TopSolution; s != nil {
			card.TopSolution = fallbackText(s.ContentEn, fallbackText(s.ContentZh, "—"))
		}
		v.Carousel = append(v.Carousel, card)
	}
	return v
}

// Category builds a category page view.
func Category(demo bool, category *models.Category, questions []*models.Question) CategoryView {
	v := CategoryView{
		Page: Page{Title: bilingual(category.TitleEn, category.TitleZh), Demo: demo},
		Slug: category.Slug,
	}
	for _, q := range questions {
		v.Rows = append(v.Rows, QuestionRow{
			ID:      q.ID,
			TitleEn: q.TitleEn,
			TitleZh: q.TitleZh,
			Upvotes: q.UpvotesCount,
		})
	}
	return v
}

// Question builds a question page view.
func Question(demo bool, question *models.Question, solutions []*models.Solution) QuestionView {
	v := QuestionView{
		Page:      Page{Title: question.TitleEn, Demo: demo},
		Found:     true,
		ID:        question.ID,
		TitleLine: bilingual(question.TitleEn, question.TitleZh),
		Meta:      fmt.Sprintf("Category: %s", question.Category),
		Upvotes:   question.UpvotesCount,
	}
	for _, s := range solutions {
		v.Solutions = append(v.Solutions, SolutionRow{
			ID:        s.ID,
			ContentEn: fallbackText(s.ContentEn, s.ContentZh),
			ContentZh: s.ContentZh,
			Upvotes:   s.UpvotesCount,
		})
	}
	return v
}

// QuestionNotFound builds the explicit not-found state of the question page.
func QuestionNotFound(demo bool, id string) QuestionView {
	return QuestionView{
		Page: Page{Title: NotFoundNotice, Demo: demo},
		ID:   id,
	}
}

// Search builds a search results page view.
func Search(demo bool, query string, hits []*models.Question) SearchView {
	v := SearchView{
		Page:  Page{Title: fmt.Sprintf("Search · 搜索：%s", query), Demo: demo},
		Query: query,
	}
	for _, q := range hits {
		v.Rows = append(v.Rows, QuestionRow{
			ID:      q.ID,
			TitleEn: q.TitleEn,
			TitleZh: q.TitleZh,
			Upvotes: q.UpvotesCount,
		})
	}
	return v
}
