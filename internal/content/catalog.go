package content

import (
	"math/rand"
	"strings"
)

// GradeInfo describes one educational stage and the subjects taught in it.
type GradeInfo struct {
	Code     string
	Category string
	Name     string
	Subjects []string
}

// Question is an immutable quiz question. Correct is the 0-based index into
// Options.
type Question struct {
	Text        string
	Options     []string
	Correct     int
	Explanation string
}

// Book is downloadable textbook metadata.
type Book struct {
	Title       string
	Description string
	DownloadURL string
	Chapters    []string
}

// SearchResult is one hit from Catalog.Search.
type SearchResult struct {
	Type    string // grade, subject, university, scholarship
	Name    string
	Grade   string
	Subject string
}

// Catalog is the static educational content: grade tables, quiz banks, book
// metadata, university and scholarship lists. Immutable after New.
type Catalog struct {
	grades       map[string]GradeInfo
	gradeOrder   []string
	quizzes      map[string][]Question
	books        map[string]Book
	universities []string
	scholarships []string
	competitions []string
	tips         []string
}

func New() *Catalog {
	c := &Catalog{
		grades:       make(map[string]GradeInfo),
		quizzes:      make(map[string][]Question),
		books:        make(map[string]Book),
		universities: universities,
		scholarships: scholarships,
		competitions: competitions,
		tips:         studyTips,
	}

	for _, g := range gradeTable {
		c.grades[g.Code] = g
		c.gradeOrder = append(c.gradeOrder, g.Code)
	}
	for key, bank := range quizBanks {
		c.quizzes[key] = bank
	}
	for key, b := range bookTable {
		c.books[key] = b
	}

	return c
}

// GradeInfo resolves a grade code. Returns nil for unknown codes.
func (c *Catalog) GradeInfo(code string) *GradeInfo {
	g, ok := c.grades[code]
	if !ok {
		return nil
	}
	return &g
}

// GradeCodes returns every grade code in catalog order.
func (c *Catalog) GradeCodes() []string {
	return c.gradeOrder
}

// SubjectsForGrade returns the subject list for a grade, or nil.
func (c *Catalog) SubjectsForGrade(code string) []string {
	g := c.GradeInfo(code)
	if g == nil {
		return nil
	}
	return g.Subjects
}

// Quiz returns the question bank for (subject, grade), or nil when none
// exists. Callers must not mutate the returned slice.
func (c *Catalog) Quiz(subject, grade string) []Question {
	return c.quizzes[subject+"_"+grade]
}

// Book returns textbook metadata for (subject, grade), or nil.
func (c *Catalog) Book(subject, grade string) *Book {
	b, ok := c.books[grade+"_"+subject]
	if !ok {
		return nil
	}
	return &b
}

func (c *Catalog) Universities() []string { return c.universities }
func (c *Catalog) Scholarships() []string { return c.scholarships }
func (c *Catalog) Competitions() []string { return c.competitions }

// RandomTip picks one study tip.
func (c *Catalog) RandomTip() string {
	return c.tips[rand.Intn(len(c.tips))]
}

// Search matches the query against grade names, subjects, universities and
// scholarships.
func (c *Catalog) Search(query string) []SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var results []SearchResult

	for _, code := range c.gradeOrder {
		g := c.grades[code]
		if strings.Contains(strings.ToLower(g.Name), q) {
			results = append(results, SearchResult{Type: "grade", Name: g.Name})
		}
		for _, subject := range g.Subjects {
			if strings.Contains(strings.ToLower(subject), q) {
				results = append(results, SearchResult{Type: "subject", Subject: subject, Grade: g.Name})
			}
		}
	}

	for _, u := range c.universities {
		if strings.Contains(strings.ToLower(u), q) {
			results = append(results, SearchResult{Type: "university", Name: u})
		}
	}
	for _, s := range c.scholarships {
		if strings.Contains(strings.ToLower(s), q) {
			results = append(results, SearchResult{Type: "scholarship", Name: s})
		}
	}

	return results
}
