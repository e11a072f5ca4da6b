package news

import "context"

const maxArticlesPerSource = 5

type Article struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source"`
	Date   string `json:"date"`
}

type NewsClient interface {
	Search(ctx context.Context, query string) ([]Article, error)
	Name() string
}
