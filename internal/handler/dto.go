package handler

import "cryptonews/pkg/news"

type ArticleResponse struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source"`
	Date   string `json:"date"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache,omitempty"`
}

func toArticleResponses(articles []news.Article) []ArticleResponse {
	res := make([]ArticleResponse, 0, len(articles))
	for _, a := range articles {
		res = append(res, ArticleResponse{
			Title:  a.Title,
			URL:    a.URL,
			Source: a.Source,
			Date:   a.Date,
		})
	}
	return res
}
