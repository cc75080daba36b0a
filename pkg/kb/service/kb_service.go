package service

import "irriga/entities"

type ArticleService interface {
	Upsert(title, tags, text, sourceURL string) (*entities.Article, int, error)
	Search(query string, k int) ([]entities.ArticleChunk, error)
	ArticlesMeta(ids []uint) (map[uint]entities.Article, error)
	// RelatedRefs is the engine-facing shortcut: top-k distinct articles
	// matching the query, as title+URL references.
	RelatedRefs(query string, k int) ([]entities.ArticleRef, error)
}
