package repository

import "irriga/entities"

type ArticleRepository interface {
	CreateArticle(a *entities.Article) error
	BulkInsertChunks(cs []entities.ArticleChunk) error
	AllChunks() ([]entities.ArticleChunk, error)
	ArticlesByIDs(ids []uint) (map[uint]entities.Article, error)
}
