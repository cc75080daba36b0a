package serviceImp

import (
	"sort"
	"strings"

	"irriga/entities"
	"irriga/pkg/kb/repository"
	"irriga/pkg/kb/service"
)

type Svc struct{ r repository.ArticleRepository }

func New(r repository.ArticleRepository) service.ArticleService { return &Svc{r: r} }

func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = 1000
	}
	parts := []string{}
	cur := strings.Builder{}
	count := 0
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && r == '\n' {
			parts = append(parts, cur.String())
			cur.Reset()
			count = 0
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

func (s *Svc) Upsert(title, tags, text, sourceURL string) (*entities.Article, int, error) {
	a := &entities.Article{Title: title, Tags: tags, SourceURL: sourceURL}
	if err := s.r.CreateArticle(a); err != nil {
		return nil, 0, err
	}
	chs := chunkText(text, 1000)
	if len(chs) == 0 {
		return a, 0, nil
	}
	rows := make([]entities.ArticleChunk, len(chs))
	for i := range chs {
		rows[i] = entities.ArticleChunk{ArticleID: a.ArticleID, Ord: i, Text: chs[i]}
	}
	if err := s.r.BulkInsertChunks(rows); err != nil {
		return nil, 0, err
	}
	return a, len(rows), nil
}

// Search scores chunks by query-term occurrence. The library is small (a few
// hundred chunks at most), so a full scan beats maintaining an index.
func (s *Svc) Search(query string, k int) ([]entities.ArticleChunk, error) {
	q := strings.TrimSpace(query)
	if q == "" || k <= 0 {
		return nil, nil
	}
	terms := strings.Fields(strings.ToLower(q))

	chunks, err := s.r.AllChunks()
	if err != nil {
		return nil, err
	}
	type scored struct {
		ch entities.ArticleChunk
		sc int
	}
	var list []scored
	for _, ch := range chunks {
		low := strings.ToLower(ch.Text)
		sc := 0
		for _, t := range terms {
			sc += strings.Count(low, t)
		}
		if sc > 0 {
			list = append(list, scored{ch: ch, sc: sc})
		}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].sc > list[j].sc })
	if k > len(list) {
		k = len(list)
	}
	out := make([]entities.ArticleChunk, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, list[i].ch)
	}
	return out, nil
}

func (s *Svc) ArticlesMeta(ids []uint) (map[uint]entities.Article, error) {
	return s.r.ArticlesByIDs(ids)
}

func (s *Svc) RelatedRefs(query string, k int) ([]entities.ArticleRef, error) {
	chunks, err := s.Search(query, k*3)
	if err != nil {
		return nil, err
	}
	seen := map[uint]struct{}{}
	ids := make([]uint, 0, len(chunks))
	for _, ch := range chunks {
		if _, ok := seen[ch.ArticleID]; !ok {
			seen[ch.ArticleID] = struct{}{}
			ids = append(ids, ch.ArticleID)
		}
	}
	if len(ids) > k {
		ids = ids[:k]
	}
	meta, err := s.r.ArticlesByIDs(ids)
	if err != nil {
		return nil, err
	}
	refs := make([]entities.ArticleRef, 0, len(ids))
	for _, id := range ids {
		if a, ok := meta[id]; ok {
			refs = append(refs, entities.ArticleRef{Title: a.Title, URL: a.SourceURL})
		}
	}
	return refs, nil
}
