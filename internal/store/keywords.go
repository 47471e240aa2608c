package store

import (
	"strings"

	"itinerary-studio/internal/model"
)

// KeywordPatch holds the fields UpdateKeyword merges; nil fields are left alone.
type KeywordPatch struct {
	Keyword    *string
	Activities *[]string
}

// Keywords returns copies of all keyword templates, newest first.
func (r *Repo) Keywords() []model.Keyword {
	out := make([]model.Keyword, len(r.keywords))
	for i, k := range r.keywords {
		out[i] = k.Clone()
	}
	return out
}

func (r *Repo) FindKeyword(id string) (model.Keyword, bool) {
	for _, k := range r.keywords {
		if k.ID == id {
			return k.Clone(), true
		}
	}
	return model.Keyword{}, false
}

// AddKeyword inserts a new template at the front. The keyword is trimmed and
// must not collide case-insensitively with an existing one.
func (r *Repo) AddKeyword(keyword string, activities []string) (model.Keyword, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return model.Keyword{}, &model.ValidationError{Field: "keyword", Value: keyword, Reason: "must not be empty"}
	}
	for _, k := range r.keywords {
		if strings.EqualFold(k.Keyword, keyword) {
			return model.Keyword{}, DuplicateKeywordError{Keyword: keyword, ExistingID: k.ID}
		}
	}

	now := r.now()
	k := model.Keyword{
		ID:         r.newID(),
		Keyword:    keyword,
		Activities: copyLines(activities),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	next := make([]model.Keyword, 0, len(r.keywords)+1)
	next = append(next, k)
	next = append(next, r.keywords...)
	r.keywords = next

	return k.Clone(), r.commit("keyword.add", k.ID, k)
}

// UpdateKeyword merges p into the template with id. Fields are not
// re-validated: uniqueness is only enforced on add, so a rename may produce a
// case-insensitive duplicate or an empty keyword. Doctor reports both.
func (r *Repo) UpdateKeyword(id string, p KeywordPatch) (model.Keyword, error) {
	idx := r.keywordIndex(id)
	if idx < 0 {
		return model.Keyword{}, NotFoundError{Kind: "keyword", ID: id}
	}
	k := r.keywords[idx].Clone()
	if p.Keyword != nil {
		k.Keyword = strings.TrimSpace(*p.Keyword)
	}
	if p.Activities != nil {
		k.Activities = copyLines(*p.Activities)
	}
	k.UpdatedAt = r.now()

	next := make([]model.Keyword, len(r.keywords))
	copy(next, r.keywords)
	next[idx] = k
	r.keywords = next

	return k.Clone(), r.commit("keyword.update", k.ID, k)
}

// DeleteKeyword removes the template with id. Deleting an unknown id does
// nothing and does not persist.
func (r *Repo) DeleteKeyword(id string) error {
	idx := r.keywordIndex(id)
	if idx < 0 {
		return nil
	}
	next := make([]model.Keyword, 0, len(r.keywords)-1)
	next = append(next, r.keywords[:idx]...)
	next = append(next, r.keywords[idx+1:]...)
	r.keywords = next
	return r.commit("keyword.delete", id, nil)
}

// SearchKeywords returns templates whose keyword contains query,
// case-insensitively, in repository order. An empty query matches everything.
func (r *Repo) SearchKeywords(query string) []model.Keyword {
	q := strings.ToLower(query)
	out := []model.Keyword{}
	for _, k := range r.keywords {
		if strings.Contains(strings.ToLower(k.Keyword), q) {
			out = append(out, k.Clone())
		}
	}
	return out
}

func (r *Repo) keywordIndex(id string) int {
	for i, k := range r.keywords {
		if k.ID == id {
			return i
		}
	}
	return -1
}

func copyLines(xs []string) []string {
	out := make([]string, len(xs))
	copy(out, xs)
	return out
}
