package mutate

import "itinerary-studio/internal/model"

type HeadingPatch struct {
	Title   *string
	Content *string
	Enabled *bool
}

// AddHeading appends an enabled heading.
func AddHeading(hs []model.CustomHeading, title, content string) []model.CustomHeading {
	out := make([]model.CustomHeading, 0, len(hs)+1)
	out = append(out, hs...)
	return append(out, model.CustomHeading{ID: NewID(), Title: title, Content: content, Enabled: true})
}

func UpdateHeading(hs []model.CustomHeading, id string, p HeadingPatch) []model.CustomHeading {
	out := make([]model.CustomHeading, len(hs))
	copy(out, hs)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		if p.Title != nil {
			out[i].Title = *p.Title
		}
		if p.Content != nil {
			out[i].Content = *p.Content
		}
		if p.Enabled != nil {
			out[i].Enabled = *p.Enabled
		}
	}
	return out
}

func RemoveHeading(hs []model.CustomHeading, id string) []model.CustomHeading {
	out := make([]model.CustomHeading, 0, len(hs))
	for _, h := range hs {
		if h.ID != id {
			out = append(out, h)
		}
	}
	return out
}
