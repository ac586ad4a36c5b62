package handlers

import "net/http"

type designTypeResponse struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	PlaceholderPrompt string `json:"placeholderPrompt"`
}

// ListDesignTypes returns the catalog entries clients need to render the
// design-type selector. Schemas and system instructions stay server-side.
func (a *App) ListDesignTypes(w http.ResponseWriter, r *http.Request) {
	types := a.Catalog.All()
	out := make([]designTypeResponse, 0, len(types))
	for _, dt := range types {
		out = append(out, designTypeResponse{
			ID:                dt.ID,
			Title:             dt.Title,
			Description:       dt.Description,
			PlaceholderPrompt: dt.PlaceholderPrompt,
		})
	}
	a.json(w, http.StatusOK, out)
}
